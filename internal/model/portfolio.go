package model

import "math"

// MinPrice is the floor applied to every computed price.
const MinPrice = 0.01

// PortfolioState is the player's cash and position. It is owned by a single
// session and mutated only through the fund executor and settlement.
type PortfolioState struct {
	Cash         float64
	Position     float64
	Price        float64
	PriceHistory []float64
}

// NewPortfolio returns a portfolio holding only cash at the given price.
func NewPortfolio(cash, price float64) *PortfolioState {
	p := &PortfolioState{Cash: cash, Price: price}
	p.Clamp()
	p.PriceHistory = []float64{p.Price}
	return p
}

// Total values the portfolio at its current price.
func (p *PortfolioState) Total() float64 {
	return p.Cash + p.Position*p.Price
}

// TotalAt values the portfolio at an arbitrary price.
func (p *PortfolioState) TotalAt(price float64) float64 {
	return p.Cash + p.Position*price
}

// Clamp enforces cash >= 0, position >= 0 and price >= MinPrice.
func (p *PortfolioState) Clamp() {
	if p.Cash < 0 || math.IsNaN(p.Cash) {
		p.Cash = 0
	}
	if p.Position < 0 || math.IsNaN(p.Position) {
		p.Position = 0
	}
	if p.Price < MinPrice || math.IsNaN(p.Price) {
		p.Price = MinPrice
	}
}

// Settle sets the new canonical price and appends it to the history.
func (p *PortfolioState) Settle(price float64) {
	p.Price = price
	p.Clamp()
	p.PriceHistory = append(p.PriceHistory, p.Price)
}

// Clone returns a deep copy.
func (p *PortfolioState) Clone() PortfolioState {
	c := *p
	c.PriceHistory = append([]float64(nil), p.PriceHistory...)
	return c
}
