// Package stats accumulates the settlement-time session statistics.
package stats

import (
	"CoinLife/internal/calculator"
	"CoinLife/internal/model"
)

// Tracker keeps the running values settlement needs: the peak total and the
// alphas consumed so far.
type Tracker struct {
	peak   float64
	alphas []float64
}

// NewTracker starts tracking from the session's opening total.
func NewTracker(initialTotal float64) *Tracker {
	return &Tracker{peak: initialTotal}
}

// Peak returns the highest total seen so far.
func (t *Tracker) Peak() float64 { return t.peak }

// Alphas returns a copy of the consumed alphas, one per settled day.
func (t *Tracker) Alphas() []float64 {
	return append([]float64(nil), t.alphas...)
}

// Settle folds one night's result into stats: drawdown against the running
// peak, a luck event for holding through a bullish day, and the running mean
// of |alpha|.
func (t *Tracker) Settle(stats *model.SessionStats, evt model.DayEvent, alpha, position, totalToday float64) {
	if totalToday > t.peak {
		t.peak = totalToday
	}
	if dd := calculator.CalculateDrawdownRatio(t.peak, totalToday); dd > stats.MaxDrawdownRatio {
		stats.MaxDrawdownRatio = dd
	}

	if evt.IsBullish() && position > 0 {
		stats.LuckEvents++
	}

	t.alphas = append(t.alphas, alpha)
	stats.AvgAbsAlpha = calculator.CalculateMeanAbs(t.alphas)
}
