package calculator

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CalculatePathRange returns the high and low of a price path.
func CalculatePathRange(prices []float64) (high, low float64, err error) {
	if len(prices) == 0 {
		return 0, 0, errors.New("no prices provided")
	}
	return floats.Max(prices), floats.Min(prices), nil
}

// CalculateMeanAbs returns the mean of the absolute values, 0 for no values.
func CalculateMeanAbs(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	abs := make([]float64, len(values))
	for i, v := range values {
		if v < 0 {
			v = -v
		}
		abs[i] = v
	}
	return stat.Mean(abs, nil)
}

// CalculatePathVolatility returns the standard deviation of step-to-step
// returns along a price path. Paths shorter than three points yield 0.
func CalculatePathVolatility(prices []float64) float64 {
	if len(prices) < 3 {
		return 0
	}
	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 {
			returns = append(returns, (prices[i]-prices[i-1])/prices[i-1])
		}
	}
	if len(returns) < 2 {
		return 0
	}
	return stat.StdDev(returns, nil)
}
