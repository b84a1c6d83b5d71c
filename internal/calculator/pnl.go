package calculator

// InitialCapital is the capital ROI is measured against unless the session
// is configured otherwise.
const InitialCapital = 1000.0

// CalculatePnL returns the overnight profit of holding position from
// priceYesterday to price.
func CalculatePnL(position, priceYesterday, price float64) float64 {
	return position * (price - priceYesterday)
}

// CalculatePnLPercent returns pnl as a percentage of totalYesterday, or 0
// when totalYesterday is not positive.
func CalculatePnLPercent(pnl, totalYesterday float64) float64 {
	if totalYesterday <= 0 {
		return 0
	}
	return pnl / totalYesterday * 100
}

// CalculateROI returns the return on initial capital in percent.
func CalculateROI(total, initial float64) float64 {
	if initial <= 0 {
		return 0
	}
	return (total - initial) / initial * 100
}

// CalculateDrawdownRatio returns how far total sits below peak as a ratio in
// [0, 1]. A non-positive peak yields 0.
func CalculateDrawdownRatio(peak, total float64) float64 {
	if peak <= 0 {
		return 0
	}
	dd := (peak - total) / peak
	if dd < 0 {
		return 0
	}
	if dd > 1 {
		return 1
	}
	return dd
}
