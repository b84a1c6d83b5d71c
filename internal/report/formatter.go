// Package report renders session state as plain text for the CLI and logs.
package report

import (
	"fmt"
	"strings"

	"CoinLife/internal/calculator"
	"CoinLife/internal/model"
)

// FormatDayBrief formats the morning briefing: the portfolio and today's event.
func FormatDayBrief(snap model.Snapshot, evt model.DayEvent) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== Day %d/%d ===\n", snap.Day, snap.Days))
	b.WriteString(fmt.Sprintf("Price: %.2f | Cash: %.2f | Position: %.4f\n", snap.Price, snap.Cash, snap.Position))
	b.WriteString(fmt.Sprintf("Total: %.2f\n\n", snap.Total))

	b.WriteString(fmt.Sprintf("[%s] %s\n", evt.Tier, evt.Text))
	b.WriteString(fmt.Sprintf("  expected move: %+.0f%% to %+.0f%%\n", evt.ChangeMin, evt.ChangeMax))

	return b.String()
}

// FormatTick formats one night frame as a single HUD line.
func FormatTick(tick model.NightTick) string {
	return fmt.Sprintf("night %3.0f%% | price %.4f | trend %.4f | pnl %+.2f",
		tick.Progress()*100, tick.Price, tick.TrendPrice, tick.DisplayPnL)
}

// FormatSettlement formats the end-of-night result.
func FormatSettlement(s model.Settlement) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("--- Night %d settled ---\n", s.Day))
	b.WriteString(fmt.Sprintf("%s: %.2f -> %.2f (%+.1f%%)\n", s.Event.Type, s.PriceBefore, s.PriceAfter, s.Event.ChangePercent))
	b.WriteString(fmt.Sprintf("PnL: %+.2f (%+.1f%%)\n", s.PnL, s.PnLPercent))
	b.WriteString(fmt.Sprintf("Total: %.2f\n", s.TotalToday))
	switch s.Phase {
	case model.PhaseBankrupt:
		b.WriteString("Account wiped out.\n")
	case model.PhaseCompleted:
		b.WriteString("Final day complete.\n")
	}
	return b.String()
}

// FormatStats formats the cumulative session statistics.
func FormatStats(s model.SessionStats) string {
	var b strings.Builder
	b.WriteString("Stats:\n")
	b.WriteString(fmt.Sprintf("  trades %d | big moves %d | all-ins %d | panic sells %d\n",
		s.Trades, s.ChangeCount, s.AllIns, s.PanicSells))
	b.WriteString(fmt.Sprintf("  events: bullish %d | bearish %d | black swan %d\n",
		s.BullishEvents, s.BearishEvents, s.BlackSwanEvents))
	b.WriteString(fmt.Sprintf("  contrary %d | lucky %d | timing %.0f/100\n",
		s.ContraryActions, s.LuckEvents, s.TimingScore))
	b.WriteString(fmt.Sprintf("  max drawdown %.1f%% | avg |alpha| %.2f\n",
		s.MaxDrawdownRatio*100, s.AvgAbsAlpha))
	return b.String()
}

// FormatEnding formats the final summary with its archetype.
func FormatEnding(s model.SessionSummary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("*** %s ***\n", s.Ending.Title))
	b.WriteString(s.Ending.Description + "\n\n")
	b.WriteString(fmt.Sprintf("Days played: %d | Final total: %.2f | ROI: %+.1f%%\n", s.Days, s.Total, s.ROI))

	prices := make([]float64, 0, len(s.History))
	for _, r := range s.History {
		prices = append(prices, r.PriceBefore)
	}
	if high, low, err := calculator.CalculatePathRange(prices); err == nil {
		b.WriteString(fmt.Sprintf("Opening prices ranged %.2f to %.2f\n", low, high))
	}
	b.WriteString(FormatStats(s.Stats))
	return b.String()
}
