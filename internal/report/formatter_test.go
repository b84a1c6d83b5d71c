package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"CoinLife/internal/model"
)

func TestFormatDayBrief(t *testing.T) {
	snap := model.Snapshot{Day: 3, Days: 7, Price: 12.5, Cash: 400, Position: 20, Total: 650}
	evt := model.DayEvent{Text: "A whale wakes up.", Tier: model.TierS, ChangeMin: -30, ChangeMax: -10}
	out := FormatDayBrief(snap, evt)
	assert.Contains(t, out, "Day 3/7")
	assert.Contains(t, out, "[S] A whale wakes up.")
	assert.Contains(t, out, "-30% to -10%")
}

func TestFormatSettlement(t *testing.T) {
	s := model.Settlement{
		Day: 1, Event: model.DayEvent{Type: "bullish_pump", ChangePercent: 30},
		PriceBefore: 10, PriceAfter: 13, PnL: 150, PnLPercent: 15, TotalToday: 1150, Phase: model.PhaseDay,
	}
	out := FormatSettlement(s)
	assert.Contains(t, out, "10.00 -> 13.00")
	assert.Contains(t, out, "PnL: +150.00 (+15.0%)")
	assert.NotContains(t, out, "wiped out")

	s.Phase = model.PhaseBankrupt
	assert.Contains(t, FormatSettlement(s), "wiped out")
}

func TestFormatTick(t *testing.T) {
	out := FormatTick(model.NightTick{Step: 90, Frames: 180, Price: 11, TrendPrice: 11.5, DisplayPnL: -3})
	assert.True(t, strings.HasPrefix(out, "night  50%"), out)
}

func TestFormatEnding(t *testing.T) {
	s := model.SessionSummary{
		Days: 7, Total: 2500, ROI: 150,
		Ending:  model.Ending{Title: "Doubled Up", Description: "Nice."},
		History: []model.SessionRecord{{PriceBefore: 10}, {PriceBefore: 14}, {PriceBefore: 9}},
		Stats:   model.SessionStats{Trades: 3, TimingScore: 70},
	}
	out := FormatEnding(s)
	assert.Contains(t, out, "*** Doubled Up ***")
	assert.Contains(t, out, "ROI: +150.0%")
	assert.Contains(t, out, "9.00 to 14.00")
	assert.Contains(t, out, "timing 70/100")
}
