package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"CoinLife/internal/model"
)

func TestTracker_Drawdown(t *testing.T) {
	tr := NewTracker(1000)
	s := model.NewSessionStats()
	evt := model.DayEvent{Type: "neutral"}

	tr.Settle(&s, evt, 0.5, 10, 1200)
	assert.Equal(t, 1200.0, tr.Peak())
	assert.Equal(t, 0.0, s.MaxDrawdownRatio)

	tr.Settle(&s, evt, 0, 10, 900)
	assert.InDelta(t, 0.25, s.MaxDrawdownRatio, 1e-9)

	tr.Settle(&s, evt, 0, 10, 1100)
	assert.InDelta(t, 0.25, s.MaxDrawdownRatio, 1e-9, "drawdown keeps its maximum")
	assert.Equal(t, 1200.0, tr.Peak())
}

func TestTracker_LuckEvents(t *testing.T) {
	tr := NewTracker(1000)
	s := model.NewSessionStats()

	tr.Settle(&s, model.DayEvent{Type: "bullish_x"}, 0, 5, 1000)
	tr.Settle(&s, model.DayEvent{Type: "bullish_x"}, 0, 0, 1000)
	tr.Settle(&s, model.DayEvent{Type: "bearish_x"}, 0, 5, 1000)
	tr.Settle(&s, model.DayEvent{Type: "blackSwan_moon", ChangePercent: 90}, 0, 5, 1000)

	assert.Equal(t, 1, s.LuckEvents)
}

func TestTracker_AvgAbsAlpha(t *testing.T) {
	tr := NewTracker(1000)
	s := model.NewSessionStats()
	evt := model.DayEvent{Type: "neutral"}

	tr.Settle(&s, evt, 1, 0, 1000)
	assert.InDelta(t, 1.0, s.AvgAbsAlpha, 1e-9)
	tr.Settle(&s, evt, -0.5, 0, 1000)
	assert.InDelta(t, 0.75, s.AvgAbsAlpha, 1e-9)
	tr.Settle(&s, evt, 0, 0, 1000)
	assert.InDelta(t, 0.5, s.AvgAbsAlpha, 1e-9)
	assert.Equal(t, []float64{1, -0.5, 0}, tr.Alphas())
}
