package fund

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CoinLife/internal/model"
)

var (
	bullish = model.DayEvent{Type: "bullish_test", ChangePercent: 30}
	bearish = model.DayEvent{Type: "bearish_test", ChangePercent: -20}
	neutral = model.DayEvent{Type: "neutral_test", ChangePercent: 1}
)

func newExecutor() *Executor { return NewExecutor(zerolog.Nop()) }

func TestExecute_BuyHalf(t *testing.T) {
	state := model.NewPortfolio(1000, 10)
	stats := model.NewSessionStats()

	res := newExecutor().Execute(state, &stats, 0.5, bullish)

	assert.Equal(t, SideBuy, res.Side)
	assert.InDelta(t, 500.0, res.Amount, 1e-9)
	assert.InDelta(t, 500.0, state.Cash, 1e-9)
	assert.InDelta(t, 50.0, state.Position, 1e-9)
	assert.Equal(t, 1, stats.Trades)
	assert.Equal(t, 1, stats.ChangeCount)
	assert.Equal(t, 0, stats.AllIns)
	assert.Equal(t, 60.0, stats.TimingScore)
	assert.False(t, res.Contrary)
}

func TestExecute_SellAll(t *testing.T) {
	state := &model.PortfolioState{Cash: 500, Position: 50, Price: 13}
	stats := model.NewSessionStats()

	res := newExecutor().Execute(state, &stats, -1, bullish)

	assert.Equal(t, SideSell, res.Side)
	assert.InDelta(t, 50.0, res.Amount, 1e-9)
	assert.Equal(t, 0.0, state.Position)
	assert.InDelta(t, 1150.0, state.Cash, 1e-9)
	assert.Equal(t, 1, stats.PanicSells)
	assert.Equal(t, 1, stats.ContraryActions)
	assert.Equal(t, 35.0, stats.TimingScore)
	assert.True(t, res.Contrary)
}

func TestExecute_Hold(t *testing.T) {
	state := model.NewPortfolio(1000, 10)
	stats := model.NewSessionStats()

	res := newExecutor().Execute(state, &stats, 0, bullish)

	assert.Equal(t, SideHold, res.Side)
	assert.Equal(t, 1000.0, state.Cash)
	assert.Equal(t, model.NewSessionStats(), stats)
}

func TestExecute_InvalidAllocationsDegrade(t *testing.T) {
	tests := []struct {
		name      string
		state     model.PortfolioState
		alpha     float64
		wantAlpha float64
		wantSide  Side
	}{
		{"above one", model.PortfolioState{Cash: 100, Price: 10}, 3, 1, SideBuy},
		{"below minus one", model.PortfolioState{Position: 10, Price: 10}, -7, -1, SideSell},
		{"nan", model.PortfolioState{Cash: 100, Price: 10}, math.NaN(), 0, SideHold},
		{"sell with no position", model.PortfolioState{Cash: 100, Price: 10}, -0.5, 0, SideHold},
		{"buy with no cash", model.PortfolioState{Position: 10, Price: 10}, 0.5, 0, SideHold},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := tt.state
			stats := model.NewSessionStats()
			res := newExecutor().Execute(&state, &stats, tt.alpha, neutral)
			assert.Equal(t, tt.wantAlpha, res.Alpha)
			assert.Equal(t, tt.wantSide, res.Side)
			assert.GreaterOrEqual(t, state.Cash, 0.0)
			assert.GreaterOrEqual(t, state.Position, 0.0)
			if tt.wantSide == SideHold {
				assert.Zero(t, stats.Trades)
			}
		})
	}
}

func TestExecute_StatThresholds(t *testing.T) {
	tests := []struct {
		alpha      float64
		changes    int
		allIns     int
		panicSells int
	}{
		{0.05, 0, 0, 0},
		{0.1, 0, 0, 0},
		{0.11, 1, 0, 0},
		{0.9, 1, 0, 0},
		{0.95, 1, 1, 0},
		{-0.9, 1, 0, 0},
		{-0.95, 1, 0, 1},
	}
	for _, tt := range tests {
		state := &model.PortfolioState{Cash: 1000, Position: 100, Price: 10}
		stats := model.NewSessionStats()
		newExecutor().Execute(state, &stats, tt.alpha, neutral)
		assert.Equal(t, 1, stats.Trades, "alpha %.2f", tt.alpha)
		assert.Equal(t, tt.changes, stats.ChangeCount, "alpha %.2f", tt.alpha)
		assert.Equal(t, tt.allIns, stats.AllIns, "alpha %.2f", tt.alpha)
		assert.Equal(t, tt.panicSells, stats.PanicSells, "alpha %.2f", tt.alpha)
		assert.Equal(t, model.TimingScoreInitial, stats.TimingScore, "neutral events leave timing alone")
	}
}

func TestExecute_BlackSwanPolarityFollowsChange(t *testing.T) {
	crash := model.DayEvent{Type: "blackSwan_crash", ChangePercent: -60}
	moon := model.DayEvent{Type: "blackSwan_moon", ChangePercent: 80}

	stats := model.NewSessionStats()
	state := &model.PortfolioState{Cash: 1000, Position: 10, Price: 10}
	newExecutor().Execute(state, &stats, -0.5, crash)
	assert.Equal(t, 60.0, stats.TimingScore)

	newExecutor().Execute(state, &stats, -0.5, moon)
	assert.Equal(t, 45.0, stats.TimingScore)
	assert.Equal(t, 1, stats.ContraryActions)
}

func TestExecute_Conservation(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	ex := newExecutor()
	for i := 0; i < 500; i++ {
		state := &model.PortfolioState{
			Cash:     rng.Float64() * 5000,
			Position: rng.Float64() * 500,
			Price:    0.01 + rng.Float64()*100,
		}
		stats := model.NewSessionStats()
		before := state.Total()
		ex.Execute(state, &stats, rng.Float64()*2-1, bearish)

		require.InDelta(t, before, state.Total(), 1e-6*math.Max(1, before))
		require.GreaterOrEqual(t, state.Cash, 0.0)
		require.GreaterOrEqual(t, state.Position, 0.0)
	}
}

func TestExecute_TimingScoreStaysClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	ex := newExecutor()
	events := []model.DayEvent{bullish, bearish, neutral}
	state := &model.PortfolioState{Cash: 1000, Position: 100, Price: 10}
	stats := model.NewSessionStats()
	for i := 0; i < 1000; i++ {
		ex.Execute(state, &stats, rng.Float64()*2-1, events[rng.Intn(len(events))])
		require.GreaterOrEqual(t, stats.TimingScore, model.TimingScoreMin)
		require.LessOrEqual(t, stats.TimingScore, model.TimingScoreMax)
		if state.Cash < 1 {
			state.Cash = 1000
		}
		if state.Position < 1 {
			state.Position = 100
		}
	}
}
