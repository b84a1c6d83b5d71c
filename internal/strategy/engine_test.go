package strategy

import (
	"context"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CoinLife/internal/catalog"
	"CoinLife/internal/model"
	"CoinLife/internal/session"
)

func TestMapTier_AllBoundaries(t *testing.T) {
	tests := []struct {
		expected float64
		label    string
	}{
		{45, "all in"},
		{20, "all in"},
		{15, "heavy buy"},
		{10, "heavy buy"},
		{5, "light buy"},
		{3, "light buy"},
		{0, "hold"},
		{-3, "hold"},
		{-5, "trim"},
		{-10, "trim"},
		{-10.5, "exit"},
		{-60, "exit"},
	}
	for _, tt := range tests {
		tier := mapTier(tt.expected)
		if tier.Label != tt.label {
			t.Errorf("expected change %.1f: expected %q, got %q", tt.expected, tt.label, tier.Label)
		}
	}
}

func TestPolicies(t *testing.T) {
	pump := model.DayEvent{Type: "bullish_x", ChangeMin: 15, ChangeMax: 45}
	dump := model.DayEvent{Type: "bearish_x", ChangeMin: -30, ChangeMax: -10}

	assert.Equal(t, 1.0, Follow{}.Decide(pump, model.Snapshot{}))
	assert.Equal(t, -1.0, Follow{}.Decide(dump, model.Snapshot{}))
	assert.Equal(t, -1.0, Contrarian{}.Decide(pump, model.Snapshot{}))
	assert.Equal(t, 1.0, Contrarian{}.Decide(dump, model.Snapshot{}))
	assert.Equal(t, 1.0, Hodl{}.Decide(dump, model.Snapshot{Day: 1}))
	assert.Equal(t, 0.0, Hodl{}.Decide(pump, model.Snapshot{Day: 2}))

	r := Random{Rng: rand.New(rand.NewSource(1))}
	for i := 0; i < 100; i++ {
		a := r.Decide(pump, model.Snapshot{})
		assert.GreaterOrEqual(t, a, -1.0)
		assert.LessOrEqual(t, a, 1.0)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names {
		p, err := ByName(name, rand.New(rand.NewSource(1)))
		require.NoError(t, err, name)
		assert.Equal(t, name, p.Name())
	}
	p, err := ByName("", nil)
	require.NoError(t, err)
	assert.Equal(t, "follow", p.Name())

	_, err = ByName("random", nil)
	assert.Error(t, err)
	_, err = ByName("martingale", nil)
	assert.Error(t, err)
}

func TestPlay_RunsToEnd(t *testing.T) {
	for _, p := range []Policy{Follow{}, Contrarian{}, Hodl{}, Random{Rng: rand.New(rand.NewSource(5))}} {
		t.Run(p.Name(), func(t *testing.T) {
			cfg := session.DefaultConfig()
			cfg.Seed = 17
			cfg.Frames = 10
			m := session.New(cfg, catalog.Default(), zerolog.Nop())
			defer m.Close()

			summary, err := Play(context.Background(), m, p)
			require.NoError(t, err)
			assert.True(t, summary.Phase.Terminal())
			assert.NotEmpty(t, summary.Ending.Title)
			assert.Equal(t, len(summary.History), summary.Days)
		})
	}
}
