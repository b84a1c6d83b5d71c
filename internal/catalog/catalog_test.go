package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CoinLife/internal/model"
)

func TestDefault_CoversSevenDays(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, c.Days())
	for day := 1; day <= 7; day++ {
		pool, ok := c.Pool(day)
		require.True(t, ok, "day %d", day)
		assert.NotEmpty(t, pool)
	}
	_, ok := c.Pool(8)
	assert.False(t, ok)
}

func TestPool_NilAndEmpty(t *testing.T) {
	var c *Catalog
	_, ok := c.Pool(1)
	assert.False(t, ok)

	c = New(map[int][]model.EventSpec{1: {}})
	_, ok = c.Pool(1)
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	data := []byte(`
days:
  1:
    - type: bullish_test
      text: up only
      min: 5
      max: 10
      tier: S+
  2:
    - type: bearish_test
      text: down only
      min: -10
      max: -5
      tier: C
`)
	c, err := Parse(data)
	require.NoError(t, err)
	pool, ok := c.Pool(1)
	require.True(t, ok)
	assert.Equal(t, "bullish_test", pool[0].Type)
	assert.Equal(t, model.TierSPlus, pool[0].Tier)
	assert.Equal(t, 10.0, pool[0].ChangeMax)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", "days: {}"},
		{"bad yaml", "days: ["},
		{"bad tier", "days:\n  1:\n    - {type: x, min: 1, max: 2, tier: Z}"},
		{"inverted range", "days:\n  1:\n    - {type: x, min: 5, max: 2, tier: C}"},
		{"missing type", "days:\n  1:\n    - {min: 1, max: 2, tier: C}"},
		{"total loss", "days:\n  1:\n    - {type: x, min: -100, max: 2, tier: C}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Len(t, c.Days(), 7)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("days:\n  3:\n    - {type: bearish_x, min: -9, max: -1, tier: B}\n"), 0644))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, c.Days())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
