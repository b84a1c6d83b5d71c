// Package event draws the market event for each day of a session.
package event

import (
	"math/rand"

	"CoinLife/internal/catalog"
	"CoinLife/internal/model"
)

// Generator draws day events from a catalog using an injected random source.
//
// # Determinism
//
// Given the same catalog and a source seeded with the same value, the
// sequence of events returned by Draw is identical.
type Generator struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
}

// NewGenerator creates a Generator. A nil catalog yields neutral events only.
func NewGenerator(c *catalog.Catalog, rng *rand.Rand) *Generator {
	return &Generator{catalog: c, rng: rng}
}

// Draw returns the event for day and counts its category in stats.
// Days without a pool get the neutral event.
func (g *Generator) Draw(day int, stats *model.SessionStats) model.DayEvent {
	spec := catalog.NeutralEvent
	if pool, ok := g.catalog.Pool(day); ok {
		spec = pool[g.rng.Intn(len(pool))]
	}

	evt := model.DayEvent{
		Type:          spec.Type,
		Text:          spec.Text,
		ChangeMin:     spec.ChangeMin,
		ChangeMax:     spec.ChangeMax,
		Tier:          spec.Tier,
		ChangePercent: spec.ChangeMin + g.rng.Float64()*(spec.ChangeMax-spec.ChangeMin),
	}

	if stats != nil {
		switch evt.Category() {
		case model.CategoryBullish:
			stats.BullishEvents++
		case model.CategoryBearish:
			stats.BearishEvents++
		case model.CategoryBlackSwan:
			stats.BlackSwanEvents++
		}
	}
	return evt
}
