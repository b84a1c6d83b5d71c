package catalog

import (
	"fmt"
	"sort"

	"CoinLife/internal/model"
)

// Catalog holds the day-indexed event pools.
type Catalog struct {
	pools map[int][]model.EventSpec
}

// New builds a catalog from day-indexed pools. Pools are copied.
func New(pools map[int][]model.EventSpec) *Catalog {
	c := &Catalog{pools: make(map[int][]model.EventSpec, len(pools))}
	for day, pool := range pools {
		c.pools[day] = append([]model.EventSpec(nil), pool...)
	}
	return c
}

// Pool returns the events available on day. The second result is false when
// the day has no pool or an empty one.
func (c *Catalog) Pool(day int) ([]model.EventSpec, bool) {
	if c == nil {
		return nil, false
	}
	pool, ok := c.pools[day]
	if !ok || len(pool) == 0 {
		return nil, false
	}
	return pool, true
}

// Days returns the days that have a pool, in ascending order.
func (c *Catalog) Days() []int {
	days := make([]int, 0, len(c.pools))
	for d := range c.pools {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// Validate checks every entry for a type, a valid tier and an ordered range.
func (c *Catalog) Validate() error {
	for _, day := range c.Days() {
		if day < 1 {
			return fmt.Errorf("day %d: days start at 1", day)
		}
		for i, e := range c.pools[day] {
			if e.Type == "" {
				return fmt.Errorf("day %d event %d: type is required", day, i)
			}
			if !e.Tier.Valid() {
				return fmt.Errorf("day %d event %q: unknown tier %q", day, e.Type, e.Tier)
			}
			if e.ChangeMin > e.ChangeMax {
				return fmt.Errorf("day %d event %q: min %.1f > max %.1f", day, e.Type, e.ChangeMin, e.ChangeMax)
			}
			if e.ChangeMin <= -100 {
				return fmt.Errorf("day %d event %q: min must be above -100", day, e.Type)
			}
		}
	}
	return nil
}

// NeutralEvent is substituted when a day has no pool.
var NeutralEvent = model.EventSpec{
	Type:      "neutral_sideways",
	Text:      "Nothing happens. The chart drifts sideways.",
	ChangeMin: -2,
	ChangeMax: 2,
	Tier:      model.TierC,
}
