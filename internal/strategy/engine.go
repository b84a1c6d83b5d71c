package strategy

import (
	"fmt"
	"math/rand"
	"strings"

	"CoinLife/internal/model"
)

// Policy decides the day's allocation for an autoplay session.
type Policy interface {
	Name() string
	Decide(evt model.DayEvent, snap model.Snapshot) float64
}

// AllocationTier maps an expected change to an allocation.
type AllocationTier struct {
	Label string
	Alpha float64
}

// Tiers defines the allocation ladder used by Follow, highest first.
var Tiers = []struct {
	MinChange float64
	Tier      AllocationTier
}{
	{20, AllocationTier{Label: "all in", Alpha: 1.0}},
	{10, AllocationTier{Label: "heavy buy", Alpha: 0.6}},
	{3, AllocationTier{Label: "light buy", Alpha: 0.3}},
	{-3, AllocationTier{Label: "hold", Alpha: 0}},
	{-10, AllocationTier{Label: "trim", Alpha: -0.5}},
}

// DefaultTier is used when the expected change is below every tier.
var DefaultTier = AllocationTier{Label: "exit", Alpha: -1.0}

// mapTier maps an expected change to an AllocationTier.
func mapTier(expected float64) AllocationTier {
	for _, t := range Tiers {
		if expected >= t.MinChange {
			return t.Tier
		}
	}
	return DefaultTier
}

// ExpectedChange is what a player can infer from an event: the midpoint of
// its range. The sampled change stays hidden until the night settles.
func ExpectedChange(evt model.DayEvent) float64 {
	return (evt.ChangeMin + evt.ChangeMax) / 2
}

// Evaluate returns the tier Follow would pick for evt.
func Evaluate(evt model.DayEvent) AllocationTier {
	return mapTier(ExpectedChange(evt))
}

// Follow trades with the news.
type Follow struct{}

func (Follow) Name() string { return "follow" }

func (Follow) Decide(evt model.DayEvent, _ model.Snapshot) float64 {
	return Evaluate(evt).Alpha
}

// Contrarian trades against the news.
type Contrarian struct{}

func (Contrarian) Name() string { return "contrarian" }

func (Contrarian) Decide(evt model.DayEvent, _ model.Snapshot) float64 {
	return -Evaluate(evt).Alpha
}

// Hodl goes all in on the first day and never trades again.
type Hodl struct{}

func (Hodl) Name() string { return "hodl" }

func (Hodl) Decide(_ model.DayEvent, snap model.Snapshot) float64 {
	if snap.Day == 1 {
		return 1
	}
	return 0
}

// Random picks a uniform alpha in [-1, 1].
type Random struct {
	Rng *rand.Rand
}

func (Random) Name() string { return "random" }

func (r Random) Decide(model.DayEvent, model.Snapshot) float64 {
	return r.Rng.Float64()*2 - 1
}

// Names lists the policies ByName accepts.
var Names = []string{"follow", "contrarian", "hodl", "random"}

// Known reports whether ByName accepts name.
func Known(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return name == ""
}

// ByName resolves a policy from its configured name.
func ByName(name string, rng *rand.Rand) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "follow", "":
		return Follow{}, nil
	case "contrarian":
		return Contrarian{}, nil
	case "hodl":
		return Hodl{}, nil
	case "random":
		if rng == nil {
			return nil, fmt.Errorf("policy random needs a random source")
		}
		return Random{Rng: rng}, nil
	}
	return nil, fmt.Errorf("unknown policy %q (want one of %s)", name, strings.Join(Names, ", "))
}
