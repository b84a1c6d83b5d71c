package model

import "strings"

// Tier is the rarity label attached to a market event. Flavor only.
type Tier string

const (
	TierC     Tier = "C"
	TierB     Tier = "B"
	TierA     Tier = "A"
	TierS     Tier = "S"
	TierSPlus Tier = "S+"
)

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierC, TierB, TierA, TierS, TierSPlus:
		return true
	}
	return false
}

// Category is derived from the event type name.
type Category string

const (
	CategoryBullish   Category = "bullish"
	CategoryBearish   Category = "bearish"
	CategoryBlackSwan Category = "blackSwan"
	CategoryNeutral   Category = "neutral"
)

// EventSpec is a catalog entry: an event that may be drawn on a given day.
type EventSpec struct {
	Type      string  `yaml:"type"`
	Text      string  `yaml:"text"`
	ChangeMin float64 `yaml:"min"`
	ChangeMax float64 `yaml:"max"`
	Tier      Tier    `yaml:"tier"`
}

// DayEvent is the event drawn for one day. ChangePercent is sampled once
// from [ChangeMin, ChangeMax] at draw time.
type DayEvent struct {
	Type          string
	Text          string
	ChangeMin     float64
	ChangeMax     float64
	Tier          Tier
	ChangePercent float64
}

// Category classifies the event by substring match on its type name.
// blackSwan is checked first so a name like "blackSwan_bearish_run" is not
// counted as a plain bearish event.
func (e DayEvent) Category() Category {
	switch {
	case strings.Contains(e.Type, string(CategoryBlackSwan)):
		return CategoryBlackSwan
	case strings.Contains(e.Type, string(CategoryBullish)):
		return CategoryBullish
	case strings.Contains(e.Type, string(CategoryBearish)):
		return CategoryBearish
	default:
		return CategoryNeutral
	}
}

// IsBullish reports whether the event type is a bullish one.
func (e DayEvent) IsBullish() bool { return e.Category() == CategoryBullish }

// Polarity returns +1 for events the player should buy into, -1 for events
// they should sell into and 0 for neutral ones. Black swans follow the sign
// of their sampled change.
func (e DayEvent) Polarity() int {
	switch e.Category() {
	case CategoryBullish:
		return 1
	case CategoryBearish:
		return -1
	case CategoryBlackSwan:
		switch {
		case e.ChangePercent > 0:
			return 1
		case e.ChangePercent < 0:
			return -1
		}
	}
	return 0
}
