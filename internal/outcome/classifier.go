// Package outcome maps a finished session to its ending archetype.
package outcome

import (
	"CoinLife/internal/calculator"
	"CoinLife/internal/model"
)

// BankruptThreshold is the total at or below which a session is ruined.
const BankruptThreshold = 10.0

// Input is everything the classifier looks at.
type Input struct {
	Total    float64
	ROI      float64
	Stats    model.SessionStats
	History  []model.SessionRecord
	Bankrupt bool
}

// NewInput builds an Input, deriving ROI from total and initial capital.
func NewInput(total, initial float64, stats model.SessionStats, history []model.SessionRecord, bankrupt bool) Input {
	return Input{
		Total:    total,
		ROI:      calculator.CalculateROI(total, initial),
		Stats:    stats,
		History:  history,
		Bankrupt: bankrupt,
	}
}

// LastRecord returns the final day's record, the one that ended the session.
func (in Input) LastRecord() (model.SessionRecord, bool) {
	if len(in.History) == 0 {
		return model.SessionRecord{}, false
	}
	return in.History[len(in.History)-1], true
}

// Rule is a single (predicate, ending) pair within a tier.
type Rule struct {
	Name   string
	Match  func(Input) bool
	Ending model.Ending
}

// Tier groups rules under a tier predicate. Rules are tried in order and the
// first match wins; Default applies when none match.
type Tier struct {
	Name    string
	Match   func(Input) bool
	Rules   []Rule
	Default model.Ending
}

// Resolve returns the ending for in within this tier and the name of the
// rule that produced it ("" for the tier default).
func (t Tier) Resolve(in Input) (model.Ending, string) {
	for _, r := range t.Rules {
		if r.Match(in) {
			return r.Ending, r.Name
		}
	}
	return t.Default, ""
}

// Verdict is a classification with the tier and rule that produced it.
type Verdict struct {
	Tier   string
	Rule   string
	Ending model.Ending
}

// Classify returns the ending for a finished session. It is a pure function
// of its input.
func Classify(in Input) model.Ending {
	return Explain(in).Ending
}

// Explain classifies in and reports which tier and rule matched.
func Explain(in Input) Verdict {
	for _, t := range Tiers {
		if t.Match(in) {
			ending, rule := t.Resolve(in)
			return Verdict{Tier: t.Name, Rule: rule, Ending: ending}
		}
	}
	return Verdict{Tier: "fallback", Ending: Fallback}
}

// roiAbove returns a tier predicate for ROI strictly above min.
func roiAbove(min float64) func(Input) bool {
	return func(in Input) bool { return in.ROI > min }
}

func always(Input) bool { return true }
