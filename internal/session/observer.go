package session

import "CoinLife/internal/model"

// Observer receives session lifecycle callbacks. Callbacks run synchronously
// on the goroutine that caused them and never while the session lock is
// held, so an observer may read the session it observes.
//
// A night reports every OnTick, the final one included, before OnNightEnd,
// then OnDayStart for the next day or OnSessionEnd.
//
// Night callbacks run on the night goroutine, which Reset and Close wait
// for. An observer must not call Reset or Close itself; hand the call to
// another goroutine instead.
type Observer interface {
	OnDayStart(sessionID string, rec model.SessionRecord)
	OnTick(sessionID string, tick model.NightTick)
	OnNightEnd(s model.Settlement)
	OnSessionEnd(s model.SessionSummary)
}

// Funcs adapts optional functions to an Observer. Nil fields are skipped.
type Funcs struct {
	DayStart   func(sessionID string, rec model.SessionRecord)
	Tick       func(sessionID string, tick model.NightTick)
	NightEnd   func(s model.Settlement)
	SessionEnd func(s model.SessionSummary)
}

func (f Funcs) OnDayStart(sessionID string, rec model.SessionRecord) {
	if f.DayStart != nil {
		f.DayStart(sessionID, rec)
	}
}

func (f Funcs) OnTick(sessionID string, tick model.NightTick) {
	if f.Tick != nil {
		f.Tick(sessionID, tick)
	}
}

func (f Funcs) OnNightEnd(s model.Settlement) {
	if f.NightEnd != nil {
		f.NightEnd(s)
	}
}

func (f Funcs) OnSessionEnd(s model.SessionSummary) {
	if f.SessionEnd != nil {
		f.SessionEnd(s)
	}
}
