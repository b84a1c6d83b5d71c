package model

// Phase is the session state machine's current state.
type Phase string

const (
	PhaseDay       Phase = "day"
	PhaseNight     Phase = "night"
	PhaseBankrupt  Phase = "bankrupt"
	PhaseCompleted Phase = "completed"
)

// Terminal reports whether no further days will be played.
func (p Phase) Terminal() bool {
	return p == PhaseBankrupt || p == PhaseCompleted
}

// SessionRecord is appended once per day when its event is drawn.
type SessionRecord struct {
	Day         int
	Event       DayEvent
	PriceBefore float64
}

// Snapshot is a read-only view of a session for HUD rendering.
type Snapshot struct {
	SessionID    string
	Day          int
	Days         int
	Phase        Phase
	Cash         float64
	Position     float64
	Price        float64
	Total        float64
	PendingAlpha float64
	PriceHistory []float64
	Stats        SessionStats
}

// NightTick is one animation frame of the overnight price path. The last
// tick of a night has Final set and carries the settlement.
type NightTick struct {
	Step       int
	Frames     int
	TrendPrice float64
	Price      float64
	Target     float64
	// DisplayPnL is the unrealized PnL at Price with extra cosmetic noise.
	// It never feeds settlement.
	DisplayPnL float64
	Final      bool
	Settlement *Settlement
}

// Progress returns the fraction of the night elapsed in [0, 1].
func (t NightTick) Progress() float64 {
	if t.Frames <= 0 {
		return 1
	}
	return float64(t.Step) / float64(t.Frames)
}

// Settlement is the end-of-night result.
type Settlement struct {
	SessionID      string
	Day            int
	Event          DayEvent
	Alpha          float64
	PriceBefore    float64
	PriceAfter     float64
	TotalYesterday float64
	TotalToday     float64
	PnL            float64
	PnLPercent     float64
	Phase          Phase
}

// Ending is the classifier's verdict.
type Ending struct {
	Title       string
	Description string
}

// SessionSummary is emitted once when a session reaches a terminal phase.
type SessionSummary struct {
	SessionID string
	Seed      int64
	Days      int
	Phase     Phase
	Total     float64
	ROI       float64
	Stats     SessionStats
	History   []SessionRecord
	Ending    Ending
}
