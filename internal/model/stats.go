package model

// Timing score bounds and starting value.
const (
	TimingScoreMin     = 0.0
	TimingScoreMax     = 100.0
	TimingScoreInitial = 50.0
)

// SessionStats are the cumulative counters used by the outcome classifier.
type SessionStats struct {
	Trades           int     `json:"trades"`
	AllIns           int     `json:"all_ins"`
	PanicSells       int     `json:"panic_sells"`
	BullishEvents    int     `json:"bullish_events"`
	BearishEvents    int     `json:"bearish_events"`
	BlackSwanEvents  int     `json:"black_swan_events"`
	ContraryActions  int     `json:"contrary_actions"`
	LuckEvents       int     `json:"luck_events"`
	ChangeCount      int     `json:"change_count"`
	MaxDrawdownRatio float64 `json:"max_drawdown_ratio"`
	TimingScore      float64 `json:"timing_score"`
	AvgAbsAlpha      float64 `json:"avg_abs_alpha"`
}

// NewSessionStats returns stats with the timing score at its neutral start.
func NewSessionStats() SessionStats {
	return SessionStats{TimingScore: TimingScoreInitial}
}

// AdjustTiming moves the timing score by delta, clamped to its bounds.
func (s *SessionStats) AdjustTiming(delta float64) {
	s.TimingScore += delta
	if s.TimingScore < TimingScoreMin {
		s.TimingScore = TimingScoreMin
	}
	if s.TimingScore > TimingScoreMax {
		s.TimingScore = TimingScoreMax
	}
}
