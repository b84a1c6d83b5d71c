package recorder

// DayRecord holds one settled night.
type DayRecord struct {
	SessionID     string
	Day           int
	EventType     string
	Tier          string
	ChangePercent float64
	Alpha         float64
	PriceBefore   float64
	PriceAfter    float64
	TotalToday    float64
	PnL           float64
	PnLPercent    float64
	Phase         string
}

// EndingRecord holds a finished session.
type EndingRecord struct {
	SessionID        string
	Seed             int64
	Days             int
	Phase            string // "bankrupt" or "completed"
	FinalTotal       float64
	ROI              float64
	Title            string
	Description      string
	Trades           int
	AllIns           int
	PanicSells       int
	LuckEvents       int
	MaxDrawdownRatio float64
	TimingScore      float64
	AvgAbsAlpha      float64
}

// Recorder persists finished days and sessions for later analysis. It is an
// append-only log; sessions never read it back.
type Recorder interface {
	RecordDay(rec *DayRecord) error
	RecordEnding(rec *EndingRecord) error
	Close() error
}
