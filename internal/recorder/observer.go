package recorder

import (
	"github.com/rs/zerolog"

	"CoinLife/internal/model"
)

// Observer feeds session callbacks into a Recorder. Write failures are logged
// and never interrupt the session.
type Observer struct {
	rec Recorder
	log zerolog.Logger
}

// NewObserver wraps rec as a session observer.
func NewObserver(rec Recorder, log zerolog.Logger) *Observer {
	return &Observer{rec: rec, log: log.With().Str("component", "recorder").Logger()}
}

func (o *Observer) OnDayStart(string, model.SessionRecord) {}

func (o *Observer) OnTick(string, model.NightTick) {}

func (o *Observer) OnNightEnd(s model.Settlement) {
	if err := o.rec.RecordDay(&DayRecord{
		SessionID:     s.SessionID,
		Day:           s.Day,
		EventType:     s.Event.Type,
		Tier:          string(s.Event.Tier),
		ChangePercent: s.Event.ChangePercent,
		Alpha:         s.Alpha,
		PriceBefore:   s.PriceBefore,
		PriceAfter:    s.PriceAfter,
		TotalToday:    s.TotalToday,
		PnL:           s.PnL,
		PnLPercent:    s.PnLPercent,
		Phase:         string(s.Phase),
	}); err != nil {
		o.log.Error().Err(err).Str("session", s.SessionID).Int("day", s.Day).Msg("record day")
	}
}

func (o *Observer) OnSessionEnd(s model.SessionSummary) {
	if err := o.rec.RecordEnding(&EndingRecord{
		SessionID:        s.SessionID,
		Seed:             s.Seed,
		Days:             s.Days,
		Phase:            string(s.Phase),
		FinalTotal:       s.Total,
		ROI:              s.ROI,
		Title:            s.Ending.Title,
		Description:      s.Ending.Description,
		Trades:           s.Stats.Trades,
		AllIns:           s.Stats.AllIns,
		PanicSells:       s.Stats.PanicSells,
		LuckEvents:       s.Stats.LuckEvents,
		MaxDrawdownRatio: s.Stats.MaxDrawdownRatio,
		TimingScore:      s.Stats.TimingScore,
		AvgAbsAlpha:      s.Stats.AvgAbsAlpha,
	}); err != nil {
		o.log.Error().Err(err).Str("session", s.SessionID).Msg("record ending")
	}
}
