// Package session runs the day/night loop of a CoinLife game.
//
// A Machine owns one session at a time. Each day exposes an event and accepts
// an allocation; AdvanceNight consumes the allocation, animates the night on
// its own goroutine and settles the next day's price when the last frame is
// produced. Sessions end in bankruptcy or after the final day, at which point
// Ending returns the classified archetype.
package session

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"CoinLife/internal/calculator"
	"CoinLife/internal/catalog"
	"CoinLife/internal/event"
	"CoinLife/internal/fund"
	"CoinLife/internal/model"
	"CoinLife/internal/outcome"
	"CoinLife/internal/price"
	"CoinLife/internal/stats"
)

// DisplayNoise is the relative amplitude of the cosmetic jitter applied to
// the PnL shown on night ticks.
const DisplayNoise = 0.04

// Seed offsets keep the night path and display noise on their own streams so
// that changing the frame count never changes which events are drawn.
const (
	nightSeedOffset   = 1
	displaySeedOffset = 2
)

// ErrNotDay is returned by RunNight when the session is not in the day phase.
var ErrNotDay = errors.New("session is not in the day phase")

// Machine is the session state machine. All methods are safe for concurrent
// use.
type Machine struct {
	mu        sync.Mutex
	cfg       Config
	catalog   *catalog.Catalog
	executor  *fund.Executor
	observers []Observer
	log       zerolog.Logger

	// session state, replaced wholesale by Reset
	id        string
	seed      int64
	gen       *event.Generator
	nightRng  *rand.Rand
	display   *rand.Rand
	day       int
	phase     model.Phase
	portfolio *model.PortfolioState
	stats     model.SessionStats
	tracker   *stats.Tracker
	event     model.DayEvent
	alpha     float64
	history   []model.SessionRecord
	summary   *model.SessionSummary

	// in-flight nights. A night keeps its cancel func registered until its
	// goroutine exits, which may be after it has settled.
	generation uint64
	nights     uint64
	cancels    map[uint64]context.CancelFunc
	night      *price.Night
	wg         sync.WaitGroup
}

// New creates a Machine and starts its first session.
func New(cfg Config, cat *catalog.Catalog, log zerolog.Logger, observers ...Observer) *Machine {
	log = log.With().Str("component", "session").Logger()
	m := &Machine{
		cfg:       cfg.withDefaults(),
		catalog:   cat,
		executor:  fund.NewExecutor(log),
		observers: observers,
		log:       log,
		cancels:   make(map[uint64]context.CancelFunc),
	}
	m.mu.Lock()
	rec := m.initLocked()
	id := m.id
	m.mu.Unlock()

	m.notifyDayStart(id, rec)
	return m
}

// Reset aborts any in-flight night, waits for it to stop, discards its path
// and starts a fresh session.
func (m *Machine) Reset() {
	m.abortNight()

	m.mu.Lock()
	rec := m.initLocked()
	id := m.id
	m.mu.Unlock()

	m.notifyDayStart(id, rec)
}

// Close aborts any in-flight night and waits for it to stop.
func (m *Machine) Close() {
	m.abortNight()
}

func (m *Machine) abortNight() {
	m.mu.Lock()
	m.generation++
	cancels := m.cancels
	m.cancels = make(map[uint64]context.CancelFunc)
	m.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
	m.wg.Wait()

	m.mu.Lock()
	if m.night != nil {
		m.night.Discard()
		m.night = nil
	}
	m.mu.Unlock()
}

func (m *Machine) initLocked() model.SessionRecord {
	seed := m.cfg.Seed
	if seed == 0 {
		seed = newSeed()
	}
	m.id = uuid.NewString()
	m.seed = seed
	m.gen = event.NewGenerator(m.catalog, rand.New(rand.NewSource(seed)))
	m.nightRng = rand.New(rand.NewSource(seed + nightSeedOffset))
	m.display = rand.New(rand.NewSource(seed + displaySeedOffset))
	m.portfolio = model.NewPortfolio(m.cfg.InitialCash, m.cfg.InitialPrice)
	m.stats = model.NewSessionStats()
	m.tracker = stats.NewTracker(m.portfolio.Total())
	m.history = nil
	m.summary = nil
	m.alpha = 0
	m.day = 1

	m.log.Info().Str("session", m.id).Int64("seed", seed).Float64("cash", m.portfolio.Cash).
		Float64("price", m.portfolio.Price).Msg("session started")
	return m.startDayLocked()
}

func (m *Machine) startDayLocked() model.SessionRecord {
	m.event = m.gen.Draw(m.day, &m.stats)
	rec := model.SessionRecord{Day: m.day, Event: m.event, PriceBefore: m.portfolio.Price}
	m.history = append(m.history, rec)
	m.phase = model.PhaseDay
	return rec
}

// ID returns the current session's identifier.
func (m *Machine) ID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id
}

// Seed returns the seed the current session was started with.
func (m *Machine) Seed() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seed
}

// Phase returns the current phase.
func (m *Machine) Phase() model.Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase
}

// CurrentEvent returns today's event.
func (m *Machine) CurrentEvent() model.DayEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.event
}

// SubmitAllocation records the player's alpha for today. The last call before
// AdvanceNight wins. Values outside [-1, 1] are clamped; calls outside the day
// phase are ignored.
func (m *Machine) SubmitAllocation(alpha float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.phase != model.PhaseDay {
		m.log.Debug().Str("phase", string(m.phase)).Float64("alpha", alpha).Msg("allocation ignored outside day phase")
		return
	}
	m.alpha = fund.NormalizeAlpha(alpha)
}

// History returns the per-day records so far.
func (m *Machine) History() []model.SessionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.SessionRecord(nil), m.history...)
}

// Snapshot returns a read-only view of the session.
func (m *Machine) Snapshot() model.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return model.Snapshot{
		SessionID:    m.id,
		Day:          m.day,
		Days:         m.cfg.Days,
		Phase:        m.phase,
		Cash:         m.portfolio.Cash,
		Position:     m.portfolio.Position,
		Price:        m.portfolio.Price,
		Total:        m.portfolio.Total(),
		PendingAlpha: m.alpha,
		PriceHistory: append([]float64(nil), m.portfolio.PriceHistory...),
		Stats:        m.stats,
	}
}

// Ending returns the classified ending once the session is over.
func (m *Machine) Ending() (model.Ending, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.summary == nil {
		return model.Ending{}, false
	}
	return m.summary.Ending, true
}

// Summary returns the final summary once the session is over.
func (m *Machine) Summary() (model.SessionSummary, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.summary == nil {
		return model.SessionSummary{}, false
	}
	s := *m.summary
	s.History = append([]model.SessionRecord(nil), s.History...)
	return s, true
}

// nightRun carries the values fixed when a night starts.
type nightRun struct {
	id             uint64
	generation     uint64
	sessionID      string
	night          *price.Night
	display        *rand.Rand
	alpha          float64
	position       float64
	priceYesterday float64
	totalYesterday float64
}

// AdvanceNight consumes today's allocation and starts the night. The returned
// channel yields every frame in order; the last one has Final set and carries
// the settlement. The channel is closed after the last frame, or early if ctx
// is cancelled or the session is reset. Callers must drain the channel or
// cancel ctx.
//
// Cancelling ctx skips the rest of the animation but still settles the night
// at its target price. Reset discards the night without settling it.
//
// Outside the day phase the returned channel is already closed.
func (m *Machine) AdvanceNight(ctx context.Context) <-chan model.NightTick {
	ch := make(chan model.NightTick)

	m.mu.Lock()
	if m.phase != model.PhaseDay {
		m.mu.Unlock()
		close(ch)
		return ch
	}

	res := m.executor.Execute(m.portfolio, &m.stats, m.alpha, m.event)
	m.alpha = 0
	m.phase = model.PhaseNight

	night := price.NewNight(m.portfolio.Price, m.event.ChangePercent, m.cfg.Frames, m.cfg.PathBuffer, m.nightRng)
	m.night = night
	m.nights++
	run := nightRun{
		id:             m.nights,
		generation:     m.generation,
		sessionID:      m.id,
		night:          night,
		display:        m.display,
		alpha:          res.Alpha,
		position:       m.portfolio.Position,
		priceYesterday: m.portfolio.Price,
		totalYesterday: m.portfolio.Total(),
	}
	nightCtx, cancel := context.WithCancel(ctx)
	m.cancels[run.id] = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	m.log.Debug().Str("session", run.sessionID).Str("side", string(res.Side)).Float64("alpha", res.Alpha).
		Float64("target", night.Target()).Msg("night started")

	go m.runNight(nightCtx, run, ch)
	return ch
}

func (m *Machine) runNight(ctx context.Context, run nightRun, ch chan<- model.NightTick) {
	defer m.wg.Done()
	defer close(ch)
	defer m.releaseNight(run.id)

	var result *settled
	err := run.night.Run(ctx, m.cfg.FrameInterval, func(f price.Frame) {
		tick := model.NightTick{
			Step:       f.Step,
			Frames:     run.night.Frames(),
			TrendPrice: f.Trend,
			Price:      f.Price,
			Target:     run.night.Target(),
			DisplayPnL: displayPnL(run, f.Price),
			Final:      f.Final,
		}
		if f.Final {
			st, ok := m.settle(run)
			if !ok {
				return
			}
			result = &st
			s := st.Settlement
			tick.Settlement = &s
		}
		if ctx.Err() != nil && !f.Final {
			return
		}

		for _, o := range m.observers {
			o.OnTick(run.sessionID, tick)
		}
		select {
		case ch <- tick:
		case <-ctx.Done():
		}
	})

	if err != nil && result == nil {
		// Cancelled by the caller rather than by Reset: skip the animation
		// and settle at the target.
		if st, ok := m.settle(run); ok {
			result = &st
		}
	}
	// The final tick is out before the night end and the next day are
	// announced.
	if result != nil {
		m.publish(*result)
	}
}

// releaseNight drops the cancel func of night id unless Reset already took it.
func (m *Machine) releaseNight(id uint64) {
	m.mu.Lock()
	cancel, ok := m.cancels[id]
	delete(m.cancels, id)
	m.mu.Unlock()
	if ok {
		cancel()
	}
}

// displayPnL is the unrealized PnL at an intermediate price plus cosmetic
// noise. It is only used for ticks.
func displayPnL(run nightRun, instant float64) float64 {
	pnl := calculator.CalculatePnL(run.position, run.priceYesterday, instant)
	return pnl * (1 + (run.display.Float64()-0.5)*DisplayNoise)
}

// settled is a settled night and what observers still have to hear about it.
type settled struct {
	model.Settlement
	next    *model.SessionRecord
	summary *model.SessionSummary
}

// settle applies the end-of-night transition. It returns false if the night
// no longer belongs to the current session. Observers are not notified here;
// see publish.
func (m *Machine) settle(run nightRun) (settled, bool) {
	m.mu.Lock()
	if run.generation != m.generation || m.phase != model.PhaseNight {
		m.mu.Unlock()
		return settled{}, false
	}
	m.night = nil

	settledPrice := run.night.Target()
	m.portfolio.Settle(settledPrice)
	totalToday := m.portfolio.Total()
	pnl := calculator.CalculatePnL(m.portfolio.Position, run.priceYesterday, m.portfolio.Price)
	m.tracker.Settle(&m.stats, m.event, run.alpha, m.portfolio.Position, totalToday)

	st := settled{Settlement: model.Settlement{
		SessionID:      m.id,
		Day:            m.day,
		Event:          m.event,
		Alpha:          run.alpha,
		PriceBefore:    run.priceYesterday,
		PriceAfter:     m.portfolio.Price,
		TotalYesterday: run.totalYesterday,
		TotalToday:     totalToday,
		PnL:            pnl,
		PnLPercent:     calculator.CalculatePnLPercent(pnl, run.totalYesterday),
	}}

	switch {
	case totalToday <= m.cfg.BankruptThreshold:
		m.finishLocked(model.PhaseBankrupt, totalToday)
	case m.day >= m.cfg.Days:
		m.finishLocked(model.PhaseCompleted, totalToday)
	default:
		m.day++
		rec := m.startDayLocked()
		st.next = &rec
	}
	st.Phase = m.phase
	st.summary = m.summary
	m.mu.Unlock()

	m.log.Info().Str("session", st.SessionID).Int("day", st.Day).Str("event", st.Event.Type).
		Float64("price", st.PriceAfter).Float64("total", st.TotalToday).Float64("pnl_pct", st.PnLPercent).
		Str("phase", string(st.Phase)).Msg("night settled")
	return st, true
}

// publish tells observers about a settled night, then the next day or the
// end of the session.
func (m *Machine) publish(st settled) {
	for _, o := range m.observers {
		o.OnNightEnd(st.Settlement)
	}
	if st.next != nil {
		m.notifyDayStart(st.SessionID, *st.next)
	}
	if st.summary != nil {
		m.log.Info().Str("session", st.summary.SessionID).Str("ending", st.summary.Ending.Title).
			Float64("roi", st.summary.ROI).Msg("session finished")
		for _, o := range m.observers {
			o.OnSessionEnd(*st.summary)
		}
	}
}

func (m *Machine) finishLocked(phase model.Phase, total float64) {
	m.phase = phase
	history := append([]model.SessionRecord(nil), m.history...)
	in := outcome.NewInput(total, m.cfg.InitialCash, m.stats, history, phase == model.PhaseBankrupt)
	m.summary = &model.SessionSummary{
		SessionID: m.id,
		Seed:      m.seed,
		Days:      m.day,
		Phase:     phase,
		Total:     total,
		ROI:       in.ROI,
		Stats:     m.stats,
		History:   history,
		Ending:    outcome.Classify(in),
	}
}

func (m *Machine) notifyDayStart(sessionID string, rec model.SessionRecord) {
	for _, o := range m.observers {
		o.OnDayStart(sessionID, rec)
	}
}

// RunNight advances the night and blocks until it settles, discarding the
// animation frames.
func (m *Machine) RunNight(ctx context.Context) (model.Settlement, error) {
	if m.Phase() != model.PhaseDay {
		return model.Settlement{}, ErrNotDay
	}
	var settlement *model.Settlement
	for tick := range m.AdvanceNight(ctx) {
		if tick.Settlement != nil {
			settlement = tick.Settlement
		}
	}
	if settlement == nil {
		if err := ctx.Err(); err != nil {
			return model.Settlement{}, err
		}
		return model.Settlement{}, ErrNotDay
	}
	return *settlement, nil
}
