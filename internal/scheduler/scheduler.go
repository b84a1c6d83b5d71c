package scheduler

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"CoinLife/internal/catalog"
	"CoinLife/internal/model"
	"CoinLife/internal/report"
	"CoinLife/internal/session"
	"CoinLife/internal/strategy"
)

// Scheduler runs autoplay sessions on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Session   session.Config
	Catalog   *catalog.Catalog
	Policy    string
	Observers []session.Observer
	Ctx       context.Context
	// OnFinish, if set, receives every finished summary.
	OnFinish func(model.SessionSummary)

	log  zerolog.Logger
	mu   sync.Mutex
	runs int
}

// NewScheduler creates a new Scheduler. Sessions use cfg with a fresh seed
// per run unless cfg.Seed is set.
func NewScheduler(ctx context.Context, cfg session.Config, cat *catalog.Catalog, policy string, log zerolog.Logger, observers ...session.Observer) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Session:   cfg,
		Catalog:   cat,
		Policy:    policy,
		Observers: observers,
		Ctx:       ctx,
		log:       log.With().Str("component", "scheduler").Logger(),
	}
}

// Register adds the autoplay task under spec (six fields, seconds first).
func (s *Scheduler) Register(spec string) error {
	if _, err := strategy.ByName(s.Policy, rand.New(rand.NewSource(1))); err != nil {
		return fmt.Errorf("register autoplay task: %w", err)
	}
	if _, err := s.Cron.AddFunc(spec, s.autoplayTask); err != nil {
		return fmt.Errorf("register autoplay task: %w", err)
	}
	s.log.Info().Str("cron", spec).Str("policy", s.Policy).Msg("autoplay task registered")
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running session to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.log.Info().Msg("scheduler stopped")
}

// Runs returns how many sessions have finished.
func (s *Scheduler) Runs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs
}

// RunNow plays one autoplay session immediately.
func (s *Scheduler) RunNow() (model.SessionSummary, error) {
	m := session.New(s.Session, s.Catalog, s.log, s.Observers...)
	defer m.Close()

	policy, err := strategy.ByName(s.Policy, rand.New(rand.NewSource(m.Seed())))
	if err != nil {
		return model.SessionSummary{}, err
	}

	summary, err := strategy.Play(s.Ctx, m, policy)
	if err != nil {
		return model.SessionSummary{}, fmt.Errorf("play session %s: %w", m.ID(), err)
	}

	s.mu.Lock()
	s.runs++
	s.mu.Unlock()
	if s.OnFinish != nil {
		s.OnFinish(summary)
	}
	return summary, nil
}

// RunBatch plays n sessions with at most parallel running at once and
// returns their summaries in start order. The first failure stops sessions
// that have not started yet.
func (s *Scheduler) RunBatch(n, parallel int) ([]model.SessionSummary, error) {
	if parallel < 1 {
		parallel = 1
	}
	summaries := make([]model.SessionSummary, n)

	g, gctx := errgroup.WithContext(s.Ctx)
	g.SetLimit(parallel)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			summary, err := s.RunNow()
			if err != nil {
				return err
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (s *Scheduler) autoplayTask() {
	s.log.Info().Str("policy", s.Policy).Msg("running autoplay session")
	summary, err := s.RunNow()
	if err != nil {
		s.log.Error().Err(err).Msg("autoplay session failed")
		return
	}
	s.log.Info().Str("session", summary.SessionID).Str("ending", summary.Ending.Title).
		Float64("roi", summary.ROI).Int("days", summary.Days).Msg("autoplay session finished")
	s.log.Debug().Msg(report.FormatEnding(summary))
}
