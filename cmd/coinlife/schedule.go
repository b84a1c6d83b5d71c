package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"CoinLife/internal/notifier"
	"CoinLife/internal/scheduler"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run autoplay sessions on the configured cron schedule until interrupted",
	Args:  cobra.NoArgs,
	RunE:  runSchedule,
}

func runSchedule(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessionCfg := a.cfg.SessionConfig()
	sessionCfg.FrameInterval = 0

	sched := scheduler.NewScheduler(ctx, sessionCfg, a.catalog, a.cfg.Autoplay.Policy, a.log, a.observers()...)
	if err := sched.Register(a.cfg.Autoplay.Cron); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		a.log.Info().Msg("RUN_ON_START enabled, playing one session now")
		go func() {
			if _, err := sched.RunNow(); err != nil {
				a.log.Error().Err(err).Msg("run on start")
			}
		}()
	}

	// Start Telegram polling
	if a.telegram != nil {
		cmds := &notifier.Commands{Runner: sched, Endings: a.endingCounter()}
		go a.telegram.StartPolling(ctx, cmds.Handle)
		a.log.Info().Msg("telegram polling started")
	}

	a.log.Info().Msg("CoinLife scheduler is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	a.log.Info().Msg("shutdown signal received, stopping...")
	cancel()
	return nil
}
