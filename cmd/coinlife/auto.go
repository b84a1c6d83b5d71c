package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"CoinLife/internal/report"
	"CoinLife/internal/scheduler"
)

var (
	autoPolicy string
	autoCount  int
	autoSeed   int64
	autoJobs   int
)

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Play sessions with a bot policy and print their endings",
	Args:  cobra.NoArgs,
	RunE:  runAuto,
}

func init() {
	autoCmd.Flags().StringVar(&autoPolicy, "policy", "", "bot policy: follow, contrarian, hodl, random (default from config)")
	autoCmd.Flags().IntVar(&autoCount, "count", 1, "number of sessions to play")
	autoCmd.Flags().IntVar(&autoJobs, "parallel", 4, "sessions played concurrently")
	autoCmd.Flags().Int64Var(&autoSeed, "seed", 0, "session seed (0 = random)")
}

func runAuto(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	policy := a.cfg.Autoplay.Policy
	if autoPolicy != "" {
		policy = autoPolicy
	}
	sessionCfg := a.cfg.SessionConfig()
	sessionCfg.FrameInterval = 0
	if cmd.Flags().Changed("seed") {
		sessionCfg.Seed = autoSeed
	}

	s := scheduler.NewScheduler(ctx, sessionCfg, a.catalog, policy, a.log, a.observers()...)
	summaries, err := s.RunBatch(autoCount, autoJobs)
	if err != nil {
		return err
	}
	if len(summaries) == 1 {
		fmt.Fprintln(cmd.OutOrStdout(), report.FormatEnding(summaries[0]))
		return nil
	}

	titles := make(map[string]int)
	for _, summary := range summaries {
		titles[summary.Ending.Title]++
	}
	for title, n := range titles {
		fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s\n", n, title)
	}
	return nil
}
