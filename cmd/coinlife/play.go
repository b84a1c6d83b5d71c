package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"CoinLife/internal/model"
	"CoinLife/internal/report"
	"CoinLife/internal/session"
)

var playEvery int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session interactively, entering an allocation in [-1, 1] each day",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&playEvery, "tick-every", 30, "print every Nth night frame (0 disables)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	m := session.New(a.cfg.SessionConfig(), a.catalog, a.log, a.observers()...)
	defer m.Close()

	in := bufio.NewScanner(cmd.InOrStdin())
	for m.Phase() == model.PhaseDay {
		fmt.Fprintln(out, report.FormatDayBrief(m.Snapshot(), m.CurrentEvent()))

		alpha, err := promptAlpha(in, out)
		if err != nil {
			return err
		}
		m.SubmitAllocation(alpha)

		var settlement *model.Settlement
		for tick := range m.AdvanceNight(ctx) {
			if playEvery > 0 && tick.Step%playEvery == 0 {
				fmt.Fprintln(out, report.FormatTick(tick))
			}
			if tick.Settlement != nil {
				settlement = tick.Settlement
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if settlement != nil {
			fmt.Fprintln(out, report.FormatSettlement(*settlement))
		}
	}

	summary, ok := m.Summary()
	if !ok {
		return fmt.Errorf("session ended without a summary")
	}
	fmt.Fprintln(out, report.FormatEnding(summary))
	return nil
}

// promptAlpha reads one allocation. Blank input holds; unparsable input asks
// again.
func promptAlpha(in *bufio.Scanner, out io.Writer) (float64, error) {
	for {
		fmt.Fprint(out, "allocation [-1..1] (blank = hold): ")
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return 0, fmt.Errorf("read allocation: %w", err)
			}
			return 0, io.EOF
		}
		text := strings.TrimSpace(in.Text())
		if text == "" {
			return 0, nil
		}
		alpha, err := strconv.ParseFloat(text, 64)
		if err != nil {
			fmt.Fprintf(out, "not a number: %q\n", text)
			continue
		}
		return alpha, nil
	}
}
