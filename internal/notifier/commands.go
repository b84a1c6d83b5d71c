package notifier

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"CoinLife/internal/model"
	"CoinLife/internal/report"
)

// Runner plays one autoplay session on demand.
type Runner interface {
	RunNow() (model.SessionSummary, error)
	Runs() int
}

// EndingCounter reports how often each ending title has been reached.
type EndingCounter interface {
	EndingCounts() (map[string]int, error)
}

const helpText = `/play - play one autoplay session now
/runs - sessions played since start
/endings - ending leaderboard
/help - this message`

// Commands answers bot commands. Endings may be nil when no database is
// configured.
type Commands struct {
	Runner  Runner
	Endings EndingCounter
}

// Handle implements CommandHandler.
func (c *Commands) Handle(_ context.Context, command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}
	// "/play@SomeBot" arrives in group chats.
	name, _, _ := strings.Cut(fields[0], "@")
	switch name {
	case "/start", "/help":
		return helpText
	case "/play":
		summary, err := c.Runner.RunNow()
		if err != nil {
			return fmt.Sprintf("play failed: %v", err)
		}
		return report.FormatEnding(summary)
	case "/runs":
		return fmt.Sprintf("%d sessions played", c.Runner.Runs())
	case "/endings":
		return c.endings()
	default:
		return "unknown command, try /help"
	}
}

func (c *Commands) endings() string {
	if c.Endings == nil {
		return "no database configured"
	}
	counts, err := c.Endings.EndingCounts()
	if err != nil {
		return fmt.Sprintf("load endings: %v", err)
	}
	if len(counts) == 0 {
		return "no sessions recorded yet"
	}

	titles := make([]string, 0, len(counts))
	for title := range counts {
		titles = append(titles, title)
	}
	sort.Slice(titles, func(i, j int) bool {
		if counts[titles[i]] != counts[titles[j]] {
			return counts[titles[i]] > counts[titles[j]]
		}
		return titles[i] < titles[j]
	})

	var b strings.Builder
	for _, title := range titles {
		b.WriteString(fmt.Sprintf("%4d  %s\n", counts[title], title))
	}
	return b.String()
}
