package strategy

import (
	"context"
	"fmt"

	"CoinLife/internal/model"
	"CoinLife/internal/session"
)

// Play runs the machine's current session to its end, letting p decide every
// day's allocation.
func Play(ctx context.Context, m *session.Machine, p Policy) (model.SessionSummary, error) {
	for m.Phase() == model.PhaseDay {
		alpha := p.Decide(m.CurrentEvent(), m.Snapshot())
		m.SubmitAllocation(alpha)
		if _, err := m.RunNight(ctx); err != nil {
			return model.SessionSummary{}, fmt.Errorf("run night: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return model.SessionSummary{}, err
		}
	}
	summary, ok := m.Summary()
	if !ok {
		return model.SessionSummary{}, fmt.Errorf("session %s ended without a summary", m.ID())
	}
	return summary, nil
}
