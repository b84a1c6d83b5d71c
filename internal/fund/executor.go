package fund

import (
	"math"

	"github.com/rs/zerolog"

	"CoinLife/internal/model"
)

// Thresholds applied when counting trade statistics.
const (
	ChangeThreshold = 0.1
	AllInThreshold  = 0.9
	PanicThreshold  = 0.9

	TimingReward  = 10.0
	TimingPenalty = 15.0
)

// Side is the direction of an executed trade.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
	SideHold Side = "HOLD"
)

// TradeResult describes what Execute did.
type TradeResult struct {
	Requested     float64 // alpha as submitted
	Alpha         float64 // alpha actually applied
	Side          Side
	Amount        float64 // cash spent on a buy, units sold on a sell
	CashDelta     float64
	PositionDelta float64
	Contrary      bool
}

// Executor converts an allocation signal into buy/sell quantities.
type Executor struct {
	log zerolog.Logger
}

// NewExecutor creates an Executor.
func NewExecutor(log zerolog.Logger) *Executor {
	return &Executor{log: log.With().Str("component", "fund").Logger()}
}

// NormalizeAlpha clamps alpha to [-1, 1] and maps NaN to 0.
func NormalizeAlpha(alpha float64) float64 {
	switch {
	case math.IsNaN(alpha):
		return 0
	case alpha > 1:
		return 1
	case alpha < -1:
		return -1
	}
	return alpha
}

// Execute applies alpha to the portfolio at its current price and updates
// the trade statistics. A positive alpha deploys that fraction of cash, a
// negative one liquidates that fraction of the position. Buying without cash
// or selling without a position is a no-op.
func (e *Executor) Execute(state *model.PortfolioState, stats *model.SessionStats, alpha float64, evt model.DayEvent) TradeResult {
	res := TradeResult{Requested: alpha, Side: SideHold}

	alpha = NormalizeAlpha(alpha)
	if alpha != res.Requested {
		e.log.Debug().Float64("requested", res.Requested).Float64("applied", alpha).Msg("allocation clamped")
	}
	if (alpha > 0 && state.Cash <= 0) || (alpha < 0 && state.Position <= 0) {
		e.log.Debug().Float64("alpha", alpha).Float64("cash", state.Cash).Float64("position", state.Position).
			Msg("allocation has nothing to trade, treating as hold")
		alpha = 0
	}
	res.Alpha = alpha

	cashBefore, posBefore := state.Cash, state.Position
	var sellRatio float64

	switch {
	case alpha > 0:
		tradeAmount := state.Cash * alpha
		state.Cash -= tradeAmount
		state.Position += tradeAmount / state.Price
		res.Side = SideBuy
		res.Amount = tradeAmount
	case alpha < 0:
		sellRatio = -alpha
		sellAmount := state.Position * sellRatio
		state.Position -= sellAmount
		state.Cash += sellAmount * state.Price
		res.Side = SideSell
		res.Amount = sellAmount
	}
	state.Clamp()

	res.CashDelta = state.Cash - cashBefore
	res.PositionDelta = state.Position - posBefore

	if stats == nil || alpha == 0 {
		return res
	}

	stats.Trades++
	if math.Abs(alpha) > ChangeThreshold {
		stats.ChangeCount++
	}
	if alpha > AllInThreshold {
		stats.AllIns++
	}
	if sellRatio > PanicThreshold {
		stats.PanicSells++
	}

	direction := 1
	if alpha < 0 {
		direction = -1
	}
	switch polarity := evt.Polarity(); {
	case polarity == 0:
	case direction == polarity:
		stats.AdjustTiming(TimingReward)
	default:
		stats.ContraryActions++
		stats.AdjustTiming(-TimingPenalty)
		res.Contrary = true
	}

	return res
}
