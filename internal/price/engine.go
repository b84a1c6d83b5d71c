// Package price simulates the overnight price path.
//
// A night converges linearly from the settled price toward a target implied
// by the day's event, with a cyclical wave and random jitter layered on top
// for animation. The jitter is cosmetic: the price settled at the end of the
// night is always the target.
package price

import (
	"context"
	"math"
	"math/rand"
	"time"

	"CoinLife/internal/model"
)

// Defaults for a night.
const (
	DefaultFrames     = 180
	DefaultBufferSize = 120

	MinVolatility   = 0.02
	VolatilityScale = 0.3
	WaveAmplitude   = 0.5
	WaveFrequency   = 0.1
)

// TargetPrice returns the price an event implies for the next day.
func TargetPrice(price, changePercent float64) float64 {
	return math.Max(model.MinPrice, price*(1+changePercent/100))
}

// Volatility returns the noise amplitude of a night for an event's change.
func Volatility(changePercent float64) float64 {
	return math.Max(MinVolatility, math.Abs(changePercent)/100*VolatilityScale)
}

// Frame is one step of a night.
type Frame struct {
	Step  int
	Trend float64
	Wave  float64
	Price float64
	Final bool
}

// Night is one overnight simulation. It is not safe for concurrent use.
type Night struct {
	start      float64
	target     float64
	volatility float64
	frames     int
	step       int
	rng        *rand.Rand
	path       *Path
}

// NewNight prepares a night starting from price. frames and bufferSize fall
// back to their defaults when not positive.
func NewNight(price, changePercent float64, frames, bufferSize int, rng *rand.Rand) *Night {
	if frames <= 0 {
		frames = DefaultFrames
	}
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	price = math.Max(model.MinPrice, price)
	return &Night{
		start:      price,
		target:     TargetPrice(price, changePercent),
		volatility: Volatility(changePercent),
		frames:     frames,
		rng:        rng,
		path:       NewPath(bufferSize),
	}
}

// Start returns the price the night started from.
func (n *Night) Start() float64 { return n.start }

// Target returns the canonical price the night settles at.
func (n *Night) Target() float64 { return n.target }

// Frames returns the number of steps in the night.
func (n *Night) Frames() int { return n.frames }

// Done reports whether every step has been taken.
func (n *Night) Done() bool { return n.step >= n.frames }

// Path returns the buffered instantaneous prices, oldest first.
func (n *Night) Path() []float64 { return n.path.Values() }

// Step advances the night by one frame. It returns false once the night is
// over.
func (n *Night) Step() (Frame, bool) {
	if n.Done() {
		return Frame{}, false
	}
	n.step++
	t := float64(n.step)

	trend := n.start + (n.target-n.start)*(t/float64(n.frames))
	wave := WaveAmplitude*math.Sin(t*WaveFrequency)*n.volatility + (n.rng.Float64()-0.5)*n.volatility
	instant := math.Max(model.MinPrice, trend*(1+wave))
	n.path.Push(instant)

	return Frame{
		Step:  n.step,
		Trend: trend,
		Wave:  wave,
		Price: instant,
		Final: n.step == n.frames,
	}, true
}

// Run steps the night to completion, calling fn for every frame in order.
// A positive interval paces frames on a ticker. Run returns ctx.Err() if the
// context is cancelled before the last frame.
func (n *Night) Run(ctx context.Context, interval time.Duration, fn func(Frame)) error {
	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for !n.Done() {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		f, _ := n.Step()
		fn(f)
	}
	return nil
}

// Discard drops the buffered path.
func (n *Night) Discard() {
	n.path.Reset()
}
