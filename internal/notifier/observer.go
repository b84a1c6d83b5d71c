// Package notifier pushes session results to a chat and serves bot commands.
package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"CoinLife/internal/model"
	"CoinLife/internal/report"
)

const (
	queueSize  = 32
	maxRetries = 3
)

// Observer forwards settlements and endings to a Sender. Messages are queued
// and delivered by a single worker so a slow chat never stalls a night; when
// the queue is full the message is dropped.
type Observer struct {
	sender      Sender
	settlements bool
	backoff     time.Duration
	log         zerolog.Logger

	queue  chan string
	wg     sync.WaitGroup
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// NewObserver starts the delivery worker. Settlement messages are only sent
// when settlements is true; endings are always sent.
func NewObserver(ctx context.Context, sender Sender, settlements bool, log zerolog.Logger) *Observer {
	ctx, cancel := context.WithCancel(ctx)
	o := &Observer{
		sender:      sender,
		settlements: settlements,
		backoff:     time.Second,
		log:         log.With().Str("component", "notifier").Logger(),
		queue:       make(chan string, queueSize),
		cancel:      cancel,
	}
	o.wg.Add(1)
	go o.run(ctx)
	return o
}

func (o *Observer) run(ctx context.Context) {
	defer o.wg.Done()
	for text := range o.queue {
		if err := sendWithRetry(ctx, o.sender, text, maxRetries, o.backoff, o.log); err != nil {
			o.log.Error().Err(err).Msg("deliver message")
		}
	}
}

func (o *Observer) enqueue(text string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	select {
	case o.queue <- text:
	default:
		o.log.Warn().Msg("queue full, dropping message")
	}
}

// Close drains queued messages and stops the worker. Pending retries are
// abandoned once ctx passed to NewObserver is cancelled.
func (o *Observer) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	close(o.queue)
	o.mu.Unlock()

	o.wg.Wait()
	o.cancel()
}

func (o *Observer) OnDayStart(string, model.SessionRecord) {}

func (o *Observer) OnTick(string, model.NightTick) {}

func (o *Observer) OnNightEnd(s model.Settlement) {
	if o.settlements {
		o.enqueue(report.FormatSettlement(s))
	}
}

func (o *Observer) OnSessionEnd(s model.SessionSummary) {
	o.enqueue(report.FormatEnding(s))
}
