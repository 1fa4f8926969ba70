// Package poller fetches feed sources on a fixed interval in the
// background and publishes each outcome on a channel.
package poller

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tesso57/livescroll/internal/domain/feed"
	"github.com/tesso57/livescroll/internal/source"
)

// DefaultInterval is how often a source is re-fetched unless configured
// otherwise.
const DefaultInterval = 60 * time.Second

// Result is one message from the poller to the coordinator: either a
// successful batch (possibly empty) or a failed fetch.
type Result struct {
	Source string
	Items  []feed.Item
	Err    error
}

// Poller invokes a source's Fetch once per interval on its own goroutine.
// It communicates only through its result channel and never touches
// shared application state. A failed fetch is forwarded as a Result and
// does not stop the timer; the fixed interval is the whole retry policy.
type Poller struct {
	src      source.Source
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger
	results  chan Result
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// New creates a poller for the given source. A zero interval falls back
// to DefaultInterval; a zero timeout disables the per-fetch deadline.
func New(src source.Source, interval, timeout time.Duration, logger *zap.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{
		src:      src,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
		results:  make(chan Result, 1),
	}
}

// Results returns the channel the coordinator drains. Exactly one Result
// is sent per completed poll.
func (p *Poller) Results() <-chan Result {
	return p.results
}

// Start launches the polling goroutine. The first fetch fires
// immediately; subsequent fetches fire once per interval until the
// context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	p.wg.Add(1)
	go p.run(ctx)
}

// Stop cancels polling and waits up to grace for the goroutine to
// finish. An in-flight fetch is aborted through its context, so Stop
// never blocks process exit indefinitely.
func (p *Poller) Stop(grace time.Duration) {
	if p.cancel != nil {
		p.cancel()
	}
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(grace):
		p.logger.Warn("poller did not stop within grace period",
			zap.Duration("grace", grace))
	}
}

func (p *Poller) run(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	fetchCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	items, err := p.src.Fetch(fetchCtx)
	if err != nil {
		p.logger.Warn("fetch failed",
			zap.String("source", p.src.Name()),
			zap.Error(err))
	} else {
		p.logger.Debug("fetch succeeded",
			zap.String("source", p.src.Name()),
			zap.Int("items", len(items)))
	}

	select {
	case p.results <- Result{Source: p.src.Name(), Items: items, Err: err}:
	case <-ctx.Done():
	}
}
