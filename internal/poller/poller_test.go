package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesso57/livescroll/internal/domain/feed"
)

type stubSource struct {
	name    string
	items   []feed.Item
	err     error
	fetches atomic.Int64
}

func (s *stubSource) Name() string {
	return s.name
}

func (s *stubSource) Fetch(_ context.Context) ([]feed.Item, error) {
	s.fetches.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func receiveResult(t *testing.T, p *Poller) Result {
	t.Helper()
	select {
	case res := <-p.Results():
		return res
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a poll result")
		return Result{}
	}
}

func TestPollerEmitsInitialResult(t *testing.T) {
	src := &stubSource{name: "stub", items: []feed.Item{{ID: "a", Title: "A"}}}
	p := New(src, time.Hour, 0, nil)
	p.Start(context.Background())
	defer p.Stop(time.Second)

	res := receiveResult(t, p)
	require.NoError(t, res.Err)
	assert.Equal(t, "stub", res.Source)
	assert.Len(t, res.Items, 1)
}

func TestPollerForwardsErrors(t *testing.T) {
	src := &stubSource{name: "stub", err: errors.New("connection refused")}
	p := New(src, time.Hour, 0, nil)
	p.Start(context.Background())
	defer p.Stop(time.Second)

	res := receiveResult(t, p)
	require.Error(t, res.Err)
	assert.Nil(t, res.Items)
}

func TestPollerKeepsTickingAfterError(t *testing.T) {
	src := &stubSource{name: "stub", err: errors.New("still down")}
	p := New(src, 10*time.Millisecond, 0, nil)
	p.Start(context.Background())
	defer p.Stop(time.Second)

	first := receiveResult(t, p)
	second := receiveResult(t, p)
	assert.Error(t, first.Err)
	assert.Error(t, second.Err, "a failing source keeps reporting each interval")
	assert.GreaterOrEqual(t, src.fetches.Load(), int64(2))
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	src := &stubSource{name: "stub"}
	p := New(src, 5*time.Millisecond, 0, nil)
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	receiveResult(t, p)
	cancel()

	done := make(chan struct{})
	go func() {
		p.Stop(time.Second)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return after context cancel")
	}
}

func TestPollerStopReturnsQuickly(t *testing.T) {
	src := &stubSource{name: "stub"}
	p := New(src, time.Hour, 0, nil)
	p.Start(context.Background())
	receiveResult(t, p)

	start := time.Now()
	p.Stop(time.Second)
	assert.Less(t, time.Since(start), time.Second)
}

func TestNewDefaultsInterval(t *testing.T) {
	p := New(&stubSource{name: "stub"}, 0, 0, nil)
	assert.Equal(t, DefaultInterval, p.interval)
}
