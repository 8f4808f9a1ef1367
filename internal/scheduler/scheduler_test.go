package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

// --- Mock implementations ---

type CountingPoller struct {
	calls atomic.Int32
}

func (p *CountingPoller) Poll(_ context.Context) error {
	p.calls.Add(1)
	return nil
}

type ErrorPoller struct {
	calls atomic.Int32
}

func (p *ErrorPoller) Poll(_ context.Context) error {
	p.calls.Add(1)
	return errors.New("poll failed")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runFor(t *testing.T, s *Scheduler, d time.Duration) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx)
	}()

	time.Sleep(d)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected nil error on cancel, got: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not return within 2s after cancel")
	}
}

// --- Tests ---

func TestRun_PollsImmediately(t *testing.T) {
	p := &CountingPoller{}
	runFor(t, NewScheduler(p, time.Hour, discardLogger()), 100*time.Millisecond)

	if got := p.calls.Load(); got != 1 {
		t.Errorf("poll calls = %d, want 1", got)
	}
}

func TestRun_PollsOnInterval(t *testing.T) {
	p := &CountingPoller{}
	runFor(t, NewScheduler(p, 50*time.Millisecond, discardLogger()), 230*time.Millisecond)

	if got := p.calls.Load(); got < 3 {
		t.Errorf("poll calls = %d, want >= 3", got)
	}
}

func TestRun_ErrorsDoNotStopLoop(t *testing.T) {
	p := &ErrorPoller{}
	runFor(t, NewScheduler(p, 50*time.Millisecond, discardLogger()), 180*time.Millisecond)

	if got := p.calls.Load(); got < 2 {
		t.Errorf("poll calls = %d, want >= 2 after errors", got)
	}
}

func TestRun_CancelledContextSkipsPoll(t *testing.T) {
	p := &CountingPoller{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewScheduler(p, time.Hour, discardLogger()).Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := p.calls.Load(); got != 0 {
		t.Errorf("poll calls = %d, want 0", got)
	}
}
