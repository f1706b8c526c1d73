package service

import (
	"context"
	"sync"
	"time"

	"github.com/tonimnim/Komiut-sub007/internal/models"
)

// PollFunc is one status check. attempt is 1-based. Returning true means a
// terminal result was observed and the scheduler must stop ticking.
type PollFunc func(ctx context.Context, attempt int) (terminal bool)

// PollScheduler invokes a PollFunc at a fixed interval until the poll
// reports a terminal result, the attempt budget is exhausted, or Stop is
// called. The interval is deliberately fixed rather than backed off: the
// payer is entering a PIN on their phone, so responsiveness on a
// human-interaction timescale matters more than shaving gateway load.
//
// One scheduler drives one transaction; Start on an already-started
// scheduler is a programming error and is rejected.
type PollScheduler struct {
	interval    time.Duration
	maxAttempts int

	mu      sync.Mutex
	started bool
	stopped bool
	stopCh  chan struct{}
	done    chan struct{}
}

func NewPollScheduler(interval time.Duration, maxAttempts int) *PollScheduler {
	return &PollScheduler{
		interval:    interval,
		maxAttempts: maxAttempts,
		stopCh:      make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start begins ticking. onExhausted runs if maxAttempts polls complete
// without a terminal result; it never runs after Stop.
func (s *PollScheduler) Start(ctx context.Context, poll PollFunc, onExhausted func()) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return models.ErrFlowAlreadyActive
	}
	s.started = true
	s.mu.Unlock()

	go s.run(ctx, poll, onExhausted)
	return nil
}

func (s *PollScheduler) run(ctx context.Context, poll PollFunc, onExhausted func()) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if !s.admit() {
			return
		}
		if poll(ctx, attempt) {
			return
		}
	}

	s.mu.Lock()
	stopped := s.stopped
	s.mu.Unlock()
	if !stopped {
		onExhausted()
	}
}

// admit decides, under the same lock Stop takes, whether the next poll may
// begin. Once Stop has returned, admit always answers false, so no new poll
// starts after Stop; a poll already admitted counts as in-flight and is the
// caller's job to discard.
func (s *PollScheduler) admit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.stopped
}

// Stop halts the scheduler. After Stop returns, no further poll begins.
// Safe to call multiple times and before Start.
func (s *PollScheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.stopCh)
	s.mu.Unlock()
}

// Wait blocks until the scheduler goroutine has exited. Only meaningful
// after Start; used by tests and the supervisor's shutdown path.
func (s *PollScheduler) Wait() {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if !started {
		return
	}
	<-s.done
}
