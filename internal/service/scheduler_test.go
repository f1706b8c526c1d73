package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tonimnim/Komiut-sub007/internal/models"
)

func TestScheduler_StopsOnTerminalResult(t *testing.T) {
	s := NewPollScheduler(5*time.Millisecond, 10)
	var polls int32

	err := s.Start(context.Background(), func(ctx context.Context, attempt int) bool {
		atomic.AddInt32(&polls, 1)
		return attempt == 3
	}, func() {
		t.Error("onExhausted must not fire when a poll reported terminal")
	})
	assert.NoError(t, err)

	s.Wait()
	assert.Equal(t, int32(3), atomic.LoadInt32(&polls))
}

func TestScheduler_ExhaustsAttemptBudget(t *testing.T) {
	s := NewPollScheduler(5*time.Millisecond, 4)
	var polls int32
	var exhausted int32

	err := s.Start(context.Background(), func(ctx context.Context, attempt int) bool {
		atomic.AddInt32(&polls, 1)
		return false
	}, func() {
		atomic.AddInt32(&exhausted, 1)
	})
	assert.NoError(t, err)

	s.Wait()
	assert.Equal(t, int32(4), atomic.LoadInt32(&polls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&exhausted))
}

func TestScheduler_StopBeforeFirstTick(t *testing.T) {
	s := NewPollScheduler(50*time.Millisecond, 10)
	var polls int32

	err := s.Start(context.Background(), func(ctx context.Context, attempt int) bool {
		atomic.AddInt32(&polls, 1)
		return false
	}, func() {
		t.Error("onExhausted must not fire after Stop")
	})
	assert.NoError(t, err)

	s.Stop()
	s.Wait()
	assert.Equal(t, int32(0), atomic.LoadInt32(&polls))
}

func TestScheduler_NoPollBeginsAfterStop(t *testing.T) {
	s := NewPollScheduler(5*time.Millisecond, 1000)
	var polls int32

	err := s.Start(context.Background(), func(ctx context.Context, attempt int) bool {
		atomic.AddInt32(&polls, 1)
		return false
	}, func() {})
	assert.NoError(t, err)

	// Let a few polls through, then stop.
	time.Sleep(20 * time.Millisecond)
	s.Stop()
	s.Wait()

	observed := atomic.LoadInt32(&polls)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, observed, atomic.LoadInt32(&polls), "a poll began after Stop returned")
}

func TestScheduler_StopIsIdempotent(t *testing.T) {
	s := NewPollScheduler(5*time.Millisecond, 10)

	s.Stop()
	s.Stop()

	// Stop before Start leaves the scheduler inert.
	err := s.Start(context.Background(), func(ctx context.Context, attempt int) bool { return false }, func() {
		t.Error("onExhausted after Stop")
	})
	assert.NoError(t, err)
	s.Wait()
}

func TestScheduler_SecondStartRejected(t *testing.T) {
	s := NewPollScheduler(5*time.Millisecond, 2)

	err := s.Start(context.Background(), func(ctx context.Context, attempt int) bool { return true }, func() {})
	assert.NoError(t, err)

	err = s.Start(context.Background(), func(ctx context.Context, attempt int) bool { return true }, func() {})
	assert.ErrorIs(t, err, models.ErrFlowAlreadyActive)

	s.Stop()
	s.Wait()
}

func TestScheduler_ContextCancelHalts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewPollScheduler(5*time.Millisecond, 1000)
	var polls int32

	err := s.Start(ctx, func(ctx context.Context, attempt int) bool {
		atomic.AddInt32(&polls, 1)
		return false
	}, func() {
		t.Error("onExhausted must not fire on context cancellation")
	})
	assert.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	cancel()
	s.Wait()
}
