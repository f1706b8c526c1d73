package service

import (
	"sync"

	"github.com/tonimnim/Komiut-sub007/internal/models"
)

// subscriberBuffer is the per-subscriber channel capacity. A slow consumer
// loses intermediate snapshots (oldest first) but is always delivered the
// terminal one.
const subscriberBuffer = 16

// flow bundles everything one live transaction owns: its state machine, its
// scheduler, cancellation plumbing, and its subscribers.
type flow struct {
	machine   *PaymentStateMachine
	scheduler *PollScheduler

	doneOnce sync.Once
	done     chan struct{}

	finalizeOnce sync.Once

	subMu       sync.Mutex
	subscribers []chan models.TopupTransaction
	finished    bool
}

func newFlow(tx *models.TopupTransaction, cfg EngineConfig) *flow {
	f := &flow{
		scheduler: NewPollScheduler(cfg.PollInterval, cfg.MaxPollAttempts),
		done:      make(chan struct{}),
	}
	f.machine = NewPaymentStateMachine(tx, f.fanOut)
	return f
}

func (f *flow) signalDone() {
	f.doneOnce.Do(func() { close(f.done) })
}

// addSubscriber registers a snapshot channel. Returns ok=false when the
// flow has already finished and its channels are closed.
func (f *flow) addSubscriber() (<-chan models.TopupTransaction, bool) {
	f.subMu.Lock()
	defer f.subMu.Unlock()

	if f.finished {
		return nil, false
	}

	ch := make(chan models.TopupTransaction, subscriberBuffer)
	f.subscribers = append(f.subscribers, ch)
	return ch, true
}

// fanOut delivers a snapshot to every subscriber. It runs under the state
// machine's lock, so deliveries arrive in transition order. Sends never
// block: when a buffer is full the oldest snapshot is dropped to make room,
// which keeps a stuck consumer from stalling the engine while still
// guaranteeing the terminal snapshot lands.
func (f *flow) fanOut(snapshot models.TopupTransaction) {
	f.subMu.Lock()
	defer f.subMu.Unlock()

	if f.finished {
		return
	}

	for _, ch := range f.subscribers {
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}

// closeSubscribers ends every stream. The terminal snapshot has already
// been fanned out by the transition that triggered finalization.
func (f *flow) closeSubscribers() {
	f.subMu.Lock()
	defer f.subMu.Unlock()

	if f.finished {
		return
	}
	f.finished = true

	for _, ch := range f.subscribers {
		close(ch)
	}
	f.subscribers = nil
}
