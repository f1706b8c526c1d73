package service

import (
	"sync"
	"time"

	"github.com/tonimnim/Komiut-sub007/internal/models"
)

// StateChangeFunc receives a snapshot after every applied mutation.
// Snapshots are copies; observers never touch the live transaction.
type StateChangeFunc func(snapshot models.TopupTransaction)

// PaymentStateMachine owns the lifecycle of one top-up attempt. Every
// mutation is routed through a single mutex-guarded transition path, so at
// most one transition is being applied at any instant and exactly one
// terminal state is ever reached. Events arriving after termination — a
// stray poll result, a duplicate callback, a second cancel — are no-ops.
type PaymentStateMachine struct {
	mu       sync.Mutex
	tx       models.TopupTransaction
	onChange StateChangeFunc
}

func NewPaymentStateMachine(tx *models.TopupTransaction, onChange StateChangeFunc) *PaymentStateMachine {
	return &PaymentStateMachine{
		tx:       *tx,
		onChange: onChange,
	}
}

// Snapshot returns a point-in-time copy. Never blocks on engine progress.
func (m *PaymentStateMachine) Snapshot() models.TopupTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx
}

func (m *PaymentStateMachine) State() models.TopupState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tx.State
}

// MarkAccepted records the gateway's external reference and moves the
// transaction to AWAITING_AUTHORIZATION.
func (m *PaymentStateMachine) MarkAccepted(externalReference string) bool {
	return m.transition(models.StateAwaitingAuthorization, func(tx *models.TopupTransaction) {
		ref := externalReference
		tx.ExternalReference = &ref
	})
}

// BeginPolling moves out of the authorization grace period.
func (m *PaymentStateMachine) BeginPolling() bool {
	return m.transition(models.StatePolling, nil)
}

// RecordAttempt counts one poll cycle (including polls swallowed by a
// transient network error). Returns false once the transaction is terminal.
func (m *PaymentStateMachine) RecordAttempt() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tx.State.Terminal() {
		return false
	}
	m.tx.Attempts++
	m.tx.UpdatedAt = time.Now().UTC()
	m.emitLocked()
	return true
}

func (m *PaymentStateMachine) MarkSucceeded(receipt string) bool {
	return m.transition(models.StateSucceeded, func(tx *models.TopupTransaction) {
		tx.ResultReceipt = receipt
	})
}

func (m *PaymentStateMachine) MarkFailed(reason string) bool {
	return m.transition(models.StateFailed, func(tx *models.TopupTransaction) {
		tx.FailureReason = reason
	})
}

func (m *PaymentStateMachine) MarkTimedOut() bool {
	return m.transition(models.StateTimedOut, func(tx *models.TopupTransaction) {
		tx.FailureReason = models.TimedOutGuidance
	})
}

// Cancel is safe from any state, including after termination, where it is
// an idempotent no-op.
func (m *PaymentStateMachine) Cancel() bool {
	return m.transition(models.StateCancelled, func(tx *models.TopupTransaction) {
		tx.FailureReason = models.ErrCancelled.Error()
	})
}

// transition applies one lifecycle move if the table allows it. The change
// notification fires under the lock so observers see snapshots in the exact
// order transitions were applied; onChange must not call back into the
// machine.
func (m *PaymentStateMachine) transition(to models.TopupState, mutate func(*models.TopupTransaction)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tx.State.Terminal() || !models.CanTransition(m.tx.State, to) {
		return false
	}

	if mutate != nil {
		mutate(&m.tx)
	}

	now := time.Now().UTC()
	m.tx.State = to
	m.tx.UpdatedAt = now
	if to.Terminal() {
		terminalAt := now
		m.tx.TerminalAt = &terminalAt
	}

	m.emitLocked()
	return true
}

func (m *PaymentStateMachine) emitLocked() {
	if m.onChange != nil {
		m.onChange(m.tx)
	}
}
