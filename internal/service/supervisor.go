package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/tonimnim/Komiut-sub007/internal/gateway"
	"github.com/tonimnim/Komiut-sub007/internal/metrics"
	"github.com/tonimnim/Komiut-sub007/internal/models"
	"github.com/tonimnim/Komiut-sub007/internal/models/dto"
)

// initiateRetries bounds the transient-error retries for the charge
// initiation call. Transient failures are never fatal on their own; if
// initiation cannot get through at all, the transaction times out.
const initiateRetries = 3

// finalizeTimeout bounds the archive write and event publish that run when
// a transaction reaches a terminal state.
const finalizeTimeout = 5 * time.Second

// Gateway is the outbound provider contract as consumed by the engine.
type Gateway interface {
	Initiate(ctx context.Context, req gateway.InitiateRequest) (*gateway.InitiateResult, error)
	PollStatus(ctx context.Context, externalReference string) (*gateway.PollResult, error)
}

// Ledger applies wallet credits exactly once per transaction id.
type Ledger interface {
	Credit(ctx context.Context, transactionID, accountID string, amount decimal.Decimal) (bool, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// TransactionArchive persists transaction rows: one insert at flow start and
// one update at termination. It is also what the restart sweep reads.
type TransactionArchive interface {
	Create(ctx context.Context, tx *models.TopupTransaction) error
	GetByID(ctx context.Context, id string) (*models.TopupTransaction, error)
	GetBy(ctx context.Context, query string, value interface{}) (*[]models.TopupTransaction, error)
	Update(ctx context.Context, tx *models.TopupTransaction, id string) error
}

// EngineConfig carries the recognized tuning options for the confirmation
// engine. MaxPollAttempts × PollInterval is the effective confirmation
// timeout.
type EngineConfig struct {
	MinAmount                decimal.Decimal
	MaxAmount                decimal.Decimal
	PollInterval             time.Duration
	MaxPollAttempts          int
	AuthorizationGracePeriod time.Duration
}

// ConfirmationSupervisor is the only entry point the rest of the
// application talks to. It owns the transaction-id-to-state-machine mapping,
// exposes subscribe/cancel, and guarantees that every flow releases its
// scheduler deterministically once terminal.
type ConfirmationSupervisor struct {
	cfg       EngineConfig
	gateway   Gateway
	ledger    Ledger
	publisher Publisher
	archive   TransactionArchive

	// ctx is the supervisor's root context; cancelling it halts every
	// active flow's scheduler.
	ctx context.Context

	mu    sync.RWMutex
	flows map[string]*flow
}

func NewConfirmationSupervisor(
	ctx context.Context,
	cfg EngineConfig,
	gw Gateway,
	ledger Ledger,
	publisher Publisher,
	archive TransactionArchive,
) *ConfirmationSupervisor {
	return &ConfirmationSupervisor{
		cfg:       cfg,
		gateway:   gw,
		ledger:    ledger,
		publisher: publisher,
		archive:   archive,
		ctx:       ctx,
		flows:     make(map[string]*flow),
	}
}

// Start validates the request and launches a confirmation flow. On
// validation failure it returns the terminal snapshot together with an
// error wrapping models.ErrValidation; no gateway call is made. Otherwise
// the returned snapshot is the INITIATED transaction and the flow proceeds
// in the background.
func (s *ConfirmationSupervisor) Start(ctx context.Context, req *dto.TopupRequest) (*models.TopupTransaction, error) {
	req.Sanitize()

	tx := req.ToEntity()
	tx.ID = uuid.New().String()
	now := time.Now().UTC()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	if err := s.validate(tx); err != nil {
		tx.State = models.StateFailed
		tx.FailureReason = err.Error()
		terminalAt := time.Now().UTC()
		tx.TerminalAt = &terminalAt

		if archiveErr := s.archive.Create(ctx, tx); archiveErr != nil {
			logrus.WithError(archiveErr).WithField("transaction_id", tx.ID).
				Error("failed to archive rejected top-up")
		}
		metrics.TopupsTotal.WithLabelValues(string(models.StateFailed)).Inc()

		return tx, err
	}

	f := newFlow(tx, s.cfg)

	if err := s.archive.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("persisting transaction: %w", err)
	}

	s.mu.Lock()
	s.flows[tx.ID] = f
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"transaction_id":  tx.ID,
		"account_id":      tx.AccountID,
		"amount":          tx.Amount.String(),
		"payer_reference": tx.PayerReference,
	}).Info("top-up flow started")

	go s.runFlow(f)

	snapshot := f.machine.Snapshot()
	return &snapshot, nil
}

// Cancel requests cooperative cancellation. Safe from any state, including
// after termination or for ids this process has never seen, where it is a
// no-op.
func (s *ConfirmationSupervisor) Cancel(ctx context.Context, transactionID string) error {
	s.mu.RLock()
	f := s.flows[transactionID]
	s.mu.RUnlock()

	if f == nil {
		return nil
	}

	f.scheduler.Stop()

	if f.machine.Cancel() {
		logrus.WithField("transaction_id", transactionID).Info("top-up cancelled")
		s.finalize(f)
	}
	return nil
}

// CurrentState returns a point-in-time snapshot, consulting the archive for
// transactions that are no longer live in this process.
func (s *ConfirmationSupervisor) CurrentState(ctx context.Context, transactionID string) (*models.TopupTransaction, error) {
	s.mu.RLock()
	f := s.flows[transactionID]
	s.mu.RUnlock()

	if f != nil {
		snapshot := f.machine.Snapshot()
		return &snapshot, nil
	}

	tx, err := s.archive.GetByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownTransaction, transactionID)
	}
	return tx, nil
}

// Subscribe returns a stream of snapshots for one transaction. The stream
// is closed after the terminal snapshot is delivered. Subscribing to an
// already-terminal transaction yields its final snapshot and an immediately
// closed channel.
func (s *ConfirmationSupervisor) Subscribe(ctx context.Context, transactionID string) (<-chan models.TopupTransaction, error) {
	s.mu.RLock()
	f := s.flows[transactionID]
	s.mu.RUnlock()

	if f != nil {
		if ch, ok := f.addSubscriber(); ok {
			return ch, nil
		}
		// Flow finished between lookup and registration; fall through to
		// the terminal snapshot.
	}

	tx, err := s.CurrentState(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	ch := make(chan models.TopupTransaction, 1)
	ch <- *tx
	close(ch)
	return ch, nil
}

// ApplyGatewayCallback feeds a server-pushed confirmation into the same
// settlement path as a poll result. Callbacks for terminal or unknown
// transactions are observed and discarded; the ledger's idempotency makes a
// callback racing a successful poll harmless.
func (s *ConfirmationSupervisor) ApplyGatewayCallback(ctx context.Context, evt models.GatewayCallbackEvent) error {
	s.mu.RLock()
	f := s.flows[evt.TransactionID]
	if f == nil && evt.ExternalReference != "" {
		for _, candidate := range s.flows {
			snap := candidate.machine.Snapshot()
			if snap.ExternalReference != nil && *snap.ExternalReference == evt.ExternalReference {
				f = candidate
				break
			}
		}
	}
	s.mu.RUnlock()

	if f == nil {
		logrus.WithField("external_reference", evt.ExternalReference).
			Debug("gateway callback for unknown or terminal transaction discarded")
		return nil
	}

	res := &gateway.PollResult{
		Receipt: evt.Receipt,
		Reason:  evt.Reason,
	}
	switch evt.Result {
	case models.GatewayResultSucceeded:
		res.Status = gateway.StatusSucceeded
	case models.GatewayResultFailed:
		res.Status = gateway.StatusFailed
	default:
		return fmt.Errorf("unrecognized gateway callback result %q", evt.Result)
	}

	s.settle(ctx, f, res)
	return nil
}

// ResumeStale marks transactions left non-terminal by a previous process as
// TIMED_OUT. Polling is never resumed across a restart: the attempt budget
// and timers died with the old process, so the honest answer is that no
// conclusive result arrived.
func (s *ConfirmationSupervisor) ResumeStale(ctx context.Context) error {
	stale, err := s.archive.GetBy(ctx, "state IN ?", []models.TopupState{
		models.StateInitiated,
		models.StateAwaitingAuthorization,
		models.StatePolling,
	})
	if err != nil {
		return fmt.Errorf("loading stale transactions: %w", err)
	}

	for i := range *stale {
		tx := &(*stale)[i]
		tx.State = models.StateTimedOut
		tx.FailureReason = models.RestartSweepReason
		terminalAt := time.Now().UTC()
		tx.TerminalAt = &terminalAt

		if err := s.archive.Update(ctx, tx, tx.ID); err != nil {
			return fmt.Errorf("sweeping transaction %s: %w", tx.ID, err)
		}
		metrics.TopupsTotal.WithLabelValues(string(models.StateTimedOut)).Inc()
		logrus.WithField("transaction_id", tx.ID).Warn("stale top-up marked timed out after restart")
	}

	if count := len(*stale); count > 0 {
		logrus.Infof("restart sweep timed out %d stale top-up(s)", count)
	}
	return nil
}

func (s *ConfirmationSupervisor) validate(tx *models.TopupTransaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	if tx.Amount.LessThan(s.cfg.MinAmount) || tx.Amount.GreaterThan(s.cfg.MaxAmount) {
		return fmt.Errorf("%w: amount %s outside allowed range [%s, %s]",
			models.ErrValidation, tx.Amount, s.cfg.MinAmount, s.cfg.MaxAmount)
	}
	return nil
}

// runFlow drives one transaction from initiation to its terminal state. It
// is the flow's single thread of control outside of cancel requests and
// broker callbacks, both of which serialize through the state machine.
func (s *ConfirmationSupervisor) runFlow(f *flow) {
	snap := f.machine.Snapshot()

	result := s.initiateWithRetry(f, &snap)
	if result == nil {
		return
	}

	if !f.machine.MarkAccepted(result.ExternalReference) {
		// Cancelled while the initiation call was in flight; the prompt may
		// still reach the payer but its result will be discarded.
		return
	}

	// Grace period: give the payer time to act on the prompt before the
	// first poll.
	select {
	case <-time.After(s.cfg.AuthorizationGracePeriod):
	case <-f.done:
		return
	case <-s.ctx.Done():
		return
	}

	if !f.machine.BeginPolling() {
		return
	}

	err := f.scheduler.Start(s.ctx, s.pollOnce(f), func() {
		if f.machine.MarkTimedOut() {
			logrus.WithField("transaction_id", snap.ID).Warn("top-up timed out")
			s.finalize(f)
		}
	})
	if err != nil {
		logrus.WithError(err).WithField("transaction_id", snap.ID).Error("scheduler start refused")
	}
}

func (s *ConfirmationSupervisor) initiateWithRetry(f *flow, snap *models.TopupTransaction) *gateway.InitiateResult {
	req := gateway.InitiateRequest{
		TransactionID:  snap.ID,
		Amount:         snap.Amount,
		PayerReference: snap.PayerReference,
		Method:         snap.Method,
	}

	for attempt := 1; attempt <= initiateRetries; attempt++ {
		result, err := s.gateway.Initiate(s.ctx, req)
		if err == nil {
			return result
		}

		var rejection *gateway.RejectionError
		if errors.As(err, &rejection) {
			if f.machine.MarkFailed(rejection.Reason) {
				logrus.WithFields(logrus.Fields{
					"transaction_id": snap.ID,
					"reason":         rejection.Reason,
				}).Warn("gateway rejected top-up")
				s.finalize(f)
			}
			return nil
		}

		logrus.WithError(err).WithFields(logrus.Fields{
			"transaction_id": snap.ID,
			"attempt":        attempt,
		}).Warn("transient error initiating charge")

		select {
		case <-time.After(s.cfg.PollInterval):
		case <-f.done:
			return nil
		case <-s.ctx.Done():
			return nil
		}
	}

	if f.machine.MarkTimedOut() {
		s.finalize(f)
	}
	return nil
}

// pollOnce builds the scheduler's PollFunc. Every completed poll cycle —
// including one swallowed by a transient network error — consumes one
// attempt.
func (s *ConfirmationSupervisor) pollOnce(f *flow) PollFunc {
	return func(ctx context.Context, attempt int) bool {
		snap := f.machine.Snapshot()
		if snap.State.Terminal() {
			return true
		}
		if snap.ExternalReference == nil {
			return true
		}

		result, err := s.gateway.PollStatus(ctx, *snap.ExternalReference)

		if !f.machine.RecordAttempt() {
			// Terminal in the meantime (cancel racing the poll); the
			// in-flight result is discarded.
			return true
		}

		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"transaction_id": snap.ID,
				"attempt":        attempt,
			}).Warn("transient error polling charge status")
			return false
		}

		return s.settle(ctx, f, result)
	}
}

// settle applies a gateway result to the flow. On terminal success the
// ledger is credited before the transaction is marked SUCCEEDED; the
// ledger's per-id idempotency is what keeps a duplicate result from
// crediting twice. Returns true when the result was terminal.
func (s *ConfirmationSupervisor) settle(ctx context.Context, f *flow, result *gateway.PollResult) bool {
	switch result.Status {
	case gateway.StatusPending:
		return false

	case gateway.StatusFailed:
		if f.machine.MarkFailed(result.Reason) {
			logrus.WithFields(logrus.Fields{
				"transaction_id": f.machine.Snapshot().ID,
				"reason":         result.Reason,
			}).Warn("top-up failed at gateway")
			s.finalize(f)
		}
		return true

	case gateway.StatusSucceeded:
		snap := f.machine.Snapshot()
		if snap.State.Terminal() {
			return true
		}

		applied, err := s.ledger.Credit(ctx, snap.ID, snap.AccountID, snap.Amount)
		if err != nil {
			// Storage hiccup; leave the transaction polling so the next
			// tick retries the credit.
			logrus.WithError(err).WithField("transaction_id", snap.ID).
				Error("ledger credit failed")
			return false
		}
		if applied {
			metrics.CreditsTotal.WithLabelValues("applied").Inc()
		} else {
			metrics.CreditsTotal.WithLabelValues("duplicate").Inc()
		}

		if f.machine.MarkSucceeded(result.Receipt) {
			s.finalize(f)
		}
		return true

	default:
		logrus.WithField("status", result.Status).Error("unrecognized gateway poll status")
		return false
	}
}

// finalize runs exactly once per flow, on the goroutine that applied the
// terminal transition: stops the scheduler, releases subscribers, archives
// the terminal row, and publishes the completion event. Publish and archive
// failures are logged, never allowed to undo a terminal state.
func (s *ConfirmationSupervisor) finalize(f *flow) {
	f.finalizeOnce.Do(func() {
		f.scheduler.Stop()
		f.signalDone()

		snapshot := f.machine.Snapshot()

		s.mu.Lock()
		delete(s.flows, snapshot.ID)
		s.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), finalizeTimeout)
		defer cancel()

		if err := s.archive.Update(ctx, &snapshot, snapshot.ID); err != nil {
			logrus.WithError(err).WithField("transaction_id", snapshot.ID).
				Error("failed to archive terminal transaction")
		}

		event := models.TopupCompletedEvent{
			TransactionID: snapshot.ID,
			AccountID:     snapshot.AccountID,
			Amount:        snapshot.Amount,
			Method:        string(snapshot.Method),
			State:         string(snapshot.State),
			Receipt:       snapshot.ResultReceipt,
			Reason:        snapshot.FailureReason,
			Attempts:      snapshot.Attempts,
			OccurredAt:    time.Now().UTC(),
		}
		if snapshot.ExternalReference != nil {
			event.ExternalReference = *snapshot.ExternalReference
		}
		if err := s.publisher.Publish(ctx, models.TopupCompletedEventTopic, event); err != nil {
			logrus.WithError(err).WithField("transaction_id", snapshot.ID).
				Error("failed to publish completion event")
		}

		metrics.TopupsTotal.WithLabelValues(string(snapshot.State)).Inc()
		metrics.PollAttempts.Observe(float64(snapshot.Attempts))
		if snapshot.State == models.StateSucceeded {
			amount, _ := snapshot.Amount.Float64()
			metrics.TopupAmounts.WithLabelValues(string(snapshot.Method)).Observe(amount)
		}

		// Streams close last: the terminal snapshot was already fanned out
		// by the transition itself, and observers joining on stream end see
		// a fully settled transaction.
		f.closeSubscribers()

		logrus.WithFields(logrus.Fields{
			"transaction_id": snapshot.ID,
			"state":          snapshot.State,
			"attempts":       snapshot.Attempts,
		}).Info("top-up flow finished")
	})
}
