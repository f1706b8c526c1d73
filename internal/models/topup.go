package models

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TopupState string
type TopupMethod string

const (
	StateInitiated             TopupState = "INITIATED"
	StateAwaitingAuthorization TopupState = "AWAITING_AUTHORIZATION"
	StatePolling               TopupState = "POLLING"
	StateSucceeded             TopupState = "SUCCEEDED"
	StateFailed                TopupState = "FAILED"
	StateTimedOut              TopupState = "TIMED_OUT"
	StateCancelled             TopupState = "CANCELLED"

	MethodMobileMoney  TopupMethod = "MOBILE_MONEY"
	MethodAirtelMoney  TopupMethod = "AIRTEL_MONEY"
	MethodBankTransfer TopupMethod = "BANK_TRANSFER"
)

// payerReferencePattern matches local mobile-money subscriber numbers,
// e.g. 0712345678 or 0112345678.
var payerReferencePattern = regexp.MustCompile(`^0[17]\d{8}$`)

// validTransitions encodes the top-up lifecycle. Terminal states have no
// outgoing transitions; anything arriving after them is discarded.
var validTransitions = map[TopupState][]TopupState{
	StateInitiated:             {StateAwaitingAuthorization, StateFailed, StateCancelled, StateTimedOut},
	StateAwaitingAuthorization: {StatePolling, StateCancelled},
	StatePolling:               {StateSucceeded, StateFailed, StateTimedOut, StateCancelled},
	StateSucceeded:             {},
	StateFailed:                {},
	StateTimedOut:              {},
	StateCancelled:             {},
}

// TopupTransaction is the unit of work for one wallet top-up attempt.
// ID is locally generated and doubles as the idempotency key for crediting
// the wallet: no matter how many terminal notifications race in, the ledger
// applies at most one credit per ID.
type TopupTransaction struct {
	ID                string          `json:"id" gorm:"primaryKey"`
	AccountID         string          `json:"account_id" gorm:"index;not null"`
	Amount            decimal.Decimal `json:"amount" gorm:"type:numeric(12,2)"`
	PayerReference    string          `json:"payer_reference"`
	Method            TopupMethod     `json:"method"`
	ExternalReference *string         `json:"external_reference,omitempty"`
	State             TopupState      `json:"state" gorm:"index"`
	Attempts          int             `json:"attempts"`
	ResultReceipt     string          `json:"result_receipt,omitempty"`
	FailureReason     string          `json:"failure_reason,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	TerminalAt        *time.Time      `json:"terminal_at,omitempty"`
}

func (t *TopupTransaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}

	return
}

// Validate checks the parts of a top-up that do not depend on engine
// configuration. Amount bounds are enforced by the supervisor, which owns
// the configured limits.
func (t *TopupTransaction) Validate() error {
	if !t.Method.IsValid() {
		return fmt.Errorf("%w: invalid top-up method: %s", ErrValidation, t.Method)
	}
	if t.AccountID == "" {
		return fmt.Errorf("%w: account ID is required", ErrValidation)
	}
	if !payerReferencePattern.MatchString(t.PayerReference) {
		return fmt.Errorf("%w: payer reference %q is not a valid subscriber number", ErrValidation, t.PayerReference)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}

	return nil
}

func (s TopupState) Terminal() bool {
	switch s {
	case StateSucceeded, StateFailed, StateTimedOut, StateCancelled:
		return true
	default:
		return false
	}
}

func (s TopupState) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransition reports whether moving from one state to another is allowed
// by the lifecycle table.
func CanTransition(from, to TopupState) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (m TopupMethod) IsValid() bool {
	switch m {
	case MethodMobileMoney, MethodAirtelMoney, MethodBankTransfer:
		return true
	default:
		return false
	}
}
