// Package gateway defines the outbound contract to the mobile-money
// provider. The engine never depends on a provider's wire format; it sees
// only charge initiation and status polling.
package gateway

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tonimnim/Komiut-sub007/internal/models"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusSucceeded Status = "SUCCEEDED"
	StatusFailed    Status = "FAILED"
)

// InitiateRequest carries the charge parameters for the push-to-pay prompt.
type InitiateRequest struct {
	TransactionID  string
	Amount         decimal.Decimal
	PayerReference string
	Method         models.TopupMethod
}

// InitiateResult is returned when the provider accepted the charge and
// delivered the prompt. ExternalReference identifies the charge in all
// subsequent status polls.
type InitiateResult struct {
	ExternalReference string
}

// PollResult is a point-in-time answer about an initiated charge. Receipt is
// set only for StatusSucceeded, Reason only for StatusFailed.
type PollResult struct {
	Status  Status
	Receipt string
	Reason  string
}

// RejectionError signals that the provider explicitly refused the charge.
// It is terminal; any other error from a Client call is treated as
// transient by the engine.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("charge rejected: %s", e.Reason)
}

// Client is the outbound provider contract. Both calls are network calls and
// must honour the passed context; neither holds engine state.
type Client interface {
	Initiate(ctx context.Context, req InitiateRequest) (*InitiateResult, error)
	PollStatus(ctx context.Context, externalReference string) (*PollResult, error)
}
