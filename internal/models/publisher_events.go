package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TopupCompletedEventTopic = "topups.completed"
	TopupsDLQTopic           = "topups.dlq"
)

// TopupCompletedEvent is published once per transaction, when it reaches a
// terminal state. Downstream consumers (notifications, analytics) key on
// TransactionID, which is also the ledger idempotency key.
type TopupCompletedEvent struct {
	TransactionID     string          `json:"transaction_id"`
	AccountID         string          `json:"account_id"`
	Amount            decimal.Decimal `json:"amount"`
	Method            string          `json:"method"`
	State             string          `json:"state"`
	ExternalReference string          `json:"external_reference,omitempty"`
	Receipt           string          `json:"receipt,omitempty"`
	Reason            string          `json:"reason,omitempty"`
	Attempts          int             `json:"attempts"`
	OccurredAt        time.Time       `json:"occurred_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
