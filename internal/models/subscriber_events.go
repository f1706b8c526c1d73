package models

import "time"

const (
	GatewayCallbackTopic = "topups.gateway.callbacks"

	GatewayResultSucceeded = "SUCCEEDED"
	GatewayResultFailed    = "FAILED"
)

// GatewayCallbackEvent is a server-pushed confirmation for deployments where
// the provider delivers results over a broker instead of (or in addition to)
// polling. It feeds the same settlement path as a poll result, so a callback
// arriving alongside a successful poll still credits the wallet exactly once.
type GatewayCallbackEvent struct {
	ExternalReference string    `json:"external_reference"`
	TransactionID     string    `json:"transaction_id"`
	Result            string    `json:"result"`
	Receipt           string    `json:"receipt,omitempty"`
	Reason            string    `json:"reason,omitempty"`
	ReceivedAt        time.Time `json:"received_at"`
}
