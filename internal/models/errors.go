package models

import "errors"

// Engine error taxonomy. Only validation failures and explicit gateway
// rejections are fatal; transient network errors are absorbed by the poll
// loop and surface as a timeout if they never stop.
var (
	ErrValidation         = errors.New("validation failed")
	ErrGatewayRejected    = errors.New("gateway rejected the charge")
	ErrTimeoutExceeded    = errors.New("confirmation attempts exhausted")
	ErrCancelled          = errors.New("cancelled by user")
	ErrUnknownTransaction = errors.New("unknown transaction")
	ErrFlowAlreadyActive  = errors.New("a poll scheduler is already active for this transaction")
)

// TimedOutGuidance is surfaced to callers when polling exhausts its budget
// without a conclusive answer from the provider.
const TimedOutGuidance = "no confirmation received in time; check your payment app to verify the charge"

// RestartSweepReason marks transactions that were in flight when the
// process went down and could not be resumed.
const RestartSweepReason = "resumed after restart without a conclusive result"
