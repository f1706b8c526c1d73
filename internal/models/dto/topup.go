package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tonimnim/Komiut-sub007/internal/models"
)

// TopupRequest is the caller-facing input to a top-up flow. It is consumed
// once: submitting it mints a fresh transaction, and retrying a failed
// top-up means submitting a new request with a new transaction id.
type TopupRequest struct {
	AccountID      string          `json:"account_id"`
	Amount         decimal.Decimal `json:"amount"`
	PayerReference string          `json:"payer_reference"`
	Method         string          `json:"method"`
}

func (r *TopupRequest) Sanitize() {
	r.AccountID = strings.TrimSpace(r.AccountID)
	r.PayerReference = strings.TrimSpace(r.PayerReference)
	r.Method = strings.TrimSpace(r.Method)

	r.Method = strings.ToUpper(r.Method)
	r.PayerReference = strings.ReplaceAll(r.PayerReference, " ", "")
}

func (r *TopupRequest) ToEntity() *models.TopupTransaction {
	return &models.TopupTransaction{
		AccountID:      r.AccountID,
		Amount:         r.Amount,
		PayerReference: r.PayerReference,
		Method:         models.TopupMethod(r.Method),
		State:          models.StateInitiated,
	}
}
