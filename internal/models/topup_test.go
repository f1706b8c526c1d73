package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tonimnim/Komiut-sub007/internal/models"
)

func validTransaction() *models.TopupTransaction {
	return &models.TopupTransaction{
		AccountID:      "acct_1",
		Amount:         decimal.NewFromInt(200),
		PayerReference: "0712345678",
		Method:         models.MethodMobileMoney,
		State:          models.StateInitiated,
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validTransaction().Validate())
}

func TestValidate_BadMethod(t *testing.T) {
	tx := validTransaction()
	tx.Method = "CHEQUE"

	err := tx.Validate()

	assert.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestValidate_BadPayerReference(t *testing.T) {
	cases := []string{
		"0812345678",  // unsupported prefix
		"071234567",   // too short
		"07123456789", // too long
		"+254712345678",
		"",
	}

	for _, ref := range cases {
		tx := validTransaction()
		tx.PayerReference = ref

		err := tx.Validate()

		assert.ErrorIs(t, err, models.ErrValidation, "reference %q should fail", ref)
	}
}

func TestValidate_NonPositiveAmount(t *testing.T) {
	tx := validTransaction()
	tx.Amount = decimal.Zero

	assert.ErrorIs(t, tx.Validate(), models.ErrValidation)

	tx.Amount = decimal.NewFromInt(-50)
	assert.ErrorIs(t, tx.Validate(), models.ErrValidation)
}

func TestValidate_MissingAccount(t *testing.T) {
	tx := validTransaction()
	tx.AccountID = ""

	assert.ErrorIs(t, tx.Validate(), models.ErrValidation)
}

func TestCanTransition_Lifecycle(t *testing.T) {
	assert.True(t, models.CanTransition(models.StateInitiated, models.StateAwaitingAuthorization))
	assert.True(t, models.CanTransition(models.StateInitiated, models.StateFailed))
	assert.True(t, models.CanTransition(models.StateAwaitingAuthorization, models.StatePolling))
	assert.True(t, models.CanTransition(models.StateAwaitingAuthorization, models.StateCancelled))
	assert.True(t, models.CanTransition(models.StatePolling, models.StateSucceeded))
	assert.True(t, models.CanTransition(models.StatePolling, models.StateTimedOut))

	// no skipping ahead
	assert.False(t, models.CanTransition(models.StateInitiated, models.StatePolling))
	assert.False(t, models.CanTransition(models.StateInitiated, models.StateSucceeded))
	assert.False(t, models.CanTransition(models.StateAwaitingAuthorization, models.StateSucceeded))
}

func TestCanTransition_TerminalStatesAbsorb(t *testing.T) {
	terminals := []models.TopupState{
		models.StateSucceeded,
		models.StateFailed,
		models.StateTimedOut,
		models.StateCancelled,
	}

	all := []models.TopupState{
		models.StateInitiated,
		models.StateAwaitingAuthorization,
		models.StatePolling,
		models.StateSucceeded,
		models.StateFailed,
		models.StateTimedOut,
		models.StateCancelled,
	}

	for _, from := range terminals {
		assert.True(t, from.Terminal())
		for _, to := range all {
			assert.False(t, models.CanTransition(from, to), "%s -> %s should be blocked", from, to)
		}
	}
}
