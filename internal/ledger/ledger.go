// Package ledger owns the authoritative wallet balance. All balance
// mutation for top-ups goes through Credit, which is idempotent per
// transaction id: the first caller applies the credit, every later caller
// with the same id gets a successful no-op. That compare-and-apply is the
// concurrency-safety boundary between racing completion paths (a duplicate
// poll result, a broker callback, a timeout firing at the same instant).
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrWalletNotFound = errors.New("wallet not found")

// Wallet holds the balance for one account. It outlives any individual
// top-up transaction and survives restarts.
type Wallet struct {
	ID        string          `json:"id" gorm:"primaryKey"`
	AccountID string          `json:"account_id" gorm:"uniqueIndex;not null"`
	Balance   decimal.Decimal `json:"balance" gorm:"type:numeric(14,2)"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// WalletCredit records a consumed transaction id. The primary key on
// TransactionID is what makes Credit at-most-once: a second insert for the
// same id fails with a duplicate-key error and is reported as already
// applied.
type WalletCredit struct {
	TransactionID string          `json:"transaction_id" gorm:"primaryKey"`
	AccountID     string          `json:"account_id" gorm:"index;not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:numeric(12,2)"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Service is the Postgres-backed ledger.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Credit applies amount to the account's balance exactly once per
// transactionID. Returns applied=false (and no error) when the id was
// already consumed. Safe to call concurrently with the same id: the unique
// key on wallet_credits decides the winner inside a single database
// transaction with the balance update.
func (s *Service) Credit(ctx context.Context, transactionID, accountID string, amount decimal.Decimal) (bool, error) {
	applied := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		credit := WalletCredit{
			TransactionID: transactionID,
			AccountID:     accountID,
			Amount:        amount,
		}
		if err := tx.Create(&credit).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				logrus.WithField("transaction_id", transactionID).
					Info("duplicate credit ignored")
				return nil
			}
			return fmt.Errorf("recording credit: %w", err)
		}

		result := tx.Model(&Wallet{}).
			Where("account_id = ?", accountID).
			Update("balance", gorm.Expr("balance + ?", amount))
		if result.Error != nil {
			return fmt.Errorf("updating balance: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", ErrWalletNotFound, accountID)
		}

		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return applied, nil
}

// Balance returns the current balance for an account.
func (s *Service) Balance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	var wallet Wallet
	if err := s.db.WithContext(ctx).Where("account_id = ?", accountID).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, fmt.Errorf("%w: %s", ErrWalletNotFound, accountID)
		}
		return decimal.Zero, err
	}
	return wallet.Balance, nil
}
