package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Memory is an in-process ledger with the same idempotency contract as the
// Postgres service. It backs engine tests and sandbox runs that have no
// database attached.
type Memory struct {
	mu       sync.Mutex
	balances map[string]decimal.Decimal
	consumed map[string]struct{}
}

func NewMemory() *Memory {
	return &Memory{
		balances: make(map[string]decimal.Decimal),
		consumed: make(map[string]struct{}),
	}
}

// SetBalance seeds an account.
func (m *Memory) SetBalance(accountID string, balance decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[accountID] = balance
}

func (m *Memory) Credit(ctx context.Context, transactionID, accountID string, amount decimal.Decimal) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, done := m.consumed[transactionID]; done {
		return false, nil
	}

	balance, ok := m.balances[accountID]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrWalletNotFound, accountID)
	}

	m.consumed[transactionID] = struct{}{}
	m.balances[accountID] = balance.Add(amount)
	return true, nil
}

func (m *Memory) Balance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	balance, ok := m.balances[accountID]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrWalletNotFound, accountID)
	}
	return balance, nil
}
