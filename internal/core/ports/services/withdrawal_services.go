package services

import (
	"context"
	"time"

	"github.com/driveyield/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WithdrawalSvcFacade validates and executes withdrawals from earnings.
type WithdrawalSvcFacade interface {
	// Withdraw runs the ordered validation chain (secret configured, secret
	// match, positive amount, sufficient earnings, configured minimum) and on
	// success atomically debits both balance and earnings, appending an entry
	// that snapshots the account's bank details. Returns the refreshed
	// account.
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, secret string, now time.Time) (*domain.Account, error)
}
