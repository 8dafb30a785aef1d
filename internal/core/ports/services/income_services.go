package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// IncomeSvcFacade computes and credits daily income across active holdings.
type IncomeSvcFacade interface {
	// CollectIncome credits all income owed since the account's accrual
	// watermark and advances the watermark to today. Calling it again the
	// same day is a no-op returning zero.
	CollectIncome(ctx context.Context, accountID string, now time.Time) (decimal.Decimal, error)
}
