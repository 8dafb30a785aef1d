package repositories

import (
	"context"
	"time"

	"github.com/driveyield/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReader defines read operations for the append-only transaction log
type LedgerReader interface {
	// ListEntriesByAccount retrieves a page of ledger entries for an account,
	// newest first, using token-based pagination. It returns the entries, a
	// token for the next page (nil when exhausted), and an error.
	ListEntriesByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// LedgerWriter defines the atomic mutation operations of the ledger.
// Each method runs a single database transaction that locks the target
// account row, applies the state change and appends exactly one ledger entry.
// Either everything commits or nothing does.
type LedgerWriter interface {
	// ApplyMutation applies signed balance/earnings deltas together with the
	// paired entry. Returns apperrors.ErrInsufficientFunds or
	// apperrors.ErrInsufficientEarnings if a delta would drive the
	// corresponding value negative; the account is left unchanged.
	ApplyMutation(ctx context.Context, mutation domain.BalanceMutation, entry domain.LedgerEntry) error

	// ApplyPurchase debits the account balance by the holding's price,
	// inserts the holding and appends the purchase entry, all in one
	// transaction. Returns apperrors.ErrInsufficientFunds or
	// apperrors.ErrDuplicateHolding on rejection.
	ApplyPurchase(ctx context.Context, holding domain.Holding, entry domain.LedgerEntry) error

	// ApplyAccrual credits balance and earnings by total, advances the
	// accrual watermark from fromWatermark to toWatermark and, when total is
	// positive, appends the income entry. The watermark is re-checked under
	// the row lock; apperrors.ErrConflict is returned when a concurrent
	// accrual already advanced it, leaving the account untouched.
	ApplyAccrual(ctx context.Context, accountID string, total decimal.Decimal, fromWatermark *time.Time, toWatermark time.Time, entry *domain.LedgerEntry) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
