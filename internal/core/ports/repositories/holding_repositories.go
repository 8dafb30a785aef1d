package repositories

import (
	"context"

	"github.com/driveyield/backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// HoldingReader defines read operations for holding data
type HoldingReader interface {
	// FindHoldingsByAccount retrieves all holdings of an account, newest first.
	FindHoldingsByAccount(ctx context.Context, accountID string) ([]domain.Holding, error)

	// HoldingExists reports whether the account ever purchased the named
	// asset, active or expired.
	HoldingExists(ctx context.Context, accountID string, assetName string) (bool, error)
}

// HoldingTransactionSupport defines operations that participate in a caller-managed transaction
type HoldingTransactionSupport interface {
	// InsertHoldingInTx inserts a holding within the given transaction.
	// A (account_id, asset_name) uniqueness violation maps to
	// apperrors.ErrDuplicateHolding.
	InsertHoldingInTx(ctx context.Context, tx pgx.Tx, holding domain.Holding) error
}

// HoldingRepositoryFacade combines all holding-related repository interfaces
type HoldingRepositoryFacade interface {
	HoldingReader
	HoldingTransactionSupport
}
