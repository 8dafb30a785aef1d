package services

import (
	"context"
	"time"

	"github.com/driveyield/backend/internal/core/domain"
)

// PurchaseSvcFacade executes asset purchases against the catalog and ledger.
type PurchaseSvcFacade interface {
	// PurchaseAsset validates and executes a purchase: catalog lookup,
	// duplicate-holding rejection, funded check, then an atomic
	// debit + holding creation + purchase entry.
	PurchaseAsset(ctx context.Context, accountID string, assetName string, now time.Time) (*domain.Holding, error)

	// ListHoldings retrieves the account's holdings, newest first.
	ListHoldings(ctx context.Context, accountID string) ([]domain.Holding, error)
}
