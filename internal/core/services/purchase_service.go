package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/driveyield/backend/internal/apperrors"
	"github.com/driveyield/backend/internal/core/domain"
	portsrepo "github.com/driveyield/backend/internal/core/ports/repositories"
	portssvc "github.com/driveyield/backend/internal/core/ports/services"
	"github.com/driveyield/backend/internal/middleware"
	"github.com/google/uuid"
)

// purchaseService executes asset purchases: catalog lookup, duplicate check,
// then one atomic debit + holding insert + entry through the ledger
// repository. The (account, asset) unique constraint is the final arbiter
// against concurrent duplicate purchases; the service-level existence check
// only gives a friendlier fast path.
type purchaseService struct {
	catalog     portssvc.AssetCatalogSvcFacade
	holdingRepo portsrepo.HoldingRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryFacade
}

// NewPurchaseService creates the purchase service.
func NewPurchaseService(catalog portssvc.AssetCatalogSvcFacade, holdingRepo portsrepo.HoldingRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.PurchaseSvcFacade {
	return &purchaseService{catalog: catalog, holdingRepo: holdingRepo, ledgerRepo: ledgerRepo}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

// PurchaseAsset validates and executes a purchase.
func (s *purchaseService) PurchaseAsset(ctx context.Context, accountID string, assetName string, now time.Time) (*domain.Holding, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	def, ok := s.catalog.GetAsset(assetName)
	if !ok {
		return nil, apperrors.ErrUnknownAsset
	}

	exists, err := s.holdingRepo.HoldingExists(ctx, accountID, assetName)
	if err != nil {
		logger.Error("Failed to check holding existence", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicateHolding
	}

	holding := domain.Holding{
		HoldingID:   uuid.NewString(),
		AccountID:   accountID,
		AssetName:   def.Name,
		Price:       def.Price,
		DailyPayout: def.DailyPayout,
		CycleDays:   def.CycleDays,
		PurchasedAt: now,
		ExpiresAt:   now.AddDate(0, 0, def.CycleDays),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     accountID,
			LastUpdatedAt: now,
			LastUpdatedBy: accountID,
		},
	}
	entry := domain.LedgerEntry{
		EntryID:   uuid.NewString(),
		AccountID: accountID,
		Kind:      domain.EntryPurchase,
		Amount:    def.Price,
		Detail:    domain.EntryDetail{AssetName: def.Name},
		EntryDate: now,
		CreatedAt: now,
	}

	if err := s.ledgerRepo.ApplyPurchase(ctx, holding, entry); err != nil {
		logger.Error("Failed to apply purchase",
			slog.String("account_id", accountID),
			slog.String("asset_name", assetName),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.Info("Asset purchased",
		slog.String("account_id", accountID),
		slog.String("asset_name", def.Name),
		slog.String("price", def.Price.String()),
	)
	return &holding, nil
}

// ListHoldings retrieves the account's holdings, newest first.
func (s *purchaseService) ListHoldings(ctx context.Context, accountID string) ([]domain.Holding, error) {
	holdings, err := s.holdingRepo.FindHoldingsByAccount(ctx, accountID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list holdings", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return nil, err
	}
	return holdings, nil
}
