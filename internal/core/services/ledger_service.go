package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/driveyield/backend/internal/apperrors"
	"github.com/driveyield/backend/internal/core/domain"
	portsrepo "github.com/driveyield/backend/internal/core/ports/repositories"
	portssvc "github.com/driveyield/backend/internal/core/ports/services"
	"github.com/driveyield/backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ledgerService is the single write path for balance and earnings. Every
// primitive builds one signed mutation plus one entry and hands both to the
// repository, which applies them in one transaction under the account row
// lock.
type ledgerService struct {
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewLedgerService creates the ledger service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// signed returns amount, -amount or zero depending on sign.
func signed(amount decimal.Decimal, sign int) decimal.Decimal {
	switch {
	case sign > 0:
		return amount
	case sign < 0:
		return amount.Neg()
	default:
		return decimal.Zero
	}
}

// apply validates the amount, stamps the entry and executes the mutation.
func (s *ledgerService) apply(ctx context.Context, accountID string, amount decimal.Decimal, kind domain.EntryKind, detail domain.EntryDetail, balanceSign, earningsSign int) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	entry := domain.LedgerEntry{
		EntryID:   uuid.NewString(),
		AccountID: accountID,
		Kind:      kind,
		Amount:    amount,
		Detail:    detail,
		EntryDate: now,
		CreatedAt: now,
	}
	mutation := domain.BalanceMutation{
		AccountID:     accountID,
		BalanceDelta:  signed(amount, balanceSign),
		EarningsDelta: signed(amount, earningsSign),
	}

	if err := s.ledgerRepo.ApplyMutation(ctx, mutation, entry); err != nil {
		logger.Error("Failed to apply ledger mutation",
			slog.String("account_id", accountID),
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.Info("Ledger mutation applied",
		slog.String("account_id", accountID),
		slog.String("kind", string(kind)),
		slog.String("amount", amount.String()),
	)
	return &entry, nil
}

func (s *ledgerService) CreditBalance(ctx context.Context, accountID string, amount decimal.Decimal, kind domain.EntryKind, detail domain.EntryDetail) (*domain.LedgerEntry, error) {
	return s.apply(ctx, accountID, amount, kind, detail, 1, 0)
}

func (s *ledgerService) DebitBalance(ctx context.Context, accountID string, amount decimal.Decimal, kind domain.EntryKind, detail domain.EntryDetail) (*domain.LedgerEntry, error) {
	return s.apply(ctx, accountID, amount, kind, detail, -1, 0)
}

func (s *ledgerService) CreditEarnings(ctx context.Context, accountID string, amount decimal.Decimal, kind domain.EntryKind, detail domain.EntryDetail) (*domain.LedgerEntry, error) {
	return s.apply(ctx, accountID, amount, kind, detail, 0, 1)
}

func (s *ledgerService) DebitEarnings(ctx context.Context, accountID string, amount decimal.Decimal, kind domain.EntryKind, detail domain.EntryDetail) (*domain.LedgerEntry, error) {
	return s.apply(ctx, accountID, amount, kind, detail, 0, -1)
}

func (s *ledgerService) CreditBalanceAndEarnings(ctx context.Context, accountID string, amount decimal.Decimal, kind domain.EntryKind, detail domain.EntryDetail) (*domain.LedgerEntry, error) {
	return s.apply(ctx, accountID, amount, kind, detail, 1, 1)
}

func (s *ledgerService) DebitBalanceAndEarnings(ctx context.Context, accountID string, amount decimal.Decimal, kind domain.EntryKind, detail domain.EntryDetail) (*domain.LedgerEntry, error) {
	return s.apply(ctx, accountID, amount, kind, detail, -1, -1)
}

// ListEntries retrieves a page of the account's transaction history.
func (s *ledgerService) ListEntries(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	entries, next, err := s.ledgerRepo.ListEntriesByAccount(ctx, accountID, limit, nextToken)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list ledger entries",
			slog.String("account_id", accountID),
			slog.String("error", err.Error()),
		)
		return nil, nil, err
	}
	return entries, next, nil
}
