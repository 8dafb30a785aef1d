package services

import (
	"context"
	"errors"
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

// incomeService credits daily income on demand. Income accrues per whole
// midnight boundary crossed since the account's watermark; collecting twice
// on the same day is a no-op. Holdings already expired at collection time
// contribute nothing, without proration for the days they were still active.
type incomeService struct {
	accountRepo portsrepo.AccountReader
	holdingRepo portsrepo.HoldingReader
	ledgerRepo  portsrepo.LedgerWriter
}

// NewIncomeService creates the income service.
func NewIncomeService(accountRepo portsrepo.AccountReader, holdingRepo portsrepo.HoldingReader, ledgerRepo portsrepo.LedgerWriter) portssvc.IncomeSvcFacade {
	return &incomeService{accountRepo: accountRepo, holdingRepo: holdingRepo, ledgerRepo: ledgerRepo}
}

var _ portssvc.IncomeSvcFacade = (*incomeService)(nil)

// midnightUTC normalizes an instant to the start of its UTC day.
func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CollectIncome credits all income owed since the accrual watermark and
// advances the watermark to today.
func (s *incomeService) CollectIncome(ctx context.Context, accountID string, now time.Time) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	acc, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	today := midnightUTC(now)

	// Accounts that never collected start one day behind, so their first
	// collection pays exactly one day.
	effectiveFrom := today.AddDate(0, 0, -1)
	if acc.LastAccrualDate != nil {
		effectiveFrom = midnightUTC(*acc.LastAccrualDate)
	}

	days := int(today.Sub(effectiveFrom).Hours() / 24)
	if days <= 0 {
		// Watermark already at (or past) today; nothing owed.
		return decimal.Zero, nil
	}

	holdings, err := s.holdingRepo.FindHoldingsByAccount(ctx, accountID)
	if err != nil {
		logger.Error("Failed to load holdings for accrual", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return decimal.Zero, err
	}

	perDay := decimal.Zero
	for i := range holdings {
		if holdings[i].ActiveAt(now) {
			perDay = perDay.Add(holdings[i].DailyPayout)
		}
	}
	total := perDay.Mul(decimal.NewFromInt(int64(days)))

	// Zero-income days still advance the watermark, just without an entry.
	var entry *domain.LedgerEntry
	if total.IsPositive() {
		entry = &domain.LedgerEntry{
			EntryID:   uuid.NewString(),
			AccountID: accountID,
			Kind:      domain.EntryDailyIncome,
			Amount:    total,
			Detail:    domain.EntryDetail{Days: days},
			EntryDate: now,
			CreatedAt: now,
		}
	}

	err = s.ledgerRepo.ApplyAccrual(ctx, accountID, total, acc.LastAccrualDate, today, entry)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// A concurrent collection already advanced the watermark.
			logger.Info("Accrual already collected concurrently", slog.String("account_id", accountID))
			return decimal.Zero, nil
		}
		logger.Error("Failed to apply accrual", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return decimal.Zero, err
	}

	logger.Info("Daily income collected",
		slog.String("account_id", accountID),
		slog.String("amount", total.String()),
		slog.Int("days", days),
	)
	return total, nil
}
