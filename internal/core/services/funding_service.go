package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/driveyield/backend/internal/apperrors"
	"github.com/driveyield/backend/internal/core/domain"
	portsrepo "github.com/driveyield/backend/internal/core/ports/repositories"
	portssvc "github.com/driveyield/backend/internal/core/ports/services"
	"github.com/driveyield/backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// fundingService credits verified deposits and pays tiered referral bonuses.
// The deposit and the bonus are two separate atomic units on two different
// accounts; the deposit commits first and a bonus failure never unwinds it.
type fundingService struct {
	accountRepo portsrepo.AccountReader
	ledger      portssvc.LedgerSvcFacade
}

// NewFundingService creates the funding service.
func NewFundingService(accountRepo portsrepo.AccountReader, ledger portssvc.LedgerSvcFacade) portssvc.FundingSvcFacade {
	return &fundingService{accountRepo: accountRepo, ledger: ledger}
}

var _ portssvc.FundingSvcFacade = (*fundingService)(nil)

// Deposit credits the verified amount and pays the referrer's bonus, if any.
func (s *fundingService) Deposit(ctx context.Context, accountID string, amount decimal.Decimal, paymentRef string, now time.Time) (*domain.Account, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: deposit amount must be positive", apperrors.ErrValidation)
	}

	depositor, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if _, err := s.ledger.CreditBalance(ctx, accountID, amount, domain.EntryRecharge, domain.EntryDetail{PaymentRef: paymentRef}); err != nil {
		return nil, err
	}

	s.payReferralBonus(ctx, depositor, amount)

	refreshed, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return refreshed, nil
}

// payReferralBonus credits the depositor's referrer per the deposit tier.
// The deposit is already committed, so failures here are logged and swallowed
// rather than surfaced to the depositor.
func (s *fundingService) payReferralBonus(ctx context.Context, depositor *domain.Account, amount decimal.Decimal) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if depositor.ReferrerID == "" {
		return
	}
	bonus := domain.ReferralBonus(amount)
	if !bonus.IsPositive() {
		return
	}

	detail := domain.EntryDetail{
		FromAccountID: depositor.AccountID,
		FromMobile:    depositor.MobileNumber,
	}
	_, err := s.ledger.CreditBalanceAndEarnings(ctx, depositor.ReferrerID, bonus, domain.EntryReferralBonus, detail)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Referrer account vanished; the deposit itself stands.
			logger.Warn("Referrer not found, skipping bonus",
				slog.String("referrer_id", depositor.ReferrerID),
				slog.String("depositor_id", depositor.AccountID),
			)
			return
		}
		logger.Error("Failed to pay referral bonus",
			slog.String("referrer_id", depositor.ReferrerID),
			slog.String("depositor_id", depositor.AccountID),
			slog.String("error", err.Error()),
		)
		return
	}

	logger.Info("Referral bonus paid",
		slog.String("referrer_id", depositor.ReferrerID),
		slog.String("depositor_id", depositor.AccountID),
		slog.String("bonus", bonus.String()),
	)
}
