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
	"github.com/driveyield/backend/internal/utils"
	"github.com/shopspring/decimal"
)

// withdrawalService validates withdrawal requests in a fixed order and
// executes them as one atomic debit of both balance and earnings. The entry
// snapshots the account's bank details at request time.
type withdrawalService struct {
	accountRepo portsrepo.AccountReader
	ledger      portssvc.LedgerSvcFacade
	minAmount   decimal.Decimal
}

// NewWithdrawalService creates the withdrawal service.
func NewWithdrawalService(accountRepo portsrepo.AccountReader, ledger portssvc.LedgerSvcFacade, minAmount decimal.Decimal) portssvc.WithdrawalSvcFacade {
	return &withdrawalService{accountRepo: accountRepo, ledger: ledger, minAmount: minAmount}
}

var _ portssvc.WithdrawalSvcFacade = (*withdrawalService)(nil)

// Withdraw runs the ordered validation chain and debits earnings on success.
func (s *withdrawalService) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, secret string, now time.Time) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	acc, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	// Validation order is fixed: secret configured, secret match, positive
	// amount, sufficient earnings, configured minimum.
	if !acc.HasWithdrawalSecret() {
		return nil, apperrors.ErrNoWithdrawalSecret
	}
	if !utils.CheckPasswordHash(secret, acc.WithdrawalSecretHash) {
		return nil, apperrors.ErrInvalidWithdrawalSecret
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: withdrawal amount must be positive", apperrors.ErrValidation)
	}
	if amount.GreaterThan(acc.Earnings) {
		return nil, apperrors.ErrInsufficientEarnings
	}
	if amount.LessThan(s.minAmount) {
		return nil, apperrors.ErrBelowMinimumWithdrawal
	}

	detail := domain.EntryDetail{
		BankAccount: acc.BankDetails.AccountNumber,
		BankIFSC:    acc.BankDetails.IFSC,
	}
	if _, err := s.ledger.DebitBalanceAndEarnings(ctx, accountID, amount, domain.EntryWithdrawal, detail); err != nil {
		return nil, err
	}

	logger.Info("Withdrawal executed",
		slog.String("account_id", accountID),
		slog.String("amount", amount.String()),
	)

	refreshed, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return refreshed, nil
}
