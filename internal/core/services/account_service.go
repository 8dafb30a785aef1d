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
	"github.com/driveyield/backend/internal/dto"
	"github.com/driveyield/backend/internal/middleware"
	"github.com/driveyield/backend/internal/utils"
)

// accountService serves profile reads and settings writes. Balance and
// earnings never change here; only the ledger mutates them.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	holdingRepo portsrepo.HoldingReader
	ledgerRepo  portsrepo.LedgerReader
}

// NewAccountService creates the account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, holdingRepo portsrepo.HoldingReader, ledgerRepo portsrepo.LedgerReader) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo, holdingRepo: holdingRepo, ledgerRepo: ledgerRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// GetAccountByID retrieves a specific account by its unique identifier.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID", slog.String("account_id", accountID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	return account, nil
}

// GetDashboard composes the account profile with its holdings and a page of
// ledger history.
func (s *accountService) GetDashboard(ctx context.Context, accountID string, entryLimit int, nextToken *string) (*dto.DashboardResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	holdings, err := s.holdingRepo.FindHoldingsByAccount(ctx, accountID)
	if err != nil {
		logger.Error("Failed to load holdings for dashboard", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return nil, err
	}

	entries, next, err := s.ledgerRepo.ListEntriesByAccount(ctx, accountID, entryLimit, nextToken)
	if err != nil {
		logger.Error("Failed to load ledger history for dashboard", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now().UTC()
	return &dto.DashboardResponse{
		Account:      dto.ToAccountResponse(account),
		Holdings:     dto.ToHoldingResponses(holdings, now),
		Transactions: dto.ToLedgerEntryResponses(entries),
		NextToken:    next,
	}, nil
}

// ListTeam retrieves the accounts referred by the given account.
func (s *accountService) ListTeam(ctx context.Context, accountID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListReferredAccounts(ctx, accountID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list referred accounts", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return nil, err
	}
	return accounts, nil
}

// UpdateBankDetails replaces the caller's bank-transfer coordinates.
func (s *accountService) UpdateBankDetails(ctx context.Context, accountID string, req dto.UpdateBankDetailsRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	details := domain.BankDetails{
		AccountNumber: req.AccountNumber,
		IFSC:          req.IFSC,
	}
	if err := s.accountRepo.UpdateBankDetails(ctx, accountID, details, time.Now().UTC()); err != nil {
		logger.Error("Failed to update bank details", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Bank details updated", slog.String("account_id", accountID))
	return nil
}

// ChangeLoginPassword replaces the login password after verifying the current one.
func (s *accountService) ChangeLoginPassword(ctx context.Context, accountID string, currentPassword, newPassword string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(currentPassword, account.PasswordHash) {
		return fmt.Errorf("%w: current password is incorrect", apperrors.ErrUnauthorized)
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		logger.Error("Failed to hash new password", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.accountRepo.UpdatePasswordHash(ctx, accountID, newHash, time.Now().UTC()); err != nil {
		logger.Error("Failed to update password", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Login password changed", slog.String("account_id", accountID))
	return nil
}

// SetWithdrawalSecret sets or replaces the withdrawal secret. The caller
// re-authenticates with the login password; the secret is stored hashed.
func (s *accountService) SetWithdrawalSecret(ctx context.Context, accountID string, loginPassword, secret string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(loginPassword, account.PasswordHash) {
		return fmt.Errorf("%w: login password is incorrect", apperrors.ErrUnauthorized)
	}

	secretHash, err := utils.HashPassword(secret)
	if err != nil {
		logger.Error("Failed to hash withdrawal secret", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to hash withdrawal secret: %w", err)
	}

	if err := s.accountRepo.UpdateWithdrawalSecretHash(ctx, accountID, secretHash, time.Now().UTC()); err != nil {
		logger.Error("Failed to update withdrawal secret", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Withdrawal secret configured", slog.String("account_id", accountID))
	return nil
}
