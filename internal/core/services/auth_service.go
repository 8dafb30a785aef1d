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
	"github.com/driveyield/backend/internal/platform/config"
	"github.com/driveyield/backend/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// authService handles registration and credential verification.
type authService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	cfg         *config.Config
}

// NewAuthService creates the auth service.
func NewAuthService(accountRepo portsrepo.AccountRepositoryFacade, cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{accountRepo: accountRepo, cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates a new account, resolving the optional referral code to an
// existing account's mobile number. The referrer link is set once and never
// changes afterwards.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	referrerID := ""
	if req.ReferralCode != "" {
		referrer, err := s.accountRepo.FindAccountByMobile(ctx, req.ReferralCode)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: referral code does not match any account", apperrors.ErrValidation)
			}
			return nil, err
		}
		if referrer.MobileNumber == req.MobileNumber {
			return nil, fmt.Errorf("%w: cannot refer yourself", apperrors.ErrValidation)
		}
		referrerID = referrer.AccountID
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password during registration", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	accountID := uuid.NewString()
	account := domain.Account{
		AccountID:    accountID,
		FullName:     req.FullName,
		MobileNumber: req.MobileNumber,
		PasswordHash: passwordHash,
		ReferrerID:   referrerID,
		Balance:      decimal.Zero,
		Earnings:     decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     accountID,
			LastUpdatedAt: now,
			LastUpdatedBy: accountID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: mobile number already registered", apperrors.ErrDuplicate)
		}
		logger.Error("Failed to save new account", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Account registered", slog.String("account_id", account.AccountID))
	return &account, nil
}

// Login verifies mobile number + password and issues a signed access token.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.Account, string, time.Time, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByMobile(ctx, req.MobileNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error as a bad password, so login probes cannot
			// distinguish unknown numbers from wrong credentials.
			return nil, "", time.Time{}, apperrors.ErrUnauthorized
		}
		return nil, "", time.Time{}, err
	}

	if !utils.CheckPasswordHash(req.Password, account.PasswordHash) {
		return nil, "", time.Time{}, apperrors.ErrUnauthorized
	}

	token, err := utils.GenerateJWT(account.AccountID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("account_id", account.AccountID), slog.String("error", err.Error()))
		return nil, "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	logger.Info("Login succeeded", slog.String("account_id", account.AccountID))
	return account, token, expiresAt, nil
}
