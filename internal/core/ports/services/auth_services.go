package services

import (
	"context"
	"time"

	"github.com/driveyield/backend/internal/core/domain"
	"github.com/driveyield/backend/internal/dto"
)

// AuthSvcFacade handles registration and credential verification.
type AuthSvcFacade interface {
	// Register creates a new account. A supplied referral code must resolve
	// to an existing account's mobile number; the referrer link is immutable
	// afterwards.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error)

	// Login verifies mobile number + password and issues a signed access
	// token. Returns the account, the token and its expiry.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.Account, string, time.Time, error)
}
