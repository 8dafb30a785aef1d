package services

import (
	"context"

	"github.com/driveyield/backend/internal/core/domain"
	"github.com/driveyield/backend/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetDashboard composes the account profile with its holdings and a page
	// of ledger history.
	GetDashboard(ctx context.Context, accountID string, entryLimit int, nextToken *string) (*dto.DashboardResponse, error)

	// ListTeam retrieves the accounts referred by the given account.
	ListTeam(ctx context.Context, accountID string) ([]domain.Account, error)
}

// AccountWriterSvc defines profile-settings write operations.
// Balance and earnings mutations are not here; they belong to the ledger.
type AccountWriterSvc interface {
	// UpdateBankDetails replaces the caller's bank-transfer coordinates.
	UpdateBankDetails(ctx context.Context, accountID string, req dto.UpdateBankDetailsRequest) error

	// ChangeLoginPassword replaces the login password after verifying the
	// current one.
	ChangeLoginPassword(ctx context.Context, accountID string, currentPassword, newPassword string) error

	// SetWithdrawalSecret sets or replaces the withdrawal secret. The caller
	// re-authenticates with the login password; the secret is stored hashed.
	SetWithdrawalSecret(ctx context.Context, accountID string, loginPassword, secret string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
