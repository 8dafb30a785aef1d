package repositories

import (
	"context"
	"time"

	"github.com/driveyield/backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByMobile retrieves an account by its mobile number.
	FindAccountByMobile(ctx context.Context, mobileNumber string) (*domain.Account, error)

	// ListReferredAccounts retrieves the accounts that registered with the
	// given account as their referrer, newest first.
	ListReferredAccounts(ctx context.Context, referrerID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account profile data.
// Balance, earnings and the accrual watermark are deliberately absent here:
// those fields are mutated only through the ledger repository.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateBankDetails replaces the account's bank-transfer coordinates.
	UpdateBankDetails(ctx context.Context, accountID string, details domain.BankDetails, now time.Time) error

	// UpdatePasswordHash replaces the account's login password hash.
	UpdatePasswordHash(ctx context.Context, accountID string, passwordHash string, now time.Time) error

	// UpdateWithdrawalSecretHash sets or replaces the account's withdrawal secret hash.
	UpdateWithdrawalSecretHash(ctx context.Context, accountID string, secretHash string, now time.Time) error
}

// AccountTransactionSupport defines operations that participate in a caller-managed transaction
type AccountTransactionSupport interface {
	// FindAccountByIDForUpdate selects an account and locks its row for update
	// within the given transaction. Every mutating ledger operation goes
	// through this lock, serializing all writers of one account.
	FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
