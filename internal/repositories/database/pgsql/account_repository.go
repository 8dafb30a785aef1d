package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/driveyield/backend/internal/apperrors"
	"github.com/driveyield/backend/internal/core/domain"
	portsrepo "github.com/driveyield/backend/internal/core/ports/repositories"
	"github.com/driveyield/backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements the facade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// Helper to convert domain.Account to models.Account for DB storage
func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:            d.AccountID,
		FullName:             d.FullName,
		MobileNumber:         d.MobileNumber,
		PasswordHash:         d.PasswordHash,
		WithdrawalSecretHash: d.WithdrawalSecretHash,
		ReferrerID:           d.ReferrerID,
		Balance:              d.Balance,
		Earnings:             d.Earnings,
		BankAccountNumber:    d.BankDetails.AccountNumber,
		BankIFSC:             d.BankDetails.IFSC,
		LastAccrualDate:      d.LastAccrualDate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Account from DB to domain.Account
func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:            m.AccountID,
		FullName:             m.FullName,
		MobileNumber:         m.MobileNumber,
		PasswordHash:         m.PasswordHash,
		WithdrawalSecretHash: m.WithdrawalSecretHash,
		ReferrerID:           m.ReferrerID,
		Balance:              m.Balance,
		Earnings:             m.Earnings,
		BankDetails: domain.BankDetails{
			AccountNumber: m.BankAccountNumber,
			IFSC:          m.BankIFSC,
		},
		LastAccrualDate: m.LastAccrualDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const accountColumns = `account_id, full_name, mobile_number, password_hash, withdrawal_secret_hash, referrer_id, balance, earnings, bank_account_number, bank_ifsc, last_accrual_date, created_at, created_by, last_updated_at, last_updated_by`

// scanAccount scans one account row into a model, normalizing NULLable columns.
func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	var secretHash, referrerID, bankAccount, bankIFSC sql.NullString

	err := row.Scan(
		&m.AccountID,
		&m.FullName,
		&m.MobileNumber,
		&m.PasswordHash,
		&secretHash,
		&referrerID,
		&m.Balance,
		&m.Earnings,
		&bankAccount,
		&bankIFSC,
		&m.LastAccrualDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.Account{}, err
	}

	m.WithdrawalSecretHash = secretHash.String
	m.ReferrerID = referrerID.String
	m.BankAccountNumber = bankAccount.String
	m.BankIFSC = bankIFSC.String
	return m, nil
}

// nullIfEmpty maps empty strings to SQL NULL on the way in.
func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// SaveAccount persists a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.FullName,
		m.MobileNumber,
		m.PasswordHash,
		nullIfEmpty(m.WithdrawalSecretHash),
		nullIfEmpty(m.ReferrerID),
		m.Balance,
		m.Earnings,
		nullIfEmpty(m.BankAccountNumber),
		nullIfEmpty(m.BankIFSC),
		m.LastAccrualDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	acc := toDomainAccount(m)
	return &acc, nil
}

// FindAccountByMobile retrieves an account by its mobile number.
func (r *PgxAccountRepository) FindAccountByMobile(ctx context.Context, mobileNumber string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE mobile_number = $1;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, mobileNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by mobile number: %w", err)
	}

	acc := toDomainAccount(m)
	return &acc, nil
}

// ListReferredAccounts retrieves the accounts that registered with the given
// account as their referrer, newest first.
func (r *PgxAccountRepository) ListReferredAccounts(ctx context.Context, referrerID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE referrer_id = $1 ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, referrerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query referred accounts for %s: %w", referrerID, err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan referred account row: %w", err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating referred account rows: %w", err)
	}
	return accounts, nil
}

// UpdateBankDetails replaces the account's bank-transfer coordinates.
func (r *PgxAccountRepository) UpdateBankDetails(ctx context.Context, accountID string, details domain.BankDetails, now time.Time) error {
	query := `
		UPDATE accounts
		SET bank_account_number = $2, bank_ifsc = $3, last_updated_at = $4, last_updated_by = $5
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, nullIfEmpty(details.AccountNumber), nullIfEmpty(details.IFSC), now, accountID)
	if err != nil {
		return fmt.Errorf("failed to update bank details for account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdatePasswordHash replaces the account's login password hash.
func (r *PgxAccountRepository) UpdatePasswordHash(ctx context.Context, accountID string, passwordHash string, now time.Time) error {
	query := `
		UPDATE accounts
		SET password_hash = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, passwordHash, now, accountID)
	if err != nil {
		return fmt.Errorf("failed to update password for account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateWithdrawalSecretHash sets or replaces the account's withdrawal secret hash.
func (r *PgxAccountRepository) UpdateWithdrawalSecretHash(ctx context.Context, accountID string, secretHash string, now time.Time) error {
	query := `
		UPDATE accounts
		SET withdrawal_secret_hash = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, secretHash, now, accountID)
	if err != nil {
		return fmt.Errorf("failed to update withdrawal secret for account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAccountByIDForUpdate selects an account and locks its row for update
// within the given transaction.
func (r *PgxAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 FOR UPDATE;`

	m, err := scanAccount(tx.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock account %s: %w", accountID, err)
	}

	acc := toDomainAccount(m)
	return &acc, nil
}
