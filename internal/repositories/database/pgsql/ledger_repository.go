package pgsql

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/driveyield/backend/internal/apperrors"
	"github.com/driveyield/backend/internal/core/domain"
	portsrepo "github.com/driveyield/backend/internal/core/ports/repositories"
	"github.com/driveyield/backend/internal/models"
	"github.com/driveyield/backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxLedgerRepository implements the atomic ledger operations. Every mutating
// method runs one transaction: lock the account row, validate, apply the
// balance change, append the entry, commit.
type PgxLedgerRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountTransactionSupport
	holdingRepo portsrepo.HoldingTransactionSupport
}

// newPgxLedgerRepository creates a new repository for ledger data.
func newPgxLedgerRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountTransactionSupport, holdingRepo portsrepo.HoldingTransactionSupport) *PgxLedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
		holdingRepo:    holdingRepo,
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func toDomainLedgerEntry(m models.LedgerEntry) (domain.LedgerEntry, error) {
	var detail domain.EntryDetail
	if len(m.Detail) > 0 {
		if err := json.Unmarshal(m.Detail, &detail); err != nil {
			return domain.LedgerEntry{}, fmt.Errorf("failed to decode detail of entry %s: %w", m.EntryID, err)
		}
	}
	return domain.LedgerEntry{
		EntryID:   m.EntryID,
		AccountID: m.AccountID,
		Kind:      domain.EntryKind(m.Kind),
		Amount:    m.Amount,
		Detail:    detail,
		EntryDate: m.EntryDate,
		CreatedAt: m.CreatedAt,
	}, nil
}

// insertEntryInTx appends one ledger entry within the given transaction.
func (r *PgxLedgerRepository) insertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) error {
	detailJSON, err := json.Marshal(entry.Detail)
	if err != nil {
		return fmt.Errorf("failed to encode detail of entry %s: %w", entry.EntryID, err)
	}

	query := `
		INSERT INTO ledger_entries (entry_id, account_id, kind, amount, detail, entry_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, query,
		entry.EntryID,
		entry.AccountID,
		string(entry.Kind),
		entry.Amount,
		detailJSON,
		entry.EntryDate,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ledger entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// updateBalancesInTx writes the new balance and earnings of a locked account row.
func (r *PgxLedgerRepository) updateBalancesInTx(ctx context.Context, tx pgx.Tx, accountID string, balance, earnings decimal.Decimal, now time.Time) error {
	query := `
		UPDATE accounts
		SET balance = $2, earnings = $3, last_updated_at = $4, last_updated_by = $5
		WHERE account_id = $1;
	`
	if _, err := tx.Exec(ctx, query, accountID, balance, earnings, now, accountID); err != nil {
		return fmt.Errorf("failed to update balances for account %s: %w", accountID, err)
	}
	return nil
}

// ApplyMutation applies signed balance/earnings deltas together with the paired entry.
func (r *PgxLedgerRepository) ApplyMutation(ctx context.Context, mutation domain.BalanceMutation, entry domain.LedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // No-op once committed

	acc, err := r.accountRepo.FindAccountByIDForUpdate(ctx, tx, mutation.AccountID)
	if err != nil {
		return err
	}

	newBalance := acc.Balance.Add(mutation.BalanceDelta)
	newEarnings := acc.Earnings.Add(mutation.EarningsDelta)
	if newBalance.IsNegative() {
		return apperrors.ErrInsufficientFunds
	}
	if newEarnings.IsNegative() {
		return apperrors.ErrInsufficientEarnings
	}

	if err := r.updateBalancesInTx(ctx, tx, mutation.AccountID, newBalance, newEarnings, entry.CreatedAt); err != nil {
		return err
	}
	if err := r.insertEntryInTx(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ApplyPurchase debits the balance by the holding's price, inserts the holding
// and appends the purchase entry, all in one transaction.
func (r *PgxLedgerRepository) ApplyPurchase(ctx context.Context, holding domain.Holding, entry domain.LedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	acc, err := r.accountRepo.FindAccountByIDForUpdate(ctx, tx, holding.AccountID)
	if err != nil {
		return err
	}

	newBalance := acc.Balance.Sub(holding.Price)
	if newBalance.IsNegative() {
		return apperrors.ErrInsufficientFunds
	}

	if err := r.holdingRepo.InsertHoldingInTx(ctx, tx, holding); err != nil {
		return err
	}
	if err := r.updateBalancesInTx(ctx, tx, holding.AccountID, newBalance, acc.Earnings, entry.CreatedAt); err != nil {
		return err
	}
	if err := r.insertEntryInTx(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// sameWatermark compares two accrual watermarks, treating nil as "never accrued".
func sameWatermark(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// ApplyAccrual credits balance and earnings by total and advances the accrual
// watermark. The watermark is re-checked under the row lock so concurrent
// collections cannot double-credit.
func (r *PgxLedgerRepository) ApplyAccrual(ctx context.Context, accountID string, total decimal.Decimal, fromWatermark *time.Time, toWatermark time.Time, entry *domain.LedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	acc, err := r.accountRepo.FindAccountByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		return err
	}
	if !sameWatermark(acc.LastAccrualDate, fromWatermark) {
		return apperrors.ErrConflict
	}

	now := toWatermark
	if entry != nil {
		now = entry.CreatedAt
	}

	query := `
		UPDATE accounts
		SET balance = $2, earnings = $3, last_accrual_date = $4, last_updated_at = $5, last_updated_by = $6
		WHERE account_id = $1;
	`
	_, err = tx.Exec(ctx, query,
		accountID,
		acc.Balance.Add(total),
		acc.Earnings.Add(total),
		toWatermark,
		now,
		accountID,
	)
	if err != nil {
		return fmt.Errorf("failed to apply accrual for account %s: %w", accountID, err)
	}

	if entry != nil {
		if err := r.insertEntryInTx(ctx, tx, *entry); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// ListEntriesByAccount retrieves a paginated list of ledger entries for an
// account, newest first, using token-based pagination.
func (r *PgxLedgerRepository) ListEntriesByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to know whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT entry_id, account_id, kind, amount, detail, entry_date, created_at
		FROM ledger_entries
		WHERE account_id = $1
	`
	// Stable ordering: created_at DESC with entry_id as tie-breaker.
	orderByClause := `ORDER BY created_at DESC, entry_id DESC`

	args := []interface{}{accountID}

	var query string
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastEntryID, decodeErr := pagination.DecodeEntryToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := `AND (created_at, entry_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastEntryID)
		query = baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	} else {
		query = baseQuery + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	}
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query ledger entries for account "+accountID, err)
	}
	defer rows.Close()

	entries := make([]models.LedgerEntry, 0, fetchLimit)
	for rows.Next() {
		var m models.LedgerEntry
		err := rows.Scan(
			&m.EntryID,
			&m.AccountID,
			&m.Kind,
			&m.Amount,
			&m.Detail,
			&m.EntryDate,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan ledger entry row for account "+accountID, err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating ledger entry rows for account "+accountID, err)
	}

	var nextTokenVal *string
	if len(entries) > limit {
		last := entries[limit-1]
		token := pagination.EncodeEntryToken(last.CreatedAt, last.EntryID)
		nextTokenVal = &token
		entries = entries[:limit]
	}

	results := make([]domain.LedgerEntry, 0, len(entries))
	for _, m := range entries {
		entry, err := toDomainLedgerEntry(m)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to decode ledger entry for account "+accountID, err)
		}
		results = append(results, entry)
	}
	return results, nextTokenVal, nil
}
