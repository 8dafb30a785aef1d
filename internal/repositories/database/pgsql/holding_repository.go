package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/driveyield/backend/internal/apperrors"
	"github.com/driveyield/backend/internal/core/domain"
	portsrepo "github.com/driveyield/backend/internal/core/ports/repositories"
	"github.com/driveyield/backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxHoldingRepository struct {
	BaseRepository
}

// newPgxHoldingRepository creates a new repository for holding data.
func newPgxHoldingRepository(pool *pgxpool.Pool) *PgxHoldingRepository {
	return &PgxHoldingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.HoldingRepositoryFacade = (*PgxHoldingRepository)(nil)

func toModelHolding(d domain.Holding) models.Holding {
	return models.Holding{
		HoldingID:   d.HoldingID,
		AccountID:   d.AccountID,
		AssetName:   d.AssetName,
		Price:       d.Price,
		DailyPayout: d.DailyPayout,
		CycleDays:   d.CycleDays,
		PurchasedAt: d.PurchasedAt,
		ExpiresAt:   d.ExpiresAt,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainHolding(m models.Holding) domain.Holding {
	return domain.Holding{
		HoldingID:   m.HoldingID,
		AccountID:   m.AccountID,
		AssetName:   m.AssetName,
		Price:       m.Price,
		DailyPayout: m.DailyPayout,
		CycleDays:   m.CycleDays,
		PurchasedAt: m.PurchasedAt,
		ExpiresAt:   m.ExpiresAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const holdingColumns = `holding_id, account_id, asset_name, price, daily_payout, cycle_days, purchased_at, expires_at, created_at, created_by, last_updated_at, last_updated_by`

// FindHoldingsByAccount retrieves all holdings of an account, newest first.
func (r *PgxHoldingRepository) FindHoldingsByAccount(ctx context.Context, accountID string) ([]domain.Holding, error) {
	query := `SELECT ` + holdingColumns + ` FROM holdings WHERE account_id = $1 ORDER BY purchased_at DESC;`

	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings for account %s: %w", accountID, err)
	}
	defer rows.Close()

	holdings := make([]domain.Holding, 0)
	for rows.Next() {
		var m models.Holding
		err := rows.Scan(
			&m.HoldingID,
			&m.AccountID,
			&m.AssetName,
			&m.Price,
			&m.DailyPayout,
			&m.CycleDays,
			&m.PurchasedAt,
			&m.ExpiresAt,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holding row for account %s: %w", accountID, err)
		}
		holdings = append(holdings, toDomainHolding(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding rows for account %s: %w", accountID, err)
	}
	return holdings, nil
}

// HoldingExists reports whether the account ever purchased the named asset.
func (r *PgxHoldingRepository) HoldingExists(ctx context.Context, accountID string, assetName string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM holdings WHERE account_id = $1 AND asset_name = $2);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, accountID, assetName).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check holding existence for account %s: %w", accountID, err)
	}
	return exists, nil
}

// InsertHoldingInTx inserts a holding within the given transaction.
func (r *PgxHoldingRepository) InsertHoldingInTx(ctx context.Context, tx pgx.Tx, holding domain.Holding) error {
	m := toModelHolding(holding)
	query := `
		INSERT INTO holdings (` + holdingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := tx.Exec(ctx, query,
		m.HoldingID,
		m.AccountID,
		m.AssetName,
		m.Price,
		m.DailyPayout,
		m.CycleDays,
		m.PurchasedAt,
		m.ExpiresAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicateHolding
		}
		return fmt.Errorf("failed to insert holding %s: %w", m.HoldingID, err)
	}
	return nil
}
