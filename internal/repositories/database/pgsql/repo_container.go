package pgsql

import (
	portsrepo "github.com/driveyield/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	holdingRepo := newPgxHoldingRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool, accountRepo, holdingRepo)

	return portsrepo.RepositoryProvider{
		AccountRepo: accountRepo,
		HoldingRepo: holdingRepo,
		LedgerRepo:  ledgerRepo,
	}
}
