package services

import (
	"github.com/driveyield/backend/internal/core/domain"
	portsrepo "github.com/driveyield/backend/internal/core/ports/repositories"
	portssvc "github.com/driveyield/backend/internal/core/ports/services"
	"github.com/driveyield/backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, catalog []domain.AssetDefinition) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The ledger is wired first since the money-moving services depend on it
	container.Ledger = NewLedgerService(repos.LedgerRepo)
	container.Catalog = NewAssetCatalogService(catalog)

	container.Auth = NewAuthService(repos.AccountRepo, cfg)
	container.Account = NewAccountService(repos.AccountRepo, repos.HoldingRepo, repos.LedgerRepo)
	container.Purchase = NewPurchaseService(container.Catalog, repos.HoldingRepo, repos.LedgerRepo)
	container.Income = NewIncomeService(repos.AccountRepo, repos.HoldingRepo, repos.LedgerRepo)
	container.Funding = NewFundingService(repos.AccountRepo, container.Ledger)
	container.Withdrawal = NewWithdrawalService(repos.AccountRepo, container.Ledger, cfg.MinWithdrawalAmount)

	return container
}
