package services

import "github.com/driveyield/backend/internal/core/domain"

// AssetCatalogSvcFacade is the read-only purchase catalog, loaded from static
// configuration at process start.
type AssetCatalogSvcFacade interface {
	// ListAssets returns every purchasable asset definition in catalog order.
	ListAssets() []domain.AssetDefinition

	// GetAsset looks up an asset definition by exact name.
	GetAsset(name string) (domain.AssetDefinition, bool)
}
