package services

import (
	"github.com/driveyield/backend/internal/core/domain"
	portssvc "github.com/driveyield/backend/internal/core/ports/services"
)

// assetCatalogService serves the static purchase catalog loaded at startup.
// It holds an immutable snapshot, so lookups need no locking.
type assetCatalogService struct {
	defs   []domain.AssetDefinition
	byName map[string]domain.AssetDefinition
}

// NewAssetCatalogService creates the catalog service from loaded definitions.
func NewAssetCatalogService(defs []domain.AssetDefinition) portssvc.AssetCatalogSvcFacade {
	byName := make(map[string]domain.AssetDefinition, len(defs))
	for _, d := range defs {
		byName[d.Name] = d
	}
	return &assetCatalogService{defs: defs, byName: byName}
}

var _ portssvc.AssetCatalogSvcFacade = (*assetCatalogService)(nil)

// ListAssets returns every purchasable asset definition in catalog order.
func (s *assetCatalogService) ListAssets() []domain.AssetDefinition {
	out := make([]domain.AssetDefinition, len(s.defs))
	copy(out, s.defs)
	return out
}

// GetAsset looks up an asset definition by exact name.
func (s *assetCatalogService) GetAsset(name string) (domain.AssetDefinition, bool) {
	def, ok := s.byName[name]
	return def, ok
}
