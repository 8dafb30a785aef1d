package dto

import (
	"time"

	"github.com/driveyield/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssetResponse is one catalog entry.
type AssetResponse struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	DailyPayout decimal.Decimal `json:"dailyPayout"`
	CycleDays   int             `json:"cycleDays"`
}

// ToAssetResponses converts catalog definitions to DTOs.
func ToAssetResponses(defs []domain.AssetDefinition) []AssetResponse {
	res := make([]AssetResponse, len(defs))
	for i, d := range defs {
		res[i] = AssetResponse{Name: d.Name, Price: d.Price, DailyPayout: d.DailyPayout, CycleDays: d.CycleDays}
	}
	return res
}

// PurchaseRequest names the asset to purchase.
type PurchaseRequest struct {
	AssetName string `json:"assetName" binding:"required"`
}

// HoldingResponse defines the data returned for a holding.
type HoldingResponse struct {
	HoldingID   string          `json:"holdingID"`
	AssetName   string          `json:"assetName"`
	Price       decimal.Decimal `json:"price"`
	DailyPayout decimal.Decimal `json:"dailyPayout"`
	CycleDays   int             `json:"cycleDays"`
	PurchasedAt time.Time       `json:"purchasedAt"`
	ExpiresAt   time.Time       `json:"expiresAt"`
	Active      bool            `json:"active"`
}

// ToHoldingResponse converts a domain.Holding, deriving activity at now.
func ToHoldingResponse(h *domain.Holding, now time.Time) HoldingResponse {
	return HoldingResponse{
		HoldingID:   h.HoldingID,
		AssetName:   h.AssetName,
		Price:       h.Price,
		DailyPayout: h.DailyPayout,
		CycleDays:   h.CycleDays,
		PurchasedAt: h.PurchasedAt,
		ExpiresAt:   h.ExpiresAt,
		Active:      h.ActiveAt(now),
	}
}

// ToHoldingResponses converts a slice of holdings.
func ToHoldingResponses(holdings []domain.Holding, now time.Time) []HoldingResponse {
	res := make([]HoldingResponse, len(holdings))
	for i := range holdings {
		res[i] = ToHoldingResponse(&holdings[i], now)
	}
	return res
}
