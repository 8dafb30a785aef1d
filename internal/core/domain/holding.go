package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding represents a purchased yield-bearing asset. Rows are immutable after
// creation and never deleted; a holding simply stops paying once expired.
type Holding struct {
	HoldingID   string          `json:"holdingID"` // Primary key (UUID)
	AccountID   string          `json:"accountID"`
	AssetName   string          `json:"assetName"` // Unique per account
	Price       decimal.Decimal `json:"price"`
	DailyPayout decimal.Decimal `json:"dailyPayout"`
	CycleDays   int             `json:"cycleDays"`
	PurchasedAt time.Time       `json:"purchasedAt"`
	ExpiresAt   time.Time       `json:"expiresAt"` // PurchasedAt + CycleDays days
	AuditFields
}

// ActiveAt reports whether the holding still pays out at the given instant.
// Activity is derived, not stored.
func (h *Holding) ActiveAt(now time.Time) bool {
	return now.Before(h.ExpiresAt)
}
