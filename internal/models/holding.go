package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is the database representation of a purchased asset.
// Rows are insert-only; (account_id, asset_name) is unique.
type Holding struct {
	HoldingID   string          `db:"holding_id"`
	AccountID   string          `db:"account_id"`
	AssetName   string          `db:"asset_name"`
	Price       decimal.Decimal `db:"price"`
	DailyPayout decimal.Decimal `db:"daily_payout"`
	CycleDays   int             `db:"cycle_days"`
	PurchasedAt time.Time       `db:"purchased_at"`
	ExpiresAt   time.Time       `db:"expires_at"`
	AuditFields
}
