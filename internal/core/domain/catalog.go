package domain

import "github.com/shopspring/decimal"

// AssetDefinition is one entry of the static purchase catalog: a fixed price,
// a fixed daily payout and a fixed lifetime in days. The catalog is read-only
// at runtime; changes require a configuration deploy.
type AssetDefinition struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	DailyPayout decimal.Decimal `json:"dailyPayout"`
	CycleDays   int             `json:"cycleDays"`
}
