package config

import (
	"fmt"

	"github.com/driveyield/backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// defaultCatalog is the built-in purchase catalog, used when no catalog file
// is configured. Prices and payouts are in currency units; every plan runs a
// full year.
func defaultCatalog() []domain.AssetDefinition {
	return []domain.AssetDefinition{
		{Name: "Daily profit car #1", Price: decimal.NewFromInt(275), DailyPayout: decimal.NewFromInt(55), CycleDays: 365},
		{Name: "Daily profit car #2", Price: decimal.NewFromInt(499), DailyPayout: decimal.NewFromInt(110), CycleDays: 365},
		{Name: "Daily profit car #3", Price: decimal.NewFromInt(2800), DailyPayout: decimal.NewFromInt(145), CycleDays: 365},
		{Name: "Daily profit car #4", Price: decimal.NewFromInt(7800), DailyPayout: decimal.NewFromInt(1100), CycleDays: 365},
		{Name: "Daily profit car #5", Price: decimal.NewFromInt(111000), DailyPayout: decimal.NewFromInt(2400), CycleDays: 365},
	}
}

// catalogFile mirrors the YAML layout of an asset catalog override.
type catalogFile struct {
	Assets []struct {
		Name        string `mapstructure:"name"`
		Price       string `mapstructure:"price"`
		DailyPayout string `mapstructure:"dailyPayout"`
		CycleDays   int    `mapstructure:"cycleDays"`
	} `mapstructure:"assets"`
}

// LoadAssetCatalog returns the purchase catalog: the file at path when set,
// the built-in table otherwise. Catalog changes require a redeploy; nothing
// mutates the catalog at runtime.
func LoadAssetCatalog(path string) ([]domain.AssetDefinition, error) {
	if path == "" {
		return defaultCatalog(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read asset catalog file %s: %w", path, err)
	}

	var file catalogFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to parse asset catalog file %s: %w", path, err)
	}
	if len(file.Assets) == 0 {
		return nil, fmt.Errorf("asset catalog file %s defines no assets", path)
	}

	defs := make([]domain.AssetDefinition, 0, len(file.Assets))
	for _, a := range file.Assets {
		price, err := decimal.NewFromString(a.Price)
		if err != nil || !price.IsPositive() {
			return nil, fmt.Errorf("asset %q has invalid price %q", a.Name, a.Price)
		}
		payout, err := decimal.NewFromString(a.DailyPayout)
		if err != nil || !payout.IsPositive() {
			return nil, fmt.Errorf("asset %q has invalid dailyPayout %q", a.Name, a.DailyPayout)
		}
		if a.Name == "" || a.CycleDays <= 0 {
			return nil, fmt.Errorf("asset %q has invalid name or cycleDays", a.Name)
		}
		defs = append(defs, domain.AssetDefinition{
			Name:        a.Name,
			Price:       price,
			DailyPayout: payout,
			CycleDays:   a.CycleDays,
		})
	}
	return defs, nil
}
