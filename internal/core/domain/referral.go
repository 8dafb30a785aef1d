package domain

import "github.com/shopspring/decimal"

// referralTier maps a minimum deposit amount to a bonus rate. Tiers are
// evaluated highest first and are non-cumulative.
type referralTier struct {
	MinAmount decimal.Decimal
	Rate      decimal.Decimal
}

var referralTiers = []referralTier{
	{MinAmount: decimal.NewFromInt(7800), Rate: decimal.RequireFromString("0.10")},
	{MinAmount: decimal.NewFromInt(2800), Rate: decimal.RequireFromString("0.07")},
	{MinAmount: decimal.NewFromInt(275), Rate: decimal.RequireFromString("0.05")},
}

// ReferralBonusRate returns the bonus rate the referrer earns on a referred
// deposit of the given amount. Deposits below the lowest tier earn zero.
func ReferralBonusRate(amount decimal.Decimal) decimal.Decimal {
	for _, tier := range referralTiers {
		if amount.GreaterThanOrEqual(tier.MinAmount) {
			return tier.Rate
		}
	}
	return decimal.Zero
}

// ReferralBonus computes the bonus owed on a referred deposit.
func ReferralBonus(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(ReferralBonusRate(amount))
}
