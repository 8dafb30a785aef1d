package services

import (
	"context"
	"time"

	"github.com/driveyield/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FundingSvcFacade consumes verified deposit instructions and pays referral
// bonuses. The deposit credit commits first; the bonus is a separate atomic
// unit on the referrer, so no operation holds two account locks at once.
type FundingSvcFacade interface {
	// Deposit credits the verified amount to the account and, if the account
	// was referred, pays the tiered bonus to the referrer. Returns the
	// refreshed depositor account.
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal, paymentRef string, now time.Time) (*domain.Account, error)
}
