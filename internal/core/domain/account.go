package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankDetails holds the bank-transfer coordinates an account withdraws to.
// A withdrawal entry snapshots these values at request time; later changes
// never alter historical entries.
type BankDetails struct {
	AccountNumber string `json:"accountNumber"`
	IFSC          string `json:"ifsc"`
}

// Account represents a member's ledger identity.
// Balance and Earnings are only ever mutated through the ledger repository,
// which pairs every mutation with exactly one ledger entry in the same
// database transaction. Both values are non-negative after every committed
// operation; Earnings is the withdrawable subset accrued from daily income
// and referral bonuses.
type Account struct {
	AccountID            string          `json:"accountID"` // Primary key (UUID)
	FullName             string          `json:"fullName"`
	MobileNumber         string          `json:"mobileNumber"` // Unique login / referral identifier
	PasswordHash         string          `json:"-"`
	WithdrawalSecretHash string          `json:"-"`                    // Empty until configured; bcrypt hash
	ReferrerID           string          `json:"referrerID,omitempty"` // Set once at registration, immutable
	Balance              decimal.Decimal `json:"balance"`
	Earnings             decimal.Decimal `json:"earnings"`
	BankDetails          BankDetails     `json:"bankDetails"`
	// LastAccrualDate is the midnight-normalized day up to which daily income
	// has been credited. Nil for accounts that never collected; advances
	// monotonically.
	LastAccrualDate *time.Time `json:"lastAccrualDate,omitempty"`
	AuditFields
}

// HasWithdrawalSecret reports whether the account ever configured a withdrawal secret.
func (a *Account) HasWithdrawalSecret() bool {
	return a.WithdrawalSecretHash != ""
}
