package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind identifies the balance-affecting event a ledger entry records.
// Amounts are stored as unsigned magnitudes; the kind determines direction.
type EntryKind string

const (
	EntryRecharge      EntryKind = "RECHARGE"
	EntryWithdrawal    EntryKind = "WITHDRAWAL"
	EntryPurchase      EntryKind = "PURCHASE"
	EntryReferralBonus EntryKind = "REFERRAL_BONUS"
	EntryDailyIncome   EntryKind = "DAILY_INCOME"
)

// EntryDetail carries the kind-specific payload of a ledger entry.
// Only the fields relevant to the entry's kind are populated.
type EntryDetail struct {
	AssetName     string `json:"assetName,omitempty"`     // PURCHASE
	FromAccountID string `json:"fromAccountID,omitempty"` // REFERRAL_BONUS: depositing account
	FromMobile    string `json:"fromMobile,omitempty"`    // REFERRAL_BONUS: depositor mobile
	PaymentRef    string `json:"paymentRef,omitempty"`    // RECHARGE: gateway reference
	BankAccount   string `json:"bankAccount,omitempty"`   // WITHDRAWAL: bank snapshot
	BankIFSC      string `json:"bankIFSC,omitempty"`      // WITHDRAWAL: bank snapshot
	Days          int    `json:"days,omitempty"`          // DAILY_INCOME: days covered
}

// LedgerEntry is an immutable record of one balance-affecting event.
// Entries are append-only: never mutated or deleted after creation.
type LedgerEntry struct {
	EntryID   string          `json:"entryID"` // Primary key (UUID)
	AccountID string          `json:"accountID"`
	Kind      EntryKind       `json:"kind"`
	Amount    decimal.Decimal `json:"amount"` // Unsigned magnitude
	Detail    EntryDetail     `json:"detail"`
	EntryDate time.Time       `json:"entryDate"`
	CreatedAt time.Time       `json:"createdAt"`
}

// BalanceMutation describes a single atomic change to an account's balance
// and/or earnings. Deltas are signed; the ledger repository applies both
// deltas and the paired entry in one transaction, rejecting any mutation
// that would drive either value negative.
type BalanceMutation struct {
	AccountID     string
	BalanceDelta  decimal.Decimal
	EarningsDelta decimal.Decimal
}
