package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the database representation of a member's ledger account.
type Account struct {
	AccountID            string          `db:"account_id"`
	FullName             string          `db:"full_name"`
	MobileNumber         string          `db:"mobile_number"`
	PasswordHash         string          `db:"password_hash"`
	WithdrawalSecretHash string          `db:"withdrawal_secret_hash"` // Nullable
	ReferrerID           string          `db:"referrer_id"`            // Nullable
	Balance              decimal.Decimal `db:"balance"`
	Earnings             decimal.Decimal `db:"earnings"`
	BankAccountNumber    string          `db:"bank_account_number"` // Nullable
	BankIFSC             string          `db:"bank_ifsc"`           // Nullable
	LastAccrualDate      *time.Time      `db:"last_accrual_date"`   // Nullable, midnight-normalized
	AuditFields
}
