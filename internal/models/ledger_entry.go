package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind mirrors domain.EntryKind at the storage layer.
type EntryKind string

// LedgerEntry is the database representation of one append-only ledger record.
// Detail is stored as JSONB.
type LedgerEntry struct {
	EntryID   string          `db:"entry_id"`
	AccountID string          `db:"account_id"`
	Kind      EntryKind       `db:"kind"`
	Amount    decimal.Decimal `db:"amount"`
	Detail    []byte          `db:"detail"`
	EntryDate time.Time       `db:"entry_date"`
	CreatedAt time.Time       `db:"created_at"`
}
