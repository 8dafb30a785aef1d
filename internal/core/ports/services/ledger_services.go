package services

import (
	"context"

	"github.com/driveyield/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade is the account ledger: the only component permitted to
// mutate balance and earnings. Every operation is atomic with exactly one
// appended ledger entry, and all operations against one account are strictly
// serialized. Amounts are unsigned magnitudes and must be positive.
type LedgerSvcFacade interface {
	// CreditBalance adds amount to the account's spendable balance.
	CreditBalance(ctx context.Context, accountID string, amount decimal.Decimal, kind domain.EntryKind, detail domain.EntryDetail) (*domain.LedgerEntry, error)

	// DebitBalance subtracts amount from the balance. Fails with
	// apperrors.ErrInsufficientFunds if the result would be negative.
	DebitBalance(ctx context.Context, accountID string, amount decimal.Decimal, kind domain.EntryKind, detail domain.EntryDetail) (*domain.LedgerEntry, error)

	// CreditEarnings adds amount to the withdrawable earnings.
	CreditEarnings(ctx context.Context, accountID string, amount decimal.Decimal, kind domain.EntryKind, detail domain.EntryDetail) (*domain.LedgerEntry, error)

	// DebitEarnings subtracts amount from earnings. Fails with
	// apperrors.ErrInsufficientEarnings if the result would be negative.
	DebitEarnings(ctx context.Context, accountID string, amount decimal.Decimal, kind domain.EntryKind, detail domain.EntryDetail) (*domain.LedgerEntry, error)

	// CreditBalanceAndEarnings credits both fields by amount under one entry,
	// the shape income and referral bonuses take.
	CreditBalanceAndEarnings(ctx context.Context, accountID string, amount decimal.Decimal, kind domain.EntryKind, detail domain.EntryDetail) (*domain.LedgerEntry, error)

	// DebitBalanceAndEarnings debits both fields by amount under one entry,
	// the shape withdrawals take.
	DebitBalanceAndEarnings(ctx context.Context, accountID string, amount decimal.Decimal, kind domain.EntryKind, detail domain.EntryDetail) (*domain.LedgerEntry, error)

	// ListEntries retrieves a page of the account's transaction history,
	// newest first.
	ListEntries(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}
