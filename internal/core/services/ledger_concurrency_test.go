package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/driveyield/backend/internal/apperrors"
	"github.com/driveyield/backend/internal/core/domain"
	"github.com/driveyield/backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedgerRepo is an in-memory stand-in for the database-backed ledger
// repository. A single mutex plays the role of the per-account row lock:
// every mutation validates and applies under it, matching the production
// contract that all writers of one account are serialized.
type fakeLedgerRepo struct {
	mu       sync.Mutex
	balance  map[string]decimal.Decimal
	earnings map[string]decimal.Decimal
	entries  []domain.LedgerEntry
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{
		balance:  make(map[string]decimal.Decimal),
		earnings: make(map[string]decimal.Decimal),
	}
}

func (f *fakeLedgerRepo) ApplyMutation(ctx context.Context, mutation domain.BalanceMutation, entry domain.LedgerEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	newBalance := f.balance[mutation.AccountID].Add(mutation.BalanceDelta)
	newEarnings := f.earnings[mutation.AccountID].Add(mutation.EarningsDelta)
	if newBalance.IsNegative() {
		return apperrors.ErrInsufficientFunds
	}
	if newEarnings.IsNegative() {
		return apperrors.ErrInsufficientEarnings
	}

	f.balance[mutation.AccountID] = newBalance
	f.earnings[mutation.AccountID] = newEarnings
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeLedgerRepo) ApplyPurchase(ctx context.Context, holding domain.Holding, entry domain.LedgerEntry) error {
	return errors.New("not implemented")
}

func (f *fakeLedgerRepo) ApplyAccrual(ctx context.Context, accountID string, total decimal.Decimal, fromWatermark *time.Time, toWatermark time.Time, entry *domain.LedgerEntry) error {
	return errors.New("not implemented")
}

func (f *fakeLedgerRepo) ListEntriesByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.LedgerEntry
	for _, e := range f.entries {
		if e.AccountID == accountID {
			out = append(out, e)
		}
	}
	return out, nil, nil
}

func (f *fakeLedgerRepo) snapshot(accountID string) (decimal.Decimal, decimal.Decimal, int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	for _, e := range f.entries {
		if e.AccountID == accountID {
			count++
		}
	}
	return f.balance[accountID], f.earnings[accountID], count
}

func TestLedger_ConcurrentCreditsLoseNothing(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := services.NewLedgerService(repo)
	accountID := uuid.NewString()

	const workers = 50
	amount := decimal.NewFromInt(10)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.CreditBalance(context.Background(), accountID, amount, domain.EntryRecharge, domain.EntryDetail{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	balance, _, entryCount := repo.snapshot(accountID)
	assert.True(t, balance.Equal(decimal.NewFromInt(500)), "every credit must land exactly once, got %s", balance)
	assert.Equal(t, workers, entryCount, "one entry per credit")
}

func TestLedger_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	repo := newFakeLedgerRepo()
	svc := services.NewLedgerService(repo)
	accountID := uuid.NewString()

	// Fund the account with enough for exactly 3 of the 10 attempted debits.
	_, err := svc.CreditBalance(context.Background(), accountID, decimal.NewFromInt(300), domain.EntryRecharge, domain.EntryDetail{})
	require.NoError(t, err)

	const workers = 10
	var succeeded, rejected int
	var mu sync.Mutex

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.DebitBalance(context.Background(), accountID, decimal.NewFromInt(100), domain.EntryPurchase, domain.EntryDetail{})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if errors.Is(err, apperrors.ErrInsufficientFunds) {
				rejected++
			}
		}()
	}
	wg.Wait()

	balance, _, entryCount := repo.snapshot(accountID)
	assert.Equal(t, 3, succeeded)
	assert.Equal(t, workers-3, rejected)
	assert.True(t, balance.IsZero(), "balance ends at zero, never negative, got %s", balance)
	assert.Equal(t, 4, entryCount, "funding entry plus one entry per successful debit")
}
