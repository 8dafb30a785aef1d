package services_test

import (
	"context"
	"time"

	"github.com/driveyield/backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByMobile(ctx context.Context, mobileNumber string) (*domain.Account, error) {
	args := m.Called(ctx, mobileNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListReferredAccounts(ctx context.Context, referrerID string) ([]domain.Account, error) {
	args := m.Called(ctx, referrerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateBankDetails(ctx context.Context, accountID string, details domain.BankDetails, now time.Time) error {
	args := m.Called(ctx, accountID, details, now)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdatePasswordHash(ctx context.Context, accountID string, passwordHash string, now time.Time) error {
	args := m.Called(ctx, accountID, passwordHash, now)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateWithdrawalSecretHash(ctx context.Context, accountID string, secretHash string, now time.Time) error {
	args := m.Called(ctx, accountID, secretHash, now)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, tx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// MockHoldingRepository is a mock type for the HoldingRepositoryFacade interface
type MockHoldingRepository struct {
	mock.Mock
}

func (m *MockHoldingRepository) FindHoldingsByAccount(ctx context.Context, accountID string) ([]domain.Holding, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Holding), args.Error(1)
}

func (m *MockHoldingRepository) HoldingExists(ctx context.Context, accountID string, assetName string) (bool, error) {
	args := m.Called(ctx, accountID, assetName)
	return args.Bool(0), args.Error(1)
}

func (m *MockHoldingRepository) InsertHoldingInTx(ctx context.Context, tx pgx.Tx, holding domain.Holding) error {
	args := m.Called(ctx, tx, holding)
	return args.Error(0)
}

// MockLedgerRepository is a mock type for the LedgerRepositoryFacade interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) ListEntriesByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	var entries []domain.LedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntry)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return entries, next, args.Error(2)
}

func (m *MockLedgerRepository) ApplyMutation(ctx context.Context, mutation domain.BalanceMutation, entry domain.LedgerEntry) error {
	args := m.Called(ctx, mutation, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) ApplyPurchase(ctx context.Context, holding domain.Holding, entry domain.LedgerEntry) error {
	args := m.Called(ctx, holding, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) ApplyAccrual(ctx context.Context, accountID string, total decimal.Decimal, fromWatermark *time.Time, toWatermark time.Time, entry *domain.LedgerEntry) error {
	args := m.Called(ctx, accountID, total, fromWatermark, toWatermark, entry)
	return args.Error(0)
}

// MockLedgerSvc is a mock type for the LedgerSvcFacade interface
type MockLedgerSvc struct {
	mock.Mock
}

func (m *MockLedgerSvc) entryResult(args mock.Arguments) (*domain.LedgerEntry, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerSvc) CreditBalance(ctx context.Context, accountID string, amount decimal.Decimal, kind domain.EntryKind, detail domain.EntryDetail) (*domain.LedgerEntry, error) {
	return m.entryResult(m.Called(ctx, accountID, amount, kind, detail))
}

func (m *MockLedgerSvc) DebitBalance(ctx context.Context, accountID string, amount decimal.Decimal, kind domain.EntryKind, detail domain.EntryDetail) (*domain.LedgerEntry, error) {
	return m.entryResult(m.Called(ctx, accountID, amount, kind, detail))
}

func (m *MockLedgerSvc) CreditEarnings(ctx context.Context, accountID string, amount decimal.Decimal, kind domain.EntryKind, detail domain.EntryDetail) (*domain.LedgerEntry, error) {
	return m.entryResult(m.Called(ctx, accountID, amount, kind, detail))
}

func (m *MockLedgerSvc) DebitEarnings(ctx context.Context, accountID string, amount decimal.Decimal, kind domain.EntryKind, detail domain.EntryDetail) (*domain.LedgerEntry, error) {
	return m.entryResult(m.Called(ctx, accountID, amount, kind, detail))
}

func (m *MockLedgerSvc) CreditBalanceAndEarnings(ctx context.Context, accountID string, amount decimal.Decimal, kind domain.EntryKind, detail domain.EntryDetail) (*domain.LedgerEntry, error) {
	return m.entryResult(m.Called(ctx, accountID, amount, kind, detail))
}

func (m *MockLedgerSvc) DebitBalanceAndEarnings(ctx context.Context, accountID string, amount decimal.Decimal, kind domain.EntryKind, detail domain.EntryDetail) (*domain.LedgerEntry, error) {
	return m.entryResult(m.Called(ctx, accountID, amount, kind, detail))
}

func (m *MockLedgerSvc) ListEntries(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	var entries []domain.LedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntry)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return entries, next, args.Error(2)
}
