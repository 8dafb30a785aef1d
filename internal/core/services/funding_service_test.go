package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/driveyield/backend/internal/apperrors"
	"github.com/driveyield/backend/internal/core/domain"
	portssvc "github.com/driveyield/backend/internal/core/ports/services"
	"github.com/driveyield/backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FundingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockLedger      *MockLedgerSvc
	service         portssvc.FundingSvcFacade
}

func (suite *FundingServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockLedger = new(MockLedgerSvc)
	suite.service = services.NewFundingService(suite.mockAccountRepo, suite.mockLedger)
}

func (suite *FundingServiceTestSuite) depositor(referrerID string) *domain.Account {
	return &domain.Account{
		AccountID:    uuid.NewString(),
		MobileNumber: "9876543210",
		ReferrerID:   referrerID,
		Balance:      decimal.Zero,
		Earnings:     decimal.Zero,
	}
}

func (suite *FundingServiceTestSuite) TestDeposit_NoReferrer() {
	ctx := context.Background()
	acc := suite.depositor("")
	amount := decimal.NewFromInt(500)

	suite.mockAccountRepo.On("FindAccountByID", ctx, acc.AccountID).Return(acc, nil).Twice()
	suite.mockLedger.On("CreditBalance", ctx, acc.AccountID, amount, domain.EntryRecharge, domain.EntryDetail{PaymentRef: "pg-1"}).
		Return(&domain.LedgerEntry{EntryID: uuid.NewString()}, nil).Once()

	got, err := suite.service.Deposit(ctx, acc.AccountID, amount, "pg-1", time.Now())

	suite.Require().NoError(err)
	suite.Require().NotNil(got)
	suite.mockLedger.AssertNotCalled(suite.T(), "CreditBalanceAndEarnings", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *FundingServiceTestSuite) TestDeposit_ReferralBonusTiers() {
	tests := []struct {
		name    string
		deposit int64
		bonus   string
	}{
		{"lowest tier pays 5 percent", 275, "13.75"},
		{"middle tier pays 7 percent", 2800, "196"},
		{"top tier pays 10 percent", 7800, "780"},
		{"large deposits stay at 10 percent", 111000, "11100"},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			ctx := context.Background()
			referrerID := uuid.NewString()
			acc := suite.depositor(referrerID)
			amount := decimal.NewFromInt(tc.deposit)
			wantBonus := decimal.RequireFromString(tc.bonus)

			suite.mockAccountRepo.On("FindAccountByID", ctx, acc.AccountID).Return(acc, nil).Twice()
			suite.mockLedger.On("CreditBalance", ctx, acc.AccountID, amount, domain.EntryRecharge, mock.Anything).
				Return(&domain.LedgerEntry{}, nil).Once()

			var gotBonus decimal.Decimal
			var gotDetail domain.EntryDetail
			suite.mockLedger.On("CreditBalanceAndEarnings", ctx, referrerID, mock.Anything, domain.EntryReferralBonus, mock.Anything).
				Run(func(args mock.Arguments) {
					gotBonus = args.Get(2).(decimal.Decimal)
					gotDetail = args.Get(4).(domain.EntryDetail)
				}).
				Return(&domain.LedgerEntry{}, nil).Once()

			_, err := suite.service.Deposit(ctx, acc.AccountID, amount, "", time.Now())

			suite.Require().NoError(err)
			suite.True(gotBonus.Equal(wantBonus), "want bonus %s, got %s", wantBonus, gotBonus)
			suite.Equal(acc.AccountID, gotDetail.FromAccountID)
			suite.Equal(acc.MobileNumber, gotDetail.FromMobile)
			suite.mockLedger.AssertExpectations(suite.T())
		})
	}
}

func (suite *FundingServiceTestSuite) TestDeposit_BelowTierPaysNoBonus() {
	ctx := context.Background()
	acc := suite.depositor(uuid.NewString())
	amount := decimal.RequireFromString("274.99")

	suite.mockAccountRepo.On("FindAccountByID", ctx, acc.AccountID).Return(acc, nil).Twice()
	suite.mockLedger.On("CreditBalance", ctx, acc.AccountID, amount, domain.EntryRecharge, mock.Anything).
		Return(&domain.LedgerEntry{}, nil).Once()

	_, err := suite.service.Deposit(ctx, acc.AccountID, amount, "", time.Now())

	suite.Require().NoError(err)
	suite.mockLedger.AssertNotCalled(suite.T(), "CreditBalanceAndEarnings", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FundingServiceTestSuite) TestDeposit_MissingReferrerDoesNotFailDeposit() {
	ctx := context.Background()
	referrerID := uuid.NewString()
	acc := suite.depositor(referrerID)
	amount := decimal.NewFromInt(2800)

	suite.mockAccountRepo.On("FindAccountByID", ctx, acc.AccountID).Return(acc, nil).Twice()
	suite.mockLedger.On("CreditBalance", ctx, acc.AccountID, amount, domain.EntryRecharge, mock.Anything).
		Return(&domain.LedgerEntry{}, nil).Once()
	suite.mockLedger.On("CreditBalanceAndEarnings", ctx, referrerID, mock.Anything, domain.EntryReferralBonus, mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.Deposit(ctx, acc.AccountID, amount, "", time.Now())

	suite.Require().NoError(err, "a vanished referrer must not unwind the deposit")
	suite.Require().NotNil(got)
}

func (suite *FundingServiceTestSuite) TestDeposit_RejectsNonPositiveAmount() {
	ctx := context.Background()

	_, err := suite.service.Deposit(ctx, uuid.NewString(), decimal.Zero, "", time.Now())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedger.AssertNotCalled(suite.T(), "CreditBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFundingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FundingServiceTestSuite))
}
