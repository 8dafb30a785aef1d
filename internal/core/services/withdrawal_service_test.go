package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/driveyield/backend/internal/apperrors"
	"github.com/driveyield/backend/internal/core/domain"
	portssvc "github.com/driveyield/backend/internal/core/ports/services"
	"github.com/driveyield/backend/internal/core/services"
	"github.com/driveyield/backend/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WithdrawalServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockLedger      *MockLedgerSvc
	service         portssvc.WithdrawalSvcFacade

	secretHash string
}

func (suite *WithdrawalServiceTestSuite) SetupSuite() {
	hash, err := utils.HashPassword("4321")
	suite.Require().NoError(err)
	suite.secretHash = hash
}

func (suite *WithdrawalServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockLedger = new(MockLedgerSvc)
	suite.service = services.NewWithdrawalService(suite.mockAccountRepo, suite.mockLedger, decimal.NewFromInt(220))
}

func (suite *WithdrawalServiceTestSuite) account(earnings string, withSecret bool) *domain.Account {
	acc := &domain.Account{
		AccountID: uuid.NewString(),
		Balance:   decimal.RequireFromString("5000"),
		Earnings:  decimal.RequireFromString(earnings),
		BankDetails: domain.BankDetails{
			AccountNumber: "001122334455",
			IFSC:          "HDFC0001234",
		},
	}
	if withSecret {
		acc.WithdrawalSecretHash = suite.secretHash
	}
	return acc
}

func (suite *WithdrawalServiceTestSuite) TestWithdraw_Success() {
	ctx := context.Background()
	acc := suite.account("500", true)
	amount := decimal.NewFromInt(220)

	suite.mockAccountRepo.On("FindAccountByID", ctx, acc.AccountID).Return(acc, nil).Twice()

	var gotDetail domain.EntryDetail
	suite.mockLedger.On("DebitBalanceAndEarnings", ctx, acc.AccountID, amount, domain.EntryWithdrawal, mock.Anything).
		Run(func(args mock.Arguments) {
			gotDetail = args.Get(4).(domain.EntryDetail)
		}).
		Return(&domain.LedgerEntry{EntryID: uuid.NewString()}, nil).Once()

	got, err := suite.service.Withdraw(ctx, acc.AccountID, amount, "4321", time.Now())

	suite.Require().NoError(err)
	suite.Require().NotNil(got)
	suite.Equal("001122334455", gotDetail.BankAccount, "entry must snapshot the bank account")
	suite.Equal("HDFC0001234", gotDetail.BankIFSC)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *WithdrawalServiceTestSuite) TestWithdraw_NoSecretConfigured() {
	ctx := context.Background()
	acc := suite.account("500", false)

	suite.mockAccountRepo.On("FindAccountByID", ctx, acc.AccountID).Return(acc, nil).Once()

	_, err := suite.service.Withdraw(ctx, acc.AccountID, decimal.NewFromInt(220), "4321", time.Now())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNoWithdrawalSecret)
	suite.mockLedger.AssertNotCalled(suite.T(), "DebitBalanceAndEarnings", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WithdrawalServiceTestSuite) TestWithdraw_WrongSecret() {
	ctx := context.Background()
	acc := suite.account("500", true)

	suite.mockAccountRepo.On("FindAccountByID", ctx, acc.AccountID).Return(acc, nil).Once()

	_, err := suite.service.Withdraw(ctx, acc.AccountID, decimal.NewFromInt(220), "9999", time.Now())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidWithdrawalSecret)
}

func (suite *WithdrawalServiceTestSuite) TestWithdraw_SecretCheckedBeforeAmount() {
	ctx := context.Background()
	acc := suite.account("500", true)

	suite.mockAccountRepo.On("FindAccountByID", ctx, acc.AccountID).Return(acc, nil).Once()

	// Even with a nonsense amount, a wrong secret is reported first.
	_, err := suite.service.Withdraw(ctx, acc.AccountID, decimal.NewFromInt(-10), "9999", time.Now())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidWithdrawalSecret)
}

func (suite *WithdrawalServiceTestSuite) TestWithdraw_InsufficientEarnings() {
	ctx := context.Background()
	acc := suite.account("219.99", true)

	suite.mockAccountRepo.On("FindAccountByID", ctx, acc.AccountID).Return(acc, nil).Once()

	_, err := suite.service.Withdraw(ctx, acc.AccountID, decimal.NewFromInt(220), "4321", time.Now())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientEarnings)
}

func (suite *WithdrawalServiceTestSuite) TestWithdraw_BelowMinimum() {
	ctx := context.Background()
	acc := suite.account("500", true)

	suite.mockAccountRepo.On("FindAccountByID", ctx, acc.AccountID).Return(acc, nil).Once()

	_, err := suite.service.Withdraw(ctx, acc.AccountID, decimal.RequireFromString("219.99"), "4321", time.Now())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrBelowMinimumWithdrawal)
	suite.mockLedger.AssertNotCalled(suite.T(), "DebitBalanceAndEarnings", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WithdrawalServiceTestSuite) TestWithdraw_ExactMinimumAccepted() {
	ctx := context.Background()
	acc := suite.account("220", true)
	amount := decimal.NewFromInt(220)

	suite.mockAccountRepo.On("FindAccountByID", ctx, acc.AccountID).Return(acc, nil).Twice()
	suite.mockLedger.On("DebitBalanceAndEarnings", ctx, acc.AccountID, amount, domain.EntryWithdrawal, mock.Anything).
		Return(&domain.LedgerEntry{}, nil).Once()

	_, err := suite.service.Withdraw(ctx, acc.AccountID, amount, "4321", time.Now())

	suite.Require().NoError(err)
}

func TestWithdrawalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WithdrawalServiceTestSuite))
}
