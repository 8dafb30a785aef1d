package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/driveyield/backend/internal/apperrors"
	"github.com/driveyield/backend/internal/core/domain"
	portssvc "github.com/driveyield/backend/internal/core/ports/services"
	"github.com/driveyield/backend/internal/core/services"
	"github.com/driveyield/backend/internal/dto"
	"github.com/driveyield/backend/internal/platform/config"
	"github.com/driveyield/backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "driveyield-test",
	}
	suite.service = services.NewAuthService(suite.mockRepo, cfg)
}

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		FullName:     "Asha Verma",
		MobileNumber: "9876543210",
		Password:     "secret123",
	}

	var saved domain.Account
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Account)
		}).
		Return(nil).Once()

	account, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.Equal(req.FullName, saved.FullName)
	suite.Equal(req.MobileNumber, saved.MobileNumber)
	suite.Empty(saved.ReferrerID)
	suite.True(saved.Balance.IsZero())
	suite.True(saved.Earnings.IsZero())
	suite.NotEqual(req.Password, saved.PasswordHash, "password must be stored hashed")
	suite.True(utils.CheckPasswordHash(req.Password, saved.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_WithReferralCode() {
	ctx := context.Background()
	referrer := &domain.Account{AccountID: uuid.NewString(), MobileNumber: "9000000001"}
	req := dto.RegisterRequest{
		FullName:     "Ravi Kumar",
		MobileNumber: "9000000002",
		Password:     "secret123",
		ReferralCode: referrer.MobileNumber,
	}

	suite.mockRepo.On("FindAccountByMobile", ctx, referrer.MobileNumber).Return(referrer, nil).Once()

	var saved domain.Account
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Account)
		}).
		Return(nil).Once()

	_, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(referrer.AccountID, saved.ReferrerID)
}

func (suite *AuthServiceTestSuite) TestRegister_UnknownReferralCode() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		FullName:     "Ravi Kumar",
		MobileNumber: "9000000002",
		Password:     "secret123",
		ReferralCode: "9999999999",
	}

	suite.mockRepo.On("FindAccountByMobile", ctx, "9999999999").Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(account)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegister_SelfReferralRejected() {
	ctx := context.Background()
	mobile := "9000000002"
	existing := &domain.Account{AccountID: uuid.NewString(), MobileNumber: mobile}
	req := dto.RegisterRequest{
		FullName:     "Ravi Kumar",
		MobileNumber: mobile,
		Password:     "secret123",
		ReferralCode: mobile,
	}

	suite.mockRepo.On("FindAccountByMobile", ctx, mobile).Return(existing, nil).Once()

	_, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateMobile() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		FullName:     "Asha Verma",
		MobileNumber: "9876543210",
		Password:     "secret123",
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	account, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(account)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	password := "secret123"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	acc := &domain.Account{
		AccountID:    uuid.NewString(),
		MobileNumber: "9876543210",
		PasswordHash: hash,
	}
	suite.mockRepo.On("FindAccountByMobile", ctx, acc.MobileNumber).Return(acc, nil).Once()

	got, token, expiresAt, err := suite.service.Login(ctx, dto.LoginRequest{MobileNumber: acc.MobileNumber, Password: password})

	suite.Require().NoError(err)
	suite.Equal(acc.AccountID, got.AccountID)
	suite.NotEmpty(token)
	suite.True(expiresAt.After(time.Now()))

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	suite.Require().NoError(err)
	suite.Equal(acc.AccountID, claims.Subject)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("rightpassword")
	suite.Require().NoError(err)

	acc := &domain.Account{AccountID: uuid.NewString(), MobileNumber: "9876543210", PasswordHash: hash}
	suite.mockRepo.On("FindAccountByMobile", ctx, acc.MobileNumber).Return(acc, nil).Once()

	_, _, _, err = suite.service.Login(ctx, dto.LoginRequest{MobileNumber: acc.MobileNumber, Password: "wrongpassword"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownMobileLooksLikeBadCredentials() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByMobile", ctx, "0000000000").Return(nil, apperrors.ErrNotFound).Once()

	_, _, _, err := suite.service.Login(ctx, dto.LoginRequest{MobileNumber: "0000000000", Password: "whatever"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
