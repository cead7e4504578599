package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/partnerfx/partner_fx_app/internal/apperrors"
	"github.com/partnerfx/partner_fx_app/internal/core/domain"
	portssvc "github.com/partnerfx/partner_fx_app/internal/core/ports/services"
	"github.com/partnerfx/partner_fx_app/internal/core/services"
	"github.com/partnerfx/partner_fx_app/internal/dto"
)

type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo *MockExchangeRateRepository
	service      portssvc.ExchangeRateSvcFacade
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.service = services.NewExchangeRateService(suite.mockRateRepo)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_Success() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{
		FromCurrencyCode: "iqd",
		ToCurrencyCode:   "usd",
		Rate:             decimal.RequireFromString("0.00072"),
		DateEffective:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.MatchedBy(func(rate domain.ExchangeRate) bool {
		return rate.FromCurrencyCode == "IQD" && rate.ToCurrencyCode == "USD" &&
			rate.Rate.Equal(req.Rate) && rate.ExchangeRateID != ""
	})).Return(nil).Once()

	rate, err := suite.service.CreateExchangeRate(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("IQD", rate.FromCurrencyCode)
	suite.Equal("user-1", rate.CreatedBy)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_NonPositiveRate() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{
		FromCurrencyCode: "IQD",
		ToCurrencyCode:   "USD",
		Rate:             decimal.Zero,
		DateEffective:    time.Now(),
	}

	rate, err := suite.service.CreateExchangeRate(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(rate)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveExchangeRate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_SamePair() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "USD",
		Rate:             decimal.NewFromInt(1),
		DateEffective:    time.Now(),
	}

	rate, err := suite.service.CreateExchangeRate(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(rate)
}

func (suite *ExchangeRateServiceTestSuite) TestGetEffectiveRate_InvalidCode() {
	ctx := context.Background()

	rate, err := suite.service.GetEffectiveRate(ctx, "IQ", "USD", time.Now())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(rate)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRateEffective", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestGetEffectiveRate_UppercasesCodes() {
	ctx := context.Background()
	asOf := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	expected := &domain.ExchangeRate{FromCurrencyCode: "IQD", ToCurrencyCode: "USD", Rate: decimal.RequireFromString("0.00072")}

	suite.mockRateRepo.On("FindRateEffective", ctx, "IQD", "USD", asOf).Return(expected, nil).Once()

	rate, err := suite.service.GetEffectiveRate(ctx, "iqd", "usd", asOf)

	suite.Require().NoError(err)
	suite.Equal(expected, rate)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
