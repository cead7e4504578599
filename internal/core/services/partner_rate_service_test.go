package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/partnerfx/partner_fx_app/internal/apperrors"
	"github.com/partnerfx/partner_fx_app/internal/core/domain"
	portssvc "github.com/partnerfx/partner_fx_app/internal/core/ports/services"
	"github.com/partnerfx/partner_fx_app/internal/core/services"
	"github.com/partnerfx/partner_fx_app/internal/dto"
)

type PartnerRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo  *MockPartnerRateRepository
	mockAuditRepo *MockAuditLogRepository
	service       portssvc.PartnerRateSvcFacade

	companyID string
}

func (suite *PartnerRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockPartnerRateRepository)
	suite.mockAuditRepo = new(MockAuditLogRepository)
	suite.service = services.NewPartnerRateService(suite.mockRateRepo, suite.mockAuditRepo)
	suite.companyID = uuid.NewString()
}

func (suite *PartnerRateServiceTestSuite) TestCreatePartnerRate_Success() {
	ctx := context.Background()
	req := dto.CreatePartnerRateRequest{
		Name:       "Market Rate",
		CompanyID:  suite.companyID,
		RateAmount: decimal.NewFromInt(1310),
	}

	suite.mockRateRepo.On("FindPartnerExchangeRateByName", ctx, suite.companyID, "Market Rate").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRateRepo.On("SavePartnerExchangeRate", ctx, mock.MatchedBy(func(rate domain.PartnerExchangeRate) bool {
		return rate.Name == "Market Rate" &&
			rate.CompanyID == suite.companyID &&
			rate.RateAmount.Equal(decimal.NewFromInt(1310)) &&
			rate.RateID != ""
	})).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLog", ctx, mock.MatchedBy(func(entry domain.AuditLog) bool {
		return entry.EntityType == "partner_exchange_rate" && entry.Action == domain.AuditCreated
	})).Return(nil).Once()

	rate, err := suite.service.CreatePartnerRate(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(rate)
	suite.Equal("Market Rate", rate.Name)
	suite.Equal("user-1", rate.CreatedBy)
	suite.mockRateRepo.AssertExpectations(suite.T())
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *PartnerRateServiceTestSuite) TestCreatePartnerRate_DuplicateName() {
	ctx := context.Background()
	req := dto.CreatePartnerRateRequest{
		Name:       "Market Rate",
		CompanyID:  suite.companyID,
		RateAmount: decimal.NewFromInt(1310),
	}
	existing := &domain.PartnerExchangeRate{RateID: uuid.NewString(), Name: "Market Rate", CompanyID: suite.companyID}

	suite.mockRateRepo.On("FindPartnerExchangeRateByName", ctx, suite.companyID, "Market Rate").
		Return(existing, nil).Once()

	rate, err := suite.service.CreatePartnerRate(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(rate)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SavePartnerExchangeRate", mock.Anything, mock.Anything)
}

func (suite *PartnerRateServiceTestSuite) TestCreatePartnerRate_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreatePartnerRateRequest{
		Name:       "Zero Rate",
		CompanyID:  suite.companyID,
		RateAmount: decimal.Zero,
	}

	rate, err := suite.service.CreatePartnerRate(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(rate)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindPartnerExchangeRateByName", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PartnerRateServiceTestSuite) TestUpdatePartnerRate_Success() {
	ctx := context.Background()
	rateID := uuid.NewString()
	existing := &domain.PartnerExchangeRate{
		RateID:     rateID,
		Name:       "Market Rate",
		CompanyID:  suite.companyID,
		RateAmount: decimal.NewFromInt(1310),
	}
	newAmount := decimal.NewFromInt(1320)
	req := dto.UpdatePartnerRateRequest{RateAmount: &newAmount}

	suite.mockRateRepo.On("FindPartnerExchangeRateByID", ctx, rateID).Return(existing, nil).Once()
	suite.mockRateRepo.On("UpdatePartnerExchangeRate", ctx, mock.MatchedBy(func(rate domain.PartnerExchangeRate) bool {
		return rate.RateID == rateID && rate.RateAmount.Equal(newAmount)
	})).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLog", ctx, mock.MatchedBy(func(entry domain.AuditLog) bool {
		return entry.Action == domain.AuditUpdated && entry.EntityID == rateID
	})).Return(nil).Once()

	rate, err := suite.service.UpdatePartnerRate(ctx, rateID, req, "user-2")

	suite.Require().NoError(err)
	suite.True(rate.RateAmount.Equal(newAmount))
	suite.Equal("user-2", rate.LastUpdatedBy)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *PartnerRateServiceTestSuite) TestUpdatePartnerRate_NoChanges() {
	ctx := context.Background()
	rateID := uuid.NewString()
	existing := &domain.PartnerExchangeRate{
		RateID:     rateID,
		Name:       "Market Rate",
		CompanyID:  suite.companyID,
		RateAmount: decimal.NewFromInt(1310),
	}

	suite.mockRateRepo.On("FindPartnerExchangeRateByID", ctx, rateID).Return(existing, nil).Once()

	rate, err := suite.service.UpdatePartnerRate(ctx, rateID, dto.UpdatePartnerRateRequest{}, "user-2")

	suite.Require().NoError(err)
	suite.Equal(existing, rate)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "UpdatePartnerExchangeRate", mock.Anything, mock.Anything)
}

func (suite *PartnerRateServiceTestSuite) TestUpdatePartnerRate_NonPositiveAmount() {
	ctx := context.Background()
	rateID := uuid.NewString()
	existing := &domain.PartnerExchangeRate{RateID: rateID, Name: "Market Rate", CompanyID: suite.companyID, RateAmount: decimal.NewFromInt(1310)}
	bad := decimal.NewFromInt(-1)

	suite.mockRateRepo.On("FindPartnerExchangeRateByID", ctx, rateID).Return(existing, nil).Once()

	rate, err := suite.service.UpdatePartnerRate(ctx, rateID, dto.UpdatePartnerRateRequest{RateAmount: &bad}, "user-2")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(rate)
}

func (suite *PartnerRateServiceTestSuite) TestDeletePartnerRate_Success() {
	ctx := context.Background()
	rateID := uuid.NewString()
	existing := &domain.PartnerExchangeRate{RateID: rateID, Name: "Market Rate", CompanyID: suite.companyID}

	suite.mockRateRepo.On("FindPartnerExchangeRateByID", ctx, rateID).Return(existing, nil).Once()
	suite.mockRateRepo.On("DeletePartnerExchangeRate", ctx, rateID).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLog", ctx, mock.MatchedBy(func(entry domain.AuditLog) bool {
		return entry.Action == domain.AuditDeleted && entry.EntityID == rateID
	})).Return(nil).Once()

	err := suite.service.DeletePartnerRate(ctx, rateID, "user-3")

	suite.Require().NoError(err)
	suite.mockRateRepo.AssertExpectations(suite.T())
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *PartnerRateServiceTestSuite) TestDeletePartnerRate_NotFound() {
	ctx := context.Background()
	rateID := uuid.NewString()

	suite.mockRateRepo.On("FindPartnerExchangeRateByID", ctx, rateID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeletePartnerRate(ctx, rateID, "user-3")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "DeletePartnerExchangeRate", mock.Anything, mock.Anything)
}

func (suite *PartnerRateServiceTestSuite) TestCreatePartnerRate_AuditFailureDoesNotPropagate() {
	ctx := context.Background()
	req := dto.CreatePartnerRateRequest{
		Name:       "Market Rate",
		CompanyID:  suite.companyID,
		RateAmount: decimal.NewFromInt(1310),
	}

	suite.mockRateRepo.On("FindPartnerExchangeRateByName", ctx, suite.companyID, "Market Rate").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRateRepo.On("SavePartnerExchangeRate", ctx, mock.Anything).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLog", ctx, mock.Anything).Return(errRepoFailure).Once()

	rate, err := suite.service.CreatePartnerRate(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.NotNil(rate)
}

func TestPartnerRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartnerRateServiceTestSuite))
}
