package services_test

import (
	"context"
	"testing"
	"time"

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

// --- Test Suite ---

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockMoveRepo    *MockMoveRepository
	mockPartnerRepo *MockPartnerRepository
	mockCompanyRepo *MockCompanyRepository
	mockAccountRepo *MockAccountRepository
	mockAuditRepo   *MockAuditLogRepository
	mockConversion  *MockConversionService
	service         portssvc.PaymentSvcFacade

	companyID string
	partnerID string
	rateID    string
	company   *domain.Company
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockMoveRepo = new(MockMoveRepository)
	suite.mockPartnerRepo = new(MockPartnerRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockAuditRepo = new(MockAuditLogRepository)
	suite.mockConversion = new(MockConversionService)
	suite.service = services.NewPaymentService(
		suite.mockPaymentRepo,
		suite.mockMoveRepo,
		suite.mockPartnerRepo,
		suite.mockCompanyRepo,
		suite.mockAccountRepo,
		suite.mockAuditRepo,
		suite.mockConversion,
	)

	suite.companyID = uuid.NewString()
	suite.partnerID = uuid.NewString()
	suite.rateID = uuid.NewString()
	suite.company = &domain.Company{
		CompanyID:                        suite.companyID,
		Name:                             "Test Co",
		CurrencyCode:                     "USD",
		IncomeCurrencyExchangeAccountID:  "acc-income",
		ExpenseCurrencyExchangeAccountID: "acc-expense",
	}
}

func (suite *PaymentServiceTestSuite) activeAccounts(ids ...string) map[string]domain.Account {
	accounts := make(map[string]domain.Account, len(ids))
	for _, id := range ids {
		accounts[id] = domain.Account{AccountID: id, CompanyID: suite.companyID, IsActive: true}
	}
	return accounts
}

func (suite *PaymentServiceTestSuite) customerWithRate() *domain.Partner {
	rateID := suite.rateID
	return &domain.Partner{
		PartnerID:             suite.partnerID,
		CompanyID:             suite.companyID,
		Name:                  "Customer A",
		PartnerType:           domain.Customer,
		PartnerExchangeRateID: &rateID,
		RateAmount:            decimal.NewFromInt(1310),
	}
}

func (suite *PaymentServiceTestSuite) createRequest() dto.CreatePaymentRequest {
	partnerID := suite.partnerID
	return dto.CreatePaymentRequest{
		CompanyID:           suite.companyID,
		PartnerID:           &partnerID,
		PartnerType:         domain.Customer,
		PaymentType:         domain.Inbound,
		Amount:              decimal.NewFromInt(131000),
		CurrencyCode:        "IQD",
		PaymentDate:         time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		LiquidityAccountID:  "acc-bank",
		ReceivableAccountID: "acc-receivable",
	}
}

// expectTransaction wires a mock transaction lifecycle around the write path.
func (suite *PaymentServiceTestSuite) expectTransaction() {
	suite.mockPaymentRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.mockPaymentRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockPaymentRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
}

// --- CreatePayment ---

func (suite *PaymentServiceTestSuite) TestCreatePayment_LossAdjustment() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(suite.company, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(suite.activeAccounts("acc-bank", "acc-receivable", "acc-income", "acc-expense"), nil).Once()
	suite.mockPartnerRepo.On("FindPartnerByID", ctx, suite.partnerID).Return(suite.customerWithRate(), nil).Once()

	// Official valuation of 131000 IQD: 95 USD. Custom at 1310: 100 USD.
	suite.mockConversion.On("Convert", ctx, req.Amount, "IQD", suite.companyID, req.PaymentDate).
		Return(decimal.NewFromInt(95), nil).Once()

	suite.expectTransaction()
	suite.mockMoveRepo.On("SaveMoveInTx", ctx, mock.Anything, mock.Anything, mock.MatchedBy(func(lines []domain.MoveLine) bool {
		return len(lines) == 2 &&
			lines[0].Debit.Equal(decimal.NewFromInt(95)) &&
			lines[1].Credit.Equal(decimal.NewFromInt(95))
	})).Return(nil).Once()

	// Debit side drops to the reduced amount, credit side carries the custom total.
	suite.mockMoveRepo.On("UpdateMoveLinesInTx", ctx, mock.Anything, mock.MatchedBy(func(lines []domain.MoveLine) bool {
		return len(lines) == 2 &&
			lines[0].AccountID == "acc-bank" && lines[0].Debit.Equal(decimal.NewFromInt(95)) &&
			lines[1].AccountID == "acc-receivable" && lines[1].Credit.Equal(decimal.NewFromInt(100))
	})).Return(nil).Once()

	// The 5 USD loss lands on the expense account under the label line.
	suite.mockMoveRepo.On("AppendMoveLineInTx", ctx, mock.Anything, mock.MatchedBy(func(line domain.MoveLine) bool {
		return line.Name == domain.ExchangeDifferenceLabel &&
			line.AccountID == "acc-expense" &&
			line.Debit.Equal(decimal.NewFromInt(5)) &&
			line.Sequence == 3
	})).Return(nil).Once()

	suite.mockPaymentRepo.On("SavePaymentInTx", ctx, mock.Anything, mock.MatchedBy(func(p domain.Payment) bool {
		return p.ExchangeRateDifference.Equal(decimal.NewFromInt(-5)) &&
			p.ExchangeRate.Equal(decimal.NewFromInt(1310)) &&
			p.PartnerExchangeRateID != nil && *p.PartnerExchangeRateID == suite.rateID
	})).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLogInTx", ctx, mock.Anything, mock.MatchedBy(func(entry domain.AuditLog) bool {
		return entry.EntityType == "payment" && entry.Action == domain.AuditCreated
	})).Return(nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.True(payment.ExchangeRateDifference.Equal(decimal.NewFromInt(-5)))
	suite.Equal("acc-expense", payment.ExpenseCurrencyExchangeAccountID)
	suite.mockMoveRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_GainAdjustment() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(suite.company, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(suite.activeAccounts("acc-bank", "acc-receivable", "acc-income", "acc-expense"), nil).Once()
	suite.mockPartnerRepo.On("FindPartnerByID", ctx, suite.partnerID).Return(suite.customerWithRate(), nil).Once()
	suite.mockConversion.On("Convert", ctx, req.Amount, "IQD", suite.companyID, req.PaymentDate).
		Return(decimal.NewFromInt(105), nil).Once()

	suite.expectTransaction()
	suite.mockMoveRepo.On("SaveMoveInTx", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockMoveRepo.On("UpdateMoveLinesInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	// A gain is booked to the income account.
	suite.mockMoveRepo.On("AppendMoveLineInTx", ctx, mock.Anything, mock.MatchedBy(func(line domain.MoveLine) bool {
		return line.Name == domain.ExchangeDifferenceLabel &&
			line.AccountID == "acc-income" &&
			line.Debit.Equal(decimal.NewFromInt(5))
	})).Return(nil).Once()

	suite.mockPaymentRepo.On("SavePaymentInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLogInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.True(payment.ExchangeRateDifference.Equal(decimal.NewFromInt(5)))
	suite.mockMoveRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_NoAdjustmentForVendor() {
	ctx := context.Background()
	req := suite.createRequest()
	req.PartnerType = domain.Vendor

	vendor := suite.customerWithRate()
	vendor.PartnerType = domain.Vendor

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(suite.company, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(suite.activeAccounts("acc-bank", "acc-receivable", "acc-income", "acc-expense"), nil).Once()
	suite.mockPartnerRepo.On("FindPartnerByID", ctx, suite.partnerID).Return(vendor, nil).Once()
	suite.mockConversion.On("Convert", ctx, req.Amount, "IQD", suite.companyID, req.PaymentDate).
		Return(decimal.NewFromInt(95), nil).Once()

	suite.expectTransaction()
	suite.mockMoveRepo.On("SaveMoveInTx", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockPaymentRepo.On("SavePaymentInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLogInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, "user-1")

	suite.Require().NoError(err)
	// The difference is still carried on the payment, just not booked.
	suite.True(payment.ExchangeRateDifference.Equal(decimal.NewFromInt(-5)))
	suite.mockMoveRepo.AssertNotCalled(suite.T(), "UpdateMoveLinesInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockMoveRepo.AssertNotCalled(suite.T(), "AppendMoveLineInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_NoAdjustmentForOutbound() {
	ctx := context.Background()
	req := suite.createRequest()
	req.PaymentType = domain.Outbound

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(suite.company, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(suite.activeAccounts("acc-bank", "acc-receivable", "acc-income", "acc-expense"), nil).Once()
	suite.mockPartnerRepo.On("FindPartnerByID", ctx, suite.partnerID).Return(suite.customerWithRate(), nil).Once()
	suite.mockConversion.On("Convert", ctx, req.Amount, "IQD", suite.companyID, req.PaymentDate).
		Return(decimal.NewFromInt(95), nil).Once()

	suite.expectTransaction()
	suite.mockMoveRepo.On("SaveMoveInTx", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockPaymentRepo.On("SavePaymentInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLogInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	_, err := suite.service.CreatePayment(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.mockMoveRepo.AssertNotCalled(suite.T(), "AppendMoveLineInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_NoAdjustmentForInternalTransfer() {
	ctx := context.Background()
	req := suite.createRequest()
	req.IsInternalTransfer = true

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(suite.company, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(suite.activeAccounts("acc-bank", "acc-receivable", "acc-income", "acc-expense"), nil).Once()
	suite.mockPartnerRepo.On("FindPartnerByID", ctx, suite.partnerID).Return(suite.customerWithRate(), nil).Once()
	suite.mockConversion.On("Convert", ctx, req.Amount, "IQD", suite.companyID, req.PaymentDate).
		Return(decimal.NewFromInt(95), nil).Once()

	suite.expectTransaction()
	suite.mockMoveRepo.On("SaveMoveInTx", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockPaymentRepo.On("SavePaymentInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLogInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	_, err := suite.service.CreatePayment(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.mockMoveRepo.AssertNotCalled(suite.T(), "AppendMoveLineInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_NoAdjustmentForOtherCurrency() {
	ctx := context.Background()
	req := suite.createRequest()
	req.CurrencyCode = "EUR"
	req.Amount = decimal.NewFromInt(100)

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(suite.company, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(suite.activeAccounts("acc-bank", "acc-receivable", "acc-income", "acc-expense"), nil).Once()
	suite.mockPartnerRepo.On("FindPartnerByID", ctx, suite.partnerID).Return(suite.customerWithRate(), nil).Once()
	suite.mockConversion.On("Convert", ctx, req.Amount, "EUR", suite.companyID, req.PaymentDate).
		Return(decimal.NewFromInt(110), nil).Once()

	suite.expectTransaction()
	suite.mockMoveRepo.On("SaveMoveInTx", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockPaymentRepo.On("SavePaymentInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLogInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	_, err := suite.service.CreatePayment(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.mockMoveRepo.AssertNotCalled(suite.T(), "AppendMoveLineInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_NoPartnerSameCurrency() {
	ctx := context.Background()
	req := suite.createRequest()
	req.PartnerID = nil
	req.CurrencyCode = "USD"
	req.Amount = decimal.NewFromInt(250)

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(suite.company, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(suite.activeAccounts("acc-bank", "acc-receivable", "acc-income", "acc-expense"), nil).Once()

	suite.expectTransaction()
	suite.mockMoveRepo.On("SaveMoveInTx", ctx, mock.Anything, mock.Anything, mock.MatchedBy(func(lines []domain.MoveLine) bool {
		return len(lines) == 2 && lines[0].Debit.Equal(decimal.NewFromInt(250))
	})).Return(nil).Once()
	suite.mockPaymentRepo.On("SavePaymentInTx", ctx, mock.Anything, mock.MatchedBy(func(p domain.Payment) bool {
		return p.PartnerExchangeRateID == nil && p.ExchangeRate.IsZero() && p.ExchangeRateDifference.IsZero()
	})).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLogInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.True(payment.ExchangeRateDifference.IsZero())
	suite.mockConversion.AssertNotCalled(suite.T(), "Convert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_NonPositiveAmount() {
	ctx := context.Background()
	req := suite.createRequest()
	req.Amount = decimal.Zero

	payment, err := suite.service.CreatePayment(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(payment)
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "FindCompanyByID", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_PartnerCompanyMismatch() {
	ctx := context.Background()
	req := suite.createRequest()

	foreign := suite.customerWithRate()
	foreign.CompanyID = uuid.NewString()

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(suite.company, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(suite.activeAccounts("acc-bank", "acc-receivable", "acc-income", "acc-expense"), nil).Once()
	suite.mockPartnerRepo.On("FindPartnerByID", ctx, suite.partnerID).Return(foreign, nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPartnerCompanyMismatch)
	suite.Nil(payment)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_InactiveAccount() {
	ctx := context.Background()
	req := suite.createRequest()

	accounts := suite.activeAccounts("acc-bank", "acc-receivable", "acc-income", "acc-expense")
	inactive := accounts["acc-receivable"]
	inactive.IsActive = false
	accounts["acc-receivable"] = inactive

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(suite.company, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).Return(accounts, nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountInactive)
	suite.Nil(payment)
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_MissingAccount() {
	ctx := context.Background()
	req := suite.createRequest()

	// acc-bank absent from the lookup result.
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(suite.company, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).
		Return(suite.activeAccounts("acc-receivable", "acc-income", "acc-expense"), nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(payment)
}

// --- UpdatePayment ---

func (suite *PaymentServiceTestSuite) adjustedPayment() *domain.Payment {
	rateID := suite.rateID
	partnerID := suite.partnerID
	return &domain.Payment{
		PaymentID:                        uuid.NewString(),
		CompanyID:                        suite.companyID,
		PartnerID:                        &partnerID,
		PartnerType:                      domain.Customer,
		PaymentType:                      domain.Inbound,
		Amount:                           decimal.NewFromInt(131000),
		CurrencyCode:                     "IQD",
		PaymentDate:                      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		MoveID:                           uuid.NewString(),
		IncomeCurrencyExchangeAccountID:  "acc-income",
		ExpenseCurrencyExchangeAccountID: "acc-expense",
		ExchangeRate:                     decimal.NewFromInt(1310),
		PartnerExchangeRateID:            &rateID,
		ExchangeRateDifference:           decimal.NewFromInt(-5),
	}
}

func (suite *PaymentServiceTestSuite) adjustedMoveLines(moveID string) []domain.MoveLine {
	return []domain.MoveLine{
		{LineID: uuid.NewString(), MoveID: moveID, Sequence: 1, AccountID: "acc-bank", Name: "Payment", Debit: decimal.NewFromInt(95)},
		{LineID: uuid.NewString(), MoveID: moveID, Sequence: 2, AccountID: "acc-receivable", Name: "Payment", Credit: decimal.NewFromInt(100)},
		{LineID: uuid.NewString(), MoveID: moveID, Sequence: 3, AccountID: "acc-expense", Name: domain.ExchangeDifferenceLabel, Debit: decimal.NewFromInt(5)},
	}
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_ReappliesAdjustment() {
	ctx := context.Background()
	existing := suite.adjustedPayment()
	newAmount := decimal.NewFromInt(262000)
	req := dto.UpdatePaymentRequest{Amount: &newAmount}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, existing.PaymentID).Return(existing, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(suite.company, nil).Once()
	// 262000 IQD at the official valuation: 190 USD. Custom at 1310: 200 USD.
	suite.mockConversion.On("Convert", ctx, newAmount, "IQD", suite.companyID, existing.PaymentDate).
		Return(decimal.NewFromInt(190), nil).Once()

	suite.expectTransaction()
	suite.mockPaymentRepo.On("UpdatePaymentInTx", ctx, mock.Anything, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Amount.Equal(newAmount) && p.ExchangeRateDifference.Equal(decimal.NewFromInt(-10))
	})).Return(nil).Once()
	suite.mockMoveRepo.On("FindMoveLinesForUpdate", ctx, mock.Anything, existing.MoveID).
		Return(suite.adjustedMoveLines(existing.MoveID), nil).Once()

	// The labeled line is rewritten in place, never duplicated.
	suite.mockMoveRepo.On("UpdateMoveLinesInTx", ctx, mock.Anything, mock.MatchedBy(func(lines []domain.MoveLine) bool {
		return len(lines) == 3 &&
			lines[0].Debit.Equal(decimal.NewFromInt(190)) &&
			lines[1].Credit.Equal(decimal.NewFromInt(200)) &&
			lines[2].Name == domain.ExchangeDifferenceLabel &&
			lines[2].Debit.Equal(decimal.NewFromInt(10)) &&
			lines[2].AccountID == "acc-expense"
	})).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLogInTx", ctx, mock.Anything, mock.MatchedBy(func(entry domain.AuditLog) bool {
		return entry.Action == domain.AuditUpdated && entry.EntityID == existing.PaymentID
	})).Return(nil).Once()

	payment, err := suite.service.UpdatePayment(ctx, existing.PaymentID, req, "user-2")

	suite.Require().NoError(err)
	suite.True(payment.ExchangeRateDifference.Equal(decimal.NewFromInt(-10)))
	suite.mockMoveRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_GainRepointsAccount() {
	ctx := context.Background()
	existing := suite.adjustedPayment()
	req := dto.UpdatePaymentRequest{}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, existing.PaymentID).Return(existing, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(suite.company, nil).Once()
	// The official rate moved; the same payment now books a gain.
	suite.mockConversion.On("Convert", ctx, existing.Amount, "IQD", suite.companyID, existing.PaymentDate).
		Return(decimal.NewFromInt(105), nil).Once()

	suite.expectTransaction()
	suite.mockPaymentRepo.On("UpdatePaymentInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockMoveRepo.On("FindMoveLinesForUpdate", ctx, mock.Anything, existing.MoveID).
		Return(suite.adjustedMoveLines(existing.MoveID), nil).Once()
	suite.mockMoveRepo.On("UpdateMoveLinesInTx", ctx, mock.Anything, mock.MatchedBy(func(lines []domain.MoveLine) bool {
		return len(lines) == 3 &&
			lines[0].Debit.Equal(decimal.NewFromInt(95)) &&
			lines[1].Credit.Equal(decimal.NewFromInt(100)) &&
			lines[2].AccountID == "acc-income" &&
			lines[2].Debit.Equal(decimal.NewFromInt(5))
	})).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLogInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	payment, err := suite.service.UpdatePayment(ctx, existing.PaymentID, req, "user-2")

	suite.Require().NoError(err)
	suite.True(payment.ExchangeRateDifference.Equal(decimal.NewFromInt(5)))
	suite.mockMoveRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_SkipsWhenNoAdjustmentLine() {
	ctx := context.Background()
	existing := suite.adjustedPayment()
	req := dto.UpdatePaymentRequest{}

	// Two plain lines: the adjustment never fired when this payment was created.
	plainLines := suite.adjustedMoveLines(existing.MoveID)[:2]

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, existing.PaymentID).Return(existing, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(suite.company, nil).Once()
	suite.mockConversion.On("Convert", ctx, existing.Amount, "IQD", suite.companyID, existing.PaymentDate).
		Return(decimal.NewFromInt(95), nil).Once()

	suite.expectTransaction()
	suite.mockPaymentRepo.On("UpdatePaymentInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockMoveRepo.On("FindMoveLinesForUpdate", ctx, mock.Anything, existing.MoveID).Return(plainLines, nil).Once()
	suite.mockAuditRepo.On("SaveAuditLogInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	_, err := suite.service.UpdatePayment(ctx, existing.PaymentID, req, "user-2")

	suite.Require().NoError(err)
	suite.mockMoveRepo.AssertNotCalled(suite.T(), "UpdateMoveLinesInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_ClearPartnerResetsRateFields() {
	ctx := context.Background()
	existing := suite.adjustedPayment()
	empty := ""
	req := dto.UpdatePaymentRequest{PartnerID: &empty}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, existing.PaymentID).Return(existing, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(suite.company, nil).Once()
	suite.mockConversion.On("Convert", ctx, existing.Amount, "IQD", suite.companyID, existing.PaymentDate).
		Return(decimal.NewFromInt(95), nil).Once()

	suite.expectTransaction()
	suite.mockPaymentRepo.On("UpdatePaymentInTx", ctx, mock.Anything, mock.MatchedBy(func(p domain.Payment) bool {
		return p.PartnerID == nil && p.PartnerExchangeRateID == nil &&
			p.ExchangeRate.IsZero() && p.ExchangeRateDifference.IsZero()
	})).Return(nil).Once()
	suite.mockAuditRepo.On("SaveAuditLogInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	payment, err := suite.service.UpdatePayment(ctx, existing.PaymentID, req, "user-2")

	suite.Require().NoError(err)
	suite.Nil(payment.PartnerID)
	suite.True(payment.ExchangeRate.IsZero())
	// Guard no longer holds, so the move is left alone.
	suite.mockMoveRepo.AssertNotCalled(suite.T(), "FindMoveLinesForUpdate", mock.Anything, mock.Anything, mock.Anything)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_NotFound() {
	ctx := context.Background()
	paymentID := uuid.NewString()

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, paymentID).Return(nil, apperrors.ErrNotFound).Once()

	payment, err := suite.service.UpdatePayment(ctx, paymentID, dto.UpdatePaymentRequest{}, "user-2")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(payment)
}

// --- Reads ---

func (suite *PaymentServiceTestSuite) TestGetPaymentMove() {
	ctx := context.Background()
	existing := suite.adjustedPayment()
	move := &domain.Move{
		MoveID:       existing.MoveID,
		CompanyID:    suite.companyID,
		CurrencyCode: "IQD",
		Lines:        suite.adjustedMoveLines(existing.MoveID),
	}

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, existing.PaymentID).Return(existing, nil).Once()
	suite.mockMoveRepo.On("FindMoveByID", ctx, existing.MoveID).Return(move, nil).Once()

	got, err := suite.service.GetPaymentMove(ctx, existing.PaymentID)

	suite.Require().NoError(err)
	suite.Len(got.Lines, 3)
	suite.Equal(domain.ExchangeDifferenceLabel, got.Lines[2].Name)
}

func (suite *PaymentServiceTestSuite) TestListPayments_DefaultLimit() {
	ctx := context.Background()

	suite.mockPaymentRepo.On("ListPayments", ctx, suite.companyID, 20, 0).
		Return([]domain.Payment{}, nil).Once()

	_, err := suite.service.ListPayments(ctx, suite.companyID, 0, 0)

	suite.Require().NoError(err)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
