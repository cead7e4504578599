package services_test

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/partnerfx/partner_fx_app/internal/core/domain"
)

// errRepoFailure stands in for any infrastructure error in the suites below.
var errRepoFailure = errors.New("repository failure")

// --- Mock PartnerRateRepository ---

type MockPartnerRateRepository struct {
	mock.Mock
}

func (m *MockPartnerRateRepository) FindPartnerExchangeRateByID(ctx context.Context, rateID string) (*domain.PartnerExchangeRate, error) {
	args := m.Called(ctx, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PartnerExchangeRate), args.Error(1)
}

func (m *MockPartnerRateRepository) FindPartnerExchangeRateByName(ctx context.Context, companyID, name string) (*domain.PartnerExchangeRate, error) {
	args := m.Called(ctx, companyID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PartnerExchangeRate), args.Error(1)
}

func (m *MockPartnerRateRepository) ListPartnerExchangeRates(ctx context.Context, companyID string, limit, offset int) ([]domain.PartnerExchangeRate, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PartnerExchangeRate), args.Error(1)
}

func (m *MockPartnerRateRepository) SavePartnerExchangeRate(ctx context.Context, rate domain.PartnerExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockPartnerRateRepository) UpdatePartnerExchangeRate(ctx context.Context, rate domain.PartnerExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockPartnerRateRepository) DeletePartnerExchangeRate(ctx context.Context, rateID string) error {
	args := m.Called(ctx, rateID)
	return args.Error(0)
}

// --- Mock PartnerRepository ---

type MockPartnerRepository struct {
	mock.Mock
}

func (m *MockPartnerRepository) FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

func (m *MockPartnerRepository) ListPartners(ctx context.Context, companyID string, limit, offset int) ([]domain.Partner, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partner), args.Error(1)
}

func (m *MockPartnerRepository) SavePartner(ctx context.Context, partner domain.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}

func (m *MockPartnerRepository) UpdatePartner(ctx context.Context, partner domain.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}

// --- Mock PaymentRepository ---

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, companyID string, limit, offset int) ([]domain.Payment, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	args := m.Called(ctx, tx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdatePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	args := m.Called(ctx, tx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockPaymentRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPaymentRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock MoveRepository ---

type MockMoveRepository struct {
	mock.Mock
}

func (m *MockMoveRepository) FindMoveByID(ctx context.Context, moveID string) (*domain.Move, error) {
	args := m.Called(ctx, moveID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Move), args.Error(1)
}

func (m *MockMoveRepository) SaveMoveInTx(ctx context.Context, tx pgx.Tx, move domain.Move, lines []domain.MoveLine) error {
	args := m.Called(ctx, tx, move, lines)
	return args.Error(0)
}

func (m *MockMoveRepository) FindMoveLinesForUpdate(ctx context.Context, tx pgx.Tx, moveID string) ([]domain.MoveLine, error) {
	args := m.Called(ctx, tx, moveID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MoveLine), args.Error(1)
}

func (m *MockMoveRepository) UpdateMoveLinesInTx(ctx context.Context, tx pgx.Tx, lines []domain.MoveLine) error {
	args := m.Called(ctx, tx, lines)
	return args.Error(0)
}

func (m *MockMoveRepository) AppendMoveLineInTx(ctx context.Context, tx pgx.Tx, line domain.MoveLine) error {
	args := m.Called(ctx, tx, line)
	return args.Error(0)
}

// --- Mock CompanyRepository ---

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) UpdateCompanyDefaultAccounts(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

// --- Mock AccountRepository ---

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

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, companyID string, limit, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// --- Mock ExchangeRateRepository ---

type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindRateEffective(ctx context.Context, fromCurrencyCode, toCurrencyCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCurrencyCode, toCurrencyCode, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context, fromCurrencyCode, toCurrencyCode string) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCurrencyCode, toCurrencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Mock AuditLogRepository ---

type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) SaveAuditLogInTx(ctx context.Context, tx pgx.Tx, entry domain.AuditLog) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) ListAuditLogsForEntity(ctx context.Context, entityType, entityID string, limit, offset int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, entityType, entityID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}

// --- Mock ConversionService ---

type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) Convert(ctx context.Context, amount decimal.Decimal, fromCurrency string, companyID string, date time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, amount, fromCurrency, companyID, date)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
