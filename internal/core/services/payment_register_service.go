package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/partnerfx/partner_fx_app/internal/apperrors"
	"github.com/partnerfx/partner_fx_app/internal/core/domain"
	portsrepo "github.com/partnerfx/partner_fx_app/internal/core/ports/repositories"
	portssvc "github.com/partnerfx/partner_fx_app/internal/core/ports/services"
	"github.com/partnerfx/partner_fx_app/internal/dto"
	"github.com/partnerfx/partner_fx_app/internal/utils/accounting"
)

// paymentRegisterService previews the derived exchange fields for a
// prospective payment. It never writes anything; the figures come from the
// same computation the payment service applies on creation.
type paymentRegisterService struct {
	partnerRepo   portsrepo.PartnerReader
	companyRepo   portsrepo.CompanyReader
	conversionSvc portssvc.ConversionSvcFacade
}

// NewPaymentRegisterService creates a new PaymentRegisterSvcFacade.
func NewPaymentRegisterService(
	partnerRepo portsrepo.PartnerReader,
	companyRepo portsrepo.CompanyReader,
	conversionSvc portssvc.ConversionSvcFacade,
) portssvc.PaymentRegisterSvcFacade {
	return &paymentRegisterService{
		partnerRepo:   partnerRepo,
		companyRepo:   companyRepo,
		conversionSvc: conversionSvc,
	}
}

var _ portssvc.PaymentRegisterSvcFacade = (*paymentRegisterService)(nil)

// PreviewPaymentRegister resolves the partner rate and reports the exchange
// difference an equivalent real payment would carry, plus the adjustment
// amounts and target account when the guard would fire.
func (s *paymentRegisterService) PreviewPaymentRegister(ctx context.Context, req dto.PaymentRegisterRequest) (*dto.PaymentRegisterPreviewResponse, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company %s: %w", req.CompanyID, err)
	}

	rate := decimal.Zero
	var rateID *string
	if req.PartnerID != nil {
		partner, err := s.partnerRepo.FindPartnerByID(ctx, *req.PartnerID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve partner %s: %w", *req.PartnerID, err)
		}
		if partner.CompanyID != req.CompanyID {
			return nil, fmt.Errorf("%w: partner %s", ErrPartnerCompanyMismatch, partner.PartnerID)
		}
		rate = partner.RateAmount
		rateID = partner.PartnerExchangeRateID
	}

	standard := req.Amount
	if req.CurrencyCode != company.CurrencyCode {
		standard, err = s.conversionSvc.Convert(ctx, req.Amount, req.CurrencyCode, req.CompanyID, req.RegistrationDate)
		if err != nil {
			return nil, err
		}
	}

	difference := accounting.ExchangeDifference(req.Amount, req.CurrencyCode, company.CurrencyCode, rate, standard)

	resp := &dto.PaymentRegisterPreviewResponse{
		ExchangeRate:           rate,
		PartnerExchangeRateID:  rateID,
		ExchangeRateDifference: difference,
		StandardCompanyAmount:  standard.Round(2),
	}
	if !rate.IsZero() {
		resp.CustomCompanyAmount = accounting.CustomCompanyAmount(req.Amount, rate).Round(2)
	}

	applies := req.PartnerType == domain.Customer &&
		req.CurrencyCode == adjustmentCurrencyCode &&
		req.PaymentType == domain.Inbound &&
		rateID != nil &&
		!rate.IsZero() &&
		!difference.IsZero()
	if !applies {
		return resp, nil
	}

	amounts := accounting.ComputeAdjustment(req.Amount, rate, difference)
	resp.AdjustmentApplies = true
	resp.ExchangeAmount = amounts.Exchange
	resp.CustomExchange = amounts.Custom
	resp.ReducedAmount = amounts.Reduced
	if difference.GreaterThan(decimal.Zero) {
		resp.GainLossAccountID = company.IncomeCurrencyExchangeAccountID
	} else {
		resp.GainLossAccountID = company.ExpenseCurrencyExchangeAccountID
	}
	return resp, nil
}
