package services

import (
	"context"

	"github.com/partnerfx/partner_fx_app/internal/core/domain"
	"github.com/partnerfx/partner_fx_app/internal/dto"
)

// PaymentSvcFacade exposes payment lifecycle operations. Creation and update
// both refresh the derived exchange fields and re-apply the ledger adjustment
// when the applicability guard holds.
type PaymentSvcFacade interface {
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, updaterUserID string) (*domain.Payment, error)
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListPayments(ctx context.Context, companyID string, limit, offset int) ([]domain.Payment, error)
	GetPaymentMove(ctx context.Context, paymentID string) (*domain.Move, error)
}

// PaymentRegisterSvcFacade exposes the stateless pre-payment preview.
type PaymentRegisterSvcFacade interface {
	PreviewPaymentRegister(ctx context.Context, req dto.PaymentRegisterRequest) (*dto.PaymentRegisterPreviewResponse, error)
}
