package dto

import (
	"github.com/shopspring/decimal"

	"github.com/partnerfx/partner_fx_app/internal/core/domain"
)

// CreatePartnerRequest defines the payload for creating a partner.
type CreatePartnerRequest struct {
	CompanyID             string             `json:"companyID" binding:"required"`
	Name                  string             `json:"name" binding:"required"`
	PartnerType           domain.PartnerType `json:"partnerType" binding:"required,oneof=CUSTOMER VENDOR"`
	PartnerExchangeRateID *string            `json:"partnerExchangeRateID,omitempty"`
}

// UpdatePartnerRequest defines the payload for updating a partner.
// Nil fields are left unchanged.
type UpdatePartnerRequest struct {
	Name        *string             `json:"name,omitempty"`
	PartnerType *domain.PartnerType `json:"partnerType,omitempty" binding:"omitempty,oneof=CUSTOMER VENDOR"`
}

// AssignPartnerRateRequest sets or clears a partner's exchange rate reference.
// A nil RateID clears the assignment.
type AssignPartnerRateRequest struct {
	RateID *string `json:"rateID"`
}

// PartnerResponse defines the API representation of a partner.
type PartnerResponse struct {
	PartnerID             string             `json:"partnerID"`
	CompanyID             string             `json:"companyID"`
	Name                  string             `json:"name"`
	PartnerType           domain.PartnerType `json:"partnerType"`
	PartnerExchangeRateID *string            `json:"partnerExchangeRateID,omitempty"`
	RateAmount            decimal.Decimal    `json:"rateAmount"`
}

// ToPartnerResponse converts a domain.Partner to its response DTO.
func ToPartnerResponse(p *domain.Partner) PartnerResponse {
	return PartnerResponse{
		PartnerID:             p.PartnerID,
		CompanyID:             p.CompanyID,
		Name:                  p.Name,
		PartnerType:           p.PartnerType,
		PartnerExchangeRateID: p.PartnerExchangeRateID,
		RateAmount:            p.RateAmount,
	}
}

// ToPartnerResponses converts a slice of partners to response DTOs.
func ToPartnerResponses(partners []domain.Partner) []PartnerResponse {
	responses := make([]PartnerResponse, len(partners))
	for i := range partners {
		responses[i] = ToPartnerResponse(&partners[i])
	}
	return responses
}
