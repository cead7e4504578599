package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/partnerfx/partner_fx_app/internal/core/domain"
)

// CreatePartnerRateRequest defines the payload for creating a custom partner rate.
type CreatePartnerRateRequest struct {
	Name       string          `json:"name" binding:"required"`
	CompanyID  string          `json:"companyID" binding:"required"`
	RateAmount decimal.Decimal `json:"rateAmount" binding:"required"`
}

// UpdatePartnerRateRequest defines the payload for updating a custom partner rate.
// Nil fields are left unchanged.
type UpdatePartnerRateRequest struct {
	Name       *string          `json:"name,omitempty"`
	RateAmount *decimal.Decimal `json:"rateAmount,omitempty"`
}

// PartnerRateResponse defines the API representation of a custom partner rate.
type PartnerRateResponse struct {
	RateID        string          `json:"rateID"`
	Name          string          `json:"name"`
	CompanyID     string          `json:"companyID"`
	RateAmount    decimal.Decimal `json:"rateAmount"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToPartnerRateResponse converts a domain.PartnerExchangeRate to its response DTO.
func ToPartnerRateResponse(r *domain.PartnerExchangeRate) PartnerRateResponse {
	return PartnerRateResponse{
		RateID:        r.RateID,
		Name:          r.Name,
		CompanyID:     r.CompanyID,
		RateAmount:    r.RateAmount,
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
		LastUpdatedAt: r.LastUpdatedAt,
		LastUpdatedBy: r.LastUpdatedBy,
	}
}

// ToPartnerRateResponses converts a slice of rates to response DTOs.
func ToPartnerRateResponses(rates []domain.PartnerExchangeRate) []PartnerRateResponse {
	responses := make([]PartnerRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToPartnerRateResponse(&rates[i])
	}
	return responses
}
