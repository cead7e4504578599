package dto

import (
	"time"

	"github.com/partnerfx/partner_fx_app/internal/core/domain"
)

// UpdateCompanyAccountsRequest updates the company-level default gain/loss
// accounts copied onto new payments. Nil fields are left unchanged.
type UpdateCompanyAccountsRequest struct {
	IncomeCurrencyExchangeAccountID  *string `json:"incomeCurrencyExchangeAccountID,omitempty"`
	ExpenseCurrencyExchangeAccountID *string `json:"expenseCurrencyExchangeAccountID,omitempty"`
}

// CompanyResponse defines the API representation of company reference data.
type CompanyResponse struct {
	CompanyID                        string `json:"companyID"`
	Name                             string `json:"name"`
	CurrencyCode                     string `json:"currencyCode"`
	IncomeCurrencyExchangeAccountID  string `json:"incomeCurrencyExchangeAccountID"`
	ExpenseCurrencyExchangeAccountID string `json:"expenseCurrencyExchangeAccountID"`
}

// CreateAccountRequest defines the payload for adding a ledger account.
type CreateAccountRequest struct {
	CompanyID   string             `json:"companyID" binding:"required"`
	Name        string             `json:"name" binding:"required"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
}

// AccountResponse defines the API representation of a ledger account.
type AccountResponse struct {
	AccountID   string             `json:"accountID"`
	CompanyID   string             `json:"companyID"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"accountType"`
	IsActive    bool               `json:"isActive"`
}

// AuditLogResponse defines the API representation of an audit trail entry.
type AuditLogResponse struct {
	AuditID     string    `json:"auditID"`
	EntityType  string    `json:"entityType"`
	EntityID    string    `json:"entityID"`
	Action      string    `json:"action"`
	Detail      string    `json:"detail"`
	ActorUserID string    `json:"actorUserID"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToCompanyResponse converts a domain.Company to its response DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:                        c.CompanyID,
		Name:                             c.Name,
		CurrencyCode:                     c.CurrencyCode,
		IncomeCurrencyExchangeAccountID:  c.IncomeCurrencyExchangeAccountID,
		ExpenseCurrencyExchangeAccountID: c.ExpenseCurrencyExchangeAccountID,
	}
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		CompanyID:   a.CompanyID,
		Name:        a.Name,
		AccountType: a.AccountType,
		IsActive:    a.IsActive,
	}
}

// ToAccountResponses converts a slice of accounts to response DTOs.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}

// ToAuditLogResponses converts a slice of audit entries to response DTOs.
func ToAuditLogResponses(entries []domain.AuditLog) []AuditLogResponse {
	responses := make([]AuditLogResponse, len(entries))
	for i, e := range entries {
		responses[i] = AuditLogResponse{
			AuditID:     e.AuditID,
			EntityType:  e.EntityType,
			EntityID:    e.EntityID,
			Action:      string(e.Action),
			Detail:      e.Detail,
			ActorUserID: e.ActorUserID,
			CreatedAt:   e.CreatedAt,
		}
	}
	return responses
}
