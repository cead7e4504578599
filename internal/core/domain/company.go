package domain

// Company holds company-level reference data, including the default gain/loss
// accounts copied onto new payments.
type Company struct {
	CompanyID                        string `json:"companyID"` // Primary Key (UUID)
	Name                             string `json:"name"`
	CurrencyCode                     string `json:"currencyCode"` // Company (functional) currency
	IncomeCurrencyExchangeAccountID  string `json:"incomeCurrencyExchangeAccountID"`
	ExpenseCurrencyExchangeAccountID string `json:"expenseCurrencyExchangeAccountID"`
	AuditFields
}
