package models

// Company is the database representation of company reference data.
type Company struct {
	CompanyID                        string `db:"company_id"`
	Name                             string `db:"name"`
	CurrencyCode                     string `db:"currency_code"`
	IncomeCurrencyExchangeAccountID  string `db:"income_currency_exchange_account_id"`
	ExpenseCurrencyExchangeAccountID string `db:"expense_currency_exchange_account_id"`
	AuditFields
}
