package models

// Account is the database representation of a ledger account.
type Account struct {
	AccountID   string `db:"account_id"`
	CompanyID   string `db:"company_id"`
	Name        string `db:"name"`
	AccountType string `db:"account_type"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}
