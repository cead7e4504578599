package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account is a ledger account within a company's chart of accounts. Only the
// fields the exchange adjustment needs are modelled here; the full chart lives
// in the host accounting platform.
type Account struct {
	AccountID   string      `json:"accountID"` // Primary Key (UUID)
	CompanyID   string      `json:"companyID"` // FK -> Company.companyID
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	IsActive    bool        `json:"isActive"`
	AuditFields
}
