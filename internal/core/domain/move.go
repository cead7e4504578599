package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeDifferenceLabel is the line name used to tag the gain/loss carve-out
// line appended to a payment's move by the exchange adjustment.
const ExchangeDifferenceLabel = "Exchange Difference"

// Move is the journal entry backing a payment: an ordered collection of
// debit/credit lines that must net to zero.
type Move struct {
	MoveID       string    `json:"moveID"`    // Primary Key (UUID)
	CompanyID    string    `json:"companyID"` // FK -> Company.companyID
	MoveDate     time.Time `json:"moveDate"`
	CurrencyCode string    `json:"currencyCode"`
	AuditFields
	Lines []MoveLine `json:"lines,omitempty"` // Ordered by Sequence
}

// MoveLine is a single debit/credit line within a Move. Exactly one of Debit
// and Credit is expected to be non-zero on a well-formed line.
type MoveLine struct {
	LineID       string          `json:"lineID"` // Primary Key (UUID)
	MoveID       string          `json:"moveID"` // FK -> Move.moveID
	Sequence     int             `json:"sequence"`
	AccountID    string          `json:"accountID"` // FK -> Account.accountID
	Name         string          `json:"name"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	CurrencyCode string          `json:"currencyCode"`
	AuditFields
}

// IsDebit reports whether the line carries a positive debit amount.
func (l MoveLine) IsDebit() bool {
	return l.Debit.GreaterThan(decimal.Zero)
}

// IsCredit reports whether the line carries a positive credit amount.
func (l MoveLine) IsCredit() bool {
	return l.Credit.GreaterThan(decimal.Zero)
}
