package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/partnerfx/partner_fx_app/internal/core/domain"
)

// PaymentReader defines read operations for payment data.
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its unique identifier.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPayments retrieves a paginated list of payments for a company.
	ListPayments(ctx context.Context, companyID string, limit, offset int) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data. Writes always run
// inside the caller's transaction: a payment mutation and its move adjustment
// form one atomic unit of work.
type PaymentWriter interface {
	// SavePaymentInTx persists a new payment within the given transaction.
	SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error

	// UpdatePaymentInTx updates an existing payment within the given transaction.
	UpdatePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error
}

// PaymentRepositoryFacade combines all payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities.
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
