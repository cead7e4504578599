package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/partnerfx/partner_fx_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PartnerRateRepo:  newPgxPartnerRateRepository(dbPool),
		PartnerRepo:      newPgxPartnerRepository(dbPool),
		PaymentRepo:      newPgxPaymentRepository(dbPool),
		MoveRepo:         newPgxMoveRepository(dbPool),
		CompanyRepo:      newPgxCompanyRepository(dbPool),
		AccountRepo:      newPgxAccountRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		AuditLogRepo:     newPgxAuditLogRepository(dbPool),
	}
}
