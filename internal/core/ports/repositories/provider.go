package repositories

// RepositoryProvider bundles every repository implementation handed to the
// service container at startup.
type RepositoryProvider struct {
	PartnerRateRepo  PartnerRateRepositoryFacade
	PartnerRepo      PartnerRepositoryFacade
	PaymentRepo      PaymentRepositoryWithTx
	MoveRepo         MoveRepositoryFacade
	CompanyRepo      CompanyRepositoryFacade
	AccountRepo      AccountRepositoryFacade
	ExchangeRateRepo ExchangeRateRepositoryFacade
	AuditLogRepo     AuditLogRepository
}
