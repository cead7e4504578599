package services

import (
	portsrepo "github.com/partnerfx/partner_fx_app/internal/core/ports/repositories"
	portssvc "github.com/partnerfx/partner_fx_app/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Conversion comes first since payment services depend on it.
	container.Conversion = NewConversionService(repos.ExchangeRateRepo, repos.CompanyRepo)

	container.PartnerRate = NewPartnerRateService(repos.PartnerRateRepo, repos.AuditLogRepo)
	container.Partner = NewPartnerService(repos.PartnerRepo, repos.PartnerRateRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo)
	container.Company = NewCompanyService(repos.CompanyRepo, repos.AccountRepo)
	container.Account = NewAccountService(repos.AccountRepo, repos.CompanyRepo)
	container.Audit = NewAuditService(repos.AuditLogRepo)

	container.Payment = NewPaymentService(
		repos.PaymentRepo,
		repos.MoveRepo,
		repos.PartnerRepo,
		repos.CompanyRepo,
		repos.AccountRepo,
		repos.AuditLogRepo,
		container.Conversion,
	)
	container.PaymentRegister = NewPaymentRegisterService(
		repos.PartnerRepo,
		repos.CompanyRepo,
		container.Conversion,
	)

	return container
}
