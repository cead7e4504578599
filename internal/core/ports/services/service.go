package services

// ServiceContainer holds instances of all the application services. It is the
// main entry point for accessing service functionality and is what the
// handlers are wired against.
type ServiceContainer struct {
	PartnerRate     PartnerRateSvcFacade
	Partner         PartnerSvcFacade
	Payment         PaymentSvcFacade
	PaymentRegister PaymentRegisterSvcFacade
	Conversion      ConversionSvcFacade
	ExchangeRate    ExchangeRateSvcFacade
	Company         CompanySvcFacade
	Account         AccountSvcFacade
	Audit           AuditSvcFacade
}
