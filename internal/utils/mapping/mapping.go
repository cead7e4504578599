package mapping

import (
	"github.com/partnerfx/partner_fx_app/internal/core/domain"
	"github.com/partnerfx/partner_fx_app/internal/models"
)

func toModelAudit(a domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

func toDomainAudit(a models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

// ToModelPartnerExchangeRate converts a domain rate to its database model.
func ToModelPartnerExchangeRate(r domain.PartnerExchangeRate) models.PartnerExchangeRate {
	return models.PartnerExchangeRate{
		RateID:      r.RateID,
		Name:        r.Name,
		CompanyID:   r.CompanyID,
		RateAmount:  r.RateAmount,
		AuditFields: toModelAudit(r.AuditFields),
	}
}

// ToDomainPartnerExchangeRate converts a database model to its domain form.
func ToDomainPartnerExchangeRate(m models.PartnerExchangeRate) domain.PartnerExchangeRate {
	return domain.PartnerExchangeRate{
		RateID:      m.RateID,
		Name:        m.Name,
		CompanyID:   m.CompanyID,
		RateAmount:  m.RateAmount,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

// ToModelPartner converts a domain partner to its database model.
func ToModelPartner(p domain.Partner) models.Partner {
	return models.Partner{
		PartnerID:             p.PartnerID,
		CompanyID:             p.CompanyID,
		Name:                  p.Name,
		PartnerType:           string(p.PartnerType),
		PartnerExchangeRateID: p.PartnerExchangeRateID,
		RateAmount:            p.RateAmount,
		AuditFields:           toModelAudit(p.AuditFields),
	}
}

// ToDomainPartner converts a database model to its domain form.
func ToDomainPartner(m models.Partner) domain.Partner {
	return domain.Partner{
		PartnerID:             m.PartnerID,
		CompanyID:             m.CompanyID,
		Name:                  m.Name,
		PartnerType:           domain.PartnerType(m.PartnerType),
		PartnerExchangeRateID: m.PartnerExchangeRateID,
		RateAmount:            m.RateAmount,
		AuditFields:           toDomainAudit(m.AuditFields),
	}
}

// ToModelPayment converts a domain payment to its database model.
func ToModelPayment(p domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:                        p.PaymentID,
		CompanyID:                        p.CompanyID,
		PartnerID:                        p.PartnerID,
		PartnerType:                      string(p.PartnerType),
		PaymentType:                      string(p.PaymentType),
		IsInternalTransfer:               p.IsInternalTransfer,
		Amount:                           p.Amount,
		CurrencyCode:                     p.CurrencyCode,
		PaymentDate:                      p.PaymentDate,
		MoveID:                           p.MoveID,
		IncomeCurrencyExchangeAccountID:  p.IncomeCurrencyExchangeAccountID,
		ExpenseCurrencyExchangeAccountID: p.ExpenseCurrencyExchangeAccountID,
		ExchangeRate:                     p.ExchangeRate,
		PartnerExchangeRateID:            p.PartnerExchangeRateID,
		ExchangeRateDifference:           p.ExchangeRateDifference,
		AuditFields:                      toModelAudit(p.AuditFields),
	}
}

// ToDomainPayment converts a database model to its domain form.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:                        m.PaymentID,
		CompanyID:                        m.CompanyID,
		PartnerID:                        m.PartnerID,
		PartnerType:                      domain.PartnerType(m.PartnerType),
		PaymentType:                      domain.PaymentType(m.PaymentType),
		IsInternalTransfer:               m.IsInternalTransfer,
		Amount:                           m.Amount,
		CurrencyCode:                     m.CurrencyCode,
		PaymentDate:                      m.PaymentDate,
		MoveID:                           m.MoveID,
		IncomeCurrencyExchangeAccountID:  m.IncomeCurrencyExchangeAccountID,
		ExpenseCurrencyExchangeAccountID: m.ExpenseCurrencyExchangeAccountID,
		ExchangeRate:                     m.ExchangeRate,
		PartnerExchangeRateID:            m.PartnerExchangeRateID,
		ExchangeRateDifference:           m.ExchangeRateDifference,
		AuditFields:                      toDomainAudit(m.AuditFields),
	}
}

// ToModelMove converts a domain move header to its database model.
func ToModelMove(mv domain.Move) models.Move {
	return models.Move{
		MoveID:       mv.MoveID,
		CompanyID:    mv.CompanyID,
		MoveDate:     mv.MoveDate,
		CurrencyCode: mv.CurrencyCode,
		AuditFields:  toModelAudit(mv.AuditFields),
	}
}

// ToDomainMove converts a database model to its domain form.
func ToDomainMove(m models.Move) domain.Move {
	return domain.Move{
		MoveID:       m.MoveID,
		CompanyID:    m.CompanyID,
		MoveDate:     m.MoveDate,
		CurrencyCode: m.CurrencyCode,
		AuditFields:  toDomainAudit(m.AuditFields),
	}
}

// ToModelMoveLine converts a domain move line to its database model.
func ToModelMoveLine(l domain.MoveLine) models.MoveLine {
	return models.MoveLine{
		LineID:       l.LineID,
		MoveID:       l.MoveID,
		Sequence:     l.Sequence,
		AccountID:    l.AccountID,
		Name:         l.Name,
		Debit:        l.Debit,
		Credit:       l.Credit,
		CurrencyCode: l.CurrencyCode,
		AuditFields:  toModelAudit(l.AuditFields),
	}
}

// ToDomainMoveLine converts a database model to its domain form.
func ToDomainMoveLine(m models.MoveLine) domain.MoveLine {
	return domain.MoveLine{
		LineID:       m.LineID,
		MoveID:       m.MoveID,
		Sequence:     m.Sequence,
		AccountID:    m.AccountID,
		Name:         m.Name,
		Debit:        m.Debit,
		Credit:       m.Credit,
		CurrencyCode: m.CurrencyCode,
		AuditFields:  toDomainAudit(m.AuditFields),
	}
}

// ToDomainPartnerExchangeRateSlice converts a slice of rate models.
func ToDomainPartnerExchangeRateSlice(ms []models.PartnerExchangeRate) []domain.PartnerExchangeRate {
	out := make([]domain.PartnerExchangeRate, len(ms))
	for i, m := range ms {
		out[i] = ToDomainPartnerExchangeRate(m)
	}
	return out
}

// ToDomainPartnerSlice converts a slice of partner models.
func ToDomainPartnerSlice(ms []models.Partner) []domain.Partner {
	out := make([]domain.Partner, len(ms))
	for i, m := range ms {
		out[i] = ToDomainPartner(m)
	}
	return out
}

// ToDomainPaymentSlice converts a slice of payment models.
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	out := make([]domain.Payment, len(ms))
	for i, m := range ms {
		out[i] = ToDomainPayment(m)
	}
	return out
}

// ToDomainMoveLineSlice converts a slice of move line models.
func ToDomainMoveLineSlice(ms []models.MoveLine) []domain.MoveLine {
	out := make([]domain.MoveLine, len(ms))
	for i, m := range ms {
		out[i] = ToDomainMoveLine(m)
	}
	return out
}

// ToModelCompany converts a domain company to its database model.
func ToModelCompany(c domain.Company) models.Company {
	return models.Company{
		CompanyID:                        c.CompanyID,
		Name:                             c.Name,
		CurrencyCode:                     c.CurrencyCode,
		IncomeCurrencyExchangeAccountID:  c.IncomeCurrencyExchangeAccountID,
		ExpenseCurrencyExchangeAccountID: c.ExpenseCurrencyExchangeAccountID,
		AuditFields:                      toModelAudit(c.AuditFields),
	}
}

// ToDomainCompany converts a database model to its domain form.
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:                        m.CompanyID,
		Name:                             m.Name,
		CurrencyCode:                     m.CurrencyCode,
		IncomeCurrencyExchangeAccountID:  m.IncomeCurrencyExchangeAccountID,
		ExpenseCurrencyExchangeAccountID: m.ExpenseCurrencyExchangeAccountID,
		AuditFields:                      toDomainAudit(m.AuditFields),
	}
}

// ToModelAccount converts a domain account to its database model.
func ToModelAccount(a domain.Account) models.Account {
	return models.Account{
		AccountID:   a.AccountID,
		CompanyID:   a.CompanyID,
		Name:        a.Name,
		AccountType: string(a.AccountType),
		IsActive:    a.IsActive,
		AuditFields: toModelAudit(a.AuditFields),
	}
}

// ToDomainAccount converts a database model to its domain form.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
		IsActive:    m.IsActive,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

// ToModelExchangeRate converts a domain rate to its database model.
func ToModelExchangeRate(r domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID:   r.ExchangeRateID,
		FromCurrencyCode: r.FromCurrencyCode,
		ToCurrencyCode:   r.ToCurrencyCode,
		Rate:             r.Rate,
		DateEffective:    r.DateEffective,
		AuditFields:      toModelAudit(r.AuditFields),
	}
}

// ToDomainExchangeRate converts a database model to its domain form.
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:   m.ExchangeRateID,
		FromCurrencyCode: m.FromCurrencyCode,
		ToCurrencyCode:   m.ToCurrencyCode,
		Rate:             m.Rate,
		DateEffective:    m.DateEffective,
		AuditFields:      toDomainAudit(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of account models.
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	out := make([]domain.Account, len(ms))
	for i, m := range ms {
		out[i] = ToDomainAccount(m)
	}
	return out
}

// ToDomainExchangeRateSlice converts a slice of exchange rate models.
func ToDomainExchangeRateSlice(ms []models.ExchangeRate) []domain.ExchangeRate {
	out := make([]domain.ExchangeRate, len(ms))
	for i, m := range ms {
		out[i] = ToDomainExchangeRate(m)
	}
	return out
}

// ToDomainAuditLogSlice converts a slice of audit entry models.
func ToDomainAuditLogSlice(ms []models.AuditLog) []domain.AuditLog {
	out := make([]domain.AuditLog, len(ms))
	for i, m := range ms {
		out[i] = ToDomainAuditLog(m)
	}
	return out
}

// ToModelAuditLog converts a domain audit entry to its database model.
func ToModelAuditLog(a domain.AuditLog) models.AuditLog {
	return models.AuditLog{
		AuditID:     a.AuditID,
		EntityType:  a.EntityType,
		EntityID:    a.EntityID,
		Action:      string(a.Action),
		Detail:      a.Detail,
		ActorUserID: a.ActorUserID,
		CreatedAt:   a.CreatedAt,
	}
}

// ToDomainAuditLog converts a database model to its domain form.
func ToDomainAuditLog(m models.AuditLog) domain.AuditLog {
	return domain.AuditLog{
		AuditID:     m.AuditID,
		EntityType:  m.EntityType,
		EntityID:    m.EntityID,
		Action:      domain.AuditAction(m.Action),
		Detail:      m.Detail,
		ActorUserID: m.ActorUserID,
		CreatedAt:   m.CreatedAt,
	}
}
