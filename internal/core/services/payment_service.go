package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/partnerfx/partner_fx_app/internal/apperrors"
	"github.com/partnerfx/partner_fx_app/internal/core/domain"
	portsrepo "github.com/partnerfx/partner_fx_app/internal/core/ports/repositories"
	portssvc "github.com/partnerfx/partner_fx_app/internal/core/ports/services"
	"github.com/partnerfx/partner_fx_app/internal/dto"
	"github.com/partnerfx/partner_fx_app/internal/middleware"
	"github.com/partnerfx/partner_fx_app/internal/utils/accounting"
)

// adjustmentCurrencyCode is the foreign currency the exchange adjustment is
// restricted to. Payments in any other currency are booked unmodified.
const adjustmentCurrencyCode = "IQD"

const paymentEntityType = "payment"

var (
	ErrPartnerCompanyMismatch = errors.New("partner belongs to a different company")
	ErrAccountInactive        = errors.New("account is inactive")
)

// paymentService provides payment lifecycle logic, including the exchange
// difference adjustment applied to the backing move.
type paymentService struct {
	paymentRepo   portsrepo.PaymentRepositoryWithTx
	moveRepo      portsrepo.MoveRepositoryFacade
	partnerRepo   portsrepo.PartnerReader
	companyRepo   portsrepo.CompanyReader
	accountRepo   portsrepo.AccountReader
	auditRepo     portsrepo.AuditLogRepository
	conversionSvc portssvc.ConversionSvcFacade
}

// NewPaymentService creates a new PaymentSvcFacade.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryWithTx,
	moveRepo portsrepo.MoveRepositoryFacade,
	partnerRepo portsrepo.PartnerReader,
	companyRepo portsrepo.CompanyReader,
	accountRepo portsrepo.AccountReader,
	auditRepo portsrepo.AuditLogRepository,
	conversionSvc portssvc.ConversionSvcFacade,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo:   paymentRepo,
		moveRepo:      moveRepo,
		partnerRepo:   partnerRepo,
		companyRepo:   companyRepo,
		accountRepo:   accountRepo,
		auditRepo:     auditRepo,
		conversionSvc: conversionSvc,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// refreshPartnerRate copies the partner's rate reference and amount onto the
// payment, or resets both when the partner is cleared. Invoked on every change
// to the payment's partner field.
func (s *paymentService) refreshPartnerRate(ctx context.Context, payment *domain.Payment) error {
	if payment.PartnerID == nil {
		payment.PartnerExchangeRateID = nil
		payment.ExchangeRate = decimal.Zero
		return nil
	}

	partner, err := s.partnerRepo.FindPartnerByID(ctx, *payment.PartnerID)
	if err != nil {
		return fmt.Errorf("failed to resolve partner %s: %w", *payment.PartnerID, err)
	}
	if partner.CompanyID != payment.CompanyID {
		return fmt.Errorf("%w: partner %s", ErrPartnerCompanyMismatch, partner.PartnerID)
	}

	payment.PartnerExchangeRateID = partner.PartnerExchangeRateID
	payment.ExchangeRate = partner.RateAmount
	return nil
}

// refreshExchangeDifference recomputes the payment's exchange rate difference
// from its amount, currency and custom rate. Invoked whenever any of those
// change. Returns the standard company amount as well, for move generation.
func (s *paymentService) refreshExchangeDifference(ctx context.Context, payment *domain.Payment, companyCurrency string) (decimal.Decimal, error) {
	standard := payment.Amount
	if payment.CurrencyCode != companyCurrency {
		var err error
		standard, err = s.conversionSvc.Convert(ctx, payment.Amount, payment.CurrencyCode, payment.CompanyID, payment.PaymentDate)
		if err != nil {
			return decimal.Zero, err
		}
	}

	payment.ExchangeRateDifference = accounting.ExchangeDifference(
		payment.Amount, payment.CurrencyCode, companyCurrency, payment.ExchangeRate, standard)
	return standard, nil
}

// adjustmentApplies reports whether the exchange adjustment guard holds for
// the payment: customer, hardcoded adjustment currency, inbound, not an
// internal transfer, with a non-zero partner rate and non-zero difference.
func adjustmentApplies(p domain.Payment) bool {
	return p.PartnerType == domain.Customer &&
		p.CurrencyCode == adjustmentCurrencyCode &&
		!p.IsInternalTransfer &&
		p.PaymentType == domain.Inbound &&
		p.PartnerExchangeRateID != nil &&
		!p.ExchangeRate.IsZero() &&
		!p.ExchangeRateDifference.IsZero()
}

// gainLossAccount picks the account the difference is booked to: the income
// account for a gain, the expense account for a loss.
func gainLossAccount(p domain.Payment) string {
	if p.ExchangeRateDifference.GreaterThan(decimal.Zero) {
		return p.IncomeCurrencyExchangeAccountID
	}
	return p.ExpenseCurrencyExchangeAccountID
}

// CreatePayment persists a new payment together with its base move and, when
// the guard holds, the exchange difference adjustment. Everything runs in one
// database transaction.
func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company %s: %w", req.CompanyID, err)
	}

	// Gain/loss accounts default from the company, independently overridable.
	incomeAccountID := company.IncomeCurrencyExchangeAccountID
	if req.IncomeCurrencyExchangeAccountID != nil {
		incomeAccountID = *req.IncomeCurrencyExchangeAccountID
	}
	expenseAccountID := company.ExpenseCurrencyExchangeAccountID
	if req.ExpenseCurrencyExchangeAccountID != nil {
		expenseAccountID = *req.ExpenseCurrencyExchangeAccountID
	}

	if err := s.validateAccounts(ctx, req.LiquidityAccountID, req.ReceivableAccountID, incomeAccountID, expenseAccountID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID:                        uuid.NewString(),
		CompanyID:                        req.CompanyID,
		PartnerID:                        req.PartnerID,
		PartnerType:                      req.PartnerType,
		PaymentType:                      req.PaymentType,
		IsInternalTransfer:               req.IsInternalTransfer,
		Amount:                           req.Amount,
		CurrencyCode:                     req.CurrencyCode,
		PaymentDate:                      req.PaymentDate,
		IncomeCurrencyExchangeAccountID:  incomeAccountID,
		ExpenseCurrencyExchangeAccountID: expenseAccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	// Derived fields are refreshed strictly before the adjustment reads them.
	if err := s.refreshPartnerRate(ctx, &payment); err != nil {
		return nil, err
	}
	standard, err := s.refreshExchangeDifference(ctx, &payment, company.CurrencyCode)
	if err != nil {
		return nil, err
	}

	// Base move: a debit/credit pair valued at the standard conversion, the
	// way the host ledger engine would generate it.
	move, lines := s.buildBaseMove(payment, req.LiquidityAccountID, req.ReceivableAccountID, standard, creatorUserID, now)
	payment.MoveID = move.MoveID

	tx, err := s.paymentRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.paymentRepo.Rollback(ctx, tx)

	if err := s.moveRepo.SaveMoveInTx(ctx, tx, move, lines); err != nil {
		logger.Error("Failed to save move", slog.String("error", err.Error()), slog.String("move_id", move.MoveID))
		return nil, fmt.Errorf("failed to save move: %w", err)
	}

	if adjustmentApplies(payment) {
		if err := s.applyAdjustmentOnCreate(ctx, tx, payment, lines, creatorUserID, now); err != nil {
			return nil, err
		}
	}

	if err := s.paymentRepo.SavePaymentInTx(ctx, tx, payment); err != nil {
		logger.Error("Failed to save payment", slog.String("error", err.Error()), slog.String("payment_id", payment.PaymentID))
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	s.recordAuditInTx(ctx, tx, payment.PaymentID, domain.AuditCreated,
		fmt.Sprintf("created payment %s %s", payment.Amount, payment.CurrencyCode), creatorUserID)

	if err := s.paymentRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit payment creation: %w", err)
	}

	logger.Info("Payment created",
		slog.String("payment_id", payment.PaymentID),
		slog.String("move_id", payment.MoveID),
		slog.String("difference", payment.ExchangeRateDifference.String()),
	)
	return &payment, nil
}

// buildBaseMove generates the two-line debit/credit pair backing a payment.
// Amounts are in company currency, valued at the standard conversion; the
// move itself carries the payment currency.
func (s *paymentService) buildBaseMove(payment domain.Payment, liquidityAccountID, receivableAccountID string, standard decimal.Decimal, userID string, now time.Time) (domain.Move, []domain.MoveLine) {
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	move := domain.Move{
		MoveID:       uuid.NewString(),
		CompanyID:    payment.CompanyID,
		MoveDate:     payment.PaymentDate,
		CurrencyCode: payment.CurrencyCode,
		AuditFields:  audit,
	}

	booked := standard.Round(2)
	lines := []domain.MoveLine{
		{
			LineID:       uuid.NewString(),
			MoveID:       move.MoveID,
			Sequence:     1,
			AccountID:    liquidityAccountID,
			Name:         "Payment",
			Debit:        booked,
			Credit:       decimal.Zero,
			CurrencyCode: move.CurrencyCode,
			AuditFields:  audit,
		},
		{
			LineID:       uuid.NewString(),
			MoveID:       move.MoveID,
			Sequence:     2,
			AccountID:    receivableAccountID,
			Name:         "Payment",
			Debit:        decimal.Zero,
			Credit:       booked,
			CurrencyCode: move.CurrencyCode,
			AuditFields:  audit,
		},
	}
	return move, lines
}

// applyAdjustmentOnCreate rewrites the freshly generated debit/credit pair so
// the entry nets to the custom-rate total, and appends the labeled gain/loss
// line carrying the difference.
func (s *paymentService) applyAdjustmentOnCreate(ctx context.Context, tx pgx.Tx, payment domain.Payment, lines []domain.MoveLine, userID string, now time.Time) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	var debitLine, creditLine *domain.MoveLine
	for i := range lines {
		if debitLine == nil && lines[i].IsDebit() {
			debitLine = &lines[i]
		}
		if creditLine == nil && lines[i].IsCredit() {
			creditLine = &lines[i]
		}
	}
	if debitLine == nil || creditLine == nil {
		// The move is not the expected debit/credit pair; leave it untouched.
		logger.Warn("Move missing debit or credit line, skipping exchange adjustment", slog.String("move_id", payment.MoveID))
		return nil
	}

	amounts := accounting.ComputeAdjustment(payment.Amount, payment.ExchangeRate, payment.ExchangeRateDifference)

	debitLine.Debit = amounts.Reduced
	debitLine.Credit = decimal.Zero
	debitLine.LastUpdatedAt = now
	debitLine.LastUpdatedBy = userID

	creditLine.Credit = amounts.Custom
	creditLine.Debit = decimal.Zero
	creditLine.LastUpdatedAt = now
	creditLine.LastUpdatedBy = userID

	if err := s.moveRepo.UpdateMoveLinesInTx(ctx, tx, []domain.MoveLine{*debitLine, *creditLine}); err != nil {
		return fmt.Errorf("failed to rewrite move lines: %w", err)
	}

	maxSeq := 0
	for i := range lines {
		if lines[i].Sequence > maxSeq {
			maxSeq = lines[i].Sequence
		}
	}

	exchangeLine := domain.MoveLine{
		LineID:       uuid.NewString(),
		MoveID:       payment.MoveID,
		Sequence:     maxSeq + 1,
		AccountID:    gainLossAccount(payment),
		Name:         domain.ExchangeDifferenceLabel,
		Debit:        amounts.Exchange,
		Credit:       decimal.Zero,
		CurrencyCode: payment.CurrencyCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.moveRepo.AppendMoveLineInTx(ctx, tx, exchangeLine); err != nil {
		return fmt.Errorf("failed to append exchange difference line: %w", err)
	}

	logger.Info("Exchange adjustment applied",
		slog.String("move_id", payment.MoveID),
		slog.String("account_id", exchangeLine.AccountID),
		slog.String("exchange_amount", amounts.Exchange.String()),
	)
	return nil
}

// UpdatePayment applies field changes, refreshes the derived fields, and
// re-applies the exchange adjustment against the existing move. The
// adjustment line is located by its label; an update on a payment whose
// adjustment was never created is left unadjusted.
func (s *paymentService) UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, updaterUserID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, payment.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company %s: %w", payment.CompanyID, err)
	}

	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
		}
		payment.Amount = *req.Amount
	}
	if req.PaymentDate != nil {
		payment.PaymentDate = *req.PaymentDate
	}
	if req.IncomeCurrencyExchangeAccountID != nil {
		payment.IncomeCurrencyExchangeAccountID = *req.IncomeCurrencyExchangeAccountID
	}
	if req.ExpenseCurrencyExchangeAccountID != nil {
		payment.ExpenseCurrencyExchangeAccountID = *req.ExpenseCurrencyExchangeAccountID
	}

	partnerChanged := false
	if req.PartnerID != nil {
		if *req.PartnerID == "" {
			payment.PartnerID = nil
		} else {
			payment.PartnerID = req.PartnerID
		}
		partnerChanged = true
	}

	// Rate fields track the partner field, not the registry: only a change to
	// the payment's partner re-reads the rate.
	if partnerChanged {
		if err := s.refreshPartnerRate(ctx, payment); err != nil {
			return nil, err
		}
	}
	if _, err := s.refreshExchangeDifference(ctx, payment, company.CurrencyCode); err != nil {
		return nil, err
	}

	payment.LastUpdatedAt = time.Now().UTC()
	payment.LastUpdatedBy = updaterUserID

	tx, err := s.paymentRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.paymentRepo.Rollback(ctx, tx)

	if err := s.paymentRepo.UpdatePaymentInTx(ctx, tx, *payment); err != nil {
		logger.Error("Failed to update payment", slog.String("error", err.Error()), slog.String("payment_id", paymentID))
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	if adjustmentApplies(*payment) {
		if err := s.applyAdjustmentOnUpdate(ctx, tx, *payment, updaterUserID); err != nil {
			return nil, err
		}
	}

	s.recordAuditInTx(ctx, tx, payment.PaymentID, domain.AuditUpdated,
		fmt.Sprintf("updated payment %s %s", payment.Amount, payment.CurrencyCode), updaterUserID)

	if err := s.paymentRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit payment update: %w", err)
	}

	logger.Info("Payment updated", slog.String("payment_id", paymentID))
	return payment, nil
}

// applyAdjustmentOnUpdate re-derives the adjustment and rewrites the existing
// move lines in place. The adjustment line is found by its label rather than
// by position, so repeated updates rewrite the same line instead of stacking
// duplicates.
func (s *paymentService) applyAdjustmentOnUpdate(ctx context.Context, tx pgx.Tx, payment domain.Payment, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	lines, err := s.moveRepo.FindMoveLinesForUpdate(ctx, tx, payment.MoveID)
	if err != nil {
		return fmt.Errorf("failed to lock move lines for %s: %w", payment.MoveID, err)
	}

	var debitLine, creditLine, exchangeLine *domain.MoveLine
	for i := range lines {
		switch {
		case lines[i].Name == domain.ExchangeDifferenceLabel:
			if exchangeLine == nil {
				exchangeLine = &lines[i]
			}
		case debitLine == nil && lines[i].IsDebit():
			debitLine = &lines[i]
		case creditLine == nil && lines[i].IsCredit():
			creditLine = &lines[i]
		}
	}

	// No adjustment line means the adjustment never fired on creation; an
	// update does not introduce one.
	if exchangeLine == nil {
		logger.Warn("No exchange difference line on move, skipping re-adjustment", slog.String("move_id", payment.MoveID))
		return nil
	}
	if debitLine == nil || creditLine == nil {
		logger.Warn("Move missing debit or credit line, skipping exchange adjustment", slog.String("move_id", payment.MoveID))
		return nil
	}

	amounts := accounting.ComputeAdjustment(payment.Amount, payment.ExchangeRate, payment.ExchangeRateDifference)
	now := time.Now().UTC()

	debitLine.Debit = amounts.Reduced
	debitLine.Credit = decimal.Zero
	debitLine.LastUpdatedAt = now
	debitLine.LastUpdatedBy = userID

	creditLine.Credit = amounts.Custom
	creditLine.Debit = decimal.Zero
	creditLine.LastUpdatedAt = now
	creditLine.LastUpdatedBy = userID

	exchangeLine.Debit = amounts.Exchange
	exchangeLine.Credit = decimal.Zero
	exchangeLine.Name = domain.ExchangeDifferenceLabel
	exchangeLine.AccountID = gainLossAccount(payment)
	exchangeLine.LastUpdatedAt = now
	exchangeLine.LastUpdatedBy = userID

	if err := s.moveRepo.UpdateMoveLinesInTx(ctx, tx, []domain.MoveLine{*debitLine, *creditLine, *exchangeLine}); err != nil {
		return fmt.Errorf("failed to rewrite move lines: %w", err)
	}

	logger.Info("Exchange adjustment re-applied",
		slog.String("move_id", payment.MoveID),
		slog.String("exchange_amount", amounts.Exchange.String()),
	)
	return nil
}

// GetPaymentByID retrieves a payment.
func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}
	return payment, nil
}

// ListPayments retrieves a paginated list of payments for a company.
func (s *paymentService) ListPayments(ctx context.Context, companyID string, limit, offset int) ([]domain.Payment, error) {
	if limit <= 0 {
		limit = 20
	}
	payments, err := s.paymentRepo.ListPayments(ctx, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// GetPaymentMove retrieves the move backing a payment, lines included.
func (s *paymentService) GetPaymentMove(ctx context.Context, paymentID string) (*domain.Move, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}
	move, err := s.moveRepo.FindMoveByID(ctx, payment.MoveID)
	if err != nil {
		return nil, fmt.Errorf("failed to find move %s: %w", payment.MoveID, err)
	}
	return move, nil
}

// validateAccounts checks that every referenced account exists and is active.
func (s *paymentService) validateAccounts(ctx context.Context, accountIDs ...string) error {
	unique := make([]string, 0, len(accountIDs))
	seen := make(map[string]struct{}, len(accountIDs))
	for _, id := range accountIDs {
		if id == "" {
			return fmt.Errorf("%w: account reference missing", apperrors.ErrValidation)
		}
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			unique = append(unique, id)
		}
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, unique)
	if err != nil {
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range unique {
		acc, found := accounts[id]
		if !found {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		if !acc.IsActive {
			return fmt.Errorf("%w: %s", ErrAccountInactive, id)
		}
	}
	return nil
}

// recordAuditInTx writes an audit trail entry inside the payment transaction,
// so the trail commits or rolls back with the mutation it records.
func (s *paymentService) recordAuditInTx(ctx context.Context, tx pgx.Tx, entityID string, action domain.AuditAction, detail, actorUserID string) {
	entry := domain.AuditLog{
		AuditID:     uuid.NewString(),
		EntityType:  paymentEntityType,
		EntityID:    entityID,
		Action:      action,
		Detail:      detail,
		ActorUserID: actorUserID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.auditRepo.SaveAuditLogInTx(ctx, tx, entry); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to record audit entry", slog.String("error", err.Error()), slog.String("entity_id", entityID))
	}
}
