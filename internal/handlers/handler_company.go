package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/partnerfx/partner_fx_app/internal/apperrors"
	portssvc "github.com/partnerfx/partner_fx_app/internal/core/ports/services"
	"github.com/partnerfx/partner_fx_app/internal/dto"
	"github.com/partnerfx/partner_fx_app/internal/middleware"
)

// companyHandler handles HTTP requests for company reference data, the chart
// of accounts and the audit trail.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
	accountService portssvc.AccountSvcFacade
	auditService   portssvc.AuditSvcFacade
}

func newCompanyHandler(cs portssvc.CompanySvcFacade, as portssvc.AccountSvcFacade, aus portssvc.AuditSvcFacade) *companyHandler {
	return &companyHandler{companyService: cs, accountService: as, auditService: aus}
}

// registerCompanyRoutes registers company, account and audit trail routes.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade, accountService portssvc.AccountSvcFacade, auditService portssvc.AuditSvcFacade) {
	h := newCompanyHandler(companyService, accountService, auditService)

	companies := rg.Group("/companies")
	{
		companies.GET("/:companyID", h.getCompany)
		companies.PUT("/:companyID/default-accounts", h.updateDefaultAccounts)
	}

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
	}

	rg.GET("/audit-logs", h.listAuditLogs)
}

// getCompany godoc
// @Summary Get company reference data
// @Tags companies
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /companies/{companyID} [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	company, err := h.companyService.GetCompanyByID(c.Request.Context(), companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		} else {
			logger.Error("Failed to get company", slog.String("error", err.Error()), slog.String("company_id", companyID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve company"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// updateDefaultAccounts godoc
// @Summary Update company default gain/loss accounts
// @Description Changes the defaults copied onto new payments. Existing payments are unaffected.
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   accounts body dto.UpdateCompanyAccountsRequest true "Account defaults"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} map[string]string "Company or account not found"
// @Security BearerAuth
// @Router /companies/{companyID}/default-accounts [put]
func (h *companyHandler) updateDefaultAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.UpdateCompanyAccountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	company, err := h.companyService.UpdateDefaultAccounts(c.Request.Context(), companyID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Company or account not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update company accounts", slog.String("error", err.Error()), slog.String("company_id", companyID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update company accounts"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// createAccount godoc
// @Summary Create a ledger account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /accounts [post]
func (h *companyHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Company not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get a ledger account by ID
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{accountID} [get]
func (h *companyHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account", slog.String("error", err.Error()), slog.String("account_id", accountID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List ledger accounts for a company
// @Tags accounts
// @Produce  json
// @Param   companyID query string true "Company ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.AccountResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *companyHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Query("companyID")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "companyID query parameter is required"})
		return
	}
	limit, offset := paginationParams(c)

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), companyID, limit, offset)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// listAuditLogs godoc
// @Summary List audit trail entries for an entity
// @Tags audit-logs
// @Produce  json
// @Param   entityType query string true "Entity type (payment, partner_exchange_rate, ...)"
// @Param   entityID query string true "Entity ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.AuditLogResponse
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *companyHandler) listAuditLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityType := c.Query("entityType")
	entityID := c.Query("entityID")
	if entityType == "" || entityID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entityType and entityID query parameters are required"})
		return
	}
	limit, offset := paginationParams(c)

	entries, err := h.auditService.ListAuditLogsForEntity(c.Request.Context(), entityType, entityID, limit, offset)
	if err != nil {
		logger.Error("Failed to list audit entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list audit entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAuditLogResponses(entries))
}
