package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/partnerfx/partner_fx_app/internal/apperrors"
	portssvc "github.com/partnerfx/partner_fx_app/internal/core/ports/services"
	"github.com/partnerfx/partner_fx_app/internal/dto"
	"github.com/partnerfx/partner_fx_app/internal/middleware"
)

// exchangeRateHandler handles HTTP requests for the official rate table.
type exchangeRateHandler struct {
	rateService       portssvc.ExchangeRateSvcFacade
	conversionService portssvc.ConversionSvcFacade
}

func newExchangeRateHandler(rs portssvc.ExchangeRateSvcFacade, cs portssvc.ConversionSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{rateService: rs, conversionService: cs}
}

// registerExchangeRateRoutes registers routes for official exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, rateService portssvc.ExchangeRateSvcFacade, conversionService portssvc.ConversionSvcFacade) {
	h := newExchangeRateHandler(rateService, conversionService)

	rates := rg.Group("/exchange-rates")
	{
		rates.POST("", h.createExchangeRate)
		rates.GET("", h.listExchangeRates)
		rates.GET("/effective", h.getEffectiveRate)
	}
	rg.GET("/convert", h.convert)
}

// createExchangeRate godoc
// @Summary Record an official exchange rate
// @Tags exchange-rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.rateService.CreateExchangeRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exchange rate"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}

// listExchangeRates godoc
// @Summary List official rates for a currency pair
// @Tags exchange-rates
// @Produce  json
// @Param   from query string true "From currency code"
// @Param   to query string true "To currency code"
// @Success 200 {array} dto.ExchangeRateResponse
// @Security BearerAuth
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from := c.Query("from")
	to := c.Query("to")
	if len(from) != 3 || len(to) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to must be 3-letter currency codes"})
		return
	}

	rates, err := h.rateService.ListExchangeRates(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to list exchange rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exchange rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponses(rates))
}

// getEffectiveRate godoc
// @Summary Get the rate effective on a date
// @Description Retrieves the latest rate for the pair effective on or before asOf (RFC 3339, defaults to now).
// @Tags exchange-rates
// @Produce  json
// @Param   from query string true "From currency code"
// @Param   to query string true "To currency code"
// @Param   asOf query string false "Effective date (RFC 3339)"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 404 {object} map[string]string "No rate found"
// @Security BearerAuth
// @Router /exchange-rates/effective [get]
func (h *exchangeRateHandler) getEffectiveRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from := c.Query("from")
	to := c.Query("to")
	if len(from) != 3 || len(to) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to must be 3-letter currency codes"})
		return
	}

	asOf := time.Now().UTC()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "asOf must be RFC 3339"})
			return
		}
		asOf = parsed
	}

	rate, err := h.rateService.GetEffectiveRate(c.Request.Context(), from, to, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No rate found for the pair"})
		} else {
			logger.Error("Failed to get effective rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// convert godoc
// @Summary Convert an amount into a company's functional currency
// @Tags exchange-rates
// @Produce  json
// @Param   amount query string true "Amount to convert"
// @Param   from query string true "From currency code"
// @Param   companyID query string true "Company ID"
// @Param   asOf query string false "Effective date (RFC 3339)"
// @Success 200 {object} dto.ConversionResponse
// @Failure 404 {object} map[string]string "No rate found"
// @Security BearerAuth
// @Router /convert [get]
func (h *exchangeRateHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a decimal number"})
		return
	}
	from := c.Query("from")
	companyID := c.Query("companyID")
	if len(from) != 3 || companyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from (3 letters) and companyID are required"})
		return
	}

	asOf := time.Now().UTC()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "asOf must be RFC 3339"})
			return
		}
		asOf = parsed
	}

	converted, err := h.conversionService.Convert(c.Request.Context(), amount, from, companyID, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No rate found for the pair"})
		} else {
			logger.Error("Failed to convert amount", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert amount"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ConversionResponse{
		Amount:           amount,
		FromCurrencyCode: from,
		Converted:        converted,
		AsOf:             asOf,
	})
}
