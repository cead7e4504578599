package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/partnerfx/partner_fx_app/internal/apperrors"
	portssvc "github.com/partnerfx/partner_fx_app/internal/core/ports/services"
	"github.com/partnerfx/partner_fx_app/internal/dto"
	"github.com/partnerfx/partner_fx_app/internal/middleware"
)

// partnerRateHandler handles HTTP requests for the custom partner-rate registry.
type partnerRateHandler struct {
	rateService portssvc.PartnerRateSvcFacade
}

func newPartnerRateHandler(rs portssvc.PartnerRateSvcFacade) *partnerRateHandler {
	return &partnerRateHandler{rateService: rs}
}

// registerPartnerRateRoutes registers routes for custom partner rates.
func registerPartnerRateRoutes(rg *gin.RouterGroup, rateService portssvc.PartnerRateSvcFacade) {
	h := newPartnerRateHandler(rateService)

	rates := rg.Group("/partner-rates")
	{
		rates.POST("", h.createPartnerRate)
		rates.GET("", h.listPartnerRates)
		rates.GET("/:rateID", h.getPartnerRate)
		rates.PUT("/:rateID", h.updatePartnerRate)
		rates.DELETE("/:rateID", h.deletePartnerRate)
	}
}

// paginationParams extracts limit/offset query parameters with defaults.
func paginationParams(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// createPartnerRate godoc
// @Summary Create a custom partner exchange rate
// @Description Adds a named custom rate to a company's registry
// @Tags partner-rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreatePartnerRateRequest true "Rate details"
// @Success 201 {object} dto.PartnerRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Rate name already exists"
// @Security BearerAuth
// @Router /partner-rates [post]
func (h *partnerRateHandler) createPartnerRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartnerRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePartnerRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.rateService.CreatePartnerRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Rate name already exists for this company"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create partner rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create partner rate"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPartnerRateResponse(rate))
}

// getPartnerRate godoc
// @Summary Get a custom partner rate by ID
// @Tags partner-rates
// @Produce  json
// @Param   rateID path string true "Rate ID"
// @Success 200 {object} dto.PartnerRateResponse
// @Failure 404 {object} map[string]string "Rate not found"
// @Security BearerAuth
// @Router /partner-rates/{rateID} [get]
func (h *partnerRateHandler) getPartnerRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rateID := c.Param("rateID")

	rate, err := h.rateService.GetPartnerRateByID(c.Request.Context(), rateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Partner rate not found"})
		} else {
			logger.Error("Failed to get partner rate", slog.String("error", err.Error()), slog.String("rate_id", rateID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve partner rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPartnerRateResponse(rate))
}

// listPartnerRates godoc
// @Summary List custom partner rates for a company
// @Tags partner-rates
// @Produce  json
// @Param   companyID query string true "Company ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.PartnerRateResponse
// @Security BearerAuth
// @Router /partner-rates [get]
func (h *partnerRateHandler) listPartnerRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Query("companyID")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "companyID query parameter is required"})
		return
	}
	limit, offset := paginationParams(c)

	rates, err := h.rateService.ListPartnerRates(c.Request.Context(), companyID, limit, offset)
	if err != nil {
		logger.Error("Failed to list partner rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list partner rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPartnerRateResponses(rates))
}

// updatePartnerRate godoc
// @Summary Update a custom partner rate
// @Description Changes a rate's name or amount. Existing payments keep the rate snapshot taken at booking time.
// @Tags partner-rates
// @Accept  json
// @Produce  json
// @Param   rateID path string true "Rate ID"
// @Param   rate body dto.UpdatePartnerRateRequest true "Fields to update"
// @Success 200 {object} dto.PartnerRateResponse
// @Failure 404 {object} map[string]string "Rate not found"
// @Security BearerAuth
// @Router /partner-rates/{rateID} [put]
func (h *partnerRateHandler) updatePartnerRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rateID := c.Param("rateID")

	var req dto.UpdatePartnerRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.rateService.UpdatePartnerRate(c.Request.Context(), rateID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Partner rate not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Rate name already exists for this company"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update partner rate", slog.String("error", err.Error()), slog.String("rate_id", rateID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update partner rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPartnerRateResponse(rate))
}

// deletePartnerRate godoc
// @Summary Delete a custom partner rate
// @Tags partner-rates
// @Param   rateID path string true "Rate ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Rate not found"
// @Security BearerAuth
// @Router /partner-rates/{rateID} [delete]
func (h *partnerRateHandler) deletePartnerRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rateID := c.Param("rateID")

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.rateService.DeletePartnerRate(c.Request.Context(), rateID, deleterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Partner rate not found"})
		} else {
			logger.Error("Failed to delete partner rate", slog.String("error", err.Error()), slog.String("rate_id", rateID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete partner rate"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
