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

// partnerHandler handles HTTP requests related to partners.
type partnerHandler struct {
	partnerService portssvc.PartnerSvcFacade
}

func newPartnerHandler(ps portssvc.PartnerSvcFacade) *partnerHandler {
	return &partnerHandler{partnerService: ps}
}

// registerPartnerRoutes registers routes related to partners.
func registerPartnerRoutes(rg *gin.RouterGroup, partnerService portssvc.PartnerSvcFacade) {
	h := newPartnerHandler(partnerService)

	partners := rg.Group("/partners")
	{
		partners.POST("", h.createPartner)
		partners.GET("", h.listPartners)
		partners.GET("/:partnerID", h.getPartner)
		partners.PUT("/:partnerID", h.updatePartner)
		partners.PUT("/:partnerID/exchange-rate", h.assignExchangeRate)
	}
}

// createPartner godoc
// @Summary Create a partner
// @Tags partners
// @Accept  json
// @Produce  json
// @Param   partner body dto.CreatePartnerRequest true "Partner details"
// @Success 201 {object} dto.PartnerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /partners [post]
func (h *partnerHandler) createPartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePartner", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	partner, err := h.partnerService.CreatePartner(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced exchange rate not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create partner", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create partner"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPartnerResponse(partner))
}

// getPartner godoc
// @Summary Get a partner by ID
// @Description Retrieves a partner with its resolved custom rate amount
// @Tags partners
// @Produce  json
// @Param   partnerID path string true "Partner ID"
// @Success 200 {object} dto.PartnerResponse
// @Failure 404 {object} map[string]string "Partner not found"
// @Security BearerAuth
// @Router /partners/{partnerID} [get]
func (h *partnerHandler) getPartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID := c.Param("partnerID")

	partner, err := h.partnerService.GetPartnerByID(c.Request.Context(), partnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		} else {
			logger.Error("Failed to get partner", slog.String("error", err.Error()), slog.String("partner_id", partnerID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve partner"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPartnerResponse(partner))
}

// listPartners godoc
// @Summary List partners for a company
// @Tags partners
// @Produce  json
// @Param   companyID query string true "Company ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.PartnerResponse
// @Security BearerAuth
// @Router /partners [get]
func (h *partnerHandler) listPartners(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Query("companyID")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "companyID query parameter is required"})
		return
	}
	limit, offset := paginationParams(c)

	partners, err := h.partnerService.ListPartners(c.Request.Context(), companyID, limit, offset)
	if err != nil {
		logger.Error("Failed to list partners", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list partners"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPartnerResponses(partners))
}

// updatePartner godoc
// @Summary Update a partner
// @Tags partners
// @Accept  json
// @Produce  json
// @Param   partnerID path string true "Partner ID"
// @Param   partner body dto.UpdatePartnerRequest true "Fields to update"
// @Success 200 {object} dto.PartnerResponse
// @Failure 404 {object} map[string]string "Partner not found"
// @Security BearerAuth
// @Router /partners/{partnerID} [put]
func (h *partnerHandler) updatePartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID := c.Param("partnerID")

	var req dto.UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	partner, err := h.partnerService.UpdatePartner(c.Request.Context(), partnerID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		} else {
			logger.Error("Failed to update partner", slog.String("error", err.Error()), slog.String("partner_id", partnerID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update partner"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPartnerResponse(partner))
}

// assignExchangeRate godoc
// @Summary Assign or clear a partner's custom exchange rate
// @Description Sets the partner's rate reference; a null rateID clears it. Only payments booked afterwards see the change.
// @Tags partners
// @Accept  json
// @Produce  json
// @Param   partnerID path string true "Partner ID"
// @Param   assignment body dto.AssignPartnerRateRequest true "Rate assignment"
// @Success 200 {object} dto.PartnerResponse
// @Failure 404 {object} map[string]string "Partner or rate not found"
// @Security BearerAuth
// @Router /partners/{partnerID}/exchange-rate [put]
func (h *partnerHandler) assignExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID := c.Param("partnerID")

	var req dto.AssignPartnerRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	partner, err := h.partnerService.AssignExchangeRate(c.Request.Context(), partnerID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Partner or rate not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to assign exchange rate", slog.String("error", err.Error()), slog.String("partner_id", partnerID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign exchange rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPartnerResponse(partner))
}
