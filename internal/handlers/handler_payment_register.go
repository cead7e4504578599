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

// paymentRegisterHandler handles the stateless pre-payment preview endpoint.
type paymentRegisterHandler struct {
	registerService portssvc.PaymentRegisterSvcFacade
}

func newPaymentRegisterHandler(rs portssvc.PaymentRegisterSvcFacade) *paymentRegisterHandler {
	return &paymentRegisterHandler{registerService: rs}
}

// registerPaymentRegisterRoutes registers the payment preview route.
func registerPaymentRegisterRoutes(rg *gin.RouterGroup, registerService portssvc.PaymentRegisterSvcFacade) {
	h := newPaymentRegisterHandler(registerService)

	rg.POST("/payment-register/preview", h.previewPaymentRegister)
}

// previewPaymentRegister godoc
// @Summary Preview a prospective payment's exchange difference
// @Description Reports the derived exchange fields and adjustment amounts a real payment would carry, without persisting anything.
// @Tags payment-register
// @Accept  json
// @Produce  json
// @Param   preview body dto.PaymentRegisterRequest true "Prospective payment details"
// @Success 200 {object} dto.PaymentRegisterPreviewResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /payment-register/preview [post]
func (h *paymentRegisterHandler) previewPaymentRegister(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PaymentRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PreviewPaymentRegister", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	preview, err := h.registerService.PreviewPaymentRegister(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to preview payment register", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to preview payment"})
		}
		return
	}

	c.JSON(http.StatusOK, preview)
}
