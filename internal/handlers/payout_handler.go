package handlers

import (
	"crypto/subtle"
	"net/http"

	"brandmatch_backend/internal/logger"
	"brandmatch_backend/internal/middleware"
	"brandmatch_backend/internal/services"
	"brandmatch_backend/internal/services/dto"
	"brandmatch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// WebhookSecretHeader carries the shared secret on payment-provider calls.
const WebhookSecretHeader = "X-Webhook-Secret"

type PayoutHandler struct {
	*BaseHandler
	payoutService services.PayoutService
	jwtSecret     string
	webhookSecret string
}

func NewPayoutHandler(base *BaseHandler, payoutService services.PayoutService, jwtSecret, webhookSecret string) *PayoutHandler {
	return &PayoutHandler{
		BaseHandler:   base,
		payoutService: payoutService,
		jwtSecret:     jwtSecret,
		webhookSecret: webhookSecret,
	}
}

func (h *PayoutHandler) RegisterRoutes(r *gin.RouterGroup) {
	payouts := r.Group("/payouts")
	payouts.Use(middleware.AuthMiddleware(h.jwtSecret))
	{
		payouts.GET("", h.ListPayouts)
	}

	// The webhook authenticates with a shared secret, not a user token.
	r.POST("/payouts/webhook", h.RecordPayout)
}

// @Summary List the caller's payouts with earnings totals
// @Description Creator accounts only.
// @Tags payouts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PayoutListResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /payouts [get]
func (h *PayoutHandler) ListPayouts(c *gin.Context) {
	caller, ok := h.ResolveCaller(c)
	if !ok {
		return
	}

	resp, err := h.payoutService.ListPayouts(caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Record a payout from the payment provider
// @Description Guarded by the X-Webhook-Secret header, not a bearer token.
// @Tags payouts
// @Accept json
// @Produce json
// @Param request body dto.RecordPayoutRequest true "Payout notification"
// @Success 201 {object} dto.PayoutResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /payouts/webhook [post]
func (h *PayoutHandler) RecordPayout(c *gin.Context) {
	if !h.checkWebhookSecret(c) {
		return
	}

	var req dto.RecordPayoutRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.payoutService.RecordPayout(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PayoutHandler) checkWebhookSecret(c *gin.Context) bool {
	provided := c.GetHeader(WebhookSecretHeader)
	if h.webhookSecret == "" ||
		subtle.ConstantTimeCompare([]byte(provided), []byte(h.webhookSecret)) != 1 {
		logger.CtxWarn(c.Request.Context(), "Webhook call with bad secret", "ip", c.ClientIP())
		c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: apperrors.NewUnauthorizedError("Invalid webhook secret"),
		})
		return false
	}
	return true
}
