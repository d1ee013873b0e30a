package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"brandmatch_backend/internal/models"
	"brandmatch_backend/internal/services/dto"
	"brandmatch_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPayoutService struct {
	recorded *dto.RecordPayoutRequest
}

func (s *stubPayoutService) ListPayouts(caller *models.User) (*dto.PayoutListResponse, error) {
	return &dto.PayoutListResponse{Payouts: []dto.PayoutResponse{}}, nil
}

func (s *stubPayoutService) RecordPayout(req *dto.RecordPayoutRequest) (*dto.PayoutResponse, error) {
	s.recorded = req
	return &dto.PayoutResponse{
		ID:       "p-1",
		Amount:   req.Amount,
		Currency: req.Currency,
		Status:   req.Status,
	}, nil
}

func newWebhookTestRouter(svc *stubPayoutService, secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	base := NewBaseHandler(validator.New(), nil)
	handler := NewPayoutHandler(base, svc, "jwt-secret", secret)

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return router
}

const webhookBody = `{
	"creator_id": "7b8e7f0a-4b3c-4a1e-9d0f-1a2b3c4d5e6f",
	"campaign_id": "0f9e8d7c-6b5a-4f3e-2d1c-0b9a8f7e6d5c",
	"amount": 150.5,
	"currency": "USD",
	"status": "SUCCESS"
}`

func TestWebhookRejectsMissingSecret(t *testing.T) {
	svc := &stubPayoutService{}
	router := newWebhookTestRouter(svc, "hook-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payouts/webhook", strings.NewReader(webhookBody))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, svc.recorded)
}

func TestWebhookRejectsWrongSecret(t *testing.T) {
	svc := &stubPayoutService{}
	router := newWebhookTestRouter(svc, "hook-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payouts/webhook", strings.NewReader(webhookBody))
	req.Header.Set(WebhookSecretHeader, "guessed")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookRejectsWhenUnconfigured(t *testing.T) {
	// An empty configured secret must not mean "allow everything".
	svc := &stubPayoutService{}
	router := newWebhookTestRouter(svc, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payouts/webhook", strings.NewReader(webhookBody))
	req.Header.Set(WebhookSecretHeader, "")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookValidBody(t *testing.T) {
	svc := &stubPayoutService{}
	router := newWebhookTestRouter(svc, "hook-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payouts/webhook", strings.NewReader(webhookBody))
	req.Header.Set(WebhookSecretHeader, "hook-secret")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.recorded)
	assert.Equal(t, 150.5, svc.recorded.Amount)
	assert.Equal(t, "SUCCESS", svc.recorded.Status)
}

func TestWebhookValidatesBody(t *testing.T) {
	svc := &stubPayoutService{}
	router := newWebhookTestRouter(svc, "hook-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payouts/webhook",
		strings.NewReader(`{"creator_id": "not-a-uuid", "amount": -5}`))
	req.Header.Set(WebhookSecretHeader, "hook-secret")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.recorded)
}
