package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront-service/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestWebhookCheckoutSessionCompleted(t *testing.T) {
	api := newAPI(t, config.Config{StripeSecretKey: "sk_test_123"}, &stubSessions{})

	body := `{
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_test_123", "amount_total": 13800, "metadata": {"customer_name": "Ola Nordmann"}}}
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	api.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhookUnhandledEventType(t *testing.T) {
	api := newAPI(t, config.Config{StripeSecretKey: "sk_test_123"}, &stubSessions{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"type": "invoice.paid", "data": {"object": {}}}`))
	req.Header.Set("Content-Type", "application/json")
	api.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Event type not handled")
}

func TestWebhookMalformedBody(t *testing.T) {
	api := newAPI(t, config.Config{StripeSecretKey: "sk_test_123"}, &stubSessions{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("{broken"))
	req.Header.Set("Content-Type", "application/json")
	api.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
