package handlers

import (
	"log/slog"
	"net/http"

	"storefront-service/internal/checkout"
	"storefront-service/pkg/ctxmanage"
	"storefront-service/pkg/logkey"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v81"
)

// CreateCheckoutSession is the session-creation endpoint: it reshapes
// the storefront's JSON body into a Stripe checkout session and
// relays the redirect URL. Stateless; nothing is retried or queued.
func (h *Handler) CreateCheckoutSession(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)

	// Check if the size of the request body exceeds 64 KB
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 64*1024)

	var req checkout.CheckoutRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		slog.Error("failed to bind checkout request", slog.String(logkey.TraceID, traceId), slog.String(logkey.Error, err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Invalid request body"})
		return
	}

	// Stripe configuration
	sKey := h.conf.StripeSecretKey
	if sKey == "" {
		slog.Error("Stripe secret key not found", slog.String(logkey.TraceID, traceId))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Stripe secret key not found"})
		return
	}
	stripe.Key = sKey

	params := checkout.SessionParams(req)
	sess, err := h.sessions.Create(params)
	if err != nil {
		// Full downstream detail stays in the logs; the client only
		// sees a generic failure.
		slog.Error("error creating Stripe checkout session",
			slog.String(logkey.TraceID, traceId), slog.String(logkey.Error, err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, checkout.CheckoutSession{URL: sess.URL, SessionID: sess.ID})
}
