package handlers

import (
	"log/slog"
	"net/http"

	"storefront-service/internal/catalog"
	"storefront-service/pkg/ctxmanage"
	"storefront-service/pkg/logkey"

	"github.com/gin-gonic/gin"
)

// ListProducts returns the full catalog. Callers check the inStock
// flag before offering add-to-cart for a product.
func (h *Handler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": catalog.Products()})
}

func (h *Handler) GetProduct(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)

	id := c.Param("id")
	p, ok := catalog.ByID(id)
	if !ok {
		slog.Error("product not found", slog.String(logkey.TraceID, traceId), slog.String("product_id", id))
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, p)
}
