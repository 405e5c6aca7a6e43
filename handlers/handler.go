package handlers

import (
	"net/http"
	"os"

	"storefront-service/internal/checkout"
	"storefront-service/internal/config"
	"storefront-service/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	conf     config.Config
	sessions checkout.SessionCreator
}

func NewHandler(conf config.Config, sessions checkout.SessionCreator) *Handler {
	return &Handler{
		conf:     conf,
		sessions: sessions,
	}
}

func API(endpointPrefix string, conf config.Config, sessions checkout.SessionCreator) *gin.Engine {
	r := gin.New()
	mode := os.Getenv("GIN_MODE")
	if mode == gin.ReleaseMode {
		gin.SetMode(mode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	h := NewHandler(conf, sessions)
	r.Use(middleware.Logger(), middleware.CORS(), gin.Recovery())

	// The storefront calls with whatever method the browser sends;
	// anything but POST on a POST route must answer 405, not 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(methodNotAllowed)

	r.GET("/ping", healthCheck)
	v1 := r.Group(endpointPrefix)
	{
		v1.POST("/create-checkout-session", h.CreateCheckoutSession)
		v1.POST("/webhook", h.Webhook)
		v1.GET("/products/list", h.ListProducts)
		v1.GET("/products/view/:id", h.GetProduct)
	}

	return r
}

func methodNotAllowed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
