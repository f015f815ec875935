package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"storefront/internal/metrics"
)

const version = "1.0.0"

// newEngine builds the shared middleware chain: request logging, panic
// recovery with a generic 500 body, allow-all CORS and request metrics.
func newEngine(m *metrics.ServerMetrics) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Logger(),
		gin.CustomRecovery(func(c *gin.Context, _ any) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}),
		cors.Default(),
		m.Middleware(),
	)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))
	return r
}

func health(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   service,
			"version":   version,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func listEnvelope(service string, data any, count int) gin.H {
	return gin.H{
		"service":   service,
		"data":      data,
		"count":     count,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
}

func itemEnvelope(service string, data any) gin.H {
	return gin.H{"service": service, "data": data}
}
