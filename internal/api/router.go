package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the HTTP surface: health probe plus the generation
// endpoint. A nil limiter disables rate limiting.
func NewRouter(generator WrappedGenerator, limiter *RateLimiter, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/api/wrapped", GenerateWrappedHandler(generator, limiter, logger))

	return r
}
