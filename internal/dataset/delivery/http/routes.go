package http

import (
	"github.com/gin-gonic/gin"

	"dashgen/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	datasets := rg.Group("/datasets")
	{
		datasets.POST("", mw.RateLimit(), h.Ingest)
		datasets.GET("/sample", h.Sample)
	}
}
