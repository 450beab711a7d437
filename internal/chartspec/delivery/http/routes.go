package http

import (
	"github.com/gin-gonic/gin"

	"dashgen/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Dashboard
// routes hang off the conversation resource they consume.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	dashboards := rg.Group("/conversations/:id/dashboard")
	{
		dashboards.POST("", mw.RateLimit(), h.Generate)
		dashboards.GET("", h.Export)
	}
}
