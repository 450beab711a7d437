package http

import (
	"github.com/gin-gonic/gin"

	"dashgen/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	conversations := rg.Group("/conversations")
	{
		conversations.POST("", mw.RateLimit(), h.Initialize)
		conversations.POST("/:id/messages", mw.RateLimit(), h.Send)
		conversations.GET("/:id", h.Snapshot)
		conversations.DELETE("/:id", h.End)
	}
}
