package http

import (
	"github.com/gin-gonic/gin"

	"dashgen/internal/conversation"
	"dashgen/internal/session"
	"dashgen/pkg/log"
)

// Handler is the public interface for the conversation HTTP delivery layer.
type Handler interface {
	Initialize(c *gin.Context)
	Send(c *gin.Context)
	Snapshot(c *gin.Context)
	End(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       conversation.UseCase
	sessions session.UseCase
}

// New creates a new HTTP handler for the conversation domain.
func New(l log.Logger, uc conversation.UseCase, sessions session.UseCase) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		sessions: sessions,
	}
}
