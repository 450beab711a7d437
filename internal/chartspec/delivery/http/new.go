package http

import (
	"github.com/gin-gonic/gin"

	"dashgen/internal/chartspec"
	"dashgen/pkg/log"
)

// Handler is the public interface for the chartspec HTTP delivery layer.
type Handler interface {
	Generate(c *gin.Context)
	Export(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chartspec.UseCase
}

// New creates a new HTTP handler for the chartspec domain.
func New(l log.Logger, uc chartspec.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
