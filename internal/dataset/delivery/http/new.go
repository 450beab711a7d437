package http

import (
	"github.com/gin-gonic/gin"

	"dashgen/internal/dataset"
	"dashgen/pkg/log"
)

// Handler is the public interface for the dataset HTTP delivery layer.
type Handler interface {
	Ingest(c *gin.Context)
	Sample(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc dataset.UseCase
}

// New creates a new HTTP handler for the dataset domain.
func New(l log.Logger, uc dataset.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
