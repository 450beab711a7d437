package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	datasetHTTP "dashgen/internal/dataset/delivery/http"
	datasetUC "dashgen/internal/dataset/usecase"
	"dashgen/internal/middleware"
)

// setupDatasetDomain initializes the dataset intake domain and
// registers its routes.
func (srv *HTTPServer) setupDatasetDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := datasetUC.New(srv.l, srv.sessions, srv.profiler)
	h := datasetHTTP.New(srv.l, uc)
	datasetHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Dataset domain registered")
	return nil
}
