package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chartspecHTTP "dashgen/internal/chartspec/delivery/http"
	chartspecUC "dashgen/internal/chartspec/usecase"
	conversationHTTP "dashgen/internal/conversation/delivery/http"
	conversationUC "dashgen/internal/conversation/usecase"
	"dashgen/internal/middleware"
)

// setupConversationDomain initializes the conversation and dashboard
// domains and registers their routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l, ...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupConversationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// Conversation: orchestrates the clarification turns.
	convUC := conversationUC.New(srv.l, srv.sessions, srv.insightSource)
	convHandler := conversationHTTP.New(srv.l, convUC, srv.sessions)
	conversationHTTP.RegisterRoutes(api, convHandler, mw)

	// Dashboard: turns completed conversations into chart configs.
	csUC := chartspecUC.New(srv.l, srv.sessions, srv.llmManager)
	csHandler := chartspecHTTP.New(srv.l, csUC)
	chartspecHTTP.RegisterRoutes(api, csHandler, mw)

	srv.l.Infof(ctx, "Conversation domain registered")
	return nil
}
