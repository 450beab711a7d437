package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"dashgen/config"
	"dashgen/internal/dataset"
	"dashgen/internal/insight"
	"dashgen/internal/session"
	"dashgen/pkg/llmprovider"
	"dashgen/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	config      *config.Config

	// Domain dependencies
	sessions      session.UseCase
	insightSource insight.Source
	llmManager    *llmprovider.Manager
	profiler      dataset.Profiler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	Sessions      session.UseCase
	InsightSource insight.Source
	LLMManager    *llmprovider.Manager
	Profiler      dataset.Profiler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		config:        cfg.AppConfig,
		sessions:      cfg.Sessions,
		insightSource: cfg.InsightSource,
		llmManager:    cfg.LLMManager,
		profiler:      cfg.Profiler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("app config is required")
	}
	if srv.sessions == nil {
		return errors.New("session usecase is required")
	}
	if srv.insightSource == nil {
		return errors.New("insight source is required")
	}
	if srv.llmManager == nil {
		return errors.New("llm manager is required")
	}
	if srv.profiler == nil {
		return errors.New("profiler is required")
	}
	return nil
}
