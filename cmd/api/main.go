package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"

	"dashgen/config"
	_ "dashgen/docs" // Swagger docs
	"dashgen/internal/dataset/profilejson"
	"dashgen/internal/httpserver"
	"dashgen/internal/insight"
	sessionRepo "dashgen/internal/session/repository/file"
	sessionUC "dashgen/internal/session/usecase"
	"dashgen/pkg/llmprovider"
	"dashgen/pkg/log"
)

const defaultSessionCacheTTL = 30 * time.Minute

// @title       Dashgen API
// @description Conversational dashboard generation: dataset profiles in, chart configurations out.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting dashgen...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Session dir: %s", cfg.Storage.SessionDir)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	manager := llmprovider.NewManager(providers, llmprovider.ManagerConfigFrom(&cfg.LLM), logger)

	// 4. Session store
	store, err := sessionRepo.New(logger, cfg.Storage.SessionDir, cfg.Storage.MirrorEnabled)
	if err != nil {
		logger.Error(ctx, "Failed to initialize session store: ", err)
		return
	}

	cacheTTL := defaultSessionCacheTTL
	if d, parseErr := time.ParseDuration(cfg.Conversation.SessionCacheTTL); parseErr == nil && d > 0 {
		cacheTTL = d
	}
	sessions := sessionUC.New(logger, store, cfg.Conversation.SessionCacheSize, cacheTTL)

	// 5. Collaborators
	source := insight.NewSource(logger, manager)
	profiler := profilejson.New()

	// 6. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		AppConfig:     cfg,
		Sessions:      sessions,
		InsightSource: source,
		LLMManager:    manager,
		Profiler:      profiler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := srv.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
