package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mental-health-support/config"
	_ "mental-health-support/docs" // Swagger docs
	"mental-health-support/internal/chat"
	"mental-health-support/internal/httpserver"
	"mental-health-support/internal/lexicon"
	"mental-health-support/pkg/llmprovider"
	"mental-health-support/pkg/log"
)

// @title       Mental Health Support API
// @description Supportive chat, emotion analysis, and mental health self-assessment backed by a lexicon scoring engine with an optional Ollama reply path.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Mental Health Support...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Lexicon store (compiled-in defaults when the file is absent)
	store, err := lexicon.Load(cfg.Lexicon.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load lexicon: %v", err)
		return
	}
	logger.Infof(ctx, "Lexicon loaded from %s", cfg.Lexicon.Path)

	// 4. LLM providers (optional: the service is fully functional without)
	var replyGenerator chat.ReplyGenerator

	providers, pErr := llmprovider.InitializeProviders(&cfg.LLM)
	if pErr != nil {
		logger.Infof(ctx, "No LLM providers available, using template replies: %v", pErr)
	} else {
		replyGenerator = llmprovider.NewManager(providers, llmprovider.ConfigFrom(&cfg.LLM), logger)
		logger.Infof(ctx, "LLM manager initialized with %d provider(s)", len(providers))
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Lexicon:     store,
		LLM:         replyGenerator,
		RateLimit:   cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
