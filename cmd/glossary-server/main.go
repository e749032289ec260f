package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/wordleglobal/glossary/internal/app"
	"github.com/wordleglobal/glossary/internal/config"
	"github.com/wordleglobal/glossary/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("GLOSSARY_CONFIG"))
	if err != nil {
		return fmt.Errorf("config.Load() > %w", err)
	}
	if cfg.OpenAI.APIKey == "" {
		slog.Default().Warn("OPENAI_API_KEY is not set, the generative fallback is disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("app.New() > %w", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			slog.Default().Warn("failed to close resources", "error", err)
		}
	}()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(server.NewDefinitionHandler(a.Resolver))
	return server.Run(ctx, cfg.Server.Port, router)
}
