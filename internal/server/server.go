// Package server exposes the resolver over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wordleglobal/glossary/internal/definition"
	"github.com/wordleglobal/glossary/internal/language"
	"github.com/wordleglobal/glossary/internal/metrics"
)

//go:generate mockgen -source=server.go -destination=../mocks/server/mock_resolver.go -package=mock_server

// DefinitionResolver resolves a word to a definition, or nil when there is none.
type DefinitionResolver interface {
	Resolve(ctx context.Context, word, languageCode string) *definition.Result
}

const shutdownTimeout = 10 * time.Second

type errorResponse struct {
	Error string `json:"error"`
}

type DefinitionHandler struct {
	resolver DefinitionResolver
}

func NewDefinitionHandler(resolver DefinitionResolver) *DefinitionHandler {
	return &DefinitionHandler{resolver: resolver}
}

// GetDefinition serves GET /:lang/api/definition/:word.
func (h *DefinitionHandler) GetDefinition(c *gin.Context) {
	languageCode := c.Param("lang")
	if !language.IsValidCode(languageCode) {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid language code"})
		return
	}
	word := strings.TrimSpace(c.Param("word"))
	if word == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "word is required"})
		return
	}

	result := h.resolver.Resolve(c.Request.Context(), word, languageCode)
	if result == nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "no definition found"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// NewRouter builds the gin engine with the definition, health and metrics routes.
func NewRouter(handler *DefinitionHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), metrics.Middleware(), cors())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/:lang/api/definition/:word", handler.GetDefinition)
	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Run serves handler on port until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, port int, handler http.Handler) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(port)),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Default().Info("server starting", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("srv.ListenAndServe > %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown > %w", err)
	}
	slog.Default().Info("server stopped")
	return nil
}
