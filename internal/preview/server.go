// Package preview serves the current diagram in a local browser page that
// re-renders whenever the diagram changes.
package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Content is what the preview page shows.
type Content struct {
	Diagram     string `json:"diagram"`
	Explanation string `json:"explanation"`
	Version     int64  `json:"version"`
}

// Server wraps an HTTP server with graceful shutdown capabilities. The page
// polls the content endpoint and re-renders when the version changes.
type Server struct {
	server *http.Server
	logger *slog.Logger
	theme  string

	mu      sync.RWMutex
	content Content
}

// NewServer creates a preview server listening on the given port.
func NewServer(port int, theme string, logger *slog.Logger) *Server {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if theme == "" {
		theme = "neutral"
	}

	s := &Server{
		logger: logger,
		theme:  theme,
	}
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

// URL returns the address the preview page is served on.
func (s *Server) URL() string {
	return "http://localhost" + s.server.Addr
}

// SetContent replaces the displayed diagram. The page picks the change up
// on its next poll.
func (s *Server) SetContent(diagram, explanation string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content.Diagram = diagram
	s.content.Explanation = explanation
	s.content.Version++
}

// Start starts the HTTP server and blocks until shutdown or error.
func (s *Server) Start() error {
	s.logger.Info("starting preview server", "address", s.server.Addr)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("preview server failed to start: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server with a 30-second timeout.
func (s *Server) Stop() error {
	s.logger.Info("shutting down preview server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}
