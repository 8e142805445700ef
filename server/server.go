// server/server.go
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/mcp-demos/calc/config"
)

// Processor resolves one chat query
type Processor interface {
	ProcessQuery(ctx context.Context, query string) (string, error)
}

// Server is the optional HTTP front-end over the bridge
type Server struct {
	cfg       *config.Config
	processor Processor
	srv       *http.Server
	logger    *log.Logger
}

// MessageRequest represents an incoming chat request
type MessageRequest struct {
	Message string `json:"message"`
}

// MessageResponse represents the response to a chat request
type MessageResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// New creates a new server instance over an initialized bridge
func New(cfg *config.Config, processor Processor, logger *log.Logger) *Server {
	return &Server{
		cfg:       cfg,
		processor: processor,
		logger:    logger,
	}
}

// Start runs the HTTP server and blocks until it stops
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/health", s.handleHealth)

	s.srv = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.cfg.API.Host, s.cfg.API.Port),
		Handler: mux,
	}

	s.logger.Printf("Starting chat API on %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	return nil
}

// handleChat processes chat messages through the bridge
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	response, err := s.processor.ProcessQuery(r.Context(), req.Message)
	resp := MessageResponse{
		Response: response,
	}
	if err != nil {
		resp.Error = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// handleHealth provides a health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
