package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mcp-demos/calc/config"
	"github.com/mcp-demos/calc/tools"
	"github.com/mcp-demos/calc/types"
)

const (
	serverName    = "calcmcp"
	serverVersion = "1.0.0"
)

// MCPServer exposes a tool registry over the MCP SSE transport
type MCPServer struct {
	server   *server.MCPServer
	sse      *server.SSEServer
	registry *tools.Registry
	addr     string
	logger   *log.Logger
}

// New creates an MCP server serving every tool in the registry
func New(cfg *config.Config, registry *tools.Registry, logger *log.Logger) *MCPServer {
	s := &MCPServer{
		server: server.NewMCPServer(
			serverName,
			serverVersion,
			server.WithToolCapabilities(true),
			server.WithLogging(),
		),
		registry: registry,
		addr:     cfg.ListenAddr(),
		logger:   logger,
	}

	for _, tool := range registry.List() {
		s.server.AddTool(tool, s.makeToolHandler(tool.Name))
		logger.Printf("Registered tool: %s", tool.Name)
	}

	s.sse = server.NewSSEServer(s.server,
		server.WithBaseURL(fmt.Sprintf("http://%s", s.addr)),
	)

	return s
}

// makeToolHandler adapts a registry invocation to an MCP tool handler.
// Registry failures become tool-level error results so the session stays up.
func (s *MCPServer) makeToolHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		s.logger.Printf("Tool call: %s %v", name, request.Params.Arguments)

		result, err := s.registry.Invoke(ctx, name, request.Params.Arguments)
		if err != nil {
			s.logger.Printf("Tool %s failed: %v", name, err)
			if errors.Is(err, types.ErrUnknownTool) || errors.Is(err, types.ErrInvalidArguments) {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return nil, err
		}

		return mcp.NewToolResultText(result), nil
	}
}

// Serve starts the SSE server and blocks until it stops
func (s *MCPServer) Serve() error {
	s.logger.Printf("Starting MCP SSE server on %s", s.addr)
	if err := s.sse.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("sse server error: %w", err)
	}
	return nil
}

// Shutdown stops the SSE server
func (s *MCPServer) Shutdown(ctx context.Context) error {
	s.logger.Println("Shutting down MCP server...")
	if err := s.sse.Shutdown(ctx); err != nil {
		return fmt.Errorf("sse server shutdown error: %w", err)
	}
	return nil
}
