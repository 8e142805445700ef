package mcpserver

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-demos/calc/config"
	"github.com/mcp-demos/calc/tools"
)

func newTestServer(t *testing.T) *MCPServer {
	t.Helper()

	registry := tools.NewRegistry()
	require.NoError(t, registry.RegisterTool(&tools.CalculatorTool{}))

	return New(config.DefaultConfig(), registry, log.New(io.Discard, "", 0))
}

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = args
	return request
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestToolHandlerAdd(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	handler := s.makeToolHandler("add")

	result, err := handler(context.Background(), callRequest("add", map[string]interface{}{
		"a": float64(2),
		"b": float64(3),
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "5", resultText(t, result))
}

func TestToolHandlerInvalidArguments(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	handler := s.makeToolHandler("add")

	result, err := handler(context.Background(), callRequest("add", map[string]interface{}{
		"a": "two",
		"b": float64(3),
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "invalid arguments")
}

func TestToolHandlerUnknownTool(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	handler := s.makeToolHandler("subtract")

	result, err := handler(context.Background(), callRequest("subtract", map[string]interface{}{
		"a": float64(2),
		"b": float64(3),
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "unknown tool")
}
