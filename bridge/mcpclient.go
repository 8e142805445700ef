package bridge

import (
	"context"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mcp-demos/calc/types"
)

const ssePath = "/sse"

// MCPClient is the transport session: an SSE connection to an MCP server
// providing the initialize, list-tools and call-tool primitives.
type MCPClient struct {
	client *client.SSEMCPClient
	logger *log.Logger
}

// NewMCPClient creates a client for the MCP server at serverURL
func NewMCPClient(serverURL string, logger *log.Logger) (*MCPClient, error) {
	c, err := client.NewSSEMCPClient(serverURL + ssePath)
	if err != nil {
		return nil, &types.TransportError{
			Operation: "create_client",
			Message:   fmt.Sprintf("failed to create SSE client for %s", serverURL),
			Err:       err,
		}
	}

	return &MCPClient{
		client: c,
		logger: logger,
	}, nil
}

// Connect opens the SSE stream and performs the initialize handshake
func (c *MCPClient) Connect(ctx context.Context) (*mcp.InitializeResult, error) {
	if err := c.client.Start(ctx); err != nil {
		return nil, &types.TransportError{
			Operation: "connect",
			Message:   "failed to open SSE stream",
			Err:       err,
		}
	}

	initRequest := mcp.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcp.Implementation{
		Name:    "calcmcp",
		Version: "1.0.0",
	}

	result, err := c.client.Initialize(ctx, initRequest)
	if err != nil {
		return nil, &types.TransportError{
			Operation: "initialize",
			Message:   "initialize handshake failed",
			Err:       err,
		}
	}

	c.logger.Printf("Connected to %s (protocol %s)", result.ServerInfo.Name, result.ProtocolVersion)
	return result, nil
}

// ListTools returns the server's tool descriptors
func (c *MCPClient) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	result, err := c.client.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, &types.TransportError{
			Operation: "list_tools",
			Message:   "failed to list tools",
			Err:       err,
		}
	}

	return result.Tools, nil
}

// CallTool invokes a tool and returns the text of its first content item
func (c *MCPClient) CallTool(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	c.logger.Printf("Calling tool %s with %v", name, args)

	request := mcp.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = args

	result, err := c.client.CallTool(ctx, request)
	if err != nil {
		return "", &types.TransportError{
			Operation: "call_tool",
			Message:   fmt.Sprintf("call to %s failed", name),
			Err:       err,
		}
	}

	return parseToolResult(name, result)
}

// Close releases the SSE connection
func (c *MCPClient) Close() error {
	c.logger.Println("Closing MCP client...")
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("failed to close SSE client: %w", err)
	}
	return nil
}

// parseToolResult extracts the text of a tool result. Tool-level errors
// surface as TransportError like any other session failure.
func parseToolResult(name string, result *mcp.CallToolResult) (string, error) {
	text, err := textContent(result)
	if err != nil {
		return "", &types.TransportError{
			Operation: "call_tool",
			Message:   fmt.Sprintf("unusable result from %s", name),
			Err:       err,
		}
	}

	if result.IsError {
		return "", &types.TransportError{
			Operation: "call_tool",
			Message:   fmt.Sprintf("tool %s returned an error: %s", name, text),
		}
	}

	return text, nil
}

// textContent extracts the first text content item from a tool result
func textContent(result *mcp.CallToolResult) (string, error) {
	for _, content := range result.Content {
		if text, ok := content.(mcp.TextContent); ok {
			return text.Text, nil
		}
	}
	return "", fmt.Errorf("no text content in result")
}
