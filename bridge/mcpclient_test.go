package bridge

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-demos/calc/types"
)

func textResult(text string, isError bool) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
		IsError: isError,
	}
}

func TestParseToolResult(t *testing.T) {
	t.Parallel()

	text, err := parseToolResult("add", textResult("5", false))
	require.NoError(t, err)
	assert.Equal(t, "5", text)
}

func TestParseToolResultToolError(t *testing.T) {
	t.Parallel()

	_, err := parseToolResult("add", textResult("invalid arguments for add: missing required field: b", true))
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrTransport)
	assert.Contains(t, err.Error(), "tool add returned an error")
	assert.Contains(t, err.Error(), "missing required field: b")
}

func TestParseToolResultNoTextContent(t *testing.T) {
	t.Parallel()

	_, err := parseToolResult("add", &mcp.CallToolResult{})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrTransport)
	assert.Contains(t, err.Error(), "unusable result")
}
