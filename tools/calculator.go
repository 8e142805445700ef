// tools/calculator.go

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mcp-demos/calc/types"
)

// CalculatorTool provides integer addition
type CalculatorTool struct{}

// GetToolSpec returns the MCP tool specification
func (t *CalculatorTool) GetToolSpec() mcp.Tool {
	return mcp.Tool{
		Name:        "add",
		Description: "Add two numbers together",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"a": map[string]interface{}{
					"type":        "integer",
					"description": "First number",
				},
				"b": map[string]interface{}{
					"type":        "integer",
					"description": "Second number",
				},
			},
			Required: []string{"a", "b"},
		},
	}
}

// Execute adds the two operands. Addition is fixed-width int64 with an
// explicit overflow error rather than silent wraparound.
func (t *CalculatorTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	a, err := intArg(args, "a")
	if err != nil {
		return "", err
	}
	b, err := intArg(args, "b")
	if err != nil {
		return "", err
	}

	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return "", fmt.Errorf("integer overflow: %d + %d", a, b)
	}

	return strconv.FormatInt(a+b, 10), nil
}

// intArg extracts an int64 argument decoded from JSON
func intArg(args map[string]interface{}, key string) (int64, error) {
	value, ok := args[key]
	if !ok {
		return 0, &types.InvalidArgumentsError{
			Tool:    "add",
			Message: fmt.Sprintf("missing required field: %s", key),
		}
	}

	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, &types.InvalidArgumentsError{
				Tool:    "add",
				Message: fmt.Sprintf("%s must be an integer, got %v", key, v),
			}
		}
		return int64(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, &types.InvalidArgumentsError{
				Tool:    "add",
				Message: fmt.Sprintf("%s must be an integer", key),
				Err:     err,
			}
		}
		return n, nil
	default:
		return 0, &types.InvalidArgumentsError{
			Tool:    "add",
			Message: fmt.Sprintf("%s must be an integer, got %T", key, value),
		}
	}
}
