package tools

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-demos/calc/types"
)

func TestValidatorValidateToolCall(t *testing.T) {
	t.Parallel()

	v := NewValidator([]mcp.Tool{(&CalculatorTool{}).GetToolSpec()})

	err := v.ValidateToolCall(types.ToolCallRequest{
		ID:        "call_1",
		Name:      "add",
		Arguments: map[string]interface{}{"a": float64(1), "b": float64(1)},
	})
	require.NoError(t, err)

	err = v.ValidateToolCall(types.ToolCallRequest{
		ID:   "call_2",
		Name: "multiply",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUnknownTool)

	err = v.ValidateToolCall(types.ToolCallRequest{
		ID:        "call_3",
		Name:      "add",
		Arguments: map[string]interface{}{"a": "one", "b": float64(1)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidArguments)
}

func TestValidateArgumentsTypes(t *testing.T) {
	t.Parallel()

	schema := mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"s":    map[string]interface{}{"type": "string"},
			"n":    map[string]interface{}{"type": "number"},
			"i":    map[string]interface{}{"type": "integer"},
			"flag": map[string]interface{}{"type": "boolean"},
			"obj":  map[string]interface{}{"type": "object"},
			"list": map[string]interface{}{"type": "array"},
		},
	}

	cases := []struct {
		name    string
		args    map[string]interface{}
		wantErr bool
	}{
		{"valid string", map[string]interface{}{"s": "hello"}, false},
		{"valid number", map[string]interface{}{"n": 1.5}, false},
		{"valid integer", map[string]interface{}{"i": float64(3)}, false},
		{"fractional integer", map[string]interface{}{"i": 3.5}, true},
		{"string for integer", map[string]interface{}{"i": "3"}, true},
		{"valid boolean", map[string]interface{}{"flag": true}, false},
		{"valid object", map[string]interface{}{"obj": map[string]interface{}{}}, false},
		{"valid array", map[string]interface{}{"list": []interface{}{1.0}}, false},
		{"number for string", map[string]interface{}{"s": 1.0}, true},
		{"unknown property", map[string]interface{}{"other": "x"}, true},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateArguments("test", tt.args, schema)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, types.ErrInvalidArguments)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateArgumentsRequired(t *testing.T) {
	t.Parallel()

	schema := (&CalculatorTool{}).GetToolSpec().InputSchema

	err := ValidateArguments("add", map[string]interface{}{"a": float64(1)}, schema)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidArguments)
	assert.Contains(t, err.Error(), "missing required field: b")
}
