package tools

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mcp-demos/calc/types"
)

// Validator checks tool calls against the input schemas of a known tool set.
// The orchestrator runs it before dispatching a call so that schema mismatches
// fail fast instead of surfacing as server-side errors.
type Validator struct {
	tools map[string]mcp.Tool
}

// NewValidator creates a new validator with the given tools
func NewValidator(tools []mcp.Tool) *Validator {
	toolMap := make(map[string]mcp.Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}
	return &Validator{tools: toolMap}
}

// ValidateToolCall validates a single requested tool call
func (v *Validator) ValidateToolCall(call types.ToolCallRequest) error {
	tool, ok := v.tools[call.Name]
	if !ok {
		return &types.UnknownToolError{Tool: call.Name}
	}

	return ValidateArguments(call.Name, call.Arguments, tool.InputSchema)
}

// ValidateArguments validates tool arguments against an input schema.
// It returns an InvalidArgumentsError describing the first mismatch found.
func ValidateArguments(toolName string, args map[string]interface{}, schema mcp.ToolInputSchema) error {
	// Check required fields
	for _, required := range schema.Required {
		if _, ok := args[required]; !ok {
			return &types.InvalidArgumentsError{
				Tool:    toolName,
				Message: fmt.Sprintf("missing required field: %s", required),
			}
		}
	}

	// Validate properties
	for name, value := range args {
		propSchema, ok := schema.Properties[name]
		if !ok {
			return &types.InvalidArgumentsError{
				Tool:    toolName,
				Message: fmt.Sprintf("unknown property: %s", name),
			}
		}

		propType, ok := propSchema.(map[string]interface{})["type"].(string)
		if !ok {
			return &types.InvalidArgumentsError{
				Tool:    toolName,
				Message: fmt.Sprintf("invalid property schema for %s", name),
			}
		}

		if err := validateType(value, propType); err != nil {
			return &types.InvalidArgumentsError{
				Tool:    toolName,
				Message: fmt.Sprintf("invalid value for %s", name),
				Err:     err,
			}
		}
	}

	return nil
}

// validateType validates a value against a JSON Schema type
func validateType(value interface{}, expectedType string) error {
	switch expectedType {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
	case "number":
		switch value.(type) {
		case float64, float32, int, int64, int32, json.Number:
			// Valid numeric types
		default:
			return fmt.Errorf("expected number, got %T", value)
		}
	case "integer":
		// JSON decoding yields float64 for all numbers; accept only whole values
		switch v := value.(type) {
		case int, int64, int32:
		case float64:
			if v != math.Trunc(v) {
				return fmt.Errorf("expected integer, got %v", v)
			}
		case json.Number:
			if _, err := v.Int64(); err != nil {
				return fmt.Errorf("expected integer, got %s", v.String())
			}
		default:
			return fmt.Errorf("expected integer, got %T", value)
		}
	case "boolean":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("expected boolean, got %T", value)
		}
	case "object":
		if _, ok := value.(map[string]interface{}); !ok {
			return fmt.Errorf("expected object, got %T", value)
		}
	case "array":
		if _, ok := value.([]interface{}); !ok {
			return fmt.Errorf("expected array, got %T", value)
		}
	default:
		return fmt.Errorf("unsupported type: %s", expectedType)
	}

	return nil
}
