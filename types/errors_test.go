package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		err      error
		sentinel error
		contains string
	}{
		{
			"unknown tool",
			&UnknownToolError{Tool: "subtract"},
			ErrUnknownTool,
			"subtract",
		},
		{
			"invalid arguments",
			&InvalidArgumentsError{Tool: "add", Message: "missing required field: b"},
			ErrInvalidArguments,
			"missing required field: b",
		},
		{
			"transport",
			&TransportError{Operation: "call_tool", Message: "connection lost", Err: fmt.Errorf("EOF")},
			ErrTransport,
			"call_tool",
		},
		{
			"provider",
			&ProviderError{Operation: "first_completion", Message: "LLM call failed"},
			ErrProvider,
			"first_completion",
		},
		{
			"config",
			&ConfigError{Field: "server.port", Message: "out of range"},
			ErrInvalidConfig,
			"server.port",
		},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, errors.Is(tt.err, tt.sentinel))
			assert.Contains(t, tt.err.Error(), tt.contains)
		})
	}
}
