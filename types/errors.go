// types/errors.go
package types

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTool indicates a tool name not present in the registry
	ErrUnknownTool = errors.New("unknown tool")

	// ErrInvalidArguments indicates tool arguments that do not satisfy the schema
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrTransport indicates a failure on the MCP session
	ErrTransport = errors.New("transport failure")

	// ErrProvider indicates a failed LLM call
	ErrProvider = errors.New("provider failure")

	// ErrInvalidConfig indicates a configuration error
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UnknownToolError reports an invocation of an unregistered tool
type UnknownToolError struct {
	Tool string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Tool)
}

func (e *UnknownToolError) Unwrap() error {
	return ErrUnknownTool
}

// InvalidArgumentsError reports arguments rejected by a tool's input schema
type InvalidArgumentsError struct {
	Tool    string
	Message string
	Err     error
}

func (e *InvalidArgumentsError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid arguments for %s: %s: %v", e.Tool, e.Message, e.Err)
	}
	return fmt.Sprintf("invalid arguments for %s: %s", e.Tool, e.Message)
}

func (e *InvalidArgumentsError) Unwrap() error {
	return ErrInvalidArguments
}

// TransportError wraps MCP session failures
type TransportError struct {
	Operation string
	Message   string
	Err       error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport error during %s: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("transport error during %s: %s", e.Operation, e.Message)
}

func (e *TransportError) Unwrap() error {
	return ErrTransport
}

// ProviderError wraps LLM call failures
type ProviderError struct {
	Operation string
	Message   string
	Err       error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider error during %s: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("provider error during %s: %s", e.Operation, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return ErrProvider
}

// ConfigError wraps configuration-related errors
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error in %s: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("configuration error in %s: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
