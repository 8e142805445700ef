package tools

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mcp-demos/calc/types"
)

// Handler executes a tool invocation and returns its textual result
type Handler func(ctx context.Context, args map[string]interface{}) (string, error)

// Tool is implemented by anything the registry can expose
type Tool interface {
	GetToolSpec() mcp.Tool
	Execute(ctx context.Context, args map[string]interface{}) (string, error)
}

// Registry maps tool names to handlers with their declared schemas.
// Descriptors are immutable once registered and List returns them in
// registration order.
type Registry struct {
	mu       sync.RWMutex
	order    []string
	specs    map[string]mcp.Tool
	handlers map[string]Handler
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		specs:    make(map[string]mcp.Tool),
		handlers: make(map[string]Handler),
	}
}

// Register makes a tool discoverable under its spec name
func (r *Registry) Register(spec mcp.Tool, handler Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if spec.Name == "" {
		return fmt.Errorf("tool name is required")
	}
	if handler == nil {
		return fmt.Errorf("tool %s has no handler", spec.Name)
	}
	if _, ok := r.specs[spec.Name]; ok {
		return fmt.Errorf("tool %s already registered", spec.Name)
	}

	r.order = append(r.order, spec.Name)
	r.specs[spec.Name] = spec
	r.handlers[spec.Name] = handler
	return nil
}

// RegisterTool registers a Tool implementation
func (r *Registry) RegisterTool(t Tool) error {
	return r.Register(t.GetToolSpec(), t.Execute)
}

// List returns all registered tool descriptors in registration order
func (r *Registry) List() []mcp.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]mcp.Tool, 0, len(r.order))
	for _, name := range r.order {
		list = append(list, r.specs[name])
	}
	return list
}

// Invoke validates arguments against the tool's schema and runs its handler
// synchronously. It fails with ErrUnknownTool for unregistered names and
// ErrInvalidArguments for schema mismatches.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	r.mu.RLock()
	spec, ok := r.specs[name]
	handler := r.handlers[name]
	r.mu.RUnlock()

	if !ok {
		return "", &types.UnknownToolError{Tool: name}
	}

	if err := ValidateArguments(name, args, spec.InputSchema); err != nil {
		return "", err
	}

	return handler(ctx, args)
}
