// types/types.go
package types

// ToolCallRequest is a single tool invocation requested by the LLM.
// It is consumed exactly once by the orchestrator.
type ToolCallRequest struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

// ToolResult is the outcome of dispatching one ToolCallRequest,
// keyed by the id of the call that produced it.
type ToolResult struct {
	ToolCallID string `json:"tool_call_id"`
	Content    string `json:"content"`
}
