package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/openai/openai-go/v3"

	"github.com/mcp-demos/calc/tools"
	"github.com/mcp-demos/calc/types"
)

// LLMClient is the LLM side of the orchestrator
type LLMClient interface {
	SetTools(tools []mcp.Tool) error
	SystemPrompt() string
	CreateChatCompletion(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion, allowToolCalls bool) (*openai.ChatCompletion, error)
}

// Session is the transport side of the orchestrator
type Session interface {
	ListTools(ctx context.Context) ([]mcp.Tool, error)
	CallTool(ctx context.Context, name string, args map[string]interface{}) (string, error)
}

// Bridge drives one user query through the LLM, dispatches any requested
// tool calls against the MCP session and resolves a final answer. Queries
// are sequential; the bridge assumes exclusive use of the session.
type Bridge struct {
	llmClient LLMClient
	session   Session
	tools     []mcp.Tool
	validator *tools.Validator
	logger    *log.Logger
}

// New creates a new Bridge instance
func New(llmClient LLMClient, session Session, logger *log.Logger) *Bridge {
	return &Bridge{
		llmClient: llmClient,
		session:   session,
		logger:    logger,
	}
}

// Initialize fetches the server's tools and advertises them to the LLM
func (b *Bridge) Initialize(ctx context.Context) error {
	serverTools, err := b.session.ListTools(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tools: %w", err)
	}

	b.tools = serverTools
	b.validator = tools.NewValidator(serverTools)

	if err := b.llmClient.SetTools(serverTools); err != nil {
		return fmt.Errorf("failed to set tools in LLM client: %w", err)
	}

	b.logger.Printf("Bridge initialized with %d tools", len(serverTools))
	return nil
}

// Tools returns the tool descriptors fetched during initialization
func (b *Bridge) Tools() []mcp.Tool {
	return b.tools
}

// ProcessQuery resolves one user query. A query with no tool calls completes
// in a single LLM round trip; a query that uses tools completes in exactly
// two, with tool choice forced off on the second. Any failure aborts the
// query and surfaces to the caller.
func (b *Bridge) ProcessQuery(ctx context.Context, query string) (string, error) {
	if b.validator == nil {
		return "", fmt.Errorf("bridge not initialized")
	}

	queryID := uuid.NewString()
	b.logger.Printf("[%s] Processing query: %s", queryID, query)

	var messages []openai.ChatCompletionMessageParamUnion
	if prompt := b.llmClient.SystemPrompt(); prompt != "" {
		messages = append(messages, openai.SystemMessage(prompt))
	}
	messages = append(messages, openai.UserMessage(query))

	completion, err := b.llmClient.CreateChatCompletion(ctx, messages, true)
	if err != nil {
		return "", &types.ProviderError{
			Operation: "first_completion",
			Message:   "LLM call failed",
			Err:       err,
		}
	}
	message, err := firstChoice(completion)
	if err != nil {
		return "", err
	}

	if len(message.ToolCalls) == 0 {
		b.logger.Printf("[%s] Answered without tool calls", queryID)
		return message.Content, nil
	}

	b.logger.Printf("[%s] Dispatching %d tool calls", queryID, len(message.ToolCalls))
	messages = append(messages, message.ToParam())

	results, err := b.dispatchToolCalls(ctx, message.ToolCalls)
	if err != nil {
		return "", err
	}
	for _, result := range results {
		messages = append(messages, openai.ToolMessage(result.Content, result.ToolCallID))
	}

	final, err := b.llmClient.CreateChatCompletion(ctx, messages, false)
	if err != nil {
		return "", &types.ProviderError{
			Operation: "final_completion",
			Message:   "LLM continuation failed",
			Err:       err,
		}
	}
	finalMessage, err := firstChoice(final)
	if err != nil {
		return "", err
	}

	b.logger.Printf("[%s] Final response: %s", queryID, finalMessage.Content)
	return finalMessage.Content, nil
}

// dispatchToolCalls invokes every requested call sequentially, in the order
// the LLM returned them. Each call is validated against the advertised
// schemas before it reaches the session; the first failure aborts.
func (b *Bridge) dispatchToolCalls(ctx context.Context, toolCalls []openai.ChatCompletionMessageToolCallUnion) ([]types.ToolResult, error) {
	results := make([]types.ToolResult, 0, len(toolCalls))

	for _, toolCall := range toolCalls {
		call, err := toToolCallRequest(toolCall)
		if err != nil {
			return nil, err
		}

		if err := b.validator.ValidateToolCall(call); err != nil {
			b.logger.Printf("Rejected tool call %s: %v", call.Name, err)
			return nil, err
		}

		output, err := b.session.CallTool(ctx, call.Name, call.Arguments)
		if err != nil {
			b.logger.Printf("Tool %s failed: %v", call.Name, err)
			return nil, err
		}

		results = append(results, types.ToolResult{
			ToolCallID: call.ID,
			Content:    output,
		})
	}

	return results, nil
}

// toToolCallRequest decodes the LLM's tool call into the local representation
func toToolCallRequest(toolCall openai.ChatCompletionMessageToolCallUnion) (types.ToolCallRequest, error) {
	call := types.ToolCallRequest{
		ID:        toolCall.ID,
		Name:      toolCall.Function.Name,
		Arguments: make(map[string]interface{}),
	}

	if toolCall.Function.Arguments != "" {
		if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &call.Arguments); err != nil {
			return types.ToolCallRequest{}, &types.InvalidArgumentsError{
				Tool:    call.Name,
				Message: "arguments are not valid JSON",
				Err:     err,
			}
		}
	}

	return call, nil
}

// firstChoice extracts the assistant message from a completion
func firstChoice(completion *openai.ChatCompletion) (*openai.ChatCompletionMessage, error) {
	if completion == nil || len(completion.Choices) == 0 {
		return nil, &types.ProviderError{
			Operation: "completion",
			Message:   "empty response from provider",
		}
	}
	return &completion.Choices[0].Message, nil
}
