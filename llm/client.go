package llm

import (
	"context"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Client manages communication with the OpenAI chat completions API
type Client struct {
	api          openai.Client
	model        string
	systemPrompt string
	tools        []openai.ChatCompletionToolUnionParam
	logger       *log.Logger
}

// New creates a new OpenAI client. baseURL may be empty to use the
// provider's default endpoint.
func New(apiKey, baseURL, model, systemPrompt string) *Client {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &Client{
		api:          openai.NewClient(opts...),
		model:        model,
		systemPrompt: systemPrompt,
		logger:       log.Default(),
	}
}

// SetTools configures the available tools for the model
func (c *Client) SetTools(tools []mcp.Tool) error {
	c.tools = convertTools(tools)
	return nil
}

// SystemPrompt returns the configured system prompt
func (c *Client) SystemPrompt() string {
	return c.systemPrompt
}

// CreateChatCompletion sends the conversation to the model. When
// allowToolCalls is false the tools are still advertised but tool choice is
// forced to none, guaranteeing a textual answer.
func (c *Client) CreateChatCompletion(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion, allowToolCalls bool) (*openai.ChatCompletion, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: messages,
	}

	if len(c.tools) > 0 {
		params.Tools = c.tools
		if !allowToolCalls {
			params.ToolChoice = openai.ChatCompletionToolChoiceOptionUnionParam{
				OfAuto: openai.String("none"),
			}
		}
	}

	completion, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		c.logger.Printf("Chat completion failed: %v", err)
		return nil, err
	}

	return completion, nil
}

// convertTools converts MCP tool descriptors to the OpenAI function format.
// The input schema is passed through verbatim as the function parameters.
func convertTools(tools []mcp.Tool) []openai.ChatCompletionToolUnionParam {
	var converted []openai.ChatCompletionToolUnionParam

	for _, tool := range tools {
		parameters := openai.FunctionParameters{
			"type":       tool.InputSchema.Type,
			"properties": tool.InputSchema.Properties,
		}
		if len(tool.InputSchema.Required) > 0 {
			parameters["required"] = tool.InputSchema.Required
		}

		converted = append(converted, openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
			Name:        tool.Name,
			Description: openai.String(tool.Description),
			Parameters:  parameters,
		}))
	}

	return converted
}
