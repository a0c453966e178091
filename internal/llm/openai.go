package llm

import (
	"context"
	"fmt"

	openaisdk "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"
)

// OpenAIClient implements Client for OpenAI chat completions
type OpenAIClient struct {
	sdk    openaisdk.Client
	config *Config
}

// NewOpenAIClient creates a new OpenAI client using the official SDK
func NewOpenAIClient(config *Config, apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	return &OpenAIClient{
		sdk:    openaisdk.NewClient(option.WithAPIKey(apiKey)),
		config: config,
	}, nil
}

// params assembles the chat completion request for the tier.
func (c *OpenAIClient) params(system, prompt string, tier ModelTier) (openaisdk.ChatCompletionNewParams, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return openaisdk.ChatCompletionNewParams{}, fmt.Errorf("no model configured for tier %s", tier)
	}

	messages := make([]openaisdk.ChatCompletionMessageParamUnion, 0, 2)
	if system != "" {
		messages = append(messages, openaisdk.SystemMessage(system))
	}
	messages = append(messages, openaisdk.UserMessage(prompt))

	return openaisdk.ChatCompletionNewParams{
		Model:       openaisdk.ChatModel(modelName),
		Messages:    messages,
		Temperature: param.NewOpt(0.1), // Low temperature for consistent output
	}, nil
}

// GenerateContent generates text content using the specified model tier
func (c *OpenAIClient) GenerateContent(ctx context.Context, system, prompt string, tier ModelTier) (string, error) {
	params, err := c.params(system, prompt, tier)
	if err != nil {
		return "", err
	}

	resp, err := c.sdk.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[0].Message.Content, nil
}

// GenerateJSON generates JSON content using the specified model tier
func (c *OpenAIClient) GenerateJSON(ctx context.Context, system, prompt string, tier ModelTier) (string, error) {
	params, err := c.params(system, prompt, tier)
	if err != nil {
		return "", err
	}
	params.ResponseFormat = openaisdk.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONObject: &openaisdk.ResponseFormatJSONObjectParam{},
	}

	resp, err := c.sdk.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	// Clean any markdown code block wrappers
	return CleanJSONBlock(resp.Choices[0].Message.Content), nil
}

// GetModel returns the model name for a tier
func (c *OpenAIClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *OpenAIClient) Close() error {
	return nil
}

var _ Client = (*OpenAIClient)(nil)
