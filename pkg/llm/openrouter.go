package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultOpenRouterModel = "openai/gpt-4"

// OpenRouterClient talks to any OpenAI-compatible chat completions endpoint;
// the default deployment points it at OpenRouter.
type OpenRouterClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenRouterClient(apiKey, baseURL, model string) *OpenRouterClient {
	if model == "" {
		model = defaultOpenRouterModel
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)
	return &OpenRouterClient{
		client:    &client,
		model:     openai.ChatModel(model),
		modelName: model,
	}
}

func (c *OpenRouterClient) Name() string {
	return "openrouter"
}

func (c *OpenRouterClient) Analyze(ctx context.Context, headlines []string) (*Analysis, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildMoodPrompt(headlines)),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("openrouter API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in openrouter response")
	}

	mood, explanation := ParseMood(resp.Choices[0].Message.Content)

	return &Analysis{
		Mood:        mood,
		Explanation: explanation,
		ModelUsed:   c.modelName,
	}, nil
}
