package ai

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	config "gitlab.com/unnchai/agro.backend/src/production/AGT.Config"
	agtmodels "gitlab.com/unnchai/agro.backend/src/production/AGT.Models"
)

const systemPrompt = "You are a knowledgeable AI assistant specializing in agriculture, " +
	"particularly in the context of Nepal. Your role is to provide concise and relevant " +
	"answers to user queries related to farming practices, crop cultivation, agricultural " +
	"policies, and challenges faced by farmers in Nepal. Ensure that your responses are " +
	"tailored to the unique agricultural landscape of Nepal, considering local practices, " +
	"climate, and economic factors. DONOT answer anything beside Agriculture"

const chatTemperature = 0.3

// SystemMessage returns the fixed instruction that scopes the assistant to
// agricultural advice for Nepal.
func SystemMessage() agtmodels.ChatMessage {
	return agtmodels.ChatMessage{Role: "system", Content: systemPrompt}
}

// ChatClient calls an OpenAI-compatible chat-completion endpoint.
type ChatClient struct {
	client *resty.Client
	model  string
}

// NewChatClient creates a chat client from AI configuration
func NewChatClient(cfg *config.AIConfig) *ChatClient {
	client := resty.New()
	client.SetBaseURL(cfg.BaseURL)
	client.SetTimeout(cfg.Timeout)
	client.SetAuthToken(cfg.APIKey)

	return &ChatClient{
		client: client,
		model:  cfg.Model,
	}
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Temperature float64                 `json:"temperature"`
	Messages    []agtmodels.ChatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message agtmodels.ChatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends a single independent turn: the fixed system prompt plus the
// user message. No prior conversation history is included.
func (c *ChatClient) Complete(ctx context.Context, message string) (string, error) {
	body := chatCompletionRequest{
		Model:       c.model,
		Temperature: chatTemperature,
		Messages: []agtmodels.ChatMessage{
			SystemMessage(),
			{Role: "user", Content: message},
		},
	}

	var result chatCompletionResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("chat completion API error %d: %s", resp.StatusCode(), resp.String())
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return result.Choices[0].Message.Content, nil
}
