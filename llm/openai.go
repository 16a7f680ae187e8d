package llm

import (
	"encoding/json"
	"fmt"
)

func init() {
	RegisterDialect("openai", &OpenAIDialect{})
}

// OpenAIDialect maps universal LLM types to the OpenAI chat completions
// format. It also covers OpenAI-compatible gateways such as OpenRouter.
type OpenAIDialect struct{}

type openaiRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type openaiResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Usage Usage `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Name returns "openai".
func (d *OpenAIDialect) Name() string { return "openai" }

// ChatPath returns the chat completions endpoint.
func (d *OpenAIDialect) ChatPath() string { return "/chat/completions" }

// HealthPath returns the models listing endpoint.
func (d *OpenAIDialect) HealthPath() string { return "/models" }

// BuildRequest maps a CompletionRequest to the OpenAI request body.
// The system prompt becomes the leading system message.
func (d *OpenAIDialect) BuildRequest(req CompletionRequest) (any, error) {
	msgs := make([]Message, 0, len(req.Messages)+1)
	if req.SystemPrompt != "" {
		msgs = append(msgs, Message{Role: "system", Content: req.SystemPrompt})
	}
	msgs = append(msgs, req.Messages...)

	return openaiRequest{
		Model:       req.Model,
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}, nil
}

// ParseResponse maps the OpenAI response body to a CompletionResponse.
func (d *OpenAIDialect) ParseResponse(body []byte) (*CompletionResponse, error) {
	var resp openaiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("openai: decode response: %w", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("openai: api error: %s", resp.Error.Message)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: response has no choices")
	}
	return &CompletionResponse{
		Content: resp.Choices[0].Message.Content,
		Model:   resp.Model,
		Usage:   resp.Usage,
	}, nil
}
