package llm

import (
	"encoding/json"
	"fmt"
)

func init() {
	RegisterDialect("ollama", &OllamaDialect{})
}

// OllamaDialect maps universal LLM types to the Ollama native chat API.
type OllamaDialect struct{}

type ollamaRequest struct {
	Model    string         `json:"model"`
	Messages []Message      `json:"messages"`
	Stream   bool           `json:"stream"`
	Options  map[string]any `json:"options,omitempty"`
}

type ollamaResponse struct {
	Model   string `json:"model"`
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
	Error           string `json:"error"`
}

// Name returns "ollama".
func (d *OllamaDialect) Name() string { return "ollama" }

// ChatPath returns the native chat endpoint.
func (d *OllamaDialect) ChatPath() string { return "/api/chat" }

// HealthPath returns the model tags endpoint.
func (d *OllamaDialect) HealthPath() string { return "/api/tags" }

// BuildRequest maps a CompletionRequest to the Ollama request body.
func (d *OllamaDialect) BuildRequest(req CompletionRequest) (any, error) {
	msgs := make([]Message, 0, len(req.Messages)+1)
	if req.SystemPrompt != "" {
		msgs = append(msgs, Message{Role: "system", Content: req.SystemPrompt})
	}
	msgs = append(msgs, req.Messages...)

	body := ollamaRequest{
		Model:    req.Model,
		Messages: msgs,
		Stream:   false,
	}
	opts := map[string]any{}
	if req.Temperature > 0 {
		opts["temperature"] = req.Temperature
	}
	if req.MaxTokens > 0 {
		opts["num_predict"] = req.MaxTokens
	}
	if len(opts) > 0 {
		body.Options = opts
	}
	return body, nil
}

// ParseResponse maps the Ollama response body to a CompletionResponse.
func (d *OllamaDialect) ParseResponse(body []byte) (*CompletionResponse, error) {
	var resp ollamaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("ollama: decode response: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("ollama: api error: %s", resp.Error)
	}
	return &CompletionResponse{
		Content: resp.Message.Content,
		Model:   resp.Model,
		Usage: Usage{
			PromptTokens:     resp.PromptEvalCount,
			CompletionTokens: resp.EvalCount,
			TotalTokens:      resp.PromptEvalCount + resp.EvalCount,
		},
	}, nil
}
