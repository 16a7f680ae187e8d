package llm

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/errors"
)

// Complete is a convenience helper: sends system + user prompts and returns
// the text response.
func Complete(ctx context.Context, p Provider, system, user string) (string, error) {
	resp, err := p.Complete(ctx, CompletionRequest{
		SystemPrompt: system,
		Messages:     []Message{{Role: "user", Content: user}},
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// CompleteStructured sends a prompt expecting JSON and unmarshals the response
// into result. It appends JSON formatting instructions to the system prompt.
// A response that does not decode into result is a malformed generation; no
// fallback content is ever substituted.
func CompleteStructured(ctx context.Context, p Provider, system, user string, result any) error {
	system += "\n\nIMPORTANT: Respond with ONLY the JSON value. " +
		"No markdown, no code blocks, no explanations."

	resp, err := p.Complete(ctx, CompletionRequest{
		SystemPrompt: system,
		Messages:     []Message{{Role: "user", Content: user}},
	})
	if err != nil {
		return err
	}

	content := ExtractJSON(resp.Content)
	if err := json.Unmarshal([]byte(content), result); err != nil {
		return errors.MalformedGeneration("structured response is not valid JSON: " + err.Error())
	}
	return nil
}

// ExtractJSON pulls a JSON object or array from LLM output that may contain
// markdown fences or surrounding prose.
func ExtractJSON(s string) string {
	s = strings.TrimSpace(s)

	// Strip markdown code fences
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s[3:], "\n"); idx >= 0 {
			s = s[3+idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	if v := enclosed(s, '{', '}'); v != "" {
		// Prefer an array when it starts before the first object,
		// e.g. `[{"q": ...}, ...]`.
		if a := enclosed(s, '[', ']'); a != "" && strings.Index(s, "[") < strings.Index(s, "{") {
			return a
		}
		return v
	}
	if v := enclosed(s, '[', ']'); v != "" {
		return v
	}
	return s
}

func enclosed(s string, open, end byte) string {
	start := strings.IndexByte(s, open)
	stop := strings.LastIndexByte(s, end)
	if start >= 0 && stop > start {
		return s[start : stop+1]
	}
	return ""
}
