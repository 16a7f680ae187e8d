package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/errors"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/resilience"
)

func openaiServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Complete(t *testing.T) {
	srv := openaiServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"model": "gpt-4o-mini",
			"choices": [{"message": {"role": "assistant", "content": "hi there"}}],
			"usage": {"prompt_tokens": 3, "completion_tokens": 2, "total_tokens": 5}
		}`))
	})

	c, err := New(Config{
		Dialect: "openai",
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := c.Complete(context.Background(), CompletionRequest{
		Messages: []Message{{Role: "user", Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Content != "hi there" {
		t.Errorf("content = %q", resp.Content)
	}
	if resp.Usage.TotalTokens != 5 {
		t.Errorf("total tokens = %d", resp.Usage.TotalTokens)
	}
}

func TestClient_ServerErrorIsRetryable(t *testing.T) {
	srv := openaiServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusServiceUnavailable)
	})

	c, err := New(Config{Dialect: "openai", BaseURL: srv.URL, Model: "m"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = c.Complete(context.Background(), CompletionRequest{
		Messages: []Message{{Role: "user", Content: "hello"}},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsRetryable(err) {
		t.Errorf("5xx should be retryable, got %v", err)
	}
	if code := errors.CodeOf(err); code != errors.ErrCodeExternalService {
		t.Errorf("code = %s", code)
	}
}

func TestClient_AuthErrorIsNotRetryable(t *testing.T) {
	srv := openaiServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	})

	c, err := New(Config{Dialect: "openai", BaseURL: srv.URL, Model: "m"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = c.Complete(context.Background(), CompletionRequest{
		Messages: []Message{{Role: "user", Content: "hello"}},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.IsRetryable(err) {
		t.Errorf("401 should not be retryable, got %v", err)
	}
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := openaiServer(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "try again", http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{
			"model": "m",
			"choices": [{"message": {"role": "assistant", "content": "ok"}}]
		}`))
	})

	c, err := New(Config{
		Dialect: "openai",
		BaseURL: srv.URL,
		Model:   "m",
		Retry: &resilience.RetryConfig{
			MaxAttempts:    3,
			InitialBackoff: time.Millisecond,
			MaxBackoff:     5 * time.Millisecond,
			BackoffFactor:  2.0,
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := c.Complete(context.Background(), CompletionRequest{
		Messages: []Message{{Role: "user", Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Content != "ok" {
		t.Errorf("content = %q", resp.Content)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestClient_MalformedBodyIsMalformedGeneration(t *testing.T) {
	srv := openaiServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	c, err := New(Config{Dialect: "openai", BaseURL: srv.URL, Model: "m"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = c.Complete(context.Background(), CompletionRequest{
		Messages: []Message{{Role: "user", Content: "hello"}},
	})
	if code := errors.CodeOf(err); code != errors.ErrCodeMalformedGeneration {
		t.Errorf("code = %s, want %s", code, errors.ErrCodeMalformedGeneration)
	}
}

func TestClient_DefaultsApplied(t *testing.T) {
	var gotModel string
	srv := openaiServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req openaiRequest
		if err := jsonDecode(r, &req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		gotModel = req.Model
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("system prompt should lead: %+v", req.Messages)
		}
		_, _ = w.Write([]byte(`{
			"model": "m",
			"choices": [{"message": {"role": "assistant", "content": "ok"}}]
		}`))
	})

	c, err := New(Config{Dialect: "openai", BaseURL: srv.URL, Model: "default-model"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = c.Complete(context.Background(), CompletionRequest{
		SystemPrompt: "sys",
		Messages:     []Message{{Role: "user", Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if gotModel != "default-model" {
		t.Errorf("model = %q, want default-model", gotModel)
	}
}

func jsonDecode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func TestGetDialect_Unknown(t *testing.T) {
	if _, err := GetDialect("no-such-dialect"); err == nil {
		t.Fatal("expected error for unknown dialect")
	}
}
