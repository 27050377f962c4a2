package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := newOpenAICompatible(OpenAIConfig{APIKey: "test-key", Model: "gpt-4o-mini", BaseURL: server.URL + "/v1"})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	return p
}

func openAIReply(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini-2024-07-18",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func TestOpenAIProvider_FreeText(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openAIReply("Main type: Creator", "stop"))
	})

	resp, err := p.Generate(context.Background(), Request{System: "sys", Prompt: "ratings", MaxTokens: 256})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "Main type: Creator" || resp.Model != "gpt-4o-mini-2024-07-18" {
		t.Errorf("resp = %+v", resp)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 || resp.StopReason != StopEnd {
		t.Errorf("usage = %+v, stop = %q", resp.Usage, resp.StopReason)
	}
}

func TestOpenAIProvider_StructuredRequest(t *testing.T) {
	var body string
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openAIReply(`{"main_type":"Analyzer","scores":{"Analyzer":81}}`, "stop"))
	})

	resp, err := p.Generate(context.Background(), Request{Prompt: "ratings", Schema: resultSchema(), MaxTokens: 256})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resp.Text(), `"Analyzer"`) {
		t.Errorf("content = %s", resp.Content)
	}
	for _, want := range []string{`"json_schema"`, `"test-continuity-type"`, `"strict":true`} {
		if !strings.Contains(body, want) {
			t.Errorf("request body missing %s:\n%s", want, body)
		}
	}
}

func TestOpenAIProvider_StructuredReplyValidated(t *testing.T) {
	tests := []struct {
		name    string
		content string
		finish  string
		check   func(error) bool
	}{
		{"schema mismatch", `{"main_type":"Wizard","scores":{}}`, "stop", func(err error) bool {
			var e *ErrInvalidResponse
			return errors.As(err, &e)
		}},
		{"truncated", `{"main_type":"Ana`, "length", func(err error) bool {
			var e *ErrMaxTokensExceeded
			return errors.As(err, &e)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(openAIReply(tt.content, tt.finish))
			})
			_, err := p.Generate(context.Background(), Request{Prompt: "ratings", Schema: resultSchema()})
			if !tt.check(err) {
				t.Fatalf("unexpected error %T (%v)", err, err)
			}
		})
	}
}

func TestOpenAIProvider_Errors(t *testing.T) {
	respond := func(status int, code string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"type": code, "message": code, "code": code},
			})
		}
	}

	p := newTestOpenAIProvider(t, respond(http.StatusTooManyRequests, "rate_limit_exceeded"))
	_, err := p.Generate(context.Background(), Request{Prompt: "x"})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Errorf("429: expected ErrRateLimit, got %T (%v)", err, err)
	}

	p = newTestOpenAIProvider(t, respond(http.StatusInternalServerError, "server_error"))
	_, err = p.Generate(context.Background(), Request{Prompt: "x"})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("500: expected ErrProviderUnavailable, got %T (%v)", err, err)
	}
}

func TestOpenAIProvider_ChatRequest(t *testing.T) {
	p := &OpenAIProvider{model: "gpt-4o"}

	req, err := p.chatRequest(Request{Prompt: "ratings", MaxTokens: 300, Temperature: 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != openai.ChatMessageRoleUser {
		t.Errorf("messages = %+v", req.Messages)
	}
	if req.MaxCompletionTokens != 300 || req.Temperature != 0.5 || req.ResponseFormat != nil {
		t.Errorf("req = %+v", req)
	}

	req, err = p.chatRequest(Request{System: "sys", Prompt: "ratings", Schema: resultSchema()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(req.Messages) != 2 || req.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("messages = %+v", req.Messages)
	}
	if req.ResponseFormat == nil || req.ResponseFormat.JSONSchema.Name != "test-continuity-type" {
		t.Errorf("response format = %+v", req.ResponseFormat)
	}
}

func TestNewOpenAIProvider(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-mini"}); err == nil {
		t.Fatal("expected error without API key")
	}
	tests := []struct{ model, want string }{
		{"gpt-mini", "gpt-4o-mini"},
		{"gpt", "gpt-4o"},
		{"gpt-4.1", "gpt-4.1"},
	}
	for _, tt := range tests {
		p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: tt.model})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != tt.want {
			t.Errorf("ModelID(%q) = %q, want %q", tt.model, p.ModelID(), tt.want)
		}
	}
}
