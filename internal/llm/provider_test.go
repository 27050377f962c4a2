package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestMockProvider_ReplaysInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage("Main type: Creator"), Usage: Usage{InputTokens: 10, OutputTokens: 5}},
		MockText("Main type: Sage"),
	)

	first, err := mock.Generate(context.Background(), Request{System: "sys", Prompt: "first"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Text() != "Main type: Creator" || first.Usage.Total() != 15 || first.StopReason != StopEnd {
		t.Errorf("first = %+v", first)
	}

	second, err := mock.Generate(context.Background(), Request{Prompt: "second"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Text() != "Main type: Sage" {
		t.Errorf("second = %q", second.Text())
	}

	if mock.CallCount() != 2 || mock.Calls[0].System != "sys" || mock.Calls[1].Prompt != "second" {
		t.Errorf("calls = %+v", mock.Calls)
	}

	var unavail *ErrProviderUnavailable
	if _, err := mock.Generate(context.Background(), Request{}); !errors.As(err, &unavail) {
		t.Fatalf("exhausted mock: expected ErrProviderUnavailable, got %v", err)
	}
}

func TestMockProvider_ConfiguredError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}})
	var rl *ErrRateLimit
	if _, err := mock.Generate(context.Background(), Request{}); !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %v", err)
	}
	if mock.ModelID() != "mock" {
		t.Errorf("ModelID = %q", mock.ModelID())
	}
}

func TestMockProvider_ValidatesStructuredReplies(t *testing.T) {
	mock := NewMockProvider(
		MockText(`{"main_type":"Creator","scores":{"Creator":90}}`),
		MockText("Main type: Creator"),
	)
	req := Request{Prompt: "ratings", Schema: resultSchema()}

	if _, err := mock.Generate(context.Background(), req); err != nil {
		t.Fatalf("valid structured reply rejected: %v", err)
	}
	var invalid *ErrInvalidResponse
	if _, err := mock.Generate(context.Background(), req); !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse for free text, got %v", err)
	}
}

func TestFinish(t *testing.T) {
	free := &Response{Content: json.RawMessage("anything"), StopReason: StopMaxTokens}
	if got, err := finish(Request{}, free); err != nil || got != free {
		t.Errorf("free text: got %v, %v; want the response unchanged", got, err)
	}

	cut := &Response{Content: json.RawMessage(`{"main_type":"Cre`), StopReason: StopMaxTokens}
	_, err := finish(Request{Schema: resultSchema()}, cut)
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) || string(maxTok.Content) != `{"main_type":"Cre` {
		t.Errorf("truncated: err = %v", err)
	}
}

func TestFromStatus(t *testing.T) {
	cause := errors.New("sdk error")

	var rl *ErrRateLimit
	if err := fromStatus(http.StatusTooManyRequests, cause); !errors.As(err, &rl) || !errors.Is(err, cause) {
		t.Errorf("429 = %v", err)
	}
	for _, status := range []int{0, http.StatusInternalServerError, http.StatusUnauthorized} {
		var unavail *ErrProviderUnavailable
		if err := fromStatus(status, cause); !errors.As(err, &unavail) || !errors.Is(err, cause) {
			t.Errorf("%d = %v", status, err)
		}
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{&ErrProviderUnavailable{}, true},
		{&ErrRateLimit{}, true},
		{&ErrInvalidResponse{Err: errors.New("bad")}, true},
		{errors.New("connection reset"), true},
		{&ErrMaxTokensExceeded{}, false},
		{fmt.Errorf("wrapped: %w", &ErrMaxTokensExceeded{}), false},
		{context.Canceled, false},
		{fmt.Errorf("call: %w", context.DeadlineExceeded), false},
	}
	for _, tt := range tests {
		if got := retryable(tt.err); got != tt.want {
			t.Errorf("retryable(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	if msg := (&ErrRateLimit{RetryAfter: 2 * time.Second, Err: errors.New("429")}).Error(); !strings.Contains(msg, "retry after 2s") {
		t.Errorf("rate limit message = %q", msg)
	}
	if msg := (&ErrProviderUnavailable{}).Error(); msg != "LLM provider unavailable" {
		t.Errorf("unavailable message = %q", msg)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("PurposeFrom(empty) = %q, want unknown", p)
	}
	if p := PurposeFrom(WithPurpose(ctx, "")); p != "unknown" {
		t.Fatalf("PurposeFrom(blank) = %q, want unknown", p)
	}
	if p := PurposeFrom(WithPurpose(ctx, "type-classification")); p != "type-classification" {
		t.Fatalf("PurposeFrom = %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, "KEIZOKU_ANTHROPIC_API_KEY"},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, ""},
		{"gemini without key", Config{Provider: "gemini"}, "KEIZOKU_GEMINI_API_KEY"},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "k"}}, ""},
		{"openrouter without key", Config{Provider: "openrouter"}, "KEIZOKU_OPENROUTER_API_KEY"},
		{"mock needs no key", Config{Provider: "mock"}, ""},
		{"unknown provider", Config{Provider: "unknown"}, "unknown LLM provider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, want error mentioning %s", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("KEIZOKU_LLM_PROVIDER", "gemini")
	t.Setenv("KEIZOKU_GEMINI_MODEL", "gemini-pro")
	t.Setenv("KEIZOKU_OPENROUTER_BASE_URL", "https://or.example/v1")
	t.Setenv("KEIZOKU_LLM_TIMEOUT", "not-a-duration")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" || cfg.Gemini.Model != "gemini-pro" || cfg.OpenRouter.BaseURL != "https://or.example/v1" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("unset model should keep default, got %q", cfg.Anthropic.Model)
	}
	if cfg.Timeout != DefaultConfig().Timeout {
		t.Errorf("timeout = %v, want default", cfg.Timeout)
	}
}

func TestPricing(t *testing.T) {
	tests := []struct {
		model string
		want  float64 // input $/MTok
	}{
		{"gpt-4o", 2.5},
		{"gpt-4o-mini", 0.15},
		{"gpt-4o-mini-2024-07-18", 0.15},
		{"openai/gpt-4o-mini", 0.15},
		{"claude-haiku-4-5-20251001", 1},
		{"gemini-2.5-flash-lite", 0.1},
	}
	for _, tt := range tests {
		c := LookupCost(tt.model)
		if c == nil || c.InputPerMTok != tt.want {
			t.Errorf("LookupCost(%q) = %+v, want input %v", tt.model, c, tt.want)
		}
	}
	if c := LookupCost("llama-3-8b"); c != nil {
		t.Errorf("unknown model priced: %+v", c)
	}
	if got := (ModelCost{InputPerMTok: 2, OutputPerMTok: 10}).Cost(500_000, 100_000); got != 2 {
		t.Errorf("Cost = %v, want 2", got)
	}
}
