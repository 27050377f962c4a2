package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/keizoku/internal/store"
)

type fakeRequestLog struct {
	events []store.LLMRequestEventData
	err    error
}

func (f *fakeRequestLog) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.events = append(f.events, data)
	return f.err
}

type fakeRecorder struct {
	model, purpose string
	ok             bool
	in, out        int
	calls          int
}

func (f *fakeRecorder) ObserveLLMRequest(model, purpose string, ok bool, _ time.Duration, in, out int) {
	f.model, f.purpose, f.ok, f.in, f.out = model, purpose, ok, in, out
	f.calls++
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage("Main type: Creator"),
		Usage:   Usage{InputTokens: 120, OutputTokens: 30},
	})
	log := &fakeRequestLog{}
	p := WithLogging(mock, log, nil)

	ctx := WithPurpose(context.Background(), "type-classification")
	_, err := p.Generate(ctx, Request{
		System: "sys prompt",
		Prompt: "transcript",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(log.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(log.events))
	}
	ev := log.events[0]
	if !ev.Success || ev.Purpose != "type-classification" || ev.Model != "mock" {
		t.Errorf("unexpected event: %+v", ev)
	}
	if ev.InputTokens != 120 || ev.OutputTokens != 30 {
		t.Errorf("tokens = %d/%d, want 120/30", ev.InputTokens, ev.OutputTokens)
	}
	if !strings.Contains(ev.RequestBody, "[system]\nsys prompt") || !strings.Contains(ev.RequestBody, "[user]\ntranscript") {
		t.Errorf("request body = %q", ev.RequestBody)
	}
	if ev.ResponseBody != "Main type: Creator" {
		t.Errorf("response body = %q", ev.ResponseBody)
	}
}

func TestSerializeRequest(t *testing.T) {
	got := serializeRequest(Request{Prompt: "ratings", Schema: &Schema{Name: "tiny", Definition: map[string]any{"type": "object"}}})
	want := "[user]\nratings\n\n[schema: tiny]\n{\"type\":\"object\"}\n"
	if got != want {
		t.Errorf("serializeRequest = %q, want %q", got, want)
	}
}

func TestLogging_RecordsFailureAndIgnoresLogErrors(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	log := &fakeRequestLog{err: errors.New("db locked")}
	p := WithLogging(mock, log, nil)

	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected provider error to pass through, got %v", err)
	}
	if len(log.events) != 1 || log.events[0].Success || log.events[0].ErrorMessage == "" {
		t.Errorf("unexpected events: %+v", log.events)
	}
	if log.events[0].Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown", log.events[0].Purpose)
	}
}

func TestLogging_KeepsRejectedReply(t *testing.T) {
	log := &fakeRequestLog{}
	p := WithLogging(NewMockProvider(MockText("Main type: Sage")), log, nil)

	_, err := p.Generate(context.Background(), Request{Prompt: "ratings", Schema: resultSchema()})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(log.events) != 1 || log.events[0].ResponseBody != "Main type: Sage" || log.events[0].Success {
		t.Errorf("events = %+v", log.events)
	}
}

func TestLogging_NilRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage("ok")})
	p := WithLogging(mock, nil, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMetrics_Observes(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage("ok"), Usage: Usage{InputTokens: 7, OutputTokens: 3}},
		MockResponse{Err: errors.New("boom")},
	)
	rec := &fakeRecorder{}
	p := WithMetrics(mock, rec)
	ctx := WithPurpose(context.Background(), "type-classification")

	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.calls != 1 || !rec.ok || rec.in != 7 || rec.out != 3 || rec.purpose != "type-classification" || rec.model != "mock" {
		t.Errorf("unexpected observation: %+v", rec)
	}

	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}
	if rec.calls != 2 || rec.ok {
		t.Errorf("failure not observed: %+v", rec)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q, want mock", p.ModelID())
	}
}

func TestNewProvider_UnknownProvider(t *testing.T) {
	if _, err := NewProvider(context.Background(), Config{Provider: "nope"}, Options{}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewProvider_OpenRouterWrapped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openrouter"
	cfg.OpenRouter.APIKey = "sk-or-test"
	p, err := NewProvider(context.Background(), cfg, Options{Metrics: &fakeRecorder{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*RetryProvider); !ok {
		t.Errorf("expected outermost decorator to be *RetryProvider, got %T", p)
	}
	if p.ModelID() != cfg.OpenRouter.Model {
		t.Errorf("ModelID = %q, want %q", p.ModelID(), cfg.OpenRouter.Model)
	}
}

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"KEIZOKU_LLM_PROVIDER", "KEIZOKU_LLM_TIMEOUT",
		"KEIZOKU_OPENAI_API_KEY", "KEIZOKU_OPENAI_MODEL", "KEIZOKU_OPENAI_BASE_URL",
		"KEIZOKU_ANTHROPIC_API_KEY", "KEIZOKU_ANTHROPIC_MODEL",
		"KEIZOKU_GEMINI_API_KEY", "KEIZOKU_GEMINI_MODEL",
		"KEIZOKU_OPENROUTER_API_KEY", "KEIZOKU_OPENROUTER_MODEL", "KEIZOKU_OPENROUTER_BASE_URL",
		"OPENAI_API_KEY", "GEMINI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestResolveConfig_NoKeys(t *testing.T) {
	clearLLMEnv(t)
	_, ok, err := ResolveConfig()
	if err != nil || ok {
		t.Fatalf("ResolveConfig() ok = %v, err = %v; want false, nil", ok, err)
	}

	p, _, err := NewProviderFromEnv(context.Background(), Options{})
	if err != nil || p != nil {
		t.Fatalf("NewProviderFromEnv() = %v, %v; want nil, nil", p, err)
	}
}

func TestResolveConfig_DiscoversOpenAIFirst(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "g-test")

	cfg, ok, err := ResolveConfig()
	if err != nil || !ok {
		t.Fatalf("ResolveConfig() ok = %v, err = %v", ok, err)
	}
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestResolveConfig_ExplicitProviderValidated(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("KEIZOKU_LLM_PROVIDER", "openai")

	if _, _, err := ResolveConfig(); err == nil {
		t.Fatal("expected validation error without KEIZOKU_OPENAI_API_KEY")
	}

	t.Setenv("KEIZOKU_OPENAI_API_KEY", "sk-test")
	t.Setenv("KEIZOKU_LLM_TIMEOUT", "5s")
	cfg, ok, err := ResolveConfig()
	if err != nil || !ok {
		t.Fatalf("ResolveConfig() ok = %v, err = %v", ok, err)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.Timeout)
	}
}
