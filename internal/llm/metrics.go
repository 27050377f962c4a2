package llm

import (
	"context"
	"time"
)

// Recorder receives one observation per LLM call.
type Recorder interface {
	ObserveLLMRequest(model, purpose string, ok bool, elapsed time.Duration, inputTokens, outputTokens int)
}

// MetricsProvider is a decorator that reports call outcomes to a Recorder.
type MetricsProvider struct {
	inner    Provider
	recorder Recorder
}

// WithMetrics wraps a Provider with metrics reporting.
func WithMetrics(p Provider, r Recorder) Provider {
	return &MetricsProvider{inner: p, recorder: r}
}

func (m *MetricsProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := m.inner.Generate(ctx, req)

	var in, out int
	if resp != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.recorder.ObserveLLMRequest(m.inner.ModelID(), PurposeFrom(ctx), err == nil, time.Since(start), in, out)
	return resp, err
}

func (m *MetricsProvider) ModelID() string {
	return m.inner.ModelID()
}
