// Package metrics exposes Prometheus collectors for classifications, LLM
// calls, HTTP traffic and live quiz sessions.
package metrics

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "keizoku"

// Metrics holds the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	classifications  *prometheus.CounterVec
	classifyDuration *prometheus.HistogramVec
	llmRequests      *prometheus.CounterVec
	llmDuration      *prometheus.HistogramVec
	llmTokens        *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	sessionsActive   prometheus.Gauge
}

var (
	defaultOnce sync.Once
	shared      *Metrics
)

// Default returns the instance registered with the global Prometheus
// registry. Collectors are created once so repeated calls never panic.
func Default() *Metrics {
	defaultOnce.Do(func() {
		shared = MustNewMetrics(prometheus.DefaultRegisterer)
	})
	return shared
}

// MustNewMetrics constructs Metrics on reg. Registration errors other than
// an identical collector already being registered panic.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "diagnosis",
			Name:      "classifications_total",
			Help:      "Completed classifications by main type and result source.",
		}, []string{"main_type", "source"}),
		classifyDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "diagnosis",
			Name:      "classification_duration_seconds",
			Help:      "Time spent classifying one response set, including fallback.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
		llmRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "requests_total",
			Help:      "LLM requests by model, purpose and outcome.",
		}, []string{"model", "purpose", "status"}),
		llmDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "request_duration_seconds",
			Help:      "LLM request latency.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 60},
		}, []string{"model"}),
		llmTokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "tokens_total",
			Help:      "LLM tokens consumed by model and direction.",
		}, []string{"model", "direction"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "sessions_active",
			Help:      "Quiz sessions currently held in memory.",
		}),
	}

	m.classifications = register(reg, m.classifications)
	m.classifyDuration = register(reg, m.classifyDuration)
	m.llmRequests = register(reg, m.llmRequests)
	m.llmDuration = register(reg, m.llmDuration)
	m.llmTokens = register(reg, m.llmTokens)
	m.httpRequests = register(reg, m.httpRequests)
	m.httpDuration = register(reg, m.httpDuration)
	m.sessionsActive = register(reg, m.sessionsActive)
	return m
}

// register registers c, reusing an existing collector of the same type.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// ObserveClassification records one completed classification.
func (m *Metrics) ObserveClassification(mainType, source string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.classifications.WithLabelValues(mainType, source).Inc()
	m.classifyDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// ObserveLLMRequest records one LLM call.
func (m *Metrics) ObserveLLMRequest(model, purpose string, ok bool, elapsed time.Duration, inputTokens, outputTokens int) {
	if m == nil {
		return
	}
	status := "ok"
	if !ok {
		status = "error"
	}
	m.llmRequests.WithLabelValues(model, purpose, status).Inc()
	m.llmDuration.WithLabelValues(model).Observe(elapsed.Seconds())
	m.llmTokens.WithLabelValues(model, "input").Add(float64(inputTokens))
	m.llmTokens.WithLabelValues(model, "output").Add(float64(outputTokens))
}

// ObserveHTTPRequest records one served HTTP request.
func (m *Metrics) ObserveHTTPRequest(route, method string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// SetSessionsActive reports the number of live sessions.
func (m *Metrics) SetSessionsActive(n int) {
	if m == nil {
		return
	}
	m.sessionsActive.Set(float64(n))
}
