package diagnosis

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/keizoku/internal/llm"
	"github.com/abhisek/keizoku/internal/quiz"
	"github.com/abhisek/keizoku/internal/store"
)

// Config holds configuration for the classifier.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds the whole remote exchange, retries included.
	Timeout time.Duration

	// Structured requests a JSON-schema constrained reply instead of
	// free text.
	Structured bool
}

// DefaultConfig returns the classifier defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1500,
		Temperature: 0.5,
		Timeout:     60 * time.Second,
	}
}

// ConfigFromEnv returns DefaultConfig adjusted by KEIZOKU_STRUCTURED_OUTPUT
// and KEIZOKU_CLASSIFY_TIMEOUT. Unparseable values are ignored.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("KEIZOKU_STRUCTURED_OUTPUT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Structured = b
		}
	}
	if v := os.Getenv("KEIZOKU_CLASSIFY_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

// Observer receives one call per finished classification.
type Observer interface {
	ObserveClassification(mainType, source string, elapsed time.Duration)
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets the logger used for absorbed remote failures.
func WithLogger(l *zap.Logger) Option {
	return func(c *Classifier) { c.logger = l }
}

// AuditLog stores classification events. store.EventRepo satisfies it.
type AuditLog interface {
	AppendClassification(ctx context.Context, data store.ClassificationEventData) error
}

// WithAuditLog records every classification in a.
func WithAuditLog(a AuditLog) Option {
	return func(c *Classifier) { c.events = a }
}

// WithObserver reports every classification to o.
func WithObserver(o Observer) Option {
	return func(c *Classifier) { c.observer = o }
}

// Classifier assigns a continuity type to a complete response set. It asks
// the remote provider first and falls back to local scoring on any failure.
type Classifier struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger
	events   AuditLog
	observer Observer
}

// NewClassifier creates a classifier. A nil provider makes every
// classification use the local fallback.
func NewClassifier(provider llm.Provider, cfg Config, opts ...Option) *Classifier {
	c := &Classifier{provider: provider, cfg: cfg, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the classification for r. The only error it reports is
// ErrPreconditionViolation for an incomplete response set; remote and
// parsing failures are absorbed into the fallback path.
func (c *Classifier) Classify(ctx context.Context, r quiz.Responses) (*Result, error) {
	if !r.Complete() {
		return nil, fmt.Errorf("classify with %d of %d answers: %w", r.Answered(), quiz.NumQuestions, ErrPreconditionViolation)
	}

	start := time.Now()
	fbScores, fbMain := FallbackScores(r)

	res, err := c.classifyRemote(ctx, r)
	switch {
	case err != nil:
		c.logger.Warn("remote classification failed, using statistical fallback", zap.Error(err))
		res = &Result{
			MainType:    fbMain,
			Scores:      fbScores,
			Narrative:   FallbackNotice,
			Source:      SourceFallback,
			Degradation: err,
		}
	case res.Scores == nil:
		c.logger.Info("remote reply carried no usable scores, using statistical scores",
			zap.String("main_type", string(res.MainType)))
		res.Scores = fbScores
		res.Source = SourceRemoteFallbackScores
	}

	if verr := res.validate(); verr != nil {
		// Unreachable with the parsers above; keep the guarantee anyway.
		c.logger.Error("classification result malformed, using statistical fallback", zap.Error(verr))
		res = &Result{MainType: fbMain, Scores: fbScores, Narrative: FallbackNotice, Source: SourceFallback, Degradation: verr}
	}

	elapsed := time.Since(start)
	c.record(ctx, r, res, elapsed)
	return res, nil
}

func (c *Classifier) classifyRemote(ctx context.Context, r quiz.Responses) (*Result, error) {
	if c.provider == nil {
		return nil, fmt.Errorf("no LLM provider configured: %w", ErrRemoteUnavailable)
	}

	ctx = llm.WithPurpose(ctx, Purpose)
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	resp, err := c.provider.Generate(ctx, BuildRequest(r, c.cfg))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	if c.cfg.Structured {
		return interpretStructured(resp.Content)
	}
	return interpretText(resp.Text())
}

// interpretText turns free text into a partial Result. Scores is left nil
// when no score above 0 was found.
func interpretText(text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty reply: %w", ErrRemoteUnavailable)
	}

	main, ok := ParseMainType(text)
	if !ok {
		return nil, fmt.Errorf("no type name in reply: %w", ErrParseAmbiguous)
	}

	res := &Result{MainType: main, Narrative: text, Source: SourceRemote}
	if scores, highest := ExtractScores(text); highest > 0 {
		res.Scores = scores
	}
	return res, nil
}

func (c *Classifier) record(ctx context.Context, r quiz.Responses, res *Result, elapsed time.Duration) {
	if c.observer != nil {
		c.observer.ObserveClassification(string(res.MainType), string(res.Source), elapsed)
	}
	if c.events == nil {
		return
	}

	scores := make(map[string]int, len(res.Scores))
	for id, s := range res.Scores {
		scores[string(id)] = s
	}
	data := store.ClassificationEventData{
		SessionID: SessionIDFrom(ctx),
		Ratings:   r[:],
		MainType:  string(res.MainType),
		Source:    string(res.Source),
		Scores:    scores,
		LatencyMs: elapsed.Milliseconds(),
	}
	if res.Degradation != nil {
		data.Degradation = res.Degradation.Error()
	}

	// The audit write must not fail the classification.
	if err := c.events.AppendClassification(context.WithoutCancel(ctx), data); err != nil {
		c.logger.Warn("failed to record classification event", zap.Error(err))
	}
}
