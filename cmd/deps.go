package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/keizoku/internal/diagnosis"
	"github.com/abhisek/keizoku/internal/llm"
	"github.com/abhisek/keizoku/internal/metrics"
	"github.com/abhisek/keizoku/internal/store"
)

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// buildClassifier wires the LLM provider, audit log and metrics into a
// Classifier. A misconfigured provider is logged and classification falls
// back to local scoring. model is empty when no provider is in use.
func buildClassifier(ctx context.Context, events store.EventRepo, log *zap.Logger, m *metrics.Metrics) (c *diagnosis.Classifier, model string) {
	llmOpts := llm.Options{Events: events, Logger: log}
	classifierOpts := []diagnosis.Option{diagnosis.WithLogger(log)}
	if events != nil {
		classifierOpts = append(classifierOpts, diagnosis.WithAuditLog(events))
	}
	if m != nil {
		llmOpts.Metrics = m
		classifierOpts = append(classifierOpts, diagnosis.WithObserver(m))
	}

	provider, cfg, err := llm.NewProviderFromEnv(ctx, llmOpts)
	switch {
	case err != nil:
		log.Warn("LLM provider not configured, using local scoring",
			zap.String("provider", cfg.Provider), zap.Error(err))
		provider = nil
	case provider == nil:
		log.Debug("no LLM API key set, using local scoring")
	default:
		model = provider.ModelID()
		log.Debug("LLM provider ready", zap.String("provider", cfg.Provider), zap.String("model", model))
	}

	return diagnosis.NewClassifier(provider, diagnosis.ConfigFromEnv(), classifierOpts...), model
}
