package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/keizoku/internal/app"
	"github.com/abhisek/keizoku/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Take the diagnosis in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

// runPlay opens the store, builds dependencies, and launches the TUI.
func runPlay(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	// The TUI owns the terminal, so log to a file next to the database.
	tuiLogger, err := tuiFileLogger()
	if err != nil {
		return err
	}
	defer tuiLogger.Sync()

	events := st.EventRepo()
	classifier, model := buildClassifier(cmd.Context(), events, tuiLogger, nil)

	return app.Run(app.Options{
		Classifier: classifier,
		History:    events,
		Model:      model,
		Logger:     tuiLogger,
	})
}

func tuiFileLogger() (*zap.Logger, error) {
	dir, err := store.DataDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, "keizoku.log")
	if err := store.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	l, err := newLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return l, nil
}
