package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/keizoku/internal/api"
	"github.com/abhisek/keizoku/internal/config"
	"github.com/abhisek/keizoku/internal/metrics"
	"github.com/abhisek/keizoku/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the quiz API and web widget over HTTP",
	Long: `Serve the quiz session API under /api and the embeddable widget at /.

Settings come from the environment: KEIZOKU_ADDR, KEIZOKU_MAX_SESSIONS,
KEIZOKU_SESSION_TTL, KEIZOKU_METRICS and KEIZOKU_ALLOWED_ORIGINS.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		var m *metrics.Metrics
		if cfg.Metrics {
			m = metrics.Default()
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		classifier, model := buildClassifier(ctx, st.EventRepo(), logger, m)
		srv := api.NewServer(cfg, classifier, api.Options{
			Logger:  logger,
			Metrics: m,
			Widget:  web.Handler(),
		})

		logger.Info("starting server",
			zap.String("addr", cfg.Addr),
			zap.String("model", model),
			zap.Bool("metrics", cfg.Metrics))
		return srv.ListenAndServe(ctx)
	},
}
