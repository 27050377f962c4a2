package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/keizoku/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server on stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout exposing the
list_questions, list_types and classify_responses tools.

Logs go to stderr so they never mix with protocol traffic.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		classifier, model := buildClassifier(cmd.Context(), st.EventRepo(), logger, nil)
		logger.Info("starting MCP server", zap.String("version", version), zap.String("model", model))
		return mcpserver.Serve(mcpserver.New(classifier, version))
	},
}
