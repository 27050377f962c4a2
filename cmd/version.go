package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by release builds with
// -ldflags "-X github.com/abhisek/keizoku/cmd.version=vX.Y.Z".
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the keizoku build version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "keizoku %s\n", version)
		return err
	},
}
