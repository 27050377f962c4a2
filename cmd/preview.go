package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/keizoku/internal/diagnosis"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the classification prompt for a set of ratings (no LLM call)",
	Long: `Print the system and user prompts the classifier would send for the
given ratings.

This is a stateless developer tool: no database, no provider, no events.
Useful for checking prompt wording and the questionnaire transcript.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("ratings")
		structured, _ := cmd.Flags().GetBool("structured")

		responses, err := parseRatings(raw)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		sep := strings.Repeat("─", 60)
		fmt.Fprintln(out, sep)
		fmt.Fprintln(out, "SYSTEM")
		fmt.Fprintln(out, sep)
		fmt.Fprintln(out, diagnosis.SystemPrompt(structured))
		fmt.Fprintln(out, sep)
		fmt.Fprintln(out, "USER")
		fmt.Fprintln(out, sep)
		fmt.Fprintln(out, diagnosis.UserPrompt(responses))
		return nil
	},
}

func init() {
	previewCmd.Flags().StringP("ratings", "r", "", "Ten ratings from 1 to 5 (required)")
	previewCmd.Flags().Bool("structured", false, "Show the prompt used for JSON-schema output")
	_ = previewCmd.MarkFlagRequired("ratings")
}
