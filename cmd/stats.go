package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/keizoku/internal/diagnosis"
	"github.com/abhisek/keizoku/internal/quiz"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how past diagnoses are distributed across types",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.EventRepo().ClassificationStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		out := cmd.OutOrStdout()
		if stats.Total == 0 {
			fmt.Fprintln(out, "No diagnoses recorded yet.")
			return nil
		}

		fmt.Fprintf(out, "Diagnoses: %d\n\n", stats.Total)
		fmt.Fprintln(out, "By Type")
		fmt.Fprintln(out, strings.Repeat("─", 56))
		for _, p := range quiz.Profiles() {
			n := stats.ByType[string(p.ID)]
			fmt.Fprintf(out, "%-28s  %5d  %s\n", p, n, bar(n, stats.Total, 20))
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "By Source")
		fmt.Fprintln(out, strings.Repeat("─", 56))
		for _, src := range []diagnosis.Source{diagnosis.SourceRemote, diagnosis.SourceRemoteFallbackScores, diagnosis.SourceFallback} {
			n := stats.BySource[string(src)]
			fmt.Fprintf(out, "%-28s  %5d  %5.1f%%\n", src, n, percent(n, stats.Total))
		}
		return nil
	},
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) * 100 / float64(total)
}

// bar renders n/total as a proportional run of blocks width cells wide.
func bar(n, total, width int) string {
	if total <= 0 {
		return strings.Repeat("░", width)
	}
	filled := n * width / total
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
