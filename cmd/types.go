package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/keizoku/internal/quiz"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the continuity types",
	RunE:  listTypes,
}

var typesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the continuity types and their questions",
	RunE:  listTypes,
}

func listTypes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-12s  %-28s  %s\n", "ID", "Type", "Questions")
	fmt.Fprintln(out, strings.Repeat("─", 56))
	for _, p := range quiz.Profiles() {
		qs := quiz.QuestionsFor(p.ID)
		nums := make([]string, len(qs))
		for i, q := range qs {
			nums[i] = fmt.Sprintf("Q%d", q+1)
		}
		fmt.Fprintf(out, "%-12s  %-28s  %s\n", p.ID, p, strings.Join(nums, ", "))
	}
	return nil
}

var typesShowCmd = &cobra.Command{
	Use:   "show <type>",
	Short: "Show the full profile of a type",
	Long:  "Show the full profile of a type, looked up by ID, English name or Japanese name.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := quiz.LookupType(args[0])
		if !ok {
			return fmt.Errorf("unknown type %q", args[0])
		}
		writeProfile(cmd.OutOrStdout(), p)
		return nil
	},
}

func init() {
	typesCmd.AddCommand(typesListCmd)
	typesCmd.AddCommand(typesShowCmd)
}

func writeProfile(w io.Writer, p *quiz.TypeProfile) {
	fmt.Fprintln(w, p)
	fmt.Fprintln(w, strings.Repeat("─", 60))
	fmt.Fprintln(w, p.Description)

	list := func(title string, items []string) {
		fmt.Fprintf(w, "\n%s\n", title)
		for _, it := range items {
			fmt.Fprintf(w, "  • %s\n", it)
		}
	}
	list("Strengths", p.Strengths)
	list("Recommended roles", p.Roles)
	list("Growth points", p.GrowthPoints)

	fmt.Fprintf(w, "\nFour pillars\n  %s\n", p.FourPillars)
	fmt.Fprintf(w, "\nFive elements\n  %s\n", p.FiveElements)
}
