package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/keizoku/internal/diagnosis"
	"github.com/abhisek/keizoku/internal/quiz"
	"github.com/abhisek/keizoku/internal/session"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify ten ratings without the interactive quiz",
	Example: `  keizoku classify --ratings 5,1,5,1,3,1,2,1,5,1
  keizoku classify --ratings "4 4 2 5 3 1 2 3 4 5" --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("ratings")
		asJSON, _ := cmd.Flags().GetBool("json")

		responses, err := parseRatings(raw)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		classifier, _ := buildClassifier(cmd.Context(), st.EventRepo(), logger, nil)
		ctx := diagnosis.WithSessionID(cmd.Context(), uuid.NewString())
		res, err := classifier.Classify(ctx, responses)
		if err != nil {
			return fmt.Errorf("classify: %w", err)
		}

		if asJSON {
			return writeResultJSON(cmd.OutOrStdout(), res)
		}
		writeResult(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	classifyCmd.Flags().StringP("ratings", "r", "", "Ten ratings from 1 to 5, separated by commas or spaces (required)")
	classifyCmd.Flags().Bool("json", false, "Print the result as JSON")
	_ = classifyCmd.MarkFlagRequired("ratings")
}

// parseRatings reads exactly ten ratings separated by commas or whitespace.
func parseRatings(raw string) (quiz.Responses, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != quiz.NumQuestions {
		return quiz.Responses{}, fmt.Errorf("got %d ratings, want %d", len(fields), quiz.NumQuestions)
	}

	ratings := make([]int, len(fields))
	for i, f := range fields {
		n, err := session.ParseRating(f)
		if err != nil {
			return quiz.Responses{}, fmt.Errorf("question %d: %w", i+1, err)
		}
		ratings[i] = n
	}
	r, _ := quiz.ResponsesFrom(ratings)
	return r, nil
}

func writeResult(w io.Writer, res *diagnosis.Result) {
	fmt.Fprintf(w, "Main type: %s\n", res.Profile())
	fmt.Fprintf(w, "Source:    %s\n\n", res.Source)

	if res.Source == diagnosis.SourceFallback {
		fmt.Fprintln(w, diagnosis.FallbackNotice)
	} else {
		fmt.Fprintln(w, strings.TrimSpace(res.Narrative))
		if res.Source == diagnosis.SourceRemoteFallbackScores {
			fmt.Fprintln(w, "\nNote: the analysis gave no usable scores, so they come from local scoring.")
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Scores")
	fmt.Fprintln(w, strings.Repeat("─", 40))
	for _, ts := range res.Ranked() {
		marker := " "
		if ts.Type == res.MainType {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-28s %3d\n", marker, quiz.Profile(ts.Type), ts.Score)
	}
}

type resultJSON struct {
	*diagnosis.Result
	Degraded bool              `json:"degraded"`
	Profile  *quiz.TypeProfile `json:"profile"`
}

func writeResultJSON(w io.Writer, res *diagnosis.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resultJSON{Result: res, Degraded: res.Degraded(), Profile: res.Profile()})
}
