package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/keizoku/internal/llm"
	"github.com/abhisek/keizoku/internal/store"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the classification requests sent to the model provider",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent model requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No LLM events found.")
			return nil
		}

		row := "%-5v  %-19v  %-24v  %6v  %6v  %7v  %9v  %v\n"
		fmt.Fprintf(out, row, "ID", "Time", "Model", "In", "Out", "Ms", "Cost", "")
		rule(out, 96)
		for _, e := range events {
			status := "ok"
			if !e.Success {
				status = "failed"
			}
			fmt.Fprintf(out, row,
				e.ID, e.Timestamp.Local().Format(timeLayout), clip(e.Model, 24),
				e.InputTokens, e.OutputTokens, e.LatencyMs,
				eventCost(e.Model, e.InputTokens, e.OutputTokens), status)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the prompt and reply of one model request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid event ID %q", args[0])
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		e, err := st.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		out := cmd.OutOrStdout()
		fields := [][2]string{
			{"Event", strconv.Itoa(e.ID)},
			{"Time", e.Timestamp.Local().Format(timeLayout)},
			{"Provider", e.Provider},
			{"Model", e.Model},
			{"Purpose", e.Purpose},
			{"Tokens", fmt.Sprintf("%d in, %d out", e.InputTokens, e.OutputTokens)},
			{"Cost", eventCost(e.Model, e.InputTokens, e.OutputTokens)},
			{"Latency", fmt.Sprintf("%dms", e.LatencyMs)},
		}
		if e.Success {
			fields = append(fields, [2]string{"Outcome", "ok"})
		} else {
			fields = append(fields, [2]string{"Outcome", "failed: " + e.ErrorMessage})
		}
		for _, f := range fields {
			fmt.Fprintf(out, "%-10s %s\n", f[0]+":", f[1])
		}

		section(out, "PROMPT", e.RequestBody)
		section(out, "REPLY", e.ResponseBody)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize token usage and estimated spend",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.EventRepo()
		byPurpose, err := repo.LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(byPurpose) == 0 {
			fmt.Fprintln(out, "No LLM usage recorded yet.")
			return nil
		}

		row := "%-24v  %6v  %10v  %10v  %8v\n"
		fmt.Fprintln(out, "Usage by Purpose")
		rule(out, 66)
		fmt.Fprintf(out, row, "Purpose", "Calls", "Input", "Output", "Avg Ms")
		rule(out, 66)
		var calls, in, outTokens int
		for _, u := range byPurpose {
			fmt.Fprintf(out, row, clip(u.Purpose, 24), u.Calls, u.InputTokens, u.OutputTokens, u.AvgLatencyMs)
			calls += u.Calls
			in += u.InputTokens
			outTokens += u.OutputTokens
		}
		rule(out, 66)
		fmt.Fprintf(out, row, "TOTAL", calls, in, outTokens, "")

		byModel, err := repo.LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Estimated Cost (USD)")
		rule(out, 66)
		fmt.Fprintf(out, row, "Model", "Calls", "Input", "Output", "Cost")
		rule(out, 66)
		var spend float64
		var unpriced []string
		for _, u := range byModel {
			cost := "?"
			if price := llm.LookupCost(u.Model); price != nil {
				c := price.Cost(u.InputTokens, u.OutputTokens)
				spend += c
				cost = formatCost(c)
			} else {
				unpriced = append(unpriced, u.Model)
			}
			fmt.Fprintf(out, row, clip(u.Model, 24), u.Calls, u.InputTokens, u.OutputTokens, cost)
		}
		rule(out, 66)
		label := "TOTAL"
		if len(unpriced) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Fprintf(out, row, label, "", "", "", formatCost(spend))
		if len(unpriced) > 0 {
			fmt.Fprintf(out, "\nPricing unavailable for: %s\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

func rule(w io.Writer, width int) {
	fmt.Fprintln(w, strings.Repeat("─", width))
}

func section(w io.Writer, title, body string) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "── %s %s\n", title, strings.Repeat("─", 56-len(title)))
	if body == "" {
		body = "(not captured)"
	}
	fmt.Fprintln(w, body)
}

// clip shortens s to max bytes, marking the cut with an ellipsis.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// eventCost prices one request, or "?" for models without a list price.
func eventCost(model string, in, out int) string {
	price := llm.LookupCost(model)
	if price == nil {
		return "?"
	}
	return formatCost(price.Cost(in, out))
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show one purpose (e.g. type-classification)")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
