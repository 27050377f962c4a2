package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/abhisek/keizoku/internal/diagnosis"
	"github.com/abhisek/keizoku/internal/quiz"
	"github.com/abhisek/keizoku/internal/session"
)

// QuestionsTool handles the list_questions MCP tool.
type QuestionsTool struct{}

// NewQuestionsTool creates a QuestionsTool.
func NewQuestionsTool() *QuestionsTool {
	return &QuestionsTool{}
}

// Definition returns the MCP tool definition for list_questions.
func (t *QuestionsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_questions",
		mcp.WithDescription("List the ten diagnosis statements in order, with the 1-5 rating scale."),
	)
}

// Handle processes the list_questions tool call.
func (t *QuestionsTool) Handle(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	b.WriteString("## Statements\n\n")
	for _, q := range quiz.Questions() {
		fmt.Fprintf(&b, "%d. %s\n", q.Index+1, q.Text)
	}
	b.WriteString("\n## Rating scale\n\n")
	for r := quiz.MinRating; r <= quiz.MaxRating; r++ {
		fmt.Fprintf(&b, "- %d: %s\n", r, quiz.RatingLabel(r))
	}
	return mcp.NewToolResultText(b.String()), nil
}

// TypesTool handles the list_types MCP tool.
type TypesTool struct{}

// NewTypesTool creates a TypesTool.
func NewTypesTool() *TypesTool {
	return &TypesTool{}
}

// Definition returns the MCP tool definition for list_types.
func (t *TypesTool) Definition() mcp.Tool {
	return mcp.NewTool("list_types",
		mcp.WithDescription("List the eight continuity types, or show one type's full profile."),
		mcp.WithString("name",
			mcp.Description("Type to show in full: ID, English name or local name. Omit to list all types."),
		),
	)
}

// Handle processes the list_types tool call.
func (t *TypesTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		var b strings.Builder
		b.WriteString("## Continuity types\n\n")
		for _, p := range quiz.Profiles() {
			fmt.Fprintf(&b, "- **%s** (`%s`): %s\n", p, p.ID, p.Description)
		}
		return mcp.NewToolResultText(b.String()), nil
	}

	p, ok := quiz.LookupType(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown type %q", name)), nil
	}
	return mcp.NewToolResultText(renderProfile(p)), nil
}

// ClassifyTool handles the classify_responses MCP tool.
type ClassifyTool struct {
	classifier session.Classifier
}

// NewClassifyTool creates a ClassifyTool backed by classifier.
func NewClassifyTool(classifier session.Classifier) *ClassifyTool {
	return &ClassifyTool{classifier: classifier}
}

// Definition returns the MCP tool definition for classify_responses.
func (t *ClassifyTool) Definition() mcp.Tool {
	return mcp.NewTool("classify_responses",
		mcp.WithDescription(
			"Classify ten ratings (one per statement, in list_questions order) into a continuity type. "+
				"Returns the main type, a 0-100 score per type and a narrative.",
		),
		mcp.WithArray("ratings",
			mcp.Required(),
			mcp.Description("Ten integer ratings from 1 (strongly disagree) to 5 (strongly agree)"),
			mcp.WithNumberItems(mcp.Min(quiz.MinRating), mcp.Max(quiz.MaxRating)),
			mcp.MinItems(quiz.NumQuestions),
			mcp.MaxItems(quiz.NumQuestions),
		),
	)
}

// Handle processes the classify_responses tool call.
func (t *ClassifyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := req.GetArguments()["ratings"].([]any)
	if !ok {
		return mcp.NewToolResultError("'ratings' must be an array of ten numbers"), nil
	}
	if len(raw) != quiz.NumQuestions {
		return mcp.NewToolResultError(fmt.Sprintf("expected %d ratings, got %d", quiz.NumQuestions, len(raw))), nil
	}

	var responses quiz.Responses
	for i, v := range raw {
		f, ok := v.(float64)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("rating %d is not a number", i+1)), nil
		}
		rating, err := session.RatingFromFloat(f)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("rating %d: %v", i+1, err)), nil
		}
		responses[i] = rating
	}

	res, err := t.classifier.Classify(ctx, responses)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("classification failed: %v", err)), nil
	}

	return mcp.NewToolResultStructured(res, renderResult(res)), nil
}

func renderProfile(p *quiz.TypeProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n%s\n", p, p.Description)
	section := func(title string, items []string) {
		fmt.Fprintf(&b, "\n### %s\n\n", title)
		for _, it := range items {
			fmt.Fprintf(&b, "- %s\n", it)
		}
	}
	section("Strengths", p.Strengths)
	section("Recommended roles", p.Roles)
	section("Growth points", p.GrowthPoints)
	fmt.Fprintf(&b, "\n### Four Pillars\n\n%s\n", p.FourPillars)
	fmt.Fprintf(&b, "\n### Five Elements\n\n%s\n", p.FiveElements)
	return b.String()
}

func renderResult(res *diagnosis.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Main type: %s\n", res.Profile())
	if res.Degraded() {
		fmt.Fprintf(&b, "Source: %s\n", res.Source)
	}
	b.WriteString("\n## Scores\n\n")
	for _, ts := range res.Ranked() {
		fmt.Fprintf(&b, "- %s: %d%%\n", quiz.Profile(ts.Type).Name, ts.Score)
	}
	fmt.Fprintf(&b, "\n## Analysis\n\n%s\n", res.Narrative)
	b.WriteString("\n")
	b.WriteString(renderProfile(res.Profile()))
	return b.String()
}
