package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/keizoku/internal/diagnosis"
	"github.com/abhisek/keizoku/internal/llm"
)

func makeReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(r *mcp.CallToolResult) string {
	if r == nil {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

var example = []any{5.0, 1.0, 5.0, 1.0, 3.0, 1.0, 2.0, 1.0, 5.0, 1.0}

func TestNew_RegistersTools(t *testing.T) {
	s := New(diagnosis.NewClassifier(nil, diagnosis.DefaultConfig()), "test")
	tools := s.ListTools()

	for _, name := range []string{"list_questions", "list_types", "classify_responses"} {
		assert.Contains(t, tools, name)
	}
}

func TestQuestionsTool(t *testing.T) {
	res, err := NewQuestionsTool().Handle(context.Background(), makeReq(nil))
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := resultText(res)
	assert.Contains(t, text, "1. I am good at leading a team")
	assert.Contains(t, text, "10. When solving a problem")
	assert.Contains(t, text, "5: strongly agree")
}

func TestTypesTool(t *testing.T) {
	tool := NewTypesTool()

	res, err := tool.Handle(context.Background(), makeReq(nil))
	require.NoError(t, err)
	assert.Contains(t, resultText(res), "`commander`")
	assert.Contains(t, resultText(res), "`catalyst`")

	res, err = tool.Handle(context.Background(), makeReq(map[string]any{"name": "Finisher"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(res), "### Growth points")

	res, err = tool.Handle(context.Background(), makeReq(map[string]any{"name": "wizard"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestClassifyTool_Definition(t *testing.T) {
	def := NewClassifyTool(nil).Definition()
	assert.Equal(t, "classify_responses", def.Name)
	assert.Contains(t, def.InputSchema.Required, "ratings")
	_, ok := def.InputSchema.Properties["ratings"]
	assert.True(t, ok)
}

func TestClassifyTool_Fallback(t *testing.T) {
	tool := NewClassifyTool(diagnosis.NewClassifier(nil, diagnosis.DefaultConfig()))

	res, err := tool.Handle(context.Background(), makeReq(map[string]any{"ratings": example}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(res))

	out, ok := res.StructuredContent.(*diagnosis.Result)
	require.True(t, ok)
	assert.Equal(t, diagnosis.SourceFallback, out.Source)
	assert.Contains(t, resultText(res), "Main type: Commander")
	assert.Contains(t, resultText(res), "Source: fallback")

	b, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"main_type":"commander"`)
}

func TestClassifyTool_Remote(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Main type: Analyzer\n\nAnalyzer: 90%\nCatalyst: 30%")})
	tool := NewClassifyTool(diagnosis.NewClassifier(mock, diagnosis.DefaultConfig()))

	res, err := tool.Handle(context.Background(), makeReq(map[string]any{"ratings": example}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Contains(t, resultText(res), "Main type: Analyzer")
	assert.NotContains(t, resultText(res), "Source:")
	assert.Contains(t, resultText(res), "- Analyzer: 90%")
}

func TestClassifyTool_InvalidRatings(t *testing.T) {
	tool := NewClassifyTool(diagnosis.NewClassifier(nil, diagnosis.DefaultConfig()))

	tests := []struct {
		name string
		args map[string]any
	}{
		{"missing", map[string]any{}},
		{"too few", map[string]any{"ratings": []any{1.0, 2.0}}},
		{"fractional", map[string]any{"ratings": []any{1.0, 2.0, 3.0, 4.0, 5.0, 1.0, 2.0, 3.0, 4.0, 2.5}}},
		{"out of range", map[string]any{"ratings": []any{1.0, 2.0, 3.0, 4.0, 5.0, 1.0, 2.0, 3.0, 4.0, 6.0}}},
		{"not numbers", map[string]any{"ratings": []any{"a", 2.0, 3.0, 4.0, 5.0, 1.0, 2.0, 3.0, 4.0, 5.0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tool.Handle(context.Background(), makeReq(tt.args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
		})
	}
}
