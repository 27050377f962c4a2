package diagnosis

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/keizoku/internal/llm"
	"github.com/abhisek/keizoku/internal/quiz"
)

// ResultSchema defines the JSON shape requested in structured mode.
var ResultSchema = buildResultSchema()

func buildResultSchema() *llm.Schema {
	names := make([]any, 0, quiz.NumTypes)
	scoreProps := make(map[string]any, quiz.NumTypes)
	for _, p := range quiz.Profiles() {
		names = append(names, p.Name)
		scoreProps[p.Name] = map[string]any{
			"type":    "integer",
			"minimum": 0,
			"maximum": 100,
		}
	}

	return &llm.Schema{
		Name:        "continuity-type",
		Description: "Continuity type classification of a ten-question Likert response set",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"main_type": map[string]any{
					"type":        "string",
					"enum":        names,
					"description": "English name of the best-fitting continuity type",
				},
				"scores": map[string]any{
					"type":                 "object",
					"properties":           scoreProps,
					"required":             names,
					"additionalProperties": false,
					"description":          "Score from 0 to 100 for every type",
				},
				"narrative": map[string]any{
					"type":        "string",
					"minLength":   1,
					"description": "Explanation of why the main type fits the answers",
				},
			},
			"required":             []any{"main_type", "scores", "narrative"},
			"additionalProperties": false,
		},
	}
}

type structuredOutput struct {
	MainType  string         `json:"main_type"`
	Scores    map[string]int `json:"scores"`
	Narrative string         `json:"narrative"`
}

// interpretStructured turns a schema-validated response into a partial
// Result. Scores is left nil when every score is 0.
func interpretStructured(raw json.RawMessage) (*Result, error) {
	var out structuredOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode structured output: %w: %w", ErrParseAmbiguous, err)
	}

	p, ok := quiz.LookupType(out.MainType)
	if !ok {
		return nil, fmt.Errorf("main type %q: %w", out.MainType, ErrParseAmbiguous)
	}

	scores := make(map[quiz.TypeID]int, quiz.NumTypes)
	highest := 0
	for _, tp := range quiz.Profiles() {
		s, ok := out.Scores[tp.Name]
		switch {
		case !ok:
			s = defaultScore
		case s < 0:
			s = 0
		case s > 100:
			s = 100
		}
		scores[tp.ID] = s
		if s > highest {
			highest = s
		}
	}

	res := &Result{MainType: p.ID, Narrative: out.Narrative, Source: SourceRemote}
	if highest > 0 {
		res.Scores = scores
	}
	return res, nil
}
