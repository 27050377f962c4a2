package diagnosis

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/abhisek/keizoku/internal/llm"
	"github.com/abhisek/keizoku/internal/quiz"
)

// Purpose labels classification requests in the LLM audit log.
const Purpose = "type-classification"

// BuildTranscript renders the response set as question/answer pairs in
// question order, separated by blank lines.
func BuildTranscript(r quiz.Responses) string {
	entries := make([]string, 0, quiz.NumQuestions)
	for _, q := range quiz.Questions() {
		rating := r[q.Index]
		entries = append(entries, fmt.Sprintf("Question: %s\nAnswer: %d (%s)", q.Text, rating, quiz.RatingLabel(rating)))
	}
	return strings.Join(entries, "\n\n")
}

var systemTemplate = template.Must(template.New("system").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`You are an expert in personality assessment. Analyse the user's answer pattern and identify the single best-fitting continuity type out of these eight: {{range $i, $t := .}}{{if $i}}, {{end}}{{$t.Name}}{{end}}.

Characteristics of each type:
{{range $i, $t := .}}{{inc $i}}. {{$t.Name}} ({{$t.LocalName}}): {{$t.Description}}
{{end}}
Based on the answers, decide the one continuity type that fits best and explain why you chose it.
Start your reply with a line of the form "Main type: <type name>".
Also give a score from 0 to 100 for every type, one per line, written as "<type name>: <score>%".`))

var structuredSuffix = `
Reply with a JSON object containing "main_type" (one of the eight English type names), "scores" (an object mapping every English type name to an integer from 0 to 100) and "narrative" (your explanation).`

var userTemplate = template.Must(template.New("user").Parse(`Here are the user's answers:

{{.}}

From this answer pattern, tell me the user's continuity type, your reasoning, and the score for each type.`))

// SystemPrompt returns the fixed instruction describing the eight types.
func SystemPrompt(structured bool) string {
	var buf bytes.Buffer
	if err := systemTemplate.Execute(&buf, quiz.Profiles()); err != nil {
		// The template and its data are static.
		panic(fmt.Sprintf("diagnosis: render system prompt: %v", err))
	}
	if structured {
		buf.WriteString(structuredSuffix)
	}
	return buf.String()
}

// UserPrompt wraps the transcript of r in the user instruction.
func UserPrompt(r quiz.Responses) string {
	var buf bytes.Buffer
	if err := userTemplate.Execute(&buf, BuildTranscript(r)); err != nil {
		panic(fmt.Sprintf("diagnosis: render user prompt: %v", err))
	}
	return buf.String()
}

// BuildRequest assembles the LLM request for r.
func BuildRequest(r quiz.Responses, cfg Config) llm.Request {
	req := llm.Request{
		System:      SystemPrompt(cfg.Structured),
		Prompt:      UserPrompt(r),
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}
	if cfg.Structured {
		req.Schema = ResultSchema
	}
	return req
}
