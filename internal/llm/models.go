package llm

// Friendly model names accepted in KEIZOKU_*_MODEL, per provider. Any other
// value is passed to the provider verbatim.
var (
	openaiModels = map[string]string{
		"gpt":      "gpt-4o",
		"gpt-mini": "gpt-4o-mini",
		"gpt-nano": "gpt-4.1-nano",
	}
	anthropicModels = map[string]string{
		"claude-sonnet": "claude-sonnet-4-5",
		"claude-haiku":  "claude-haiku-4-5",
	}
	geminiModels = map[string]string{
		"gemini-flash": "gemini-2.5-flash",
		"gemini-pro":   "gemini-2.5-pro",
	}
)

func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
