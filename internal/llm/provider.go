// Package llm is the remote classification capability: a single-turn
// prompt sent to one of several hosted models, with retry, audit logging
// and metrics layered on as decorators.
package llm

import (
	"context"
	"encoding/json"
)

// Provider sends one prompt to a hosted model.
type Provider interface {
	// Generate runs req and returns the model's reply. When req.Schema is
	// set the reply is JSON that has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request is a single-turn exchange: an instruction and one user prompt.
type Request struct {
	System string
	Prompt string

	// Schema asks the provider for JSON output through its native
	// structured-output mechanism. Nil means free text.
	Schema *Schema

	MaxTokens int

	// Temperature in [0,1]. Zero leaves the provider default.
	Temperature float64
}

// Schema is a JSON Schema the reply must conform to.
type Schema struct {
	// Name is kebab-case, e.g. "continuity-type". OpenAI uses it as the
	// response format name and the validator as the cache key.
	Name        string
	Description string
	Definition  map[string]any
}

// StopReason is the normalized reason generation ended.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
)

// Response holds the model's reply.
type Response struct {
	// Content is the raw reply: free text, or the validated JSON object
	// when the request carried a Schema.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request, which may be a
	// dated variant of ModelID.
	Model string

	StopReason StopReason
}

// Text returns Content as a plain string.
func (r *Response) Text() string {
	return string(r.Content)
}

// Usage is the token consumption of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total returns input plus output tokens.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}

// finish applies the checks every provider runs on a reply before handing
// it back: structured replies cut off by the token limit are unusable, and
// the rest must match the schema.
func finish(req Request, resp *Response) (*Response, error) {
	if req.Schema == nil {
		return resp, nil
	}
	if resp.StopReason == StopMaxTokens {
		return nil, &ErrMaxTokensExceeded{Content: resp.Content}
	}
	if err := validateResponse(req.Schema, resp.Content); err != nil {
		return nil, err
	}
	return resp, nil
}
