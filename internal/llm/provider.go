package llm

import (
	"context"
	"encoding/json"
)

// Provider is a model backend capable of turning a prompt into the
// structured JSON the quiz generator consumes. Implementations wrap one
// vendor SDK each; decorators add retry and request logging around them.
type Provider interface {
	// Generate runs one completion. When req.Schema is set the provider
	// asks for native structured output and validates the result against
	// the schema before returning it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is a single-turn generation request. Quiz generation never
// needs conversation history: each quiz is produced from one prompt
// carrying the page text and instructions.
type Request struct {
	// System frames the model's role, e.g. as a quiz writer that only
	// uses the supplied source material.
	System string

	// Prompt is the user turn: the extracted page or PDF text plus the
	// generation instructions.
	Prompt string

	// Schema, when set, constrains the output to the quiz JSON shape.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]; zero means deterministic.
	Temperature float64
}

// Schema is a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema to the vendor API (tool name for
	// Anthropic, schema name for OpenAI). Kebab-case.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the schema itself as a plain map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated JSON. Validated against the request
	// schema when one was set.
	Content json.RawMessage

	// Model is the model that actually served the request, as reported
	// by the vendor.
	Model string
}
