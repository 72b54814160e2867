package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction the interview engine uses to talk to
// a generative model. Callers describe what they want in a Request and get
// back validated JSON (or raw text when no schema is requested).
type Provider interface {
	// Generate sends a prompt to the model and returns its response.
	// When the request carries a Schema, the provider asks the model for
	// structured output and validates the result against that schema
	// before returning it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes a single model invocation.
type Request struct {
	// System is the system prompt establishing the interviewer persona
	// and output constraints.
	System string

	// Messages is the conversation to send. Most calls in Novexa are
	// single-turn: one user message carrying the transcript context.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform to.
	// When nil, Content is the raw text response as json.RawMessage.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero means deterministic.
	Temperature float64
}

// Message is one turn of conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "turn-decision".
	Name string

	// Description tells the model what this schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is the generated output. Validated JSON when the request
	// carried a Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the response content as plain text. When the model was
// asked for raw text the content may arrive either as a bare string or a
// JSON-encoded string; both are handled.
func (r *Response) Text() string {
	var s string
	if err := json.Unmarshal(r.Content, &s); err == nil {
		return s
	}
	return string(r.Content)
}
