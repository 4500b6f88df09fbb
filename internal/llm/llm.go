package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts text-completion providers.
type Client interface {
	// Complete returns the plain-text completion for the given prompts.
	Complete(ctx context.Context, systemPrompt, userContent string) (string, error)
	// CompleteJSON returns a completion constrained to the given output
	// schema. Providers without native schema support fall back to JSON mode.
	CompleteJSON(ctx context.Context, systemPrompt, userContent string, schema *Schema) (json.RawMessage, error)
}

// Schema is a provider-neutral subset of a JSON schema, enough to constrain
// flat extraction outputs.
type Schema struct {
	Type       string
	Properties map[string]*Schema
	Required   []string
}

var (
	// ErrNotConfigured indicates the provider API key is missing.
	ErrNotConfigured = errors.New("completion service api key is not configured")
	// ErrBlocked indicates the provider refused the request on safety grounds.
	ErrBlocked = errors.New("completion request was blocked")
	// ErrEmptyCompletion indicates the provider returned no content.
	ErrEmptyCompletion = errors.New("completion service returned an empty response")
)

// Disabled stands in for a provider when no credentials are configured so
// handlers can return a consistent error instead of nil-checking the client.
type Disabled struct{}

func (Disabled) Complete(context.Context, string, string) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) CompleteJSON(context.Context, string, string, *Schema) (json.RawMessage, error) {
	return nil, ErrNotConfigured
}
