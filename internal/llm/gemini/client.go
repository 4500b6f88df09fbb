package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"jobtrail-backend/internal/llm"
)

const defaultModel = "gemini-2.5-flash"

// Client implements llm.Client using the Google Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient constructs a Gemini client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, llm.ErrNotConfigured
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

var _ llm.Client = (*Client)(nil)

// Complete returns a plain-text completion.
func (c *Client) Complete(ctx context.Context, systemPrompt, userContent string) (string, error) {
	config := &genai.GenerateContentConfig{
		SafetySettings: blockNoneSafetySettings(),
	}
	if systemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(userContent), config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if reason := blockReason(result); reason != "" {
		return "", fmt.Errorf("%w: %s", llm.ErrBlocked, reason)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", llm.ErrEmptyCompletion
	}
	return text, nil
}

// CompleteJSON returns a completion constrained to the given schema.
func (c *Client) CompleteJSON(ctx context.Context, systemPrompt, userContent string, schema *llm.Schema) (json.RawMessage, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		SafetySettings:   blockNoneSafetySettings(),
	}
	if schema != nil {
		config.ResponseSchema = toGenaiSchema(schema)
	}
	if systemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(userContent), config)
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}
	if reason := blockReason(result); reason != "" {
		return nil, fmt.Errorf("%w: %s", llm.ErrBlocked, reason)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return nil, llm.ErrEmptyCompletion
	}
	return json.RawMessage(text), nil
}

// blockNoneSafetySettings disables all safety thresholds; job descriptions
// and resumes routinely trip the default filters.
func blockNoneSafetySettings() []*genai.SafetySetting {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}
	out := make([]*genai.SafetySetting, 0, len(categories))
	for _, category := range categories {
		out = append(out, &genai.SafetySetting{
			Category:  category,
			Threshold: genai.HarmBlockThresholdBlockNone,
		})
	}
	return out
}

func blockReason(result *genai.GenerateContentResponse) string {
	if result == nil || result.PromptFeedback == nil {
		return ""
	}
	return string(result.PromptFeedback.BlockReason)
}

func toGenaiSchema(schema *llm.Schema) *genai.Schema {
	if schema == nil {
		return nil
	}
	out := &genai.Schema{
		Type:     toGenaiType(schema.Type),
		Required: schema.Required,
	}
	if len(schema.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(schema.Properties))
		for name, prop := range schema.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	return out
}

func toGenaiType(raw string) genai.Type {
	switch strings.ToLower(raw) {
	case "object":
		return genai.TypeObject
	case "array":
		return genai.TypeArray
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}
