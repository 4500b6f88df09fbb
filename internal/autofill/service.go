// Package autofill extracts structured job fields from pasted posting text
// using the configured completion provider.
package autofill

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"jobtrail-backend/internal/llm"
	"jobtrail-backend/internal/shared/metrics"
)

// Fields is the extraction result used to patch the application form.
// Missing values come back as empty strings, never as an error.
type Fields struct {
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
	Location string `json:"location"`
}

var (
	// ErrEmptyText is returned when no posting text was supplied.
	ErrEmptyText = errors.New("job posting text is empty")
	// ErrBadCompletion is returned when the provider response is not the
	// requested JSON shape.
	ErrBadCompletion = errors.New("completion is not valid JSON")
)

const systemPrompt = "You extract structured fields from job postings. " +
	"Given the text of a job posting, return the job title, the company name, and the location. " +
	"Use an empty string for any field the posting does not state. Do not invent values."

var extractionSchema = &llm.Schema{
	Type: "object",
	Properties: map[string]*llm.Schema{
		"jobTitle": {Type: "string"},
		"company":  {Type: "string"},
		"location": {Type: "string"},
	},
	Required: []string{"jobTitle", "company", "location"},
}

// Service runs field extraction against an injected completion client.
type Service struct {
	LLM llm.Client
}

// NewService constructs a Service.
func NewService(client llm.Client) *Service {
	return &Service{LLM: client}
}

// Extract asks the provider for the three form fields. Absent fields default
// to empty strings so callers can patch the form unconditionally.
func (s *Service) Extract(ctx context.Context, text string) (Fields, error) {
	if strings.TrimSpace(text) == "" {
		return Fields{}, ErrEmptyText
	}

	metrics.IncAutofillStarted()
	raw, err := s.LLM.CompleteJSON(ctx, systemPrompt, text, extractionSchema)
	if err != nil {
		metrics.IncAutofillFailed()
		return Fields{}, err
	}

	var fields Fields
	if err := json.Unmarshal(raw, &fields); err != nil {
		metrics.IncAutofillFailed()
		return Fields{}, fmt.Errorf("%w: %v", ErrBadCompletion, err)
	}

	metrics.IncAutofillCompleted()
	return fields, nil
}
