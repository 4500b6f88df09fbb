package autofill

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"jobtrail-backend/internal/llm"
)

type stubClient struct {
	jsonResult json.RawMessage
	textResult string
	err        error

	lastSystem string
	lastUser   string
	lastSchema *llm.Schema
}

func (s *stubClient) Complete(ctx context.Context, systemPrompt, userContent string) (string, error) {
	s.lastSystem = systemPrompt
	s.lastUser = userContent
	return s.textResult, s.err
}

func (s *stubClient) CompleteJSON(ctx context.Context, systemPrompt, userContent string, schema *llm.Schema) (json.RawMessage, error) {
	s.lastSystem = systemPrompt
	s.lastUser = userContent
	s.lastSchema = schema
	return s.jsonResult, s.err
}

func TestExtractReturnsFields(t *testing.T) {
	stub := &stubClient{jsonResult: json.RawMessage(`{"jobTitle":"Backend Engineer","company":"Acme","location":"Dublin"}`)}
	svc := NewService(stub)

	fields, err := svc.Extract(context.Background(), "We are hiring a Backend Engineer at Acme in Dublin.")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if fields.JobTitle != "Backend Engineer" || fields.Company != "Acme" || fields.Location != "Dublin" {
		t.Fatalf("fields = %+v", fields)
	}
	if stub.lastSchema == nil || len(stub.lastSchema.Required) != 3 {
		t.Fatalf("schema not passed: %+v", stub.lastSchema)
	}
	if stub.lastUser == "" || stub.lastSystem == "" {
		t.Fatalf("prompts not passed through")
	}
}

func TestExtractDefaultsMissingFields(t *testing.T) {
	stub := &stubClient{jsonResult: json.RawMessage(`{"jobTitle":"Backend Engineer"}`)}
	svc := NewService(stub)

	fields, err := svc.Extract(context.Background(), "some posting")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if fields.Company != "" || fields.Location != "" {
		t.Fatalf("missing fields should default to empty: %+v", fields)
	}
}

func TestExtractRejectsEmptyText(t *testing.T) {
	svc := NewService(&stubClient{})

	_, err := svc.Extract(context.Background(), "   \n ")
	if !errors.Is(err, ErrEmptyText) {
		t.Fatalf("err = %v, want ErrEmptyText", err)
	}
}

func TestExtractPropagatesProviderErrors(t *testing.T) {
	svc := NewService(&stubClient{err: llm.ErrBlocked})

	_, err := svc.Extract(context.Background(), "some posting")
	if !errors.Is(err, llm.ErrBlocked) {
		t.Fatalf("err = %v, want ErrBlocked", err)
	}
}

func TestExtractRejectsMalformedJSON(t *testing.T) {
	svc := NewService(&stubClient{jsonResult: json.RawMessage(`not json at all`)})

	_, err := svc.Extract(context.Background(), "some posting")
	if !errors.Is(err, ErrBadCompletion) {
		t.Fatalf("err = %v, want ErrBadCompletion", err)
	}
}
