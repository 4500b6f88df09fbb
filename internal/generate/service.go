// Package generate turns a resume plus a job description into a tailored,
// downloadable document via the completion provider and the document
// reconstructor.
package generate

import (
	"context"
	_ "embed"
	"errors"
	"strings"
	"time"

	"jobtrail-backend/internal/document"
	"jobtrail-backend/internal/llm"
	"jobtrail-backend/internal/shared/metrics"
)

//go:embed prompts/resume_v1.txt
var resumePromptTemplate string

//go:embed prompts/cover_letter_v1.txt
var coverLetterPromptTemplate string

const currentDateToken = "{{CURRENT_DATE}}"

// ErrMissingInput is returned when either source text is empty.
var ErrMissingInput = errors.New("resume text and job description are required")

// Result is a generated document ready for download.
type Result struct {
	Filename string
	Content  []byte
}

// Service orchestrates prompt construction, the completion call, and
// document reconstruction.
type Service struct {
	LLM llm.Client

	// clock is swappable in tests; the prompt embeds the current date.
	clock func() time.Time
}

// NewService constructs a Service.
func NewService(client llm.Client) *Service {
	return &Service{LLM: client, clock: time.Now}
}

// Resume generates a tailored resume document.
func (s *Service) Resume(ctx context.Context, resumeText, jobDescription string) (Result, error) {
	return s.generate(ctx, document.KindResume, resumeText, jobDescription)
}

// CoverLetter generates a tailored cover-letter document.
func (s *Service) CoverLetter(ctx context.Context, resumeText, jobDescription string) (Result, error) {
	return s.generate(ctx, document.KindCoverLetter, resumeText, jobDescription)
}

func (s *Service) generate(ctx context.Context, kind document.Kind, resumeText, jobDescription string) (Result, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobDescription) == "" {
		return Result{}, ErrMissingInput
	}

	metrics.IncGenerationStarted()
	started := metrics.NowMillis()

	text, err := s.LLM.Complete(ctx, s.systemPrompt(kind), userContent(resumeText, jobDescription))
	if err != nil {
		metrics.IncGenerationFailed()
		return Result{}, err
	}

	cleaned := document.CleanGenerated(text)
	var paragraphs []document.Paragraph
	if kind == document.KindResume {
		paragraphs = document.ReconstructResume(cleaned)
	} else {
		paragraphs = document.ReconstructCoverLetter(cleaned)
	}

	content, err := document.BuildDocx(paragraphs)
	if err != nil {
		metrics.IncGenerationFailed()
		return Result{}, err
	}

	metrics.ObserveGenerationDurationMs(metrics.NowMillis() - started)
	metrics.IncGenerationCompleted()

	return Result{
		Filename: document.Filename(kind, resumeText, jobDescription),
		Content:  content,
	}, nil
}

// systemPrompt resolves the template for the kind with the current date
// substituted at request time.
func (s *Service) systemPrompt(kind document.Kind) string {
	template := resumePromptTemplate
	if kind == document.KindCoverLetter {
		template = coverLetterPromptTemplate
	}
	now := s.clock()
	return strings.ReplaceAll(template, currentDateToken, now.Format("January 2, 2006"))
}

func userContent(resumeText, jobDescription string) string {
	return "RESUME:\n" + resumeText + "\n\nJOB DESCRIPTION:\n" + jobDescription
}
