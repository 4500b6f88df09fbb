package document

import (
	"regexp"
	"strings"
)

const (
	maxNameLen    = 30
	maxTitleLen   = 25
	maxCompanyLen = 20

	defaultName    = "User"
	defaultTitle   = "Position"
	defaultCompany = "Company"
)

var (
	nameLabelPattern = regexp.MustCompile(`(?i)^(name:|full name:|candidate:|applicant:)\s*`)
	nonLetterPattern = regexp.MustCompile(`[^A-Za-z\s]`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
)

var titleLabels = []string{"position:", "role:", "job title:", "we are hiring"}
var companyLabels = []string{"company:", "organization:", "at ", "join "}

// headerScanLines bounds how deep into the job description the filename
// derivation looks for labelled title/company lines.
const headerScanLines = 10

// Filename derives `{Name}_{Kind}_{JobTitle}_{Company}.docx` from the source
// texts. Name comes from the resume's first line, title and company from
// labelled lines near the top of the job description. Every token has a
// default, so the result is always a usable filename.
func Filename(kind Kind, resumeText, jobDescription string) string {
	name := deriveName(resumeText)
	title := deriveJobTitle(jobDescription)
	company := deriveCompany(jobDescription)
	return name + "_" + string(kind) + "_" + title + "_" + company + ".docx"
}

func deriveName(resumeText string) string {
	lines := nonEmptyLines(resumeText)
	if len(lines) == 0 {
		return defaultName
	}
	first := nameLabelPattern.ReplaceAllString(lines[0], "")
	return sanitizeToken(first, maxNameLen, defaultName)
}

func deriveJobTitle(jobDescription string) string {
	lines := headLines(jobDescription)
	for _, line := range lines {
		if value, ok := stripLabel(line, titleLabels); ok {
			if token := sanitizeToken(value, maxTitleLen, ""); token != "" {
				return token
			}
		}
	}
	// No labelled title; the first line of the posting usually names it.
	if len(lines) > 0 {
		if token := sanitizeToken(lines[0], maxTitleLen, ""); token != "" {
			return token
		}
	}
	return defaultTitle
}

func deriveCompany(jobDescription string) string {
	for _, line := range headLines(jobDescription) {
		if value, ok := stripLabel(line, companyLabels); ok {
			if token := sanitizeToken(value, maxCompanyLen, ""); token != "" {
				return token
			}
		}
	}
	return defaultCompany
}

func headLines(text string) []string {
	lines := nonEmptyLines(text)
	if len(lines) > headerScanLines {
		lines = lines[:headerScanLines]
	}
	return lines
}

// stripLabel returns the text after the first matching label, case
// insensitively, preserving the original casing of the value.
func stripLabel(line string, labels []string) (string, bool) {
	lower := strings.ToLower(line)
	for _, label := range labels {
		if idx := strings.Index(lower, label); idx >= 0 {
			return line[idx+len(label):], true
		}
	}
	return "", false
}

// sanitizeToken strips everything but letters and spaces, collapses
// whitespace runs to single underscores, and truncates.
func sanitizeToken(raw string, max int, fallback string) string {
	cleaned := nonLetterPattern.ReplaceAllString(raw, "")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = whitespaceRun.ReplaceAllString(cleaned, "_")
	if len(cleaned) > max {
		cleaned = cleaned[:max]
		cleaned = strings.Trim(cleaned, "_")
	}
	if cleaned == "" {
		return fallback
	}
	return cleaned
}
