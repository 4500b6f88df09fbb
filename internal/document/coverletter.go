package document

import (
	"regexp"
	"strings"
)

var (
	letterDatePattern = regexp.MustCompile(`^\w+\s+\d{1,2},\s+\d{4}$`)
	phonePattern      = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}|\+\d`)
	leadingDigit      = regexp.MustCompile(`^\d`)
)

var streetKeywords = []string{
	"street", "st.", "avenue", "ave", "road", "rd.", "lane", "drive", "blvd", "suite",
}

var closingPrefixes = []string{
	"Sincerely", "Best regards", "Thank you", "Looking forward",
}

// ReconstructCoverLetter classifies cover-letter lines. The rule set is a
// strict subset of the resume classifier: date, contact/address, sender name,
// salutations, and a justified fallback.
func ReconstructCoverLetter(text string) []Paragraph {
	lines := nonEmptyLines(text)
	paragraphs := make([]Paragraph, 0, len(lines))
	for i := range lines {
		paragraphs = append(paragraphs, classifyCoverLetterLine(lines[i], i))
	}
	return paragraphs
}

func classifyCoverLetterLine(line string, i int) Paragraph {
	if letterDatePattern.MatchString(line) {
		return Paragraph{
			Runs:          []Run{{Text: line}},
			Alignment:     AlignRight,
			SpacingAfter:  SpacingSmall,
			LinesConsumed: 1,
		}
	}

	if isContactOrAddress(line) {
		return Paragraph{
			Runs:          []Run{{Text: line}},
			Alignment:     AlignLeft,
			SpacingAfter:  SpacingSmall,
			LinesConsumed: 1,
		}
	}

	// The sender's name sits in the first few lines above the letter body.
	if i < 3 && len(line) > 5 {
		return Paragraph{
			Runs:          []Run{{Text: line, Bold: true}},
			SpacingAfter:  SpacingSmall,
			LinesConsumed: 1,
		}
	}

	if strings.HasPrefix(line, "Dear ") || strings.HasPrefix(line, "To Whom") {
		return Paragraph{
			Runs:          []Run{{Text: line}},
			SpacingBefore: SpacingLarge,
			SpacingAfter:  SpacingLarge,
			LinesConsumed: 1,
		}
	}

	for _, prefix := range closingPrefixes {
		if strings.HasPrefix(line, prefix) {
			return Paragraph{
				Runs:          []Run{{Text: line}},
				SpacingBefore: SpacingLarge,
				SpacingAfter:  SpacingLarge,
				LinesConsumed: 1,
			}
		}
	}

	return Paragraph{
		Runs:          []Run{{Text: line}},
		Alignment:     AlignBoth,
		SpacingAfter:  SpacingSmall,
		LinesConsumed: 1,
	}
}

func isContactOrAddress(line string) bool {
	if strings.Contains(line, "@") {
		return true
	}
	if leadingDigit.MatchString(line) {
		return true
	}
	if phonePattern.MatchString(line) {
		return true
	}
	lower := strings.ToLower(line)
	for _, keyword := range streetKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
