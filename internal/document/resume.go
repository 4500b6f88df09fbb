package document

import (
	"regexp"
	"strings"
)

// sectionKeywords are the literal substrings that qualify an all-caps line as
// a section heading.
var sectionKeywords = []string{
	"SUMMARY", "EXPERIENCE", "EDUCATION", "SKILLS", "PROJECTS",
	"CERTIFICATIONS", "CERTIFICATION", "AWARDS", "LANGUAGES", "VOLUNTEER",
}

var (
	upperHeadingPattern = regexp.MustCompile(`^[A-Z\s&]+$`)
	datePattern         = regexp.MustCompile(`\w+\s+\d{4}(\s*[-–]\s*(\w+\s+\d{4}|Present))?`)
	leadingYearPattern  = regexp.MustCompile(`^\d{4}`)
	anyYearPattern      = regexp.MustCompile(`\d{4}`)
)

// lookAheadWindow bounds how far the job-header rule scans past the current
// line for a date or institution line.
const lookAheadWindow = 3

// ReconstructResume classifies every non-empty line of cleaned generator
// output and returns the styled paragraph sequence. It is total: each
// non-empty line is consumed by exactly one paragraph, so the sum of
// LinesConsumed over the result equals the number of non-empty input lines.
func ReconstructResume(text string) []Paragraph {
	lines := nonEmptyLines(text)
	paragraphs := make([]Paragraph, 0, len(lines))

	section := ""
	for i := 0; i < len(lines); {
		paragraph, nextSection := classifyResumeLine(lines, i, section)
		paragraphs = append(paragraphs, paragraph)
		i += paragraph.LinesConsumed
		section = nextSection
	}
	return paragraphs
}

// classifyResumeLine applies the classification rules in priority order to
// lines[i] and returns the emitted paragraph plus the section heading state
// to carry forward. Section state changes only on a heading match.
func classifyResumeLine(lines []string, i int, section string) (Paragraph, string) {
	line := lines[i]
	lower := strings.ToLower(line)

	// Name: the very first line, unless it looks like contact info.
	if i == 0 && !strings.Contains(line, "@") && !strings.Contains(line, "|") && len(line) > 2 {
		return Paragraph{
			Runs:          []Run{{Text: line, Bold: true, Size: NameSize}},
			Alignment:     AlignCenter,
			SpacingAfter:  SpacingLarge,
			LinesConsumed: 1,
		}, section
	}

	// Contact block: emails, pipe-separated details, profile links.
	if strings.Contains(line, "@") || strings.Contains(line, "|") ||
		strings.Contains(lower, "linkedin") || strings.Contains(lower, "github") {
		return Paragraph{
			Runs:          []Run{{Text: line}},
			Alignment:     AlignCenter,
			SpacingAfter:  SpacingLarge,
			LinesConsumed: 1,
		}, section
	}

	// Section heading: all caps and naming a known section.
	if len(line) > 2 && upperHeadingPattern.MatchString(line) && containsSectionKeyword(line) {
		return Paragraph{
			Runs:          []Run{{Text: line, Bold: true, Size: HeadingSize}},
			SpacingBefore: SpacingLarge,
			SpacingAfter:  SpacingSmall,
			LinesConsumed: 1,
		}, line
	}

	// Bullet line, already carrying the glyph from normalization.
	if strings.HasPrefix(line, BulletGlyph) {
		return Paragraph{
			Runs:          []Run{{Text: line}},
			Alignment:     AlignBoth,
			IndentTwips:   BulletIndentTwips,
			SpacingAfter:  SpacingSmall,
			LinesConsumed: 1,
		}, section
	}

	// Bare item under a skills-like section gets promoted to a bullet.
	if sectionListsBareItems(section) && len(line) > 3 &&
		!containsInstitutionKeyword(line) && !leadingYearPattern.MatchString(line) {
		return Paragraph{
			Runs:          []Run{{Text: BulletGlyph + " " + line}},
			Alignment:     AlignBoth,
			IndentTwips:   BulletIndentTwips,
			SpacingAfter:  SpacingSmall,
			LinesConsumed: 1,
		}, section
	}

	// Job/role header: the following lines carry its company or dates.
	if len(line) > 3 && !strings.HasPrefix(line, BulletGlyph) && hasJobHeaderEvidence(lines, i) {
		return buildJobHeader(lines, i), section
	}

	// Institution or dated line on its own.
	if !strings.HasPrefix(line, BulletGlyph) &&
		(containsInstitutionLineKeyword(line) || anyYearPattern.MatchString(line)) {
		return Paragraph{
			Runs:          []Run{{Text: line, Italic: true}},
			SpacingAfter:  SpacingSmall,
			LinesConsumed: 1,
		}, section
	}

	// Anything else is a plain justified paragraph.
	return Paragraph{
		Runs:          []Run{{Text: line}},
		Alignment:     AlignBoth,
		SpacingAfter:  SpacingSmall,
		LinesConsumed: 1,
	}, section
}

// hasJobHeaderEvidence reports whether the lines after i look like the body
// of a job entry: a bullet, an institution name, or a year within the
// look-ahead window.
func hasJobHeaderEvidence(lines []string, i int) bool {
	for j := i + 1; j <= i+lookAheadWindow && j < len(lines); j++ {
		if strings.HasPrefix(lines[j], BulletGlyph) {
			return true
		}
		if containsInstitutionKeyword(lines[j]) || anyYearPattern.MatchString(lines[j]) {
			return true
		}
	}
	return false
}

// buildJobHeader folds the header line with the first date or institution
// line found in the look-ahead window into a single paragraph. Intermediate
// lines up to the matched one count as consumed by this paragraph.
func buildJobHeader(lines []string, i int) Paragraph {
	titlePart := lines[i]
	datePart := ""
	companyPart := ""
	locationPart := ""
	consumed := 1

	for j := i + 1; j <= i+lookAheadWindow && j < len(lines); j++ {
		if strings.HasPrefix(lines[j], BulletGlyph) {
			break
		}
		if match := datePattern.FindString(lines[j]); match != "" {
			datePart = match
			remainder := trimSeparators(strings.Replace(lines[j], match, "", 1))
			if strings.Contains(remainder, ",") || containsCountryName(remainder) {
				companyPart, locationPart = splitCompanyLocation(remainder)
			} else {
				companyPart = remainder
			}
			consumed = j - i + 1
			break
		}
		if containsInstitutionKeyword(lines[j]) {
			companyPart, locationPart = splitCompanyLocation(lines[j])
			consumed = j - i + 1
			break
		}
	}

	text := titlePart
	group := joinNonEmpty([]string{companyPart, locationPart}, ", ")
	if group != "" {
		text += " | " + group
	}

	paragraph := Paragraph{
		Runs:          []Run{{Text: text, Bold: true}},
		SpacingAfter:  SpacingSmall,
		LinesConsumed: consumed,
	}
	if datePart != "" {
		paragraph.RightTabRun = &Run{Text: datePart, Italic: true}
	}
	return paragraph
}

func containsSectionKeyword(line string) bool {
	for _, keyword := range sectionKeywords {
		if strings.Contains(line, keyword) {
			return true
		}
	}
	return false
}

func sectionListsBareItems(section string) bool {
	return strings.Contains(section, "SKILLS") ||
		strings.Contains(section, "CERTIFICATION") ||
		strings.Contains(section, "LANGUAGES")
}

func containsInstitutionKeyword(line string) bool {
	return strings.Contains(line, "University") ||
		strings.Contains(line, "Hospital") ||
		strings.Contains(line, "Company")
}

func containsInstitutionLineKeyword(line string) bool {
	for _, keyword := range []string{"University", "College", "Hospital", "Company", "Inc", "LLC"} {
		if strings.Contains(line, keyword) {
			return true
		}
	}
	return false
}

func containsCountryName(text string) bool {
	for _, country := range []string{"Ireland", "India", "USA", "UK"} {
		if strings.Contains(text, country) {
			return true
		}
	}
	return false
}

// splitCompanyLocation splits a line into company and location on the first
// comma or pipe. With no separator, the whole line is the company.
func splitCompanyLocation(line string) (string, string) {
	idx := strings.IndexAny(line, ",|")
	if idx < 0 {
		return strings.TrimSpace(line), ""
	}
	return strings.TrimSpace(line[:idx]), trimSeparators(line[idx+1:])
}

func trimSeparators(text string) string {
	return strings.Trim(strings.TrimSpace(text), ",|–- ")
}

func joinNonEmpty(parts []string, sep string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			kept = append(kept, strings.TrimSpace(part))
		}
	}
	return strings.Join(kept, sep)
}
