package document

import (
	"regexp"
	"strings"
)

var (
	horizontalRulePattern = regexp.MustCompile(`^\s*(-{3,}|={3,})\s*$`)
	bulletMarkerPattern   = regexp.MustCompile(`^\s*[*+-]\s+`)

	boldStarPattern       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderscorePattern = regexp.MustCompile(`__(.+?)__`)
	italicStarPattern     = regexp.MustCompile(`\*(.+?)\*`)
	italicUnderPattern    = regexp.MustCompile(`\b_(.+?)_\b`)

	excessNewlinePattern = regexp.MustCompile(`\n{3,}`)
)

// CleanGenerated normalizes raw LLM output before reconstruction: horizontal
// rules are dropped, leading markdown bullet markers become the bullet glyph,
// bold/italic markers are stripped, and runs of 3+ newlines collapse to 2.
// Bullet conversion happens before emphasis stripping so a leading "*" is
// never misread as an italic marker.
func CleanGenerated(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if horizontalRulePattern.MatchString(line) && strings.TrimSpace(line) != "" {
			continue
		}
		if bulletMarkerPattern.MatchString(line) {
			line = BulletGlyph + " " + bulletMarkerPattern.ReplaceAllString(line, "")
		}
		kept = append(kept, line)
	}
	out := strings.Join(kept, "\n")

	out = boldStarPattern.ReplaceAllString(out, "$1")
	out = boldUnderscorePattern.ReplaceAllString(out, "$1")
	out = italicStarPattern.ReplaceAllString(out, "$1")
	out = italicUnderPattern.ReplaceAllString(out, "$1")

	out = excessNewlinePattern.ReplaceAllString(out, "\n\n")
	return out
}

// nonEmptyLines splits text into trimmed, non-empty lines.
func nonEmptyLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
