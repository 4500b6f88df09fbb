// Package document rebuilds styled word-processor documents from the plain
// text an LLM returns. The generator produces flat text; this package
// classifies each line (name, contact, heading, bullet, job header, prose)
// and emits paragraph descriptors that the docx writer renders.
package document

// Kind identifies which document variant is being reconstructed. Its string
// value is used verbatim in derived filenames.
type Kind string

const (
	KindResume      Kind = "Resume"
	KindCoverLetter Kind = "CoverLetter"
)

// Alignment values map onto WordprocessingML <w:jc> values.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
	AlignBoth   Alignment = "both"
)

// Font sizes in half-points and spacing/indent values in twips.
const (
	NameSize    = 32
	HeadingSize = 28

	BulletIndentTwips = 360
	SpacingSmall      = 120
	SpacingLarge      = 240

	// Right tab stop near the right page margin for A4 with default margins.
	rightTabStopTwips = 9026
)

// BulletGlyph is the marker prepended to list items.
const BulletGlyph = "•"

// Run is a contiguous span of text with uniform formatting. Size is in
// half-points; zero means the document default.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Size   int
}

// Paragraph is one styled block of the reconstructed document.
type Paragraph struct {
	Runs          []Run
	Alignment     Alignment
	IndentTwips   int
	SpacingBefore int
	SpacingAfter  int

	// RightTabRun, when set, is rendered after a tab stop at the right page
	// margin. Used for dates on job and education headers.
	RightTabRun *Run

	// LinesConsumed records how many source lines this paragraph absorbed.
	// Always >= 1; the job-header rule can absorb look-ahead lines.
	LinesConsumed int
}

// Text returns the concatenated run text, excluding any right-tab run.
func (p Paragraph) Text() string {
	out := ""
	for _, run := range p.Runs {
		out += run.Text
	}
	return out
}
