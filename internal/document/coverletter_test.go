package document

import "testing"

const sampleCoverLetter = `Jane Doe
14 Mill Street, Galway
jane@example.com
August 12, 2025
Dear Hiring Manager,
I am writing to apply for the Backend Engineer position at Acme.
My work at my current employer maps directly onto your requirements.
Thank you for your consideration.
Sincerely,
Jane Doe`

func TestReconstructCoverLetterDateLine(t *testing.T) {
	paragraphs := ReconstructCoverLetter(sampleCoverLetter)

	var date *Paragraph
	for i := range paragraphs {
		if paragraphs[i].Text() == "August 12, 2025" {
			date = &paragraphs[i]
			break
		}
	}
	if date == nil {
		t.Fatalf("date paragraph not emitted")
	}
	if date.Alignment != AlignRight {
		t.Fatalf("date alignment = %q", date.Alignment)
	}
}

func TestReconstructCoverLetterContactLines(t *testing.T) {
	paragraphs := ReconstructCoverLetter(sampleCoverLetter)

	for _, text := range []string{"14 Mill Street, Galway", "jane@example.com"} {
		found := false
		for _, p := range paragraphs {
			if p.Text() == text {
				found = true
				if p.Alignment != AlignLeft {
					t.Fatalf("%q alignment = %q", text, p.Alignment)
				}
				if p.Runs[0].Bold {
					t.Fatalf("%q should not be bold", text)
				}
			}
		}
		if !found {
			t.Fatalf("%q not emitted", text)
		}
	}
}

func TestReconstructCoverLetterSenderName(t *testing.T) {
	paragraphs := ReconstructCoverLetter(sampleCoverLetter)

	if paragraphs[0].Text() != "Jane Doe" {
		t.Fatalf("first paragraph = %q", paragraphs[0].Text())
	}
	if !paragraphs[0].Runs[0].Bold {
		t.Fatalf("sender name not bold")
	}
}

func TestReconstructCoverLetterSalutations(t *testing.T) {
	paragraphs := ReconstructCoverLetter(sampleCoverLetter)

	for _, text := range []string{"Dear Hiring Manager,", "Sincerely,", "Thank you for your consideration."} {
		found := false
		for _, p := range paragraphs {
			if p.Text() == text {
				found = true
				if p.SpacingBefore != SpacingLarge || p.SpacingAfter != SpacingLarge {
					t.Fatalf("%q spacing = %d/%d", text, p.SpacingBefore, p.SpacingAfter)
				}
			}
		}
		if !found {
			t.Fatalf("%q not emitted", text)
		}
	}
}

func TestReconstructCoverLetterBodyFallback(t *testing.T) {
	paragraphs := ReconstructCoverLetter(sampleCoverLetter)

	body := "I am writing to apply for the Backend Engineer position at Acme."
	found := false
	for _, p := range paragraphs {
		if p.Text() == body {
			found = true
			if p.Alignment != AlignBoth {
				t.Fatalf("body alignment = %q", p.Alignment)
			}
		}
	}
	if !found {
		t.Fatalf("body paragraph not emitted")
	}
}

func TestReconstructCoverLetterTotality(t *testing.T) {
	lines := nonEmptyLines(sampleCoverLetter)
	paragraphs := ReconstructCoverLetter(sampleCoverLetter)
	if len(paragraphs) != len(lines) {
		t.Fatalf("emitted %d paragraphs for %d lines", len(paragraphs), len(lines))
	}
}
