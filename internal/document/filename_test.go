package document

import (
	"strings"
	"testing"
)

func TestFilenameFromLabelledLines(t *testing.T) {
	resume := "Jane Doe\njane@example.com"
	jd := "Position: Backend Engineer\nCompany: Acme\nWe build invoicing software."

	got := Filename(KindResume, resume, jd)
	want := "Jane_Doe_Resume_Backend_Engineer_Acme.docx"
	if got != want {
		t.Fatalf("filename = %q, want %q", got, want)
	}
}

func TestFilenameCoverLetterKind(t *testing.T) {
	got := Filename(KindCoverLetter, "Jane Doe", "Position: Backend Engineer\nCompany: Acme")
	want := "Jane_Doe_CoverLetter_Backend_Engineer_Acme.docx"
	if got != want {
		t.Fatalf("filename = %q, want %q", got, want)
	}
}

func TestFilenameDefaults(t *testing.T) {
	got := Filename(KindResume, "", "")
	want := "User_Resume_Position_Company.docx"
	if got != want {
		t.Fatalf("filename = %q, want %q", got, want)
	}
}

func TestFilenameStripsNameLabel(t *testing.T) {
	got := Filename(KindResume, "Name: Jane Doe", "Position: Engineer\nCompany: Acme")
	if !strings.HasPrefix(got, "Jane_Doe_") {
		t.Fatalf("filename = %q", got)
	}
}

func TestFilenameTitleFallsBackToFirstLine(t *testing.T) {
	jd := "Backend Engineer\nWe build invoicing software at scale."
	got := Filename(KindResume, "Jane Doe", jd)
	if !strings.Contains(got, "_Resume_Backend_Engineer_") {
		t.Fatalf("filename = %q", got)
	}
}

func TestFilenameHiringPhrase(t *testing.T) {
	jd := "We are hiring Backend Engineers\nCompany: Acme"
	got := Filename(KindResume, "Jane Doe", jd)
	if !strings.Contains(got, "Backend_Engineers") {
		t.Fatalf("filename = %q", got)
	}
}

func TestFilenameTruncatesTokens(t *testing.T) {
	resume := "Bartholomew Montgomery Fitzgerald Wellington the Third"
	jd := "Position: Principal Distinguished Staff Software Architect\nCompany: Extremely Long Company Name Limited"

	got := Filename(KindResume, resume, jd)
	parts := strings.Split(strings.TrimSuffix(got, ".docx"), "_Resume_")
	if len(parts) != 2 {
		t.Fatalf("unexpected shape: %q", got)
	}
	if len(parts[0]) > 30 {
		t.Fatalf("name too long: %q", parts[0])
	}
	if len(got) > 30+len("_Resume_")+25+1+20+len(".docx") {
		t.Fatalf("filename too long: %q (%d)", got, len(got))
	}
}

func TestFilenameStripsNonLetters(t *testing.T) {
	got := Filename(KindResume, "Jane O'Doe-Smith 3rd", "Position: C++ Engineer (Senior)\nCompany: Acme & Co., Inc.")
	if strings.ContainsAny(got, "'+&(),3") {
		t.Fatalf("non-letter characters survived: %q", got)
	}
}
