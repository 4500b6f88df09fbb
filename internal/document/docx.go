package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"strconv"
	"strings"
)

const wmlNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// MIMEType is the content type for generated .docx downloads.
const MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relationshipsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// BuildDocx packages the paragraph sequence into a minimal single-part
// DOCX archive.
func BuildDocx(paragraphs []Paragraph) ([]byte, error) {
	if len(paragraphs) == 0 {
		return nil, errors.New("no paragraphs to render")
	}

	var output bytes.Buffer
	writer := zip.NewWriter(&output)

	entries := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relationshipsXML},
		{"word/document.xml", documentXML(paragraphs)},
	}
	for _, entry := range entries {
		dst, err := writer.Create(entry.name)
		if err != nil {
			return nil, err
		}
		if _, err := dst.Write([]byte(entry.content)); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

func documentXML(paragraphs []Paragraph) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString("\n")
	b.WriteString(`<w:document xmlns:w="` + wmlNamespace + `"><w:body>`)
	for _, paragraph := range paragraphs {
		writeParagraphXML(&b, paragraph)
	}
	b.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/></w:sectPr>`)
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func writeParagraphXML(b *strings.Builder, paragraph Paragraph) {
	b.WriteString("<w:p>")
	writeParagraphProps(b, paragraph)
	for _, run := range paragraph.Runs {
		writeRunXML(b, run, false)
	}
	if paragraph.RightTabRun != nil {
		writeRunXML(b, *paragraph.RightTabRun, true)
	}
	b.WriteString("</w:p>")
}

func writeParagraphProps(b *strings.Builder, paragraph Paragraph) {
	var props strings.Builder
	if paragraph.Alignment != "" {
		props.WriteString(`<w:jc w:val="` + string(paragraph.Alignment) + `"/>`)
	}
	if paragraph.IndentTwips > 0 {
		props.WriteString(`<w:ind w:left="` + strconv.Itoa(paragraph.IndentTwips) + `"/>`)
	}
	if paragraph.SpacingBefore > 0 || paragraph.SpacingAfter > 0 {
		props.WriteString(`<w:spacing`)
		if paragraph.SpacingBefore > 0 {
			props.WriteString(` w:before="` + strconv.Itoa(paragraph.SpacingBefore) + `"`)
		}
		if paragraph.SpacingAfter > 0 {
			props.WriteString(` w:after="` + strconv.Itoa(paragraph.SpacingAfter) + `"`)
		}
		props.WriteString(`/>`)
	}
	if paragraph.RightTabRun != nil {
		props.WriteString(`<w:tabs><w:tab w:val="right" w:pos="` + strconv.Itoa(rightTabStopTwips) + `"/></w:tabs>`)
	}
	if props.Len() > 0 {
		b.WriteString("<w:pPr>")
		b.WriteString(props.String())
		b.WriteString("</w:pPr>")
	}
}

// writeRunXML emits a run; rPr always precedes the text element. A tabbed
// run pushes its text to the paragraph's right tab stop.
func writeRunXML(b *strings.Builder, run Run, tabbed bool) {
	b.WriteString("<w:r>")
	var props strings.Builder
	if run.Bold {
		props.WriteString("<w:b/>")
	}
	if run.Italic {
		props.WriteString("<w:i/>")
	}
	if run.Size > 0 {
		size := strconv.Itoa(run.Size)
		props.WriteString(`<w:sz w:val="` + size + `"/><w:szCs w:val="` + size + `"/>`)
	}
	if props.Len() > 0 {
		b.WriteString("<w:rPr>")
		b.WriteString(props.String())
		b.WriteString("</w:rPr>")
	}
	if tabbed {
		b.WriteString("<w:tab/>")
	}
	b.WriteString(`<w:t xml:space="preserve">`)
	b.WriteString(escapeXML(run.Text))
	b.WriteString("</w:t></w:r>")
}

func escapeXML(text string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(text)); err != nil {
		return text
	}
	return buf.String()
}
