package ooxml

import (
	"fmt"
	"strings"

	"quill/internal/domain/entity"
)

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// Half-point font sizes for the three text roles.
const (
	docxTitleSize   = 48
	docxHeadingSize = 32
	docxBodySize    = 22
)

// ExportWord renders the sections as a Word document: the project title,
// then each section as a heading followed by its content paragraphs.
func (e *exporter) ExportWord(title string, sections []*entity.DocumentSection) ([]byte, error) {
	var body strings.Builder

	body.WriteString(docxParagraph([]textRun{{Text: title, Bold: true}}, docxTitleSize, false))

	for _, section := range sections {
		body.WriteString(docxParagraph([]textRun{{Text: section.Heading, Bold: true}}, docxHeadingSize, false))
		for _, block := range parseBlocks(section.Content) {
			body.WriteString(docxParagraph(block.Runs, docxBodySize, block.Bullet))
		}
	}

	document := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>%s</w:body>
</w:document>`, body.String())

	return writePackage([]packageFile{
		{name: "[Content_Types].xml", body: docxContentTypes},
		{name: "_rels/.rels", body: docxRootRels},
		{name: "word/document.xml", body: document},
	})
}

// docxParagraph renders one paragraph. Bullets are rendered with a literal
// bullet glyph and indentation instead of a numbering part, which keeps the
// package free of a numbering.xml dependency.
func docxParagraph(runs []textRun, size int, bullet bool) string {
	var sb strings.Builder

	sb.WriteString("<w:p>")
	if bullet {
		sb.WriteString(`<w:pPr><w:ind w:left="720"/></w:pPr>`)
		sb.WriteString(docxRun(textRun{Text: "• "}, size))
	}
	for _, run := range runs {
		sb.WriteString(docxRun(run, size))
	}
	sb.WriteString("</w:p>")

	return sb.String()
}

func docxRun(run textRun, size int) string {
	var props strings.Builder
	if run.Bold {
		props.WriteString("<w:b/>")
	}
	props.WriteString(fmt.Sprintf(`<w:sz w:val="%d"/>`, size))

	return fmt.Sprintf(`<w:r><w:rPr>%s</w:rPr><w:t xml:space="preserve">%s</w:t></w:r>`,
		props.String(), escape(run.Text))
}
