package ooxml

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"quill/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readPackage(t *testing.T, data []byte) map[string]string {
	t.Helper()

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	entries := make(map[string]string, len(reader.File))
	for _, file := range reader.File {
		rc, err := file.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		entries[file.Name] = string(body)
	}

	return entries
}

func sampleSections() []*entity.DocumentSection {
	return []*entity.DocumentSection{
		{Heading: "Introduction", Content: "An **important** overview.\n\nSecond paragraph.", OrderIndex: 0},
		{Heading: "History", Content: "- 1956: Dartmouth Workshop\n- 1997: Deep Blue beats Kasparov", OrderIndex: 1},
	}
}

func TestExportWord_PackageStructure(t *testing.T) {
	data, err := NewExporter().ExportWord("AI Report", sampleSections())
	require.NoError(t, err)

	entries := readPackage(t, data)
	require.Contains(t, entries, "[Content_Types].xml")
	require.Contains(t, entries, "_rels/.rels")
	require.Contains(t, entries, "word/document.xml")

	assert.Contains(t, entries["[Content_Types].xml"], "wordprocessingml.document.main+xml")
}

func TestExportWord_DocumentContent(t *testing.T) {
	data, err := NewExporter().ExportWord("AI Report", sampleSections())
	require.NoError(t, err)

	document := readPackage(t, data)["word/document.xml"]

	// Title and every heading and paragraph make it into the body text.
	assert.Contains(t, document, ">AI Report</w:t>")
	assert.Contains(t, document, ">Introduction</w:t>")
	assert.Contains(t, document, ">History</w:t>")
	assert.Contains(t, document, "Second paragraph.")
	assert.Contains(t, document, "1956: Dartmouth Workshop")

	// The **bold** span becomes its own bold run without the markers.
	assert.Contains(t, document, "<w:b/>")
	assert.Contains(t, document, ">important</w:t>")
	assert.NotContains(t, document, "**")
}

func TestExportWord_EscapesXMLSpecials(t *testing.T) {
	sections := []*entity.DocumentSection{
		{Heading: "Q&A <session>", Content: "5 < 7 & \"quotes\""},
	}

	data, err := NewExporter().ExportWord("R&D", sections)
	require.NoError(t, err)

	document := readPackage(t, data)["word/document.xml"]
	assert.Contains(t, document, "R&amp;D")
	assert.Contains(t, document, "Q&amp;A &lt;session&gt;")
	assert.NotContains(t, document, "<session>")
}

func TestExportSlides_PackageStructure(t *testing.T) {
	data, err := NewExporter().ExportSlides("AI Deck", sampleSections())
	require.NoError(t, err)

	entries := readPackage(t, data)
	require.Contains(t, entries, "[Content_Types].xml")
	require.Contains(t, entries, "ppt/presentation.xml")
	require.Contains(t, entries, "ppt/slideMasters/slideMaster1.xml")
	require.Contains(t, entries, "ppt/slideLayouts/slideLayout1.xml")
	require.Contains(t, entries, "ppt/theme/theme1.xml")

	// Title slide plus one slide per section.
	require.Contains(t, entries, "ppt/slides/slide1.xml")
	require.Contains(t, entries, "ppt/slides/slide2.xml")
	require.Contains(t, entries, "ppt/slides/slide3.xml")
	assert.NotContains(t, entries, "ppt/slides/slide4.xml")

	// Every slide is declared in the content types and the presentation rels.
	for _, part := range []string{"/ppt/slides/slide1.xml", "/ppt/slides/slide2.xml", "/ppt/slides/slide3.xml"} {
		assert.Contains(t, entries["[Content_Types].xml"], part)
	}
	assert.Equal(t, 3, strings.Count(entries["ppt/_rels/presentation.xml.rels"], `relationships/slide"`))
}

func TestExportSlides_SlideContent(t *testing.T) {
	data, err := NewExporter().ExportSlides("AI Deck", sampleSections())
	require.NoError(t, err)

	entries := readPackage(t, data)

	assert.Contains(t, entries["ppt/slides/slide1.xml"], ">AI Deck</a:t>")
	assert.Contains(t, entries["ppt/slides/slide2.xml"], ">Introduction</a:t>")
	assert.Contains(t, entries["ppt/slides/slide2.xml"], ">important</a:t>")
	assert.Contains(t, entries["ppt/slides/slide2.xml"], `b="1"`)

	// Bullet lines keep their bullet but lose the dash marker.
	history := entries["ppt/slides/slide3.xml"]
	assert.Contains(t, history, "buChar")
	assert.Contains(t, history, "1956: Dartmouth Workshop")
	assert.NotContains(t, history, "- 1956")
}

func TestExportSlides_EmptyProjectStillHasTitleSlide(t *testing.T) {
	data, err := NewExporter().ExportSlides("Empty Deck", nil)
	require.NoError(t, err)

	entries := readPackage(t, data)
	require.Contains(t, entries, "ppt/slides/slide1.xml")
	assert.NotContains(t, entries, "ppt/slides/slide2.xml")
}
