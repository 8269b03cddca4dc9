// Package ooxml renders projects as Office Open XML documents (.docx and
// .pptx) using only zip and xml primitives. The generator's markdown subset
// (**bold** spans and bullet lines) is the only markup honored; everything
// else passes through as plain text.
package ooxml

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// textRun is one styled span of text within a block.
type textRun struct {
	Text string
	Bold bool
}

// textBlock is one paragraph or bullet line of section content.
type textBlock struct {
	Runs   []textRun
	Bullet bool
}

// bulletPrefixes are the line starters the generator uses for list items.
var bulletPrefixes = []string{"- ", "* ", "• "}

// parseBlocks splits raw content into display blocks. Blank lines separate
// blocks and are not rendered themselves.
func parseBlocks(content string) []textBlock {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	blocks := make([]textBlock, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		bullet := false
		for _, prefix := range bulletPrefixes {
			if strings.HasPrefix(line, prefix) {
				bullet = true
				line = strings.TrimSpace(strings.TrimPrefix(line, prefix))

				break
			}
		}
		if line == "" {
			continue
		}

		blocks = append(blocks, textBlock{Runs: parseRuns(line), Bullet: bullet})
	}

	return blocks
}

// parseRuns splits a line on ** pairs into alternating plain and bold runs.
// An unpaired trailing ** is kept as literal text.
func parseRuns(line string) []textRun {
	segments := strings.Split(line, "**")

	// With an odd split count every odd segment sits between a ** pair.
	// An even count means the last delimiter was unpaired; glue it back.
	if len(segments)%2 == 0 {
		last := len(segments) - 1
		segments[last-1] = segments[last-1] + "**" + segments[last]
		segments = segments[:last]
	}

	runs := make([]textRun, 0, len(segments))
	for i, segment := range segments {
		if segment == "" {
			continue
		}
		runs = append(runs, textRun{Text: segment, Bold: i%2 == 1})
	}

	if len(runs) == 0 {
		return []textRun{{Text: ""}}
	}

	return runs
}

// escape returns the text with XML special characters encoded.
func escape(text string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(text))

	return buf.String()
}
