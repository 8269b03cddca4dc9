package ooxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlocks(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []textBlock
	}{
		{
			name:    "plain paragraphs",
			content: "First paragraph.\n\nSecond paragraph.",
			want: []textBlock{
				{Runs: []textRun{{Text: "First paragraph."}}},
				{Runs: []textRun{{Text: "Second paragraph."}}},
			},
		},
		{
			name:    "bullet markers stripped",
			content: "- dash bullet\n* star bullet\n• unicode bullet",
			want: []textBlock{
				{Runs: []textRun{{Text: "dash bullet"}}, Bullet: true},
				{Runs: []textRun{{Text: "star bullet"}}, Bullet: true},
				{Runs: []textRun{{Text: "unicode bullet"}}, Bullet: true},
			},
		},
		{
			name:    "windows line endings",
			content: "one\r\ntwo",
			want: []textBlock{
				{Runs: []textRun{{Text: "one"}}},
				{Runs: []textRun{{Text: "two"}}},
			},
		},
		{
			name:    "empty content",
			content: "   \n\n",
			want:    []textBlock{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseBlocks(tt.content))
		})
	}
}

func TestParseRuns(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []textRun
	}{
		{
			name: "no markup",
			line: "plain text",
			want: []textRun{{Text: "plain text"}},
		},
		{
			name: "bold span in the middle",
			line: "an **important** note",
			want: []textRun{
				{Text: "an "},
				{Text: "important", Bold: true},
				{Text: " note"},
			},
		},
		{
			name: "bold at the start",
			line: "**1956:** Dartmouth Workshop",
			want: []textRun{
				{Text: "1956:", Bold: true},
				{Text: " Dartmouth Workshop"},
			},
		},
		{
			name: "unpaired marker kept literal",
			line: "broken **markup",
			want: []textRun{{Text: "broken **markup"}},
		},
		{
			name: "two bold spans",
			line: "**a** and **b**",
			want: []textRun{
				{Text: "a", Bold: true},
				{Text: " and "},
				{Text: "b", Bold: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRuns(tt.line))
		})
	}
}

func TestEscape(t *testing.T) {
	require.Equal(t, "a &amp; b &lt;c&gt;", escape("a & b <c>"))
}
