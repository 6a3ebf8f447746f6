package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProducesPDF(t *testing.T) {
	exporter := NewPDFExporter()

	document, err := exporter.Render("Quiz", "First paragraph.\n\nSecond paragraph.")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(document, []byte("%PDF")), "output must start with the PDF magic bytes")
	assert.NotEmpty(t, document)
}

func TestRenderLongTextPaginates(t *testing.T) {
	exporter := NewPDFExporter()

	// Enough paragraphs to spill over one A4 page
	paragraph := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 20)
	text := strings.Repeat(paragraph+"\n\n", 15)

	document, err := exporter.Render("Long Answer", text)
	require.NoError(t, err)
	// A multi-page document carries more than one page object
	// (the count includes the single /Type /Pages tree node)
	assert.Greater(t, bytes.Count(document, []byte("/Type /Page")), 2)
}

func TestFilename(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Assignment History 101", "AssignmentHistory101.pdf"},
		{"Quiz", "Quiz.pdf"},
		{"résumé & notes!", "rsumnotes.pdf"},
		{"///", "document.pdf"},
		{"", "document.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, Filename(tt.title))
		})
	}
}
