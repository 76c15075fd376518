package gather

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPrintSummary_NoFiles(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	PrintSummary(&buf, nil, "")

	assert.Equal(t, "Files matched\nNo files matched.\n", buf.String())
}

func TestPrintSummary_Totals(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	PrintSummary(&buf, []string{"a.md", "docs/b.md"}, "one two\nthree\n")

	out := buf.String()
	assert.Contains(t, out, "Files matched\n")
	assert.Contains(t, out, "+ a.md\n")
	assert.Contains(t, out, "+ docs/b.md\n")
	assert.Contains(t, out, "Copied 2 files to clipboard totalling 2 lines, 3 words and 14 characters.\n")
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "single line no newline", input: "hello", want: 1},
		{name: "single line with newline", input: "hello\n", want: 1},
		{name: "two lines", input: "a\nb", want: 2},
		{name: "trailing newline does not add a line", input: "a\nb\n", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countLines(tt.input))
		})
	}
}
