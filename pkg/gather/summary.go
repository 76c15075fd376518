// File: pkg/gather/summary.go
package gather

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// PrintSummary writes the clipboard-mode report to w: a header, one line per
// matched file, and a totals line for the buffer that was copied.
func PrintSummary(w io.Writer, files []string, buffer string) {
	header := color.New(color.FgBlue, color.Bold)
	red := color.New(color.FgRed)
	bold := color.New(color.Bold)

	header.Fprintln(w, "Files matched")
	if len(files) == 0 {
		red.Fprintln(w, "No files matched.")
		return
	}
	for _, file := range files {
		fmt.Fprintf(w, "%s %s\n", red.Sprint("+"), file)
	}

	fmt.Fprintf(w, "\nCopied %s to clipboard totalling %s, %s and %s.\n",
		bold.Sprintf("%d files", len(files)),
		bold.Sprintf("%d lines", countLines(buffer)),
		bold.Sprintf("%d words", len(strings.Fields(buffer))),
		bold.Sprintf("%d characters", utf8.RuneCountInString(buffer)),
	)
}

// countLines counts text lines the way an editor reports them: a trailing
// newline does not start another line.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
