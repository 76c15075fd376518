// File: pkg/gather/config.go
package gather

import "fmt"

// Output selects the destination for the combined buffer.
type Output int

const (
	// OutputClipboard copies the buffer to the system clipboard and prints a
	// human-readable summary to stdout. This is the default destination.
	OutputClipboard Output = iota
	// OutputStdout prints the raw buffer to stdout with no summary.
	OutputStdout
)

// ParseOutput converts the --output flag value into an Output destination.
func ParseOutput(s string) (Output, error) {
	switch s {
	case "clipboard":
		return OutputClipboard, nil
	case "stdout":
		return OutputStdout, nil
	default:
		return 0, fmt.Errorf("invalid output destination %q (expected stdout or clipboard)", s)
	}
}

// String returns the flag spelling of the destination.
func (o Output) String() string {
	if o == OutputStdout {
		return "stdout"
	}
	return "clipboard"
}

// Arguments holds the configuration options for one gather run.
type Arguments struct {
	Patterns   []string // Raw glob patterns; a leading '!' marks a pattern as exclusionary.
	Root       string   // Root directory for the file search.
	MaxDepth   int      // Maximum traversal depth below the root; negative means unlimited.
	Output     Output   // Destination for the combined buffer.
	MaxWorkers int      // Number of concurrent file readers; values <= 0 use the CPU count.
	Verbose    bool     // If true, debug diagnostics are emitted on stderr.
}
