// File: pkg/gather/execute.go
package gather

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// stdout is the dispatch target for the buffer and the summary; tests swap it.
var stdout io.Writer = os.Stdout

// Execute runs the whole pipeline: compile the matchers, walk the tree, render
// every selected file in parallel, join the blocks, and dispatch the buffer to
// the configured destination.
func Execute(args *Arguments, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	include, exclude, err := BuildMatcherSets(args.Patterns)
	if err != nil {
		return err
	}

	logger.Debug("Searching in root", zap.String("root", args.Root))

	files, err := CollectFiles(args.Root, args.MaxDepth, include, exclude, logger)
	if err != nil {
		return err
	}

	blocks := RenderAll(args.Root, files, args.MaxWorkers, logger)
	buffer := strings.Join(blocks, "\n")

	switch args.Output {
	case OutputStdout:
		fmt.Fprintln(stdout, buffer)
	case OutputClipboard:
		PrintSummary(stdout, files, buffer)
		if err := clipboard.WriteAll(buffer); err != nil {
			return fmt.Errorf("failed to copy output to clipboard: %w", err)
		}
		logger.Debug("Output copied to clipboard")
	}

	return nil
}
