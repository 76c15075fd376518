package cmd

import (
	"globclip/pkg/gather"
	"globclip/pkg/logging"
	"globclip/pkg/version"

	"github.com/spf13/cobra"
)

var (
	flagMaxDepth int
	flagRoot     string
	flagOutput   string
	flagVerbose  bool
)

// rootCmd is the base command: it runs the gather pipeline directly.
var rootCmd = &cobra.Command{
	Use:   "globclip [patterns...]",
	Short: "Copy matching files to the clipboard as one labeled text block",
	Long: `globclip walks a directory tree, selects files matching glob patterns,
concatenates their contents into labeled blocks, and sends the result to the
system clipboard or to stdout.

Patterns support wildcards (*, **, ?), tilde and environment-variable
expansion. A leading '!' marks a pattern as exclusionary; exclusions always
win. A bare file name matches at any depth. With no patterns at all, every
regular file under the root is selected.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, err := gather.ParseOutput(flagOutput)
		if err != nil {
			return err
		}

		logger, err := logging.Setup(flagVerbose, "globclip", version.Get().Version)
		if err != nil {
			return err
		}
		defer logging.Sync(logger)

		return gather.Execute(&gather.Arguments{
			Patterns: args,
			Root:     flagRoot,
			MaxDepth: flagMaxDepth,
			Output:   output,
			Verbose:  flagVerbose,
		}, logger)
	},
}

func init() {
	rootCmd.Flags().IntVar(&flagMaxDepth, "max-depth", -1, "Maximum depth for directory traversal (negative means unlimited)")
	rootCmd.Flags().StringVar(&flagRoot, "root", ".", "Root directory for the file search")
	rootCmd.Flags().StringVar(&flagOutput, "output", "clipboard", "Output destination: stdout or clipboard")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose output")
}

// Execute runs the root command and returns any propagated fatal error.
func Execute() error {
	return rootCmd.Execute()
}
