// File: cmd/version.go
package cmd

import (
	"fmt"

	"globclip/pkg/version"

	"github.com/spf13/cobra"
)

// versionCmd displays the current version of globclip.
// The --short flag retrieves a concise version string.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of globclip",
	Long:  `Display the current version information of the globclip CLI tool.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		short, err := cmd.Flags().GetBool("short")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		v := version.Get()

		if short {
			fmt.Println(v.Version)
		} else {
			fmt.Println(v.String())
		}

		return nil
	},
}

func init() {
	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")

	rootCmd.AddCommand(versionCmd)
}
