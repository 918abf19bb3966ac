// File: cmd/version.go
package cmd

import (
	"fmt"

	"projindex/pkg/version"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command.
// The --short flag prints the version number only.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of projindex",
	Long:  `Display the current version information of the projindex CLI tool.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		short, err := cmd.Flags().GetBool("short")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		v := version.Get()
		if short {
			fmt.Fprintln(cmd.OutOrStdout(), v.Version)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
		}

		return nil
	},
}

func init() {
	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")
	RootCmd.AddCommand(versionCmd)
}
