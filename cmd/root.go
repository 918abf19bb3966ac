package cmd

import (
	"fmt"

	"projindex/pkg/indexer"
	"projindex/pkg/logging"
	"projindex/pkg/version"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	debug      bool
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "projindex",
	Short: "projindex concatenates a project's files into a single index",
	Long: `projindex walks the current directory, skips build output, lock files,
credentials and binary assets, and writes every remaining file to one text file
with a banner naming its relative path.`,
	Args:          cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Setup(debug, version.AppName, version.Version); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := indexer.GenerateProjectIndex(outputPath, logging.Logger); err != nil {
			return err
		}

		success := color.New(color.FgGreen)
		success.Fprintf(cmd.OutOrStdout(), "Operation completed successfully. Output saved to %s\n", outputPath)
		return nil
	},
}

func init() {
	RootCmd.Flags().StringVarP(&outputPath, "output", "o", indexer.DefaultOutput, "Path of the index file to write")
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable development logging")
}

// Execute runs the root command and returns any error it produced.
func Execute() error {
	return RootCmd.Execute()
}
