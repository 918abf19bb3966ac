package cmd

import (
	"fmt"
	"os"

	"projindex/pkg/indexer"
	"projindex/pkg/logging"

	"github.com/spf13/cobra"
)

// treeCmd prints the directory tree that an index run would visit.
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the files an index run would include",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		tree, err := indexer.RenderTree(cwd, indexer.DefaultExclusions(indexer.DefaultOutput), logging.Logger)
		if err != nil {
			return fmt.Errorf("failed to render tree: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), tree)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(treeCmd)
}
