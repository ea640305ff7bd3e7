package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandeshsubedi9/Sandeshblog/internal/markdown"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := loader.Load()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), markdown.RenderPostTable(posts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
