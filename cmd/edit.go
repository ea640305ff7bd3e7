package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sandeshsubedi9/Sandeshblog/internal/editor"
)

var editCmd = &cobra.Command{
	Use:   "edit <slug>",
	Short: "Edit a post in $EDITOR",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := renderer.Resolve(args[0])
		if err != nil {
			return err
		}
		return editor.Open(f.Path)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
