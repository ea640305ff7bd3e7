package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandeshsubedi9/Sandeshblog/internal/markdown"
)

var tocCmd = &cobra.Command{
	Use:   "toc <slug>",
	Short: "Show the headings of a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetInt("level")
		if level < 0 || level > 6 {
			return fmt.Errorf("--level must be between 1 and 6, or 0 for all")
		}

		post, err := renderer.Render(args[0])
		if err != nil {
			return err
		}
		headings := post.Headings
		if level > 0 {
			headings = post.TOC(level)
		}
		fmt.Fprintln(cmd.OutOrStdout(), markdown.RenderTOC(headings))
		return nil
	},
}

func init() {
	tocCmd.Flags().IntP("level", "l", 2, "heading level to list, 0 for all")
	rootCmd.AddCommand(tocCmd)
}
