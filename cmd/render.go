package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <slug>",
	Short: "Render a post to a complete HTML document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		post, err := renderer.Render(args[0])
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			fmt.Fprint(cmd.OutOrStdout(), post.HTML)
			return nil
		}
		if err := os.WriteFile(out, []byte(post.HTML), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Rendered %s to %s\n", post.Slug, out)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "write the HTML to a file instead of stdout")
	rootCmd.AddCommand(renderCmd)
}
