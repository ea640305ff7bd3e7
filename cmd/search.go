package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search post titles, descriptions and bodies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := loader.Search(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No results found.")
			return nil
		}
		for _, r := range results {
			fmt.Fprintf(out, "  %s  %s\n", r.Post.Slug, r.Post.Title)
			if r.Snippet != "" {
				fmt.Fprintf(out, "    %s\n", r.Snippet)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
