package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/sandeshsubedi9/Sandeshblog/internal/markdown"
)

var showCmd = &cobra.Command{
	Use:   "show [slug]",
	Short: "Preview a post in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var slug string
		if len(args) == 1 {
			slug = args[0]
		} else {
			var err error
			if slug, err = pickPost(); err != nil {
				return err
			}
		}

		p, body, err := renderer.Source(slug)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprint(out, markdown.RenderPostHeader(p))
		if body != "" {
			rendered, err := markdown.RenderTerminal(body)
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)
		}
		return nil
	},
}

// pickPost asks the user to choose a post from the listing.
func pickPost() (string, error) {
	posts, err := loader.Load()
	if err != nil {
		return "", err
	}
	if len(posts) == 0 {
		return "", errors.New("no posts found")
	}

	opts := make([]huh.Option[string], len(posts))
	for i, p := range posts {
		opts[i] = huh.NewOption(fmt.Sprintf("%s (%s)", p.Title, p.Slug), p.Slug)
	}
	var slug string
	err = huh.NewSelect[string]().
		Title("Which post?").
		Options(opts...).
		Value(&slug).
		Run()
	if err != nil {
		return "", fmt.Errorf("pass a slug: blog show <slug>")
	}
	return slug, nil
}

func init() {
	rootCmd.AddCommand(showCmd)
}
