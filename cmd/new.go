package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	goslug "github.com/goliatone/go-slug"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sandeshsubedi9/Sandeshblog/internal/content"
	"github.com/sandeshsubedi9/Sandeshblog/internal/markdown"
	"github.com/sandeshsubedi9/Sandeshblog/internal/model"
)

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create a new post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slugFlag, _ := cmd.Flags().GetString("slug")
		description, _ := cmd.Flags().GetString("description")
		author, _ := cmd.Flags().GetString("author")
		date, _ := cmd.Flags().GetString("date")
		image, _ := cmd.Flags().GetString("image")

		title, slug, err := titleAndSlug(args[0], slugFlag)
		if err != nil {
			return err
		}
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		meta := model.FrontMatter{
			Title:       title,
			Description: description,
			Author:      author,
			Date:        date,
			Image:       image,
		}
		data, err := markdown.Marshal(meta, readStdin())
		if err != nil {
			return err
		}

		dir := cfg.ContentPath(siteDir)
		path, err := writeNew(dir, slug+content.Ext, data)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// titleAndSlug derives both from the argument. A slug-like argument such as
// "hello-world" becomes the title "Hello World".
func titleAndSlug(arg, slugFlag string) (string, string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", "", errors.New("title must not be empty")
	}

	title := arg
	if goslug.IsValid(arg) {
		title = cases.Title(language.English).String(strings.NewReplacer("-", " ", "_", " ").Replace(arg))
	}

	source := title
	if slugFlag != "" {
		source = slugFlag
	}
	slug, err := goslug.Normalize(source)
	if err != nil {
		return "", "", fmt.Errorf("normalizing slug %q: %w", source, err)
	}
	if slug == "" {
		return "", "", fmt.Errorf("cannot derive a slug from %q, pass --slug", source)
	}
	return title, slug, nil
}

// writeNew creates dir/name, refusing to overwrite an existing post.
func writeNew(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating content directory: %w", err)
	}
	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%s already exists", path)
		}
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func readStdin() string {
	info, err := os.Stdin.Stat()
	if err != nil {
		return ""
	}
	// Only read if stdin is explicitly a pipe (not a terminal, not a socket)
	if info.Mode()&os.ModeNamedPipe == 0 && info.Size() == 0 {
		return ""
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return ""
	}
	return string(data)
}

func init() {
	newCmd.Flags().String("slug", "", "file slug (default: derived from the title)")
	newCmd.Flags().StringP("description", "d", "", "post description")
	newCmd.Flags().StringP("author", "a", "", "post author")
	newCmd.Flags().String("date", "", "post date (default: today)")
	newCmd.Flags().String("image", "", "cover image URL")
	rootCmd.AddCommand(newCmd)
}
