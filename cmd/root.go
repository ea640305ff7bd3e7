package cmd

import (
	"fmt"
	"os"

	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/spf13/cobra"

	"github.com/sandeshsubedi9/Sandeshblog/internal/config"
	"github.com/sandeshsubedi9/Sandeshblog/internal/content"
	"github.com/sandeshsubedi9/Sandeshblog/internal/logging"
	"github.com/sandeshsubedi9/Sandeshblog/internal/pipeline"
)

var (
	version    = "dev"
	siteFlag   string
	contentDir string
	logLevel   string

	siteDir  string
	cfg      *config.Config
	logs     *logging.Provider
	repo     *content.FSRepository
	loader   *content.Loader
	renderer *content.Renderer
)

var rootCmd = &cobra.Command{
	Use:     "blog",
	Short:   "Markdown blog content pipeline",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveSite()
		if err != nil {
			return err
		}
		siteDir = dir

		cfg, err = config.Load(siteDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if contentDir != "" {
			cfg.ContentDir = contentDir
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		} else if cmd.Name() == "serve" && !cfg.Log.Enabled() {
			cfg.Log.Level = "info"
		}

		logs, err = logging.NewProvider(cfg.Log)
		if err != nil {
			return err
		}
		setup()
		return nil
	},
	SilenceUsage: true,
}

// resolveSite returns --site, else the nearest directory holding blog.yaml,
// else the working directory.
func resolveSite() (string, error) {
	if siteFlag != "" {
		return siteFlag, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	found, err := config.Find(cwd)
	if err != nil {
		return "", fmt.Errorf("finding %s: %w", config.FileName, err)
	}
	if found != "" {
		return found, nil
	}
	return cwd, nil
}

// setup wires the repository, loader and renderer from cfg.
func setup() {
	policy := content.FailFast
	if cfg.OnMalformed == config.MalformedSkip {
		policy = content.SkipInvalid
	}

	repo = content.NewDirRepository(cfg.ContentPath(siteDir))
	loader = content.NewLoader(repo,
		content.WithPolicy(policy),
		content.WithLoaderLogger(logs.GetLogger("loader")),
	)
	proc := pipeline.New(
		pipeline.WithLang(cfg.DocumentLang),
		pipeline.WithTheme(cfg.CodeTheme),
		pipeline.WithAutolink(pipeline.AutolinkBehavior(cfg.Autolink)),
		pipeline.WithCopyButton(pipeline.CopyVisibility(cfg.CopyButton.Visibility), cfg.CopyButton.FeedbackDuration),
	)
	renderer = content.NewRenderer(repo, proc, content.WithRendererLogger(logs.GetLogger("renderer")))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&siteFlag, "site", "", "site directory containing "+config.FileName+" (default: nearest parent with one, else cwd)")
	rootCmd.PersistentFlags().StringVar(&contentDir, "content", "", "content directory, overrides content_dir")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	mtpOpts := &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"list": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Table of posts with slug, title, author and date",
				},
			},
			"show": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Post header and terminal-rendered body",
				},
				Examples: []mtp.Example{
					{Description: "Preview a post in the terminal", Command: "blog show hello"},
					{Description: "Pick a post interactively", Command: "blog show"},
				},
			},
			"render": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/html",
					Description: "Complete HTML document for the post",
				},
				Examples: []mtp.Example{
					{Description: "Render a post to stdout", Command: "blog render hello"},
					{Description: "Render a post to a file", Command: "blog render hello -o hello.html"},
				},
			},
			"toc": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Table of heading ids and text at the chosen level",
				},
				Examples: []mtp.Example{
					{Description: "List section headings", Command: "blog toc hello"},
					{Description: "List subsection headings", Command: "blog toc hello --level 3"},
				},
			},
			"search": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Matching posts with slug, title and snippet",
				},
				Examples: []mtp.Example{
					{Description: "Search titles, descriptions and bodies", Command: "blog search \"goroutines\""},
				},
			},
			"new": {
				Stdin: &mtp.IODescriptor{
					ContentType: "text/markdown",
					Description: "Markdown body content for the post",
				},
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Path of the created file",
				},
				Examples: []mtp.Example{
					{Description: "Create a post", Command: "blog new \"Hello World\" --author Ann"},
					{Description: "Create with piped body", Command: "echo '# Intro' | blog new \"Hello World\""},
					{Description: "Create with explicit slug", Command: "blog new \"Hello World\" --slug hello"},
				},
			},
			"edit": {
				Examples: []mtp.Example{
					{Description: "Open a post in $EDITOR", Command: "blog edit hello"},
				},
			},
			"serve": {
				Examples: []mtp.Example{
					{Description: "Serve the blog on the configured address", Command: "blog serve"},
					{Description: "Serve on another port", Command: "blog serve --addr :8080"},
				},
			},
		},
	}

	mtp.WithDescribe(rootCmd, mtpOpts)
}

func Execute() error {
	return rootCmd.Execute()
}
