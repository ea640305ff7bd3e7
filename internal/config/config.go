package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/chroma/v2/styles"
	"gopkg.in/yaml.v3"

	"github.com/sandeshsubedi9/Sandeshblog/internal/logging"
)

const FileName = "blog.yaml"

const (
	DefaultContentDir      = "content"
	DefaultLang            = "en"
	DefaultCodeTheme       = "github-dark"
	DefaultAutolink        = "prepend"
	DefaultCopyVisibility  = "always"
	DefaultFeedbackTimeout = 3 * time.Second
	DefaultServerAddr      = ":3000"
)

// OnMalformed values.
const (
	MalformedFail = "fail"
	MalformedSkip = "skip"
)

type Config struct {
	ContentDir   string         `yaml:"content_dir,omitempty"`
	DocumentLang string         `yaml:"document_lang,omitempty"`
	CodeTheme    string         `yaml:"code_theme,omitempty"`
	Autolink     string         `yaml:"autolink,omitempty"`
	CopyButton   CopyButton     `yaml:"copy_button,omitempty"`
	OnMalformed  string         `yaml:"on_malformed,omitempty"`
	Log          logging.Config `yaml:"log,omitempty"`
	Server       Server         `yaml:"server,omitempty"`
}

type CopyButton struct {
	Visibility       string        `yaml:"visibility,omitempty"`
	FeedbackDuration time.Duration `yaml:"feedback_duration,omitempty"`
}

type Server struct {
	Addr string `yaml:"addr,omitempty"`
}

// Default returns a config with every field set to its default.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.ContentDir == "" {
		c.ContentDir = DefaultContentDir
	}
	if c.DocumentLang == "" {
		c.DocumentLang = DefaultLang
	}
	if c.CodeTheme == "" {
		c.CodeTheme = DefaultCodeTheme
	}
	if c.Autolink == "" {
		c.Autolink = DefaultAutolink
	}
	if c.CopyButton.Visibility == "" {
		c.CopyButton.Visibility = DefaultCopyVisibility
	}
	if c.CopyButton.FeedbackDuration <= 0 {
		c.CopyButton.FeedbackDuration = DefaultFeedbackTimeout
	}
	if c.OnMalformed == "" {
		c.OnMalformed = MalformedFail
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.OnMalformed {
	case MalformedFail, MalformedSkip:
	default:
		return fmt.Errorf("on_malformed must be %q or %q, got %q", MalformedFail, MalformedSkip, c.OnMalformed)
	}
	switch c.CopyButton.Visibility {
	case "always", "hover":
	default:
		return fmt.Errorf("copy_button.visibility must be \"always\" or \"hover\", got %q", c.CopyButton.Visibility)
	}
	if _, ok := styles.Registry[c.CodeTheme]; !ok {
		return fmt.Errorf("code_theme %q is not a known chroma style", c.CodeTheme)
	}
	switch c.Autolink {
	case "prepend", "append", "wrap":
	default:
		return fmt.Errorf("autolink must be prepend, append or wrap, got %q", c.Autolink)
	}
	return nil
}

// ContentPath resolves the content directory against the site root.
func (c *Config) ContentPath(siteDir string) string {
	if filepath.IsAbs(c.ContentDir) {
		return c.ContentDir
	}
	return filepath.Join(siteDir, c.ContentDir)
}

// Load reads siteDir/blog.yaml. A missing file yields the defaults.
func Load(siteDir string) (*Config, error) {
	path := filepath.Join(siteDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(siteDir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(siteDir, 0755); err != nil {
		return fmt.Errorf("creating site dir: %w", err)
	}
	return os.WriteFile(filepath.Join(siteDir, FileName), data, 0644)
}
