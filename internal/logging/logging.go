// Package logging provides the leveled logger used across the blog packages.
package logging

import (
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// Logger is the leveled logging contract. It mirrors github.com/goliatone/go-logger
// so a glog logger can be plugged in without further adapters.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config selects the logger level and output format.
type Config struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Enabled reports whether the config asks for any logging at all.
func (c Config) Enabled() bool {
	return strings.TrimSpace(c.Level) != ""
}

// Provider hands out named loggers.
type Provider struct {
	root *glog.BaseLogger
}

// NewProvider builds a go-logger backed provider. An empty level yields a
// provider whose loggers discard everything.
func NewProvider(cfg Config) (*Provider, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	level := normalizeLevel(cfg.Level)
	if level == "" {
		return nil, fmt.Errorf("logging: unsupported level %q", cfg.Level)
	}
	options := []glog.Option{glog.WithLevel(level)}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("logging: unsupported format %q", cfg.Format)
	}

	return &Provider{root: glog.NewLogger(options...)}, nil
}

// GetLogger returns the child logger for a component. A nil provider returns NoOp.
func (p *Provider) GetLogger(name string) Logger {
	if p == nil || p.root == nil {
		return NoOp()
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return p.root
	}
	return p.root.GetLogger(name)
}

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	default:
		return ""
	}
}

type noop struct{}

func (noop) Debug(string, ...any) {}
func (noop) Info(string, ...any)  {}
func (noop) Warn(string, ...any)  {}
func (noop) Error(string, ...any) {}

// NoOp returns a logger that drops every entry.
func NoOp() Logger { return noop{} }

// OrNoOp returns l, or NoOp when l is nil.
func OrNoOp(l Logger) Logger {
	if l == nil {
		return NoOp()
	}
	return l
}
