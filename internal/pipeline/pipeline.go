package pipeline

import (
	"bytes"
	"fmt"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"

	"github.com/sandeshsubedi9/Sandeshblog/internal/model"
)

// DefaultDocumentTitle is used for the <title> of a post without one.
const DefaultDocumentTitle = "Blog Post"

// Stage is one tree-to-tree step of the pipeline.
type Stage interface {
	Name() string
	Apply(root *html.Node) error
}

// Options configures the default stages.
type Options struct {
	Lang             string
	Theme            string
	Autolink         AutolinkBehavior
	CopyVisibility   CopyVisibility
	FeedbackDuration time.Duration
}

type Option func(*Options)

func WithLang(lang string) Option { return func(o *Options) { o.Lang = lang } }

func WithTheme(theme string) Option { return func(o *Options) { o.Theme = theme } }

func WithAutolink(b AutolinkBehavior) Option { return func(o *Options) { o.Autolink = b } }

// WithCopyButton sets the copy button visibility and how long the "copied"
// feedback stays on screen.
func WithCopyButton(v CopyVisibility, feedback time.Duration) Option {
	return func(o *Options) {
		o.CopyVisibility = v
		o.FeedbackDuration = feedback
	}
}

func defaultOptions() Options {
	return Options{
		Lang:             "en",
		Theme:            "github-dark",
		Autolink:         AutolinkPrepend,
		CopyVisibility:   CopyAlways,
		FeedbackDuration: 3 * time.Second,
	}
}

// Processor runs Markdown through the fixed stage list. It holds no per-call
// state and is safe for concurrent use.
type Processor struct {
	md     goldmark.Markdown
	opts   Options
	stages []Stage
}

// Result is the output of one Process call.
type Result struct {
	HTML     string
	Headings []model.Heading
}

func New(opts ...Option) *Processor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Processor{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		opts: o,
		stages: []Stage{
			SlugStage{},
			AutolinkStage{Behavior: o.Autolink},
			HighlightStage{
				Theme:            o.Theme,
				Visibility:       o.CopyVisibility,
				FeedbackDuration: o.FeedbackDuration,
			},
		},
	}
}

// Stages returns the tree stages in the order they run.
func (p *Processor) Stages() []Stage {
	return append([]Stage(nil), p.stages...)
}

// Process converts body into a full HTML document titled title.
func (p *Processor) Process(title string, body []byte) (*Result, error) {
	doc := p.Parse(body)

	root, err := p.Convert(doc, body, title)
	if err != nil {
		return nil, err
	}

	for _, s := range p.stages {
		if err := s.Apply(root); err != nil {
			return nil, fmt.Errorf("%s stage: %w", s.Name(), err)
		}
	}

	out, err := Serialize(root)
	if err != nil {
		return nil, err
	}
	return &Result{HTML: out, Headings: Headings(root)}, nil
}

// Parse builds the Markdown syntax tree for source.
func (p *Processor) Parse(source []byte) ast.Node {
	return p.md.Parser().Parse(text.NewReader(source))
}

// Convert renders the Markdown tree to HTML and places it in the body of a
// document shell carrying title.
func (p *Processor) Convert(doc ast.Node, source []byte, title string) (*html.Node, error) {
	var buf bytes.Buffer
	if err := p.md.Renderer().Render(&buf, source, doc); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	root, body := newDocument(p.opts.Lang, title)
	nodes, err := html.ParseFragment(&buf, body)
	if err != nil {
		return nil, fmt.Errorf("parsing rendered html: %w", err)
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	return root, nil
}

// Serialize writes the tree back out as an HTML string.
func Serialize(root *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return "", fmt.Errorf("serializing html: %w", err)
	}
	return buf.String(), nil
}
