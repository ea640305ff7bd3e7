package content

import (
	"time"

	"github.com/sandeshsubedi9/Sandeshblog/internal/logging"
	"github.com/sandeshsubedi9/Sandeshblog/internal/markdown"
	"github.com/sandeshsubedi9/Sandeshblog/internal/model"
	"github.com/sandeshsubedi9/Sandeshblog/internal/pipeline"
)

// PostRenderer renders one post by slug.
type PostRenderer interface {
	Render(slug string) (*model.RenderedPost, error)
}

// Renderer resolves a slug to its content file and converts it to HTML.
// It keeps no state between calls.
type Renderer struct {
	repo   Repository
	loader *Loader
	proc   *pipeline.Processor
	log    logging.Logger
}

// compile-time check
var _ PostRenderer = (*Renderer)(nil)

type RendererOption func(*Renderer)

func WithRendererLogger(log logging.Logger) RendererOption {
	return func(r *Renderer) { r.log = logging.OrNoOp(log) }
}

// NewRenderer builds a Renderer. A nil processor gets pipeline defaults.
func NewRenderer(repo Repository, proc *pipeline.Processor, opts ...RendererOption) *Renderer {
	if proc == nil {
		proc = pipeline.New()
	}
	r := &Renderer{
		repo:   repo,
		loader: NewLoader(repo),
		proc:   proc,
		log:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve maps slug to exactly one content file. A post is addressed by its
// effective slug only: a file declaring another slug is not reachable under
// its file name, and two files sharing a slug are a DuplicateSlug error.
// A <slug>.md whose front-matter does not parse is returned as is so the
// caller reports it as malformed rather than missing.
func (r *Renderer) Resolve(slug string) (File, error) {
	f, err := r.repo.Stat(slug)
	switch {
	case err == nil:
		data, err := r.repo.ReadFile(f.Slug)
		if err != nil {
			return File{}, err
		}
		if _, _, err := markdown.ParsePost(data); err != nil {
			return f, nil
		}
	case !IsNotFound(err) || !validSlug(slug):
		return File{}, err
	}
	return r.loader.Find(slug)
}

// Source returns the post record and raw Markdown body for slug.
func (r *Renderer) Source(slug string) (model.Post, string, error) {
	f, meta, body, err := r.source(slug)
	if err != nil {
		return model.Post{}, "", err
	}
	return meta.Post(f.Slug), string(body), nil
}

func (r *Renderer) source(slug string) (File, model.FrontMatter, []byte, error) {
	f, err := r.Resolve(slug)
	if err != nil {
		return File{}, model.FrontMatter{}, nil, err
	}
	data, err := r.repo.ReadFile(f.Slug)
	if err != nil {
		return File{}, model.FrontMatter{}, nil, err
	}
	meta, body, err := markdown.ParsePost(data)
	if err != nil {
		return File{}, model.FrontMatter{}, nil, malformedError(f.Name, err)
	}
	return f, meta, body, nil
}

// Render converts the post to a full HTML document. A post either renders
// completely or returns an error; there is no partial output.
func (r *Renderer) Render(slug string) (*model.RenderedPost, error) {
	start := time.Now()
	f, meta, body, err := r.source(slug)
	if err != nil {
		return nil, err
	}

	res, err := r.proc.Process(meta.Title, body)
	if err != nil {
		return nil, transformError(slug, err)
	}

	r.log.Debug("rendered post", "slug", slug, "file", f.Name, "duration", time.Since(start))
	return &model.RenderedPost{
		Post:     meta.Post(f.Slug),
		HTML:     res.HTML,
		Headings: res.Headings,
	}, nil
}
