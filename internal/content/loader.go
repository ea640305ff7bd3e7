package content

import (
	goslug "github.com/goliatone/go-slug"

	"github.com/sandeshsubedi9/Sandeshblog/internal/logging"
	"github.com/sandeshsubedi9/Sandeshblog/internal/markdown"
	"github.com/sandeshsubedi9/Sandeshblog/internal/model"
)

// Policy decides what the Loader does with a file it cannot accept.
type Policy int

const (
	// FailFast aborts the whole load on the first bad file.
	FailFast Policy = iota
	// SkipInvalid leaves bad files out of the result and logs a warning.
	SkipInvalid
)

// Loader reads the front-matter of every post in a Repository.
type Loader struct {
	repo   Repository
	policy Policy
	log    logging.Logger
}

type LoaderOption func(*Loader)

func WithPolicy(p Policy) LoaderOption {
	return func(l *Loader) { l.policy = p }
}

func WithLoaderLogger(log logging.Logger) LoaderOption {
	return func(l *Loader) { l.log = logging.OrNoOp(log) }
}

func NewLoader(repo Repository, opts ...LoaderOption) *Loader {
	l := &Loader{repo: repo, policy: FailFast, log: logging.NoOp()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Entry is a loaded post together with the file it came from.
type Entry struct {
	File File
	Meta model.FrontMatter
	Post model.Post
	Body string
}

// Load returns one Post per content file, in repository listing order.
func (l *Loader) Load() ([]model.Post, error) {
	entries, err := l.Entries()
	if err != nil {
		return nil, err
	}
	posts := make([]model.Post, len(entries))
	for i, e := range entries {
		posts[i] = e.Post
	}
	return posts, nil
}

// Entries is Load with the backing file and raw front-matter kept.
func (l *Loader) Entries() ([]Entry, error) {
	files, err := l.repo.ListFiles()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(files))
	seen := make(map[string]string, len(files))
	for _, f := range files {
		e, err := l.load(f)
		if err != nil {
			if l.policy == SkipInvalid {
				l.log.Warn("skipping post", "file", f.Name, "error", err)
				continue
			}
			return nil, err
		}

		if prev, dup := seen[e.Post.Slug]; dup {
			err := duplicateSlugError(e.Post.Slug, prev, f.Name)
			if l.policy == SkipInvalid {
				l.log.Warn("skipping post", "file", f.Name, "error", err)
				continue
			}
			return nil, err
		}
		seen[e.Post.Slug] = f.Name

		if !goslug.IsValid(e.Post.Slug) {
			l.log.Debug("slug is not url-safe", "file", f.Name, "slug", e.Post.Slug)
		}
		entries = append(entries, e)
	}
	l.log.Debug("loaded posts", "count", len(entries), "files", len(files))
	return entries, nil
}

func (l *Loader) load(f File) (Entry, error) {
	data, err := l.repo.ReadFile(f.Slug)
	if err != nil {
		return Entry{}, err
	}
	meta, body, err := markdown.ParsePost(data)
	if err != nil {
		return Entry{}, malformedError(f.Name, err)
	}
	return Entry{File: f, Meta: meta, Post: meta.Post(f.Slug), Body: string(body)}, nil
}

// Find returns the one file whose post slug is slug: the slug declared in its
// front-matter, or its file name when none is declared. Files that fail to
// parse are ignored here; Load reports them.
func (l *Loader) Find(slug string) (File, error) {
	files, err := l.repo.ListFiles()
	if err != nil {
		return File{}, err
	}
	var matches []File
	for _, f := range files {
		data, err := l.repo.ReadFile(f.Slug)
		if err != nil {
			continue
		}
		meta, _, err := markdown.ParsePost(data)
		if err != nil {
			continue
		}
		if meta.Post(f.Slug).Slug == slug {
			matches = append(matches, f)
		}
	}
	switch len(matches) {
	case 0:
		return File{}, notFoundError(slug)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		return File{}, duplicateSlugError(slug, names...)
	}
}
