package model

import "strings"

// Fallback values for front-matter keys a post leaves out.
const (
	DefaultTitle       = "Untitled"
	DefaultDescription = ""
	DefaultAuthor      = "Unknown"
	DefaultDate        = "Unknown"
	DefaultImage       = ""
)

// FrontMatter is the metadata block at the top of a content file. Every key is optional.
type FrontMatter struct {
	Title       string `yaml:"title,omitempty" json:"title,omitempty" toml:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
	Author      string `yaml:"author,omitempty" json:"author,omitempty" toml:"author,omitempty"`
	Date        string `yaml:"date,omitempty" json:"date,omitempty" toml:"date,omitempty"`
	Image       string `yaml:"image,omitempty" json:"image,omitempty" toml:"image,omitempty"`
	Slug        string `yaml:"slug,omitempty" json:"slug,omitempty" toml:"slug,omitempty"`
}

// Post is the listing record for one content file.
type Post struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Author      string `json:"author"`
	Date        string `json:"date"`
	Image       string `json:"image"`
	Slug        string `json:"slug"`
}

// Post builds the record for a file named <fileSlug>.md, substituting the
// package defaults for absent keys.
func (fm FrontMatter) Post(fileSlug string) Post {
	return Post{
		Title:       or(fm.Title, DefaultTitle),
		Description: or(fm.Description, DefaultDescription),
		Author:      or(fm.Author, DefaultAuthor),
		Date:        or(fm.Date, DefaultDate),
		Image:       or(fm.Image, DefaultImage),
		Slug:        or(fm.DeclaredSlug(), fileSlug),
	}
}

// DeclaredSlug returns the slug set in front-matter, if any.
func (fm FrontMatter) DeclaredSlug() string {
	return strings.TrimSpace(fm.Slug)
}

func or(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}

// RenderedPost is a post with its body converted to a full HTML document.
type RenderedPost struct {
	Post
	HTML     string    `json:"html_content"`
	Headings []Heading `json:"headings,omitempty"`
}

// Heading is one entry of a post's table of contents.
type Heading struct {
	Level int    `json:"level"`
	ID    string `json:"id"`
	Text  string `json:"text"`
}

// TOC returns the headings at the given level, in document order.
func (p *RenderedPost) TOC(level int) []Heading {
	var out []Heading
	for _, h := range p.Headings {
		if h.Level == level {
			out = append(out, h)
		}
	}
	return out
}
