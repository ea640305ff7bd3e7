package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrontMatter_Post_AllFields(t *testing.T) {
	fm := FrontMatter{
		Title:       "Hello",
		Description: "First post",
		Author:      "Sandesh",
		Date:        "2024-01-01",
		Image:       "/img/hello.png",
		Slug:        "hello-world",
	}
	p := fm.Post("hello")
	assert.Equal(t, "Hello", p.Title)
	assert.Equal(t, "First post", p.Description)
	assert.Equal(t, "Sandesh", p.Author)
	assert.Equal(t, "2024-01-01", p.Date)
	assert.Equal(t, "/img/hello.png", p.Image)
	assert.Equal(t, "hello-world", p.Slug)
}

func TestFrontMatter_Post_Defaults(t *testing.T) {
	p := FrontMatter{}.Post("hello")
	assert.Equal(t, Post{
		Title:       DefaultTitle,
		Description: DefaultDescription,
		Author:      DefaultAuthor,
		Date:        DefaultDate,
		Image:       DefaultImage,
		Slug:        "hello",
	}, p)
}

func TestFrontMatter_Post_BlankCountsAsAbsent(t *testing.T) {
	p := FrontMatter{Author: "   ", Slug: " "}.Post("hello")
	assert.Equal(t, "Unknown", p.Author)
	assert.Equal(t, "hello", p.Slug)
}

func TestFrontMatter_DeclaredSlug(t *testing.T) {
	assert.Equal(t, "", FrontMatter{}.DeclaredSlug())
	assert.Equal(t, "css", FrontMatter{Slug: " css "}.DeclaredSlug())
}

func TestRenderedPost_TOC(t *testing.T) {
	p := &RenderedPost{Headings: []Heading{
		{Level: 1, ID: "intro", Text: "Intro"},
		{Level: 2, ID: "setup", Text: "Setup"},
		{Level: 3, ID: "linux", Text: "Linux"},
		{Level: 2, ID: "usage", Text: "Usage"},
	}}
	toc := p.TOC(2)
	assert.Len(t, toc, 2)
	assert.Equal(t, "setup", toc[0].ID)
	assert.Equal(t, "usage", toc[1].ID)
	assert.Empty(t, p.TOC(6))
}
