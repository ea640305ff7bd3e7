package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeshsubedi9/Sandeshblog/internal/config"
	"github.com/sandeshsubedi9/Sandeshblog/internal/content"
	"github.com/sandeshsubedi9/Sandeshblog/internal/markdown"
)

const helloPost = `---
title: Hello
author: Ann
date: 2024-01-15
---
# Hi

## Setup

World
`

// setupSite creates a site directory with the given posts under content/.
func setupSite(t *testing.T, posts map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	contentPath := filepath.Join(dir, config.DefaultContentDir)
	require.NoError(t, os.MkdirAll(contentPath, 0755))
	for name, data := range posts {
		require.NoError(t, os.WriteFile(filepath.Join(contentPath, name), []byte(data), 0644))
	}
	return dir
}

// run executes the root command against site and returns its stdout.
// Cobra keeps flag values between runs, so the ones tests touch are reset.
func run(t *testing.T, site string, args ...string) (string, error) {
	t.Helper()
	siteFlag, contentDir, logLevel = "", "", ""
	require.NoError(t, renderCmd.Flags().Set("output", ""))
	require.NoError(t, tocCmd.Flags().Set("level", "2"))
	require.NoError(t, newCmd.Flags().Set("slug", ""))
	require.NoError(t, newCmd.Flags().Set("author", ""))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--site", site}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	site := setupSite(t, map[string]string{"hello.md": helloPost})
	out, err := run(t, site, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "Ann")
	assert.Contains(t, out, "15 January 2024")
}

func TestList_Empty(t *testing.T) {
	site := setupSite(t, nil)
	out, err := run(t, site, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No posts found.")
}

func TestList_MalformedFailsByDefault(t *testing.T) {
	site := setupSite(t, map[string]string{
		"hello.md": helloPost,
		"bad.md":   "---\n{{invalid yaml\n---\n",
	})
	_, err := run(t, site, "list")
	require.Error(t, err)
	assert.True(t, content.IsMalformedFrontMatter(err))
}

func TestList_MalformedSkipFromConfig(t *testing.T) {
	site := setupSite(t, map[string]string{
		"hello.md": helloPost,
		"bad.md":   "---\n{{invalid yaml\n---\n",
	})
	c := config.Default()
	c.OnMalformed = config.MalformedSkip
	require.NoError(t, config.Save(site, c))

	out, err := run(t, site, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "hello")
}

func TestContentFlag(t *testing.T) {
	site := t.TempDir()
	posts := filepath.Join(site, "posts")
	require.NoError(t, os.MkdirAll(posts, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(posts, "hello.md"), []byte(helloPost), 0644))

	out, err := run(t, site, "--content", "posts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "hello")
}

func TestRender_Stdout(t *testing.T) {
	site := setupSite(t, map[string]string{"hello.md": helloPost})
	out, err := run(t, site, "render", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<title>Hello</title>")
	assert.Contains(t, out, `<h1 id="hi">`)
	assert.NotContains(t, out, "author: Ann")
}

func TestRender_ToFile(t *testing.T) {
	site := setupSite(t, map[string]string{"hello.md": helloPost})
	target := filepath.Join(t.TempDir(), "hello.html")
	_, err := run(t, site, "render", "hello", "-o", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<p>World</p>")
}

func TestRender_NotFound(t *testing.T) {
	site := setupSite(t, map[string]string{"hello.md": helloPost})
	_, err := run(t, site, "render", "does-not-exist")
	require.Error(t, err)
	assert.True(t, content.IsNotFound(err))
}

func TestRender_ConfigTheme(t *testing.T) {
	site := setupSite(t, map[string]string{
		"code.md": "```go\nx := 1\n```\n",
	})
	c := config.Default()
	c.CodeTheme = "monokai"
	require.NoError(t, config.Save(site, c))

	out, err := run(t, site, "render", "code")
	require.NoError(t, err)
	assert.Contains(t, out, `data-theme="monokai"`)
}

func TestToc(t *testing.T) {
	site := setupSite(t, map[string]string{"hello.md": helloPost})
	out, err := run(t, site, "toc", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, "Setup")
	assert.Contains(t, out, "#setup")
	assert.NotContains(t, out, "#hi")

	out, err = run(t, site, "toc", "hello", "--level", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "#hi")
}

func TestToc_BadLevel(t *testing.T) {
	site := setupSite(t, map[string]string{"hello.md": helloPost})
	_, err := run(t, site, "toc", "hello", "--level", "9")
	assert.Error(t, err)
}

func TestShow(t *testing.T) {
	site := setupSite(t, map[string]string{"hello.md": helloPost})
	out, err := run(t, site, "show", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "Ann")
}

func TestSearch(t *testing.T) {
	site := setupSite(t, map[string]string{"hello.md": helloPost})
	out, err := run(t, site, "search", "world")
	require.NoError(t, err)
	assert.Contains(t, out, "hello")

	out, err = run(t, site, "search", "xyznonexistent")
	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")
}

func TestNew(t *testing.T) {
	site := setupSite(t, nil)
	out, err := run(t, site, "new", "Hello World", "--author", "Ann")
	require.NoError(t, err)

	path := filepath.Join(site, config.DefaultContentDir, "hello-world.md")
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	meta, _, err := markdown.ParsePost(data)
	require.NoError(t, err)
	assert.Equal(t, "Hello World", meta.Title)
	assert.Equal(t, "Ann", meta.Author)
	assert.NotEmpty(t, meta.Date)

	out, err = run(t, site, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "hello-world")
}

func TestNew_RefusesOverwrite(t *testing.T) {
	site := setupSite(t, map[string]string{"hello-world.md": helloPost})
	_, err := run(t, site, "new", "Hello World")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(filepath.Join(site, config.DefaultContentDir, "hello-world.md"))
	require.NoError(t, err)
	assert.Equal(t, helloPost, string(data))
}

func TestNew_ExplicitSlug(t *testing.T) {
	site := setupSite(t, nil)
	_, err := run(t, site, "new", "Hello World", "--slug", "greeting")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(site, config.DefaultContentDir, "greeting.md"))
}

func TestTitleAndSlug(t *testing.T) {
	title, slug, err := titleAndSlug("hello-world", "")
	require.NoError(t, err)
	assert.Equal(t, "Hello World", title)
	assert.Equal(t, "hello-world", slug)

	title, slug, err = titleAndSlug("Hello World", "")
	require.NoError(t, err)
	assert.Equal(t, "Hello World", title)
	assert.Equal(t, "hello-world", slug)

	_, _, err = titleAndSlug("   ", "")
	assert.Error(t, err)
}

func TestResolveSite_WalksUp(t *testing.T) {
	site := setupSite(t, map[string]string{"hello.md": helloPost})
	require.NoError(t, config.Save(site, config.Default()))
	nested := filepath.Join(site, "content")

	t.Chdir(nested)
	siteFlag = ""
	got, err := resolveSite()
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(site)
	require.NoError(t, err)
	gotReal, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, want, gotReal)
}
