package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeshsubedi9/Sandeshblog/internal/model"
)

func TestLoad_OnePostPerFile(t *testing.T) {
	repo := mapRepo(t, map[string]string{
		"hello.md":  helloPost,
		"second.md": "---\ntitle: Second\n---\nbody\n",
		"bare.md":   "no front-matter here\n",
	})

	posts, err := NewLoader(repo).Load()
	require.NoError(t, err)
	require.Len(t, posts, 3)

	assert.Equal(t, "bare", posts[0].Slug)
	assert.Equal(t, model.DefaultTitle, posts[0].Title)
	assert.Equal(t, model.DefaultAuthor, posts[0].Author)
	assert.Equal(t, model.DefaultDate, posts[0].Date)

	assert.Equal(t, "hello", posts[1].Slug)
	assert.Equal(t, "Hello", posts[1].Title)
	assert.Equal(t, "Ann", posts[1].Author)
	assert.Equal(t, "2024-01-15", posts[1].Date)

	assert.Equal(t, "second", posts[2].Slug)
	assert.Equal(t, model.DefaultAuthor, posts[2].Author)
}

func TestLoad_Empty(t *testing.T) {
	posts, err := NewLoader(mapRepo(t, nil)).Load()
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestLoad_DeclaredSlug(t *testing.T) {
	repo := mapRepo(t, map[string]string{
		"2024-01-hello.md": "---\ntitle: Hello\nslug: hello-world\n---\n",
	})
	posts, err := NewLoader(repo).Load()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "hello-world", posts[0].Slug)
}

func TestLoad_MalformedFailFast(t *testing.T) {
	repo := mapRepo(t, map[string]string{
		"good.md": helloPost,
		"bad.md":  "---\n{{invalid yaml\n---\n",
	})
	_, err := NewLoader(repo).Load()
	require.Error(t, err)
	assert.True(t, IsMalformedFrontMatter(err))
	assert.Contains(t, err.Error(), "bad.md")
}

func TestLoad_MalformedSkip(t *testing.T) {
	repo := mapRepo(t, map[string]string{
		"good.md": helloPost,
		"bad.md":  "---\n{{invalid yaml\n---\n",
	})
	posts, err := NewLoader(repo, WithPolicy(SkipInvalid)).Load()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "good", posts[0].Slug)
}

func TestLoad_UnclosedFrontMatter(t *testing.T) {
	repo := mapRepo(t, map[string]string{
		"good.md": helloPost,
		"open.md": "---\ntitle: Secret\nauthor: Bob\n\n# Hi\n",
	})

	_, err := NewLoader(repo).Load()
	require.Error(t, err)
	assert.True(t, IsMalformedFrontMatter(err))
	assert.Contains(t, err.Error(), "open.md")

	posts, err := NewLoader(repo, WithPolicy(SkipInvalid)).Load()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "good", posts[0].Slug)
}

func TestLoad_IgnoresUnaddressableNames(t *testing.T) {
	repo := mapRepo(t, map[string]string{
		".md":    helloPost,
		`a\b.md`: helloPost,
		"ok.md":  helloPost,
	})
	posts, err := NewLoader(repo).Load()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "ok", posts[0].Slug)
}

func TestLoad_DuplicateSlug(t *testing.T) {
	repo := mapRepo(t, map[string]string{
		"a.md": "---\nslug: same\n---\n",
		"b.md": "---\nslug: same\n---\n",
	})

	_, err := NewLoader(repo).Load()
	require.Error(t, err)
	assert.True(t, IsDuplicateSlug(err))

	posts, err := NewLoader(repo, WithPolicy(SkipInvalid)).Load()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "same", posts[0].Slug)
}

func TestLoad_NilLoggerOption(t *testing.T) {
	repo := mapRepo(t, map[string]string{"hello.md": helloPost})
	posts, err := NewLoader(repo, WithLoaderLogger(nil)).Load()
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestEntries_KeepsFile(t *testing.T) {
	repo := mapRepo(t, map[string]string{"hello.md": helloPost})
	entries, err := NewLoader(repo).Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hello.md", entries[0].File.Name)
	assert.Equal(t, "Hello", entries[0].Meta.Title)
	assert.Equal(t, "", entries[0].Meta.Description)
}

func TestFind(t *testing.T) {
	repo := mapRepo(t, map[string]string{
		"2024-hello.md": "---\nslug: hello-world\n---\n",
		"other.md":      helloPost,
		"bad.md":        "---\n{{invalid yaml\n---\n",
	})
	l := NewLoader(repo)

	f, err := l.Find("hello-world")
	require.NoError(t, err)
	assert.Equal(t, "2024-hello.md", f.Name)

	f, err = l.Find("other")
	require.NoError(t, err)
	assert.Equal(t, "other.md", f.Name)

	// declared slug wins over the file name
	_, err = l.Find("2024-hello")
	assert.True(t, IsNotFound(err))

	_, err = l.Find("missing")
	assert.True(t, IsNotFound(err))
}

func TestFind_Ambiguous(t *testing.T) {
	repo := mapRepo(t, map[string]string{
		"a.md": "---\nslug: same\n---\n",
		"b.md": "---\nslug: same\n---\n",
	})
	_, err := NewLoader(repo).Find("same")
	require.Error(t, err)
	assert.True(t, IsDuplicateSlug(err))
}
