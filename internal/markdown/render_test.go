package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeshsubedi9/Sandeshblog/internal/model"
)

func TestRenderPostHeader(t *testing.T) {
	out := RenderPostHeader(model.Post{
		Title:       "Hello",
		Description: "First post",
		Author:      "Ann",
		Date:        "2024-01-15",
		Slug:        "hello",
	})
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, `"First post"`)
	assert.Contains(t, out, "Ann")
	assert.Contains(t, out, "15 January 2024")
	assert.NotContains(t, out, "Image")
}

func TestRenderTerminal(t *testing.T) {
	out, err := RenderTerminal("# Title\n\nSome *text*.")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "text")
}

func TestRenderPostTable_Empty(t *testing.T) {
	assert.Equal(t, "No posts found.", RenderPostTable(nil))
}

func TestRenderPostTable_Rows(t *testing.T) {
	out := RenderPostTable([]model.Post{
		{Slug: "hello", Title: "Hello", Author: "Ann", Date: "2024-01-01"},
	})
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "01 January 2024")
}

func TestRenderTOC(t *testing.T) {
	out := RenderTOC([]model.Heading{
		{Level: 2, ID: "setup", Text: "Setup"},
		{Level: 3, ID: "linux", Text: "Linux"},
	})
	assert.Contains(t, out, "Setup")
	assert.Contains(t, out, "#linux")
	assert.Equal(t, "No headings found.", RenderTOC(nil))
}
