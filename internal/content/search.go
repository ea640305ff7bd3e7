package content

import (
	"strings"

	"github.com/sandeshsubedi9/Sandeshblog/internal/model"
)

// SearchResult is one post matching a query.
type SearchResult struct {
	Post    model.Post
	Snippet string
}

// Search returns the posts whose title, description or body contain query,
// case-insensitively, in listing order. Body matches carry a snippet.
func (l *Loader) Search(query string) ([]SearchResult, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	entries, err := l.Entries()
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	for _, e := range entries {
		switch {
		case matchesQuery(q, e.Body):
			results = append(results, SearchResult{Post: e.Post, Snippet: snippet(e.Body, q)})
		case matchesQuery(q, e.Post.Title), matchesQuery(q, e.Post.Description):
			results = append(results, SearchResult{Post: e.Post})
		}
	}
	return results, nil
}

func matchesQuery(q, text string) bool {
	return strings.Contains(strings.ToLower(text), q)
}

func snippet(body, query string) string {
	lower := strings.ToLower(body)
	idx := strings.Index(lower, query)
	if idx < 0 || len(lower) != len(body) {
		return ""
	}
	start := max(idx-40, 0)
	end := min(idx+len(query)+40, len(body))
	s := strings.ToValidUTF8(body[start:end], "")
	if start > 0 {
		s = "..." + s
	}
	if end < len(body) {
		s += "..."
	}
	return strings.Join(strings.Fields(s), " ")
}
