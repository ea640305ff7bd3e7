package pipeline

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/sandeshsubedi9/Sandeshblog/internal/model"
)

// Headings lists the headings under root that carry an id, in document order.
func Headings(root *html.Node) []model.Heading {
	var out []model.Heading
	for _, h := range collect(root, isHeading) {
		id, ok := getAttr(h, "id")
		if !ok || id == "" {
			continue
		}
		out = append(out, model.Heading{
			Level: headingLevels[h.DataAtom],
			ID:    id,
			Text:  strings.Join(strings.Fields(textContent(h)), " "),
		})
	}
	return out
}

// ExtractHeadings parses serialized HTML and lists its headings.
func ExtractHeadings(s string) ([]model.Heading, error) {
	root, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return Headings(root), nil
}
