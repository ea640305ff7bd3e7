package pipeline

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Fragment returns the content of a rendered document's <body>, preceded by
// any <style> elements from its <head>, for embedding in another page.
func Fragment(document string) (string, error) {
	root, err := html.Parse(strings.NewReader(document))
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}

	var buf bytes.Buffer
	if head := findFirst(root, atom.Head); head != nil {
		for c := head.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || c.DataAtom != atom.Style {
				continue
			}
			if err := html.Render(&buf, c); err != nil {
				return "", fmt.Errorf("serializing html: %w", err)
			}
		}
	}
	if body := findFirst(root, atom.Body); body != nil {
		for c := body.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", fmt.Errorf("serializing html: %w", err)
			}
		}
	}
	return buf.String(), nil
}
