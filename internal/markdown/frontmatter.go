package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/sandeshsubedi9/Sandeshblog/internal/model"
)

// Parse reads the front-matter block of r into T and returns the remaining body.
// A file without front-matter yields a zero T and the whole input as body.
func Parse[T any](r io.Reader) (T, []byte, error) {
	var meta T
	body, err := frontmatter.Parse(r, &meta)
	if err != nil {
		return meta, nil, fmt.Errorf("parsing frontmatter: %w", err)
	}
	return meta, body, nil
}

// ErrUnclosedFrontMatter is returned when a file opens a front-matter block
// but never closes it.
var ErrUnclosedFrontMatter = errors.New("front-matter block is not closed")

// Lines that open a YAML, TOML or JSON front-matter block.
var openers = []string{"---", "+++", "{"}

// ParsePost splits a content file into its post front-matter and Markdown body.
func ParsePost(data []byte) (model.FrontMatter, []byte, error) {
	meta, body, err := Parse[model.FrontMatter](bytes.NewReader(data))
	if err != nil {
		return meta, nil, err
	}
	if opensFrontMatter(data) && bytes.Equal(bytes.TrimSpace(body), bytes.TrimSpace(data)) {
		return model.FrontMatter{}, nil, fmt.Errorf("parsing frontmatter: %w", ErrUnclosedFrontMatter)
	}
	return meta, body, nil
}

func opensFrontMatter(data []byte) bool {
	first, _, _ := bytes.Cut(bytes.TrimLeft(data, " \t\r\n"), []byte("\n"))
	first = bytes.TrimSpace(first)
	for _, o := range openers {
		if string(first) == o {
			return true
		}
	}
	return false
}

// Marshal serializes meta as YAML front-matter followed by body.
func Marshal[T any](meta T, body string) ([]byte, error) {
	yamlBytes, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(yamlBytes)
	buf.WriteString("---\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if body[len(body)-1] != '\n' {
			buf.WriteString("\n")
		}
	}
	return buf.Bytes(), nil
}
