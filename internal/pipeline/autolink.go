package pipeline

import (
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// AutolinkBehavior controls where the heading anchor goes.
type AutolinkBehavior string

const (
	AutolinkPrepend AutolinkBehavior = "prepend"
	AutolinkAppend  AutolinkBehavior = "append"
	AutolinkWrap    AutolinkBehavior = "wrap"
)

// AutolinkStage links every heading that has an id to itself.
type AutolinkStage struct {
	Behavior AutolinkBehavior
}

func (AutolinkStage) Name() string { return "autolink" }

func (s AutolinkStage) Apply(root *html.Node) error {
	behavior := s.Behavior
	if behavior == "" {
		behavior = AutolinkPrepend
	}
	switch behavior {
	case AutolinkPrepend, AutolinkAppend, AutolinkWrap:
	default:
		return fmt.Errorf("unknown autolink behavior %q", behavior)
	}

	for _, h := range collect(root, isHeading) {
		id, ok := getAttr(h, "id")
		if !ok || id == "" {
			continue
		}
		switch behavior {
		case AutolinkPrepend:
			h.InsertBefore(iconLink(id), h.FirstChild)
		case AutolinkAppend:
			h.AppendChild(iconLink(id))
		case AutolinkWrap:
			a := element(atom.A, "href", "#"+id)
			for c := h.FirstChild; c != nil; {
				next := c.NextSibling
				h.RemoveChild(c)
				a.AppendChild(c)
				c = next
			}
			h.AppendChild(a)
		}
	}
	return nil
}

func iconLink(id string) *html.Node {
	a := element(atom.A, "aria-hidden", "true", "tabindex", "-1", "href", "#"+id)
	a.AppendChild(element(atom.Span, "class", "icon icon-link"))
	return a
}
