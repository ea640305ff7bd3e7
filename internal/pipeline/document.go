package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// newDocument builds <!DOCTYPE html><html><head>…</head><body></body></html>
// and returns the document root and the empty body.
func newDocument(lang, title string) (root, body *html.Node) {
	if strings.TrimSpace(title) == "" {
		title = DefaultDocumentTitle
	}
	if lang == "" {
		lang = "en"
	}

	root = &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := element(atom.Html, "lang", lang)
	root.AppendChild(htmlEl)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, "charset", "utf-8"))
	titleEl := element(atom.Title)
	titleEl.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	head.AppendChild(titleEl)
	head.AppendChild(element(atom.Meta, "name", "viewport", "content", "width=device-width, initial-scale=1"))
	htmlEl.AppendChild(head)

	body = element(atom.Body)
	htmlEl.AppendChild(body)
	return root, body
}
