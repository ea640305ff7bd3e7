// Package pipeline turns a post's Markdown body into a complete HTML document.
//
// The body is parsed with goldmark, rendered into an HTML node tree wrapped in a
// document shell, then passed through an ordered list of stages that each
// rewrite the tree in place: heading ids, heading anchors, and highlighted code
// blocks with a copy button. The final tree is serialized with x/net/html.
package pipeline
