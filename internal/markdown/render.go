package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/sandeshsubedi9/Sandeshblog/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	quoteStyle  = lipgloss.NewStyle().Italic(true).
			BorderStyle(lipgloss.NormalBorder()).BorderLeft(true).
			BorderForeground(lipgloss.Color("8")).PaddingLeft(1)
)

// RenderTerminal renders a Markdown body for display in a terminal.
func RenderTerminal(content string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

func RenderField(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

// RenderPostHeader renders the detail header: title, quoted description and byline.
func RenderPostHeader(p model.Post) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(p.Title))
	sb.WriteString("\n")
	if p.Description != "" {
		sb.WriteString(quoteStyle.Render(fmt.Sprintf("%q", p.Description)))
		sb.WriteString("\n")
	}
	sb.WriteString("  " + RenderField("By", p.Author) + "  " + FormatDate(p.Date) + "\n")
	sb.WriteString("  " + RenderField("Slug", p.Slug) + "\n")
	if p.Image != "" {
		sb.WriteString("  " + RenderField("Image", p.Image) + "\n")
	}
	return sb.String()
}
