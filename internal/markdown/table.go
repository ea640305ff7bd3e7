package markdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/sandeshsubedi9/Sandeshblog/internal/model"
)

var (
	headerRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle      = lipgloss.NewStyle()
)

func RenderPostTable(posts []model.Post) string {
	if len(posts) == 0 {
		return "No posts found."
	}
	rows := make([][]string, len(posts))
	for i, p := range posts {
		rows[i] = []string{p.Slug, p.Title, p.Author, FormatDate(p.Date)}
	}
	return renderTable([]string{"Slug", "Title", "Author", "Date"}, rows)
}

// RenderTOC renders headings as an indented "on this page" list.
func RenderTOC(headings []model.Heading) string {
	if len(headings) == 0 {
		return "No headings found."
	}
	top := headings[0].Level
	for _, h := range headings {
		top = min(top, h.Level)
	}
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("On this page"))
	sb.WriteString("\n")
	for _, h := range headings {
		sb.WriteString(strings.Repeat("  ", h.Level-top+1))
		sb.WriteString(h.Text + " " + labelStyle.Render("#"+h.ID) + "\n")
	}
	return sb.String()
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerRowStyle
			}
			return cellStyle
		})
	return t.Render()
}
