package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/aidanlsb/cardboard/internal/view"
)

const (
	boardMargin      = 2
	minColumnWidth   = 16
	boardColumnSpace = 2
)

// RenderBoard lays out columns side by side, one contact per row.
func RenderBoard(display *DisplayContext, columns []view.Column) string {
	if len(columns) == 0 {
		return ""
	}

	if display == nil {
		display = NewDisplayContextWithWidth(DefaultTermWidth)
	}
	width := display.ColumnWidth(len(columns), boardMargin, boardColumnSpace, minColumnWidth)

	headers := make([]string, len(columns))
	depth := 0
	for i, col := range columns {
		headers[i] = fmt.Sprintf("%s %s", col.Name, Count(len(col.Cards), "contact", "contacts"))
		if len(col.Cards) > depth {
			depth = len(col.Cards)
		}
	}

	rows := make([][]string, depth)
	for r := range rows {
		rows[r] = make([]string, len(columns))
		for c, col := range columns {
			if r < len(col.Cards) {
				rows[r][c] = cardCell(col.Cards[r], width)
			}
		}
	}

	tbl := table.New().
		Border(lipgloss.Border{
			Top:    "─",
			Bottom: "─",
			Middle: "─",
		}).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderRow(true).
		BorderColumn(false).
		BorderStyle(Muted).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Width(width)
			if col < len(columns)-1 {
				style = style.PaddingRight(boardColumnSpace)
			}
			if row == table.HeaderRow {
				style = style.Inherit(Bold)
			}
			return style
		}).
		Headers(headers...).
		Rows(rows...)

	return lipgloss.NewStyle().MarginLeft(boardMargin).Render(tbl.Render())
}

func cardCell(card view.Card, width int) string {
	name := TruncateWithEllipsis(card.DisplayName, width)
	if card.HasInvalidLines {
		name = TruncateWithEllipsis(SymbolWarning+" "+card.DisplayName, width)
	}
	lines := []string{AccentBold.Render(name)}
	if card.Subtitle != "" {
		lines = append(lines, Muted.Render(TruncateWithEllipsis(card.Subtitle, width)))
	}
	lines = append(lines, Muted.Render(card.ID))
	return strings.Join(lines, "\n")
}

// TruncateWithEllipsis shortens s to at most maxWidth cells, breaking at a
// word boundary when one is close.
func TruncateWithEllipsis(s string, maxWidth int) string {
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	if maxWidth <= 3 {
		if maxWidth > len(runes) {
			maxWidth = len(runes)
		}
		return string(runes[:maxWidth])
	}

	cut := runes
	for lipgloss.Width(string(cut)) > maxWidth-3 {
		cut = cut[:len(cut)-1]
	}
	truncated := string(cut)
	if i := strings.LastIndex(truncated, " "); i > len(truncated)/2 {
		truncated = truncated[:i]
	}
	return truncated + "..."
}
