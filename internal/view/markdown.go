package view

import (
	"fmt"
	"strings"
)

const inlinePhoto = "inline image"

// Markdown renders a card as a markdown document: a heading, the subtitle and
// a table of rows. Inline photo payloads are summarised rather than printed.
func Markdown(card Card) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "## %s\n\n", escapeMarkdown(card.DisplayName))
	if card.Subtitle != "" {
		fmt.Fprintf(&sb, "*%s*\n\n", escapeMarkdown(card.Subtitle))
	}
	if card.HasInvalidLines {
		sb.WriteString("> Some lines of this card could not be read.\n\n")
	}

	if len(card.Rows) == 0 {
		return sb.String()
	}

	sb.WriteString("| Field | Value | Parameters |\n")
	sb.WriteString("|---|---|---|\n")
	for _, row := range card.Rows {
		value := row.Value
		if strings.HasPrefix(value, "data:") {
			value = inlinePhoto
		}
		label := row.Label
		if row.Preferred {
			label = "**" + label + "**"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s |\n",
			label, escapeCell(value), escapeCell(row.Parameters))
	}
	sb.WriteString("\n")

	return sb.String()
}

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func escapeCell(s string) string {
	s = escapeMarkdown(s)
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", "<br>")
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"#", `\#`,
)
