package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/aidanlsb/cardboard/internal/vcard"
)

func TestFormatWarning(t *testing.T) {
	ws := []vcard.Warning{
		{Code: vcard.WarnUnknownProperty, Line: 7, Text: "FOO:bar", Message: "unknown property FOO"},
		{Code: vcard.WarnUnterminatedCard, Line: 112, Message: "card is not terminated"},
		{Code: vcard.WarnUnterminatedCard, Message: "no cards"},
	}

	width := LineNumWidth(ws)
	if width != 3 {
		t.Fatalf("LineNumWidth = %d, want 3", width)
	}

	got := FormatWarning(ws[0], width)
	for _, want := range []string{SymbolWarning, "7", "unknown property FOO", "FOO:bar"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatWarning missing %q: %q", want, got)
		}
	}
	if got := FormatWarning(ws[2], width); !strings.Contains(got, "-") {
		t.Errorf("warning without a line should show a dash: %q", got)
	}
}

func TestCount(t *testing.T) {
	if got := Count(1, "contact", "contacts"); got != "(1 contact)" {
		t.Errorf("Count(1) = %q", got)
	}
	if got := Count(3, "contact", "contacts"); got != "(3 contacts)" {
		t.Errorf("Count(3) = %q", got)
	}
}

func TestTableAlignsByCellWidth(t *testing.T) {
	tbl := NewTable(2)
	tbl.AddRow("Müller", "home.vcf")
	tbl.AddRow("Li", "work.vcf")

	lines := strings.Split(strings.TrimRight(tbl.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	first := lipgloss.Width(lines[0][:strings.Index(lines[0], "home.vcf")])
	second := lipgloss.Width(lines[1][:strings.Index(lines[1], "work.vcf")])
	if first != second || first != 8 {
		t.Errorf("columns not aligned:\n%s", tbl.String())
	}

	list := NewList()
	list.Add("one")
	if list.String() != "  • one\n" {
		t.Errorf("list = %q", list.String())
	}
}
