package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/aidanlsb/cardboard/internal/view"
)

func TestRenderBoard(t *testing.T) {
	columns := []view.Column{
		{
			Name: "work.vcf",
			Cards: []view.Card{
				{ID: "john-smith", DisplayName: "John Smith", Subtitle: "Acme"},
				{ID: "jane-doe", DisplayName: "Jane Doe", HasInvalidLines: true},
			},
		},
		{Name: "home.vcf"},
	}

	out := RenderBoard(NewDisplayContextWithWidth(80), columns)
	for _, want := range []string{"work.vcf", "(2 contacts)", "home.vcf", "(0 contacts)", "John Smith", "Acme", "jane-doe", SymbolWarning + " Jane Doe"} {
		if !strings.Contains(out, want) {
			t.Errorf("board output missing %q:\n%s", want, out)
		}
	}

	if RenderBoard(nil, nil) != "" {
		t.Error("expected empty output for no columns")
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"Organisation Name", 12, "Organisat..."},
		{"Jürgen Müller-Lüdenscheidt", 14, "Jürgen..."},
		{"abcdef", 2, "ab"},
	}
	for _, tt := range tests {
		got := TruncateWithEllipsis(tt.in, tt.width)
		if got != tt.want {
			t.Errorf("TruncateWithEllipsis(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if lipgloss.Width(got) > tt.width && tt.width > 3 {
			t.Errorf("TruncateWithEllipsis(%q, %d) is %d cells wide", tt.in, tt.width, lipgloss.Width(got))
		}
	}
}

func TestColumnWidth(t *testing.T) {
	d := NewDisplayContextWithWidth(80)
	if got := d.ColumnWidth(2, 2, 2, 16); got != 38 {
		t.Errorf("ColumnWidth(2) = %d, want 38", got)
	}
	if got := d.ColumnWidth(10, 2, 2, 16); got != 16 {
		t.Errorf("ColumnWidth(10) = %d, want minimum 16", got)
	}
	if got := d.ColumnWidth(0, 2, 2, 16); got != 78 {
		t.Errorf("ColumnWidth(0) = %d, want 78", got)
	}
}
