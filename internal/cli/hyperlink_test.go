package cli

import (
	"strings"
	"testing"

	"github.com/aidanlsb/cardboard/internal/ui"
)

func TestFileURL(t *testing.T) {
	tests := []struct {
		absPath string
		want    string
	}{
		{"/home/test/work.vcf", "file:///home/test/work.vcf"},
		{"/home/test/my contacts.vcf", "file:///home/test/my%20contacts.vcf"},
	}
	for _, tt := range tests {
		if got := fileURL(tt.absPath); got != tt.want {
			t.Errorf("fileURL(%q) = %q, want %q", tt.absPath, got, tt.want)
		}
	}
}

func TestFormatFileLink(t *testing.T) {
	prev := hyperlinkEnabled
	t.Cleanup(func() { hyperlinkEnabled = prev })

	on, off := true, false

	t.Run("plain output", func(t *testing.T) {
		hyperlinkEnabled = &off
		if got := formatFileLink("work.vcf", "/tmp/work.vcf", nil); got != "work.vcf" {
			t.Errorf("formatFileLink = %q, want the bare label", got)
		}
		if got := formatFileLink("/tmp/work.vcf", "/tmp/work.vcf", ui.FilePath); got != ui.FilePath("/tmp/work.vcf") {
			t.Errorf("formatFileLink with FilePath = %q", got)
		}
	})

	t.Run("terminal output", func(t *testing.T) {
		hyperlinkEnabled = &on
		got := formatFileLink("work.vcf", "/tmp/work.vcf", nil)
		want := "\x1b]8;;file:///tmp/work.vcf\x07work.vcf\x1b]8;;\x07"
		if got != want {
			t.Errorf("formatFileLink = %q, want %q", got, want)
		}
		if got := formatFileLink("work.vcf", "", nil); got != "work.vcf" {
			t.Errorf("formatFileLink without a path = %q", got)
		}
		if got := formatFileLink("work.vcf", "/tmp/work.vcf", strings.ToUpper); !strings.Contains(got, "WORK.VCF") {
			t.Errorf("render was not applied: %q", got)
		}
	})
}
