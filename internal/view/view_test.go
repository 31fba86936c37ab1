package view

import (
	"strings"
	"testing"

	"github.com/aidanlsb/cardboard/internal/vcard"
)

const card = "BEGIN:VCARD\r\n" +
	"VERSION:3.0\r\n" +
	"FN:Freya Olsen\r\n" +
	"N:Olsen;Freya;;;\r\n" +
	"TEL;TYPE=CELL;PREF:555-1234\r\n" +
	"EMAIL;INTERNET:freya@example.com\r\n" +
	"PHOTO;ENCODING=b;TYPE=PNG:iVBORw0KGgo=\r\n" +
	"X-SKYPE-USERNAME:freya.o\r\n" +
	"END:VCARD"

func TestProject(t *testing.T) {
	c := vcard.ParseContact(card)
	c.ID = "freya-olsen"

	got := Project(c, "")

	if got.ID != "freya-olsen" || got.DisplayName != "Freya Olsen" {
		t.Errorf("card = %+v", got)
	}
	if got.Subtitle != "555-1234" {
		t.Errorf("Subtitle = %q, want 555-1234", got.Subtitle)
	}
	if got.Photo != "data:image/png;base64,iVBORw0KGgo=" {
		t.Errorf("Photo = %q", got.Photo)
	}
	if len(got.Rows) != 6 {
		t.Fatalf("got %d rows, want 6", len(got.Rows))
	}

	tel := got.Rows[2]
	want := Row{
		Label:      "Phone (cell)",
		Name:       "TEL",
		Value:      "555-1234",
		Parameters: "TYPE=CELL, PREF",
		Type:       "CELL",
		Preferred:  true,
	}
	if tel != want {
		t.Errorf("TEL row = %+v, want %+v", tel, want)
	}

	if got.Rows[3].Label != "Email (internet)" {
		t.Errorf("EMAIL label = %q", got.Rows[3].Label)
	}
	if got.Rows[5].Label != "Skype username" {
		t.Errorf("vendor label = %q", got.Rows[5].Label)
	}
}

func TestProjectPhotoPlaceholder(t *testing.T) {
	tests := []struct {
		name        string
		photo       string
		placeholder string
		want        string
	}{
		{"no photo", "", "", vcard.DefaultPhoto},
		{"no photo custom placeholder", "", "img/none.svg", "img/none.svg"},
		{"unsupported encoding", "PHOTO;ENCODING=FOO:xyz\r\n", "img/none.svg", "img/none.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := vcard.ParseContact("BEGIN:VCARD\r\nFN:A\r\n" + tt.photo + "END:VCARD")
			if got := Project(c, tt.placeholder).Photo; got != tt.want {
				t.Errorf("Photo = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProjectDocument(t *testing.T) {
	doc := vcard.ParseDocument("people.vcf", card+"\r\nBEGIN:VCARD\r\nFN:Unclosed\r\n")

	col := ProjectDocument(doc, "")
	if col.Name != "people.vcf" || col.ID != doc.ID {
		t.Errorf("column = %q %q", col.Name, col.ID)
	}
	if len(col.Cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(col.Cards))
	}
	if len(col.Warnings) != 1 || col.Warnings[0].Code != vcard.WarnUnterminatedCard {
		t.Errorf("Warnings = %+v", col.Warnings)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name vcard.PropertyName
		want string
	}{
		{vcard.Telephone, "Phone"},
		{vcard.Organization, "Organisation"},
		{"X-ABLABEL", "Ablabel"},
		{"X-", "X-"},
	}

	for _, tt := range tests {
		if got := Label(tt.name); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestMarkdown(t *testing.T) {
	c := vcard.ParseContact(card)
	md := Markdown(Project(c, ""))

	for _, want := range []string{
		"## Freya Olsen\n",
		"*555-1234*",
		"| **Phone (cell)** | 555-1234 | TYPE=CELL, PREF |",
		"| Photo (png) | inline image | ENCODING=b, TYPE=PNG |",
		`| Skype username | freya.o |  |`,
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}
