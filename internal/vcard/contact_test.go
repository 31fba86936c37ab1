package vcard

import (
	"errors"
	"strings"
	"testing"
)

const johnCard = "BEGIN:VCARD\r\n" +
	"VERSION:3.0\r\n" +
	"N:Smith;John;;Dr.;Jr.\r\n" +
	"FN:John Smith\r\n" +
	"ORG:Acme;Sales\r\n" +
	"TITLE:Engineer\r\n" +
	"TEL;TYPE=CELL:555-1234\r\n" +
	"TEL;TYPE=HOME:555-9876\r\n" +
	"EMAIL;TYPE=INTERNET:john@example.com\r\n" +
	"ADR;TYPE=HOME:;;123 Main St;Springfield;IL;62704;USA\r\n" +
	"END:VCARD"

const janeCard = "BEGIN:VCARD\r\n" +
	"VERSION:3.0\r\n" +
	"FN:Jane Doe\r\n" +
	"END:VCARD"

func names(c *Contact) []PropertyName {
	var out []PropertyName
	for _, p := range c.Properties() {
		out = append(out, p.Name)
	}
	return out
}

func TestParseContact(t *testing.T) {
	c := ParseContact(johnCard)

	if c.Len() != 11 {
		t.Fatalf("Len() = %d, want 11", c.Len())
	}
	props := c.Properties()
	if props[0].Name != Begin || props[len(props)-1].Name != End {
		t.Errorf("framing = %s ... %s", props[0].Name, props[len(props)-1].Name)
	}
	if c.HasInvalidLines() {
		t.Error("HasInvalidLines() = true, want false")
	}
	if len(c.Visible()) != 8 {
		t.Errorf("Visible() has %d properties, want 8", len(c.Visible()))
	}

	tel, ok := c.FindByName(Telephone)
	if !ok || tel.Formatted() != "555-1234" {
		t.Errorf("FindByName(TEL) = %v, %v", tel, ok)
	}
	if got := len(c.FindAllByName(Telephone)); got != 2 {
		t.Errorf("FindAllByName(TEL) returned %d, want 2", got)
	}
	if _, ok := c.FindByName(Note); ok {
		t.Error("FindByName(NOTE) found a property")
	}
}

func TestParseContactUnknownLine(t *testing.T) {
	raw := strings.Replace(johnCard, "TITLE:Engineer\r\n", "TITLE:Engineer\r\nFOO:bar\r\n", 1)
	c := ParseContact(raw)

	if !c.HasInvalidLines() {
		t.Fatal("HasInvalidLines() = false, want true")
	}
	warnings := c.Warnings()
	if len(warnings) != 1 || warnings[0].Code != WarnUnknownProperty {
		t.Fatalf("Warnings() = %+v", warnings)
	}
	if warnings[0].Line != 7 || warnings[0].Text != "FOO:bar" {
		t.Errorf("warning = %+v", warnings[0])
	}
	if got := len(c.FindAllByName(Telephone)); got != 2 {
		t.Errorf("lines after the invalid one: FindAllByName(TEL) = %d, want 2", got)
	}
	if !strings.Contains(c.Raw(), "FOO:bar") {
		t.Error("Raw() lost the invalid line")
	}

	out, err := c.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if out != raw {
		t.Errorf("Export() = %q, want the source card with the invalid line in place", out)
	}
	if got := c.Unparsed(); len(got) != 1 || got[0] != "FOO:bar" {
		t.Errorf("Unparsed() = %q", got)
	}
}

func TestUnparsedLinesSurviveEdits(t *testing.T) {
	raw := strings.Replace(johnCard, "TITLE:Engineer\r\n", "TITLE:Engineer\r\nEXPER\r\n TISE:Go\r\n", 1)
	source := ParseContact(raw)
	target := ParseContact(janeCard)

	if err := MoveProperty(source, target, Title, "Engineer"); err != nil {
		t.Fatalf("MoveProperty: %v", err)
	}

	out, err := source.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	want := strings.Replace(johnCard, "TITLE:Engineer\r\n", "EXPER\r\n TISE:Go\r\n", 1)
	if out != want {
		t.Errorf("Export() = %q, want %q", out, want)
	}

	clone := source.Clone()
	if _, err := clone.Remove(Organization, "Acme;Sales"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	out, _ = clone.Export()
	if !strings.Contains(out, "N:Smith;John;;Dr.;Jr.\r\nFN:John Smith\r\nEXPER\r\n TISE:Go\r\nTEL") {
		t.Errorf("kept line moved out of place: %q", out)
	}
	if out, _ := source.Export(); out != want {
		t.Error("editing the clone changed the source")
	}
}

func TestQuotedPrintableSoftBreaks(t *testing.T) {
	raw := "BEGIN:VCARD\r\n" +
		"VERSION:2.1\r\n" +
		"FN:Jane Doe\r\n" +
		"NOTE;ENCODING=QUOTED-PRINTABLE:line one=0D=0A=\r\n" +
		"line two\r\n" +
		"END:VCARD"
	c := ParseContact(raw)

	if c.HasInvalidLines() {
		t.Fatalf("continuation flagged as invalid: %+v", c.Warnings())
	}
	note, ok := c.FindByName(Note)
	if !ok || note.Formatted() != "line one\r\nline two" {
		t.Fatalf("NOTE = %v, %v", note, ok)
	}

	out, err := c.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if out != raw {
		t.Errorf("Export() = %q, want %q", out, raw)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name  string
		lines string
		want  string
	}{
		{"full and structured differ", "FN:John Smith\r\nN:Smith;John;;Dr.;\r\n", "John Smith (Dr. John Smith)"},
		{"full and structured agree", "FN:John Smith\r\nN:Smith;John;;;\r\n", "John Smith"},
		{"full name only", "FN:Jane\r\n", "Jane"},
		{"structured only", "N:Doe;Jane;;;\r\n", "Jane Doe"},
		{"email", "TEL:1\r\nEMAIL:jane@example.com\r\n", "jane@example.com"},
		{"first property", "NOTE:met at the fair\r\n", "met at the fair"},
		{"nothing", "", UnknownName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ParseContact("BEGIN:VCARD\r\n" + tt.lines + "END:VCARD")
			if got := c.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubtitle(t *testing.T) {
	tests := []struct {
		name  string
		lines string
		want  string
	}{
		{"title and org", "TITLE:Engineer\r\nORG:Acme;Sales\r\n", "Engineer, Acme, Sales"},
		{"org", "ORG:Acme\r\n", "Acme"},
		{"title", "TITLE:Engineer\r\n", "Engineer"},
		{"phone", "FN:Jane\r\nTEL:555-1234\r\nEMAIL:j@example.com\r\n", "555-1234"},
		{"email", "FN:Jane\r\nEMAIL:j@example.com\r\n", "j@example.com"},
		{"email is already the name", "EMAIL:j@example.com\r\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ParseContact("BEGIN:VCARD\r\n" + tt.lines + "END:VCARD")
			if got := c.Subtitle(); got != tt.want {
				t.Errorf("Subtitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMoveProperty(t *testing.T) {
	t.Run("moves before END", func(t *testing.T) {
		a := ParseContact(johnCard)
		b := ParseContact(janeCard)

		if err := MoveProperty(a, b, Telephone, "555-1234"); err != nil {
			t.Fatalf("MoveProperty: %v", err)
		}

		if a.Len() != 10 {
			t.Errorf("source Len() = %d, want 10", a.Len())
		}
		tels := a.FindAllByName(Telephone)
		if len(tels) != 1 || tels[0].Formatted() != "555-9876" {
			t.Errorf("source TEL = %v", tels)
		}

		want := []PropertyName{Begin, Version, FormattedName, Telephone, End}
		got := names(b)
		if len(got) != len(want) {
			t.Fatalf("target properties = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("target properties = %v, want %v", got, want)
			}
		}
		if b.Properties()[3].Formatted() != "555-1234" {
			t.Errorf("moved value = %q", b.Properties()[3].Formatted())
		}
		if err := a.checkFramed(); err != nil {
			t.Errorf("source framing: %v", err)
		}
	})

	t.Run("missing property", func(t *testing.T) {
		a := ParseContact(johnCard)
		b := ParseContact(janeCard)

		err := MoveProperty(a, b, Telephone, "000")
		if !errors.Is(err, ErrPropertyNotFound) {
			t.Fatalf("error = %v, want ErrPropertyNotFound", err)
		}
		if a.Len() != 11 || b.Len() != 4 {
			t.Errorf("contacts changed: %d, %d", a.Len(), b.Len())
		}
	})

	t.Run("bookkeeping lines stay put", func(t *testing.T) {
		a := ParseContact(johnCard)
		b := ParseContact(janeCard)

		for _, name := range []PropertyName{Begin, End, Version} {
			if err := MoveProperty(a, b, name, "VCARD"); !errors.Is(err, ErrBookkeeping) {
				t.Errorf("MoveProperty(%s) error = %v, want ErrBookkeeping", name, err)
			}
		}
	})

	t.Run("unframed target leaves source intact", func(t *testing.T) {
		a := ParseContact(johnCard)

		err := MoveProperty(a, &Contact{}, Telephone, "555-1234")
		if !errors.Is(err, ErrMalformedContact) {
			t.Fatalf("error = %v, want ErrMalformedContact", err)
		}
		if a.Len() != 11 {
			t.Errorf("source Len() = %d, want 11", a.Len())
		}
	})
}

func TestClone(t *testing.T) {
	original := ParseContact(johnCard)
	original.ID = "john-smith"
	clone := original.Clone()

	if clone.ID != original.ID {
		t.Errorf("clone ID = %q", clone.ID)
	}
	if _, err := clone.Remove(Email, "john@example.com"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok := original.FindByName(Email); !ok {
		t.Error("removing from the clone changed the original")
	}
	if clone.Len() != original.Len()-1 {
		t.Errorf("clone Len() = %d, original %d", clone.Len(), original.Len())
	}
}

func TestContactEditing(t *testing.T) {
	c := ParseContact(janeCard)

	value, err := NewSimpleValue("Loves, cheese", nil)
	if err != nil {
		t.Fatalf("NewSimpleValue: %v", err)
	}
	note := NewProperty(Note, nil, value)
	if err := c.Append(note); err != nil {
		t.Fatalf("Append: %v", err)
	}

	updatedValue, _ := NewSimpleValue("Loves bread", nil)
	updated := NewProperty(Note, nil, updatedValue)
	if err := c.Replace(note, updated); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if err := c.Replace(note, updated); !errors.Is(err, ErrPropertyNotFound) {
		t.Errorf("second Replace error = %v, want ErrPropertyNotFound", err)
	}

	out, err := c.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	want := "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Jane Doe\r\nNOTE:Loves bread\r\nEND:VCARD"
	if out != want {
		t.Errorf("Export() = %q, want %q", out, want)
	}

	if err := c.Append(NewProperty(End, nil, value)); !errors.Is(err, ErrBookkeeping) {
		t.Errorf("Append(END) error = %v, want ErrBookkeeping", err)
	}
}

func TestNewContact(t *testing.T) {
	out, err := NewContact("4.0").Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if out != "BEGIN:VCARD\r\nVERSION:4.0\r\nEND:VCARD" {
		t.Errorf("Export() = %q", out)
	}
}
