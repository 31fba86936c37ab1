package vcard

import (
	"errors"
	"testing"
)

func TestNameValue(t *testing.T) {
	t.Run("display order skips empty components", func(t *testing.T) {
		v, issues := parseName("Smith;John;;Dr.;Jr.", nil)
		if len(issues) != 0 {
			t.Fatalf("unexpected issues: %v", issues)
		}
		if v.Formatted() != "Dr. John Smith Jr." {
			t.Errorf("Formatted() = %q, want %q", v.Formatted(), "Dr. John Smith Jr.")
		}
		out, err := v.Export()
		if err != nil {
			t.Fatalf("Export: %v", err)
		}
		if out != "Smith;John;;Dr.;Jr." {
			t.Errorf("Export() = %q", out)
		}
	})

	t.Run("quoted-printable components", func(t *testing.T) {
		params := Parameters{{Name: "CHARSET", Value: "UTF-8"}, {Name: "ENCODING", Value: "QUOTED-PRINTABLE"}}
		raw := "M=C3=BCller;J=C3=BCrgen;;;"

		v, issues := parseName(raw, params)
		if len(issues) != 0 {
			t.Fatalf("unexpected issues: %v", issues)
		}
		if v.Formatted() != "Jürgen Müller" {
			t.Errorf("Formatted() = %q", v.Formatted())
		}
		if out, _ := v.Export(); out != raw {
			t.Errorf("Export() = %q, want %q", out, raw)
		}
	})

	t.Run("built from components", func(t *testing.T) {
		v, err := NewNameValue(NameComponents{Family: "Smith", Given: "John", Prefixes: "Dr.", Suffixes: "Jr."}, nil)
		if err != nil {
			t.Fatalf("NewNameValue: %v", err)
		}
		if out, _ := v.Export(); out != "Smith;John;;Dr.;Jr." {
			t.Errorf("Export() = %q", out)
		}
		if v.Formatted() != "Dr. John Smith Jr." {
			t.Errorf("Formatted() = %q", v.Formatted())
		}
	})

	t.Run("built and re-encoded", func(t *testing.T) {
		params := Parameters{{Name: "ENCODING", Value: "QUOTED-PRINTABLE"}}
		v, err := NewNameValue(NameComponents{Family: "Né", Given: "Zoë"}, params)
		if err != nil {
			t.Fatalf("NewNameValue: %v", err)
		}
		want := "=4E=C3=A9;=5A=6F=C3=AB;;;"
		if out, _ := v.Export(); out != want {
			t.Errorf("Export() = %q, want %q", out, want)
		}

		reparsed, issues := parseName(want, params)
		if len(issues) != 0 {
			t.Fatalf("unexpected issues: %v", issues)
		}
		if reparsed.Components() != v.Components() {
			t.Errorf("Components() = %+v, want %+v", reparsed.Components(), v.Components())
		}
	})

	t.Run("export without components", func(t *testing.T) {
		if _, err := (&NameValue{}).Export(); !errors.Is(err, ErrNoComponents) {
			t.Errorf("error = %v, want ErrNoComponents", err)
		}
	})
}

func TestAddressValue(t *testing.T) {
	t.Run("formatted", func(t *testing.T) {
		v, issues := parseAddress(";;123 Main St;Springfield;IL;62704;USA", nil)
		if len(issues) != 0 {
			t.Fatalf("unexpected issues: %v", issues)
		}
		want := "123 Main St, Springfield, IL, 62704, USA"
		if v.Formatted() != want {
			t.Errorf("Formatted() = %q, want %q", v.Formatted(), want)
		}
		c := v.Components()
		if c.Street != "123 Main St" || c.PostalCode != "62704" || c.POBox != "" {
			t.Errorf("Components() = %+v", c)
		}
	})

	t.Run("escaped semicolon", func(t *testing.T) {
		raw := `;;Flat 1\; Block B;Town;;;`
		v, _ := parseAddress(raw, nil)
		if got := v.Components().Street; got != "Flat 1; Block B" {
			t.Errorf("Street = %q", got)
		}
		if out, _ := v.Export(); out != raw {
			t.Errorf("Export() = %q, want %q", out, raw)
		}
	})

	t.Run("too many components", func(t *testing.T) {
		v, issues := parseAddress("a;b;c;d;e;f;g;h", nil)
		if len(issues) != 1 || !errors.Is(issues[0], ErrMalformedValue) {
			t.Fatalf("issues = %v", issues)
		}
		if v.Components().Country != "g;h" {
			t.Errorf("Country = %q", v.Components().Country)
		}
	})

	t.Run("built from components", func(t *testing.T) {
		v, err := NewAddressValue(AddressComponents{Street: "1; Road", Locality: "Town"}, nil)
		if err != nil {
			t.Fatalf("NewAddressValue: %v", err)
		}
		if out, _ := v.Export(); out != `;;1\; Road;Town;;;` {
			t.Errorf("Export() = %q", out)
		}
		if v.Formatted() != "1; Road, Town" {
			t.Errorf("Formatted() = %q", v.Formatted())
		}
	})

	t.Run("export without components", func(t *testing.T) {
		if _, err := (&AddressValue{}).Export(); !errors.Is(err, ErrNoComponents) {
			t.Errorf("error = %v, want ErrNoComponents", err)
		}
	})
}

func TestSimpleValue(t *testing.T) {
	v, _ := parseSimple(`line one\nline two\, more`, nil)
	if v.Formatted() != "line one\nline two, more" {
		t.Errorf("Formatted() = %q", v.Formatted())
	}

	built, err := NewSimpleValue("a\nb\\c", nil)
	if err != nil {
		t.Fatalf("NewSimpleValue: %v", err)
	}
	if built.Original() != `a\nb\\c` {
		t.Errorf("Original() = %q", built.Original())
	}
	reparsed, _ := parseSimple(built.Original(), nil)
	if reparsed.Formatted() != "a\nb\\c" {
		t.Errorf("reparsed Formatted() = %q", reparsed.Formatted())
	}
}

func TestPhotoValue(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		params Parameters
		want   string
		issues int
	}{
		{"base64 jpeg flag", "AAAA", Parameters{{Name: "ENCODING", Value: "BASE64"}, {Value: "JPEG"}}, "data:image/jpg;base64,AAAA", 0},
		{"vcard 3 png", "AAAA", Parameters{{Name: "ENCODING", Value: "b"}, {Name: "TYPE", Value: "PNG"}}, "data:image/png;base64,AAAA", 0},
		{"data uri", "data:image/gif;base64,R0lG", nil, "data:image/gif;base64,R0lG", 0},
		{"uri value", "http://example.com/p.jpg", Parameters{{Name: "VALUE", Value: "uri"}}, "http://example.com/p.jpg", 0},
		{"vcard 2.1 url value", "http://example.com/p.jpg", Parameters{{Name: "VALUE", Value: "URL"}}, "http://example.com/p.jpg", 0},
		{"unsupported encoding", "xyz", Parameters{{Name: "ENCODING", Value: "FOO"}}, DefaultPhoto, 1},
		{"no encoding", "xyz", nil, DefaultPhoto, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, issues := parsePhoto(tt.raw, tt.params, 0)
			if v.Formatted() != tt.want {
				t.Errorf("Formatted() = %q, want %q", v.Formatted(), tt.want)
			}
			if len(issues) != tt.issues {
				t.Errorf("got %d issues, want %d", len(issues), tt.issues)
			}
			if out, _ := v.Export(); out != tt.raw {
				t.Errorf("Export() = %q, want raw payload", out)
			}
		})
	}
}
