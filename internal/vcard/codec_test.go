package vcard

import (
	"errors"
	"testing"
)

func TestDecodeQuotedPrintable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jos=C3=A9", "José"},
		{"Jos=c3=a9", "José"},
		{"=4A=6F=73=C3=A9", "José"},
		{"plain", "plain"},
		{"a=ZZb", "a=ZZb"},
		{"trailing=", "trailing="},
		{"short=4", "short=4"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := string(DecodeQuotedPrintable(tt.in)); got != tt.want {
				t.Errorf("DecodeQuotedPrintable(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodeQuotedPrintable(t *testing.T) {
	if got := EncodeQuotedPrintable([]byte("José")); got != "=4A=6F=73=C3=A9" {
		t.Errorf("EncodeQuotedPrintable(José) = %q", got)
	}
	if got := EncodeQuotedPrintable(nil); got != "" {
		t.Errorf("EncodeQuotedPrintable(nil) = %q, want empty", got)
	}
}

func TestDecode(t *testing.T) {
	qp := Parameters{{Name: "ENCODING", Value: "QUOTED-PRINTABLE"}}

	t.Run("no encoding is identity", func(t *testing.T) {
		got, err := Decode("Jos=C3=A9", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "Jos=C3=A9" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("quoted-printable", func(t *testing.T) {
		got, err := Decode("Jos=C3=A9", qp)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "José" {
			t.Errorf("got %q, want José", got)
		}
	})

	t.Run("bare quoted-printable flag", func(t *testing.T) {
		got, err := Decode("=C3=A9", Parameters{{Value: "QUOTED-PRINTABLE"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "é" {
			t.Errorf("got %q, want é", got)
		}
	})

	t.Run("latin-1 charset", func(t *testing.T) {
		params := append(Parameters{{Name: "CHARSET", Value: "ISO-8859-1"}}, qp...)
		got, err := Decode("Jos=E9", params)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "José" {
			t.Errorf("got %q, want José", got)
		}
	})

	t.Run("unknown charset falls back to utf-8", func(t *testing.T) {
		params := append(Parameters{{Name: "CHARSET", Value: "X-NOPE"}}, qp...)
		got, err := Decode("Jos=C3=A9", params)
		if !errors.Is(err, ErrUnsupportedCharset) {
			t.Fatalf("error = %v, want ErrUnsupportedCharset", err)
		}
		if got != "José" {
			t.Errorf("got %q, want José", got)
		}
	})

	t.Run("unsupported encoding keeps raw value", func(t *testing.T) {
		got, err := Decode("aGVsbG8=", Parameters{{Name: "ENCODING", Value: "BASE64"}})
		if !errors.Is(err, ErrUnsupportedEncoding) {
			t.Fatalf("error = %v, want ErrUnsupportedEncoding", err)
		}
		if got != "aGVsbG8=" {
			t.Errorf("got %q, want raw value", got)
		}
	})
}

func TestEncodeDecodeInverse(t *testing.T) {
	params := Parameters{{Name: "ENCODING", Value: "QUOTED-PRINTABLE"}, {Name: "CHARSET", Value: "UTF-8"}}

	for _, text := range []string{"", "José", "a=b;c", "日本語", "line\nbreak"} {
		encoded, err := Encode(text, params)
		if err != nil {
			t.Fatalf("Encode(%q): %v", text, err)
		}
		decoded, err := Decode(encoded, params)
		if err != nil {
			t.Fatalf("Decode(%q): %v", encoded, err)
		}
		if decoded != text {
			t.Errorf("Decode(Encode(%q)) = %q", text, decoded)
		}
	}
}
