package vcard

import (
	"fmt"
	"strings"
)

// ValueKind identifies the shape of a property value.
type ValueKind string

const (
	KindSimple  ValueKind = "simple"
	KindName    ValueKind = "name"
	KindAddress ValueKind = "address"
	KindPhoto   ValueKind = "photo"
)

// Value is the parsed right-hand side of a property line. The set of
// implementations is closed: *SimpleValue, *NameValue, *AddressValue and
// *PhotoValue. Values are immutable once constructed.
type Value interface {
	Kind() ValueKind

	// Original is the raw wire text the value was built from.
	Original() string

	// Formatted is the human-readable rendering of the value.
	Formatted() string

	// Export returns the wire text of the value (unfolded).
	Export() (string, error)

	sealed()
}

// newValue picks the formatter for a validated property name.
func newValue(name PropertyName, raw string, params Parameters, foldWidth int) (Value, []error) {
	switch name {
	case StructuredName:
		return parseName(raw, params)
	case Address:
		return parseAddress(raw, params)
	case Photo, Logo:
		return parsePhoto(raw, params, foldWidth)
	default:
		return parseSimple(raw, params)
	}
}

// SimpleValue is a scalar value, optionally transfer-encoded.
type SimpleValue struct {
	original  string
	formatted string
}

func parseSimple(raw string, params Parameters) (*SimpleValue, []error) {
	text, err := Decode(raw, params)
	v := &SimpleValue{original: raw, formatted: unescapeText(text)}
	if err != nil {
		return v, []error{err}
	}
	return v, nil
}

// NewSimpleValue builds a value from display text, encoding it as the
// parameter list requires.
func NewSimpleValue(text string, params Parameters) (*SimpleValue, error) {
	raw, err := Encode(escapeText(text), params)
	if err != nil {
		return nil, err
	}
	return &SimpleValue{original: raw, formatted: text}, nil
}

func (v *SimpleValue) Kind() ValueKind   { return KindSimple }
func (v *SimpleValue) Original() string  { return v.original }
func (v *SimpleValue) Formatted() string { return v.formatted }
func (v *SimpleValue) sealed()           {}

// Export returns the encoded wire text.
func (v *SimpleValue) Export() (string, error) {
	return v.original, nil
}

// component is one piece of a structured value, kept both as wire text and
// as decoded display text.
type component struct {
	wire string
	text string
}

// parseComponents splits a structured value into exactly n components.
func parseComponents(raw string, n int, params Parameters) ([]component, []error) {
	var issues []error

	parts := splitComponents(raw)
	switch {
	case len(parts) < n:
		issues = append(issues, fmt.Errorf("%w: expected %d components, got %d", ErrMalformedValue, n, len(parts)))
		for len(parts) < n {
			parts = append(parts, "")
		}
	case len(parts) > n:
		issues = append(issues, fmt.Errorf("%w: expected %d components, got %d", ErrMalformedValue, n, len(parts)))
		parts = append(parts[:n-1], strings.Join(parts[n-1:], ";"))
	}

	components := make([]component, n)
	decodeFailed := false
	for i, wire := range parts {
		text, err := Decode(wire, params)
		if err != nil && !decodeFailed {
			issues = append(issues, err)
			decodeFailed = true
		}
		components[i] = component{wire: wire, text: strings.TrimSpace(unescapeText(text))}
	}

	return components, issues
}

func buildComponents(texts []string, params Parameters) ([]component, error) {
	components := make([]component, len(texts))
	for i, text := range texts {
		wire, err := Encode(escapeComponent(text), params)
		if err != nil {
			return nil, err
		}
		components[i] = component{wire: wire, text: text}
	}
	return components, nil
}

func joinWire(components []component) string {
	wires := make([]string, len(components))
	for i, c := range components {
		wires[i] = c.wire
	}
	return strings.Join(wires, ";")
}

func joinText(sep string, components ...component) string {
	var parts []string
	for _, c := range components {
		if c.text != "" {
			parts = append(parts, c.text)
		}
	}
	return strings.Join(parts, sep)
}

// splitComponents splits on ';' that is not escaped with a backslash.
func splitComponents(s string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case ';':
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// unescapeText resolves the text escapes \n, \N, \, \; and \\.
func unescapeText(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			sb.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n', 'N':
			sb.WriteByte('\n')
		case ',', ';', '\\':
			sb.WriteByte(s[i])
		default:
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

func escapeText(s string) string {
	return strings.NewReplacer(`\`, `\\`, "\r\n", `\n`, "\n", `\n`).Replace(s)
}

func escapeComponent(s string) string {
	return strings.NewReplacer(`\`, `\\`, "\r\n", `\n`, "\n", `\n`, ";", `\;`).Replace(s)
}
