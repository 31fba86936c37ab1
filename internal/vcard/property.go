package vcard

import (
	"errors"
	"strings"
)

// Property is one `[group.]NAME[;PARAM...]:VALUE` content line.
type Property struct {
	Group      string
	Name       PropertyName
	Parameters Parameters
	Value      Value

	// token is the name as written in the source, so export keeps its case.
	token string

	// verbatim is the source text of a line written with soft line breaks.
	// Export reproduces it since Fold cannot.
	verbatim string
}

// NewProperty builds a property for an edited or added field.
func NewProperty(name PropertyName, params Parameters, value Value) *Property {
	return &Property{
		Name:       name,
		Parameters: params,
		Value:      value,
		token:      string(name),
	}
}

// ParseProperty parses one logical line. Unknown names and lines without a
// value separator fail with a *ParseError; encoding and structure problems in
// the value are returned as warnings alongside a usable property.
func ParseProperty(line Line) (*Property, []Warning, error) {
	sep := indexUnquoted(line.Text, ':')
	if sep < 0 {
		return nil, nil, &ParseError{Line: line.Number, Text: line.Text, Err: ErrMissingSeparator}
	}
	head, raw := line.Text[:sep], line.Text[sep+1:]

	fields := splitUnquoted(head, ';')
	token := strings.TrimSpace(fields[0])

	var group string
	if dot := strings.LastIndexByte(token, '.'); dot >= 0 {
		group, token = token[:dot], token[dot+1:]
	}

	name, ok := LookupPropertyName(token)
	if !ok {
		return nil, nil, &ParseError{Line: line.Number, Text: line.Text, Err: ErrUnknownProperty}
	}

	params := make(Parameters, 0, len(fields)-1)
	for _, f := range fields[1:] {
		params = append(params, ParseParameter(f))
	}

	value, issues := newValue(name, raw, params, line.FoldWidth())

	var warnings []Warning
	for _, issue := range issues {
		warnings = append(warnings, warningFromError(issueCode(issue), line, issue))
	}

	p := &Property{
		Group:      group,
		Name:       name,
		Parameters: params,
		Value:      value,
		token:      token,
	}
	if line.SoftBreaks {
		p.verbatim = strings.Join(line.Physical, CRLF)
	}
	return p, warnings, nil
}

func issueCode(err error) string {
	switch {
	case errors.Is(err, errPhotoEncoding):
		return WarnPhotoEncoding
	case errors.Is(err, ErrUnsupportedCharset):
		return WarnUnsupportedCharset
	case errors.Is(err, ErrMalformedValue):
		return WarnMalformedValue
	default:
		return WarnUnsupportedEncoding
	}
}

// Head returns the wire text left of the value separator.
func (p *Property) Head() string {
	var sb strings.Builder
	if p.Group != "" {
		sb.WriteString(p.Group)
		sb.WriteByte('.')
	}
	if p.token != "" {
		sb.WriteString(p.token)
	} else {
		sb.WriteString(string(p.Name))
	}
	sb.WriteString(p.Parameters.wire())
	return sb.String()
}

// Formatted returns the display text of the value.
func (p *Property) Formatted() string {
	if p.Value == nil {
		return ""
	}
	return p.Value.Formatted()
}

// Matches reports whether the property has the given name and formatted value.
func (p *Property) Matches(name PropertyName, formatted string) bool {
	return p.Name == name && p.Formatted() == formatted
}

// Export returns the folded wire form of the property without a trailing line
// terminator. Lines that used soft line breaks are written as they were read.
// Photos are re-folded at the width they had in their source;
// every other value is folded at width.
func (p *Property) Export(width int) (string, error) {
	if p.verbatim != "" {
		return p.verbatim, nil
	}
	if p.Value == nil {
		return "", ErrNoComponents
	}
	value, err := p.Value.Export()
	if err != nil {
		return "", err
	}

	if photo, ok := p.Value.(*PhotoValue); ok {
		width = photo.FoldWidth()
	}

	return Fold(p.Head()+":"+value, width), nil
}
