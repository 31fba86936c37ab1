package vcard

import "strings"

// Parameter is a name/value modifier attached to a property. Either side may
// be empty: `PREF` is a bare name, `HOME` (vCard 2.1) is a bare value.
type Parameter struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// Parameter names with special meaning to the engine.
const (
	ParamEncoding = "ENCODING"
	ParamCharset  = "CHARSET"
	ParamType     = "TYPE"
	ParamValue    = "VALUE"
	ParamPref     = "PREF"
)

// Encoding values.
const (
	EncodingQuotedPrintable = "QUOTED-PRINTABLE"
	EncodingBase64          = "BASE64"
	EncodingB               = "B"
	Encoding8Bit            = "8BIT"
	Encoding7Bit            = "7BIT"
)

// bareFlags lists the tokens that are read as parameter values when they
// appear without a name. Every other bare token is a parameter name.
var bareFlags = map[string]struct{}{
	"HOME": {}, "WORK": {}, "CELL": {}, "VOICE": {}, "FAX": {}, "MSG": {},
	"PAGER": {}, "BBS": {}, "MODEM": {}, "CAR": {}, "ISDN": {}, "VIDEO": {},
	"INTERNET": {}, "X400": {}, "DOM": {}, "INTL": {}, "POSTAL": {}, "PARCEL": {},
	"GIF": {}, "JPEG": {}, "PNG": {}, "BMP": {}, "TIFF": {},
	EncodingQuotedPrintable: {}, EncodingBase64: {}, Encoding8Bit: {}, Encoding7Bit: {},
}

// IsBareFlag reports whether a lone token is read as a parameter value.
func IsBareFlag(token string) bool {
	_, ok := bareFlags[strings.ToUpper(token)]
	return ok
}

// ParseParameter parses one `NAME=VALUE` or bare parameter string.
func ParseParameter(s string) Parameter {
	if name, value, ok := strings.Cut(s, "="); ok {
		return Parameter{Name: name, Value: value}
	}
	if IsBareFlag(s) {
		return Parameter{Value: s}
	}
	return Parameter{Name: s}
}

// String returns the wire form of the parameter.
func (p Parameter) String() string {
	switch {
	case p.Name != "" && p.Value != "":
		return p.Name + "=" + p.Value
	case p.Name != "":
		return p.Name
	default:
		return p.Value
	}
}

// Is reports whether the parameter has the given name (case-insensitive).
func (p Parameter) Is(name string) bool {
	return strings.EqualFold(p.Name, name)
}

// Parameters is an ordered parameter list.
type Parameters []Parameter

// Get returns the value of the first parameter with the given name.
func (ps Parameters) Get(name string) (string, bool) {
	for _, p := range ps {
		if p.Is(name) {
			return p.Value, true
		}
	}
	return "", false
}

// Has reports whether a parameter with the given name is present.
func (ps Parameters) Has(name string) bool {
	_, ok := ps.Get(name)
	return ok
}

// Encoding returns the upper-cased ENCODING of the list. A bare encoding
// keyword (vCard 2.1 `;QUOTED-PRINTABLE`) counts as well.
func (ps Parameters) Encoding() string {
	if v, ok := ps.Get(ParamEncoding); ok {
		return strings.ToUpper(v)
	}
	for _, p := range ps {
		if p.Name != "" {
			continue
		}
		switch v := strings.ToUpper(p.Value); v {
		case EncodingQuotedPrintable, EncodingBase64, Encoding8Bit, Encoding7Bit:
			return v
		}
	}
	return ""
}

// Charset returns the CHARSET parameter, if any.
func (ps Parameters) Charset() string {
	v, _ := ps.Get(ParamCharset)
	return v
}

// Types returns the type tags of the list: every TYPE value (comma lists are
// expanded) and every bare value that is not an encoding keyword.
func (ps Parameters) Types() []string {
	var types []string
	for _, p := range ps {
		switch {
		case p.Is(ParamType):
			for _, t := range strings.Split(p.Value, ",") {
				if t = strings.Trim(t, `" `); t != "" {
					types = append(types, t)
				}
			}
		case p.Name == "" && p.Value != "":
			switch strings.ToUpper(p.Value) {
			case EncodingQuotedPrintable, EncodingBase64, Encoding8Bit, Encoding7Bit:
				continue
			}
			types = append(types, p.Value)
		}
	}
	return types
}

// Preferred reports whether the list marks the property as preferred, either
// through a bare PREF, a PREF=n parameter or a TYPE=pref tag.
func (ps Parameters) Preferred() bool {
	if ps.Has(ParamPref) {
		return true
	}
	for _, t := range ps.Types() {
		if strings.EqualFold(t, "pref") {
			return true
		}
	}
	return false
}

// Summary renders the parameters for display, e.g. "TYPE=HOME, PREF".
func (ps Parameters) Summary() string {
	parts := make([]string, 0, len(ps))
	for _, p := range ps {
		if s := p.String(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func (ps Parameters) wire() string {
	var sb strings.Builder
	for _, p := range ps {
		sb.WriteByte(';')
		sb.WriteString(p.String())
	}
	return sb.String()
}

// splitUnquoted splits s on sep, ignoring separators inside double quotes.
func splitUnquoted(s string, sep byte) []string {
	var parts []string
	inQuotes := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuotes = !inQuotes
		case sep:
			if !inQuotes {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// indexUnquoted returns the index of the first sep outside double quotes.
func indexUnquoted(s string, sep byte) int {
	inQuotes := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuotes = !inQuotes
		case sep:
			if !inQuotes {
				return i
			}
		}
	}
	return -1
}
