package vcard

import "fmt"

// Warning codes. These are stable and surface in CLI output.
const (
	WarnUnknownProperty     = "UNKNOWN_PROPERTY"
	WarnMissingSeparator    = "MISSING_SEPARATOR"
	WarnUnsupportedEncoding = "UNSUPPORTED_ENCODING"
	WarnUnsupportedCharset  = "UNSUPPORTED_CHARSET"
	WarnMalformedValue      = "MALFORMED_VALUE"
	WarnPhotoEncoding       = "PHOTO_ENCODING"
	WarnNestedCard          = "NESTED_CARD"
	WarnUnterminatedCard    = "UNTERMINATED_CARD"
)

// Warning is a non-fatal parse diagnostic. The affected line is skipped or
// degraded but parsing continues.
type Warning struct {
	Code    string `json:"code" yaml:"code"`
	Contact string `json:"contact,omitempty" yaml:"contact,omitempty"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Text    string `json:"text,omitempty" yaml:"text,omitempty"`
	Message string `json:"message" yaml:"message"`
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s", w.Line, w.Message)
	}
	return w.Message
}

func warningFromError(code string, line Line, err error) Warning {
	return Warning{
		Code:    code,
		Line:    line.Number,
		Text:    line.Text,
		Message: err.Error(),
	}
}
