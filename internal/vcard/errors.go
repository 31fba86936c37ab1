package vcard

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProperty is returned for a property name outside the known
	// vocabulary that does not carry the vendor prefix.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrMissingSeparator is returned for a line without a name/value colon.
	ErrMissingSeparator = errors.New("missing ':' between property and value")

	// ErrUnsupportedEncoding is returned by the codec for ENCODING values it
	// cannot transform. The raw value is used unmodified.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrUnsupportedCharset is returned by the codec for CHARSET values that do
	// not name a known character set. UTF-8 is assumed.
	ErrUnsupportedCharset = errors.New("unsupported charset")

	// ErrMalformedValue is reported for structured values with the wrong
	// number of components. Missing components read as empty strings.
	ErrMalformedValue = errors.New("malformed structured value")

	// ErrNoComponents is returned when a structured value is exported before
	// its components were ever parsed.
	ErrNoComponents = errors.New("value has no parsed components")

	// ErrPropertyNotFound is returned when a move or removal references a
	// property that the contact does not (or no longer) hold.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrBookkeeping is returned when a caller tries to move or remove the
	// BEGIN, END or VERSION lines of a card.
	ErrBookkeeping = errors.New("bookkeeping property cannot be moved")

	// ErrMalformedContact is returned when a contact does not start with BEGIN
	// and end with END.
	ErrMalformedContact = errors.New("contact is not delimited by BEGIN and END")
)

// ParseError describes a logical line that could not be parsed.
type ParseError struct {
	Line int    // 1-indexed physical line within the card block
	Text string // unfolded line content
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: '%s'", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
