package vcard

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

const upperHex = "0123456789ABCDEF"

// DecodeQuotedPrintable converts every `=XX` escape to its byte value. All
// other bytes, including a `=` that does not start a valid escape, are kept
// as they are.
func DecodeQuotedPrintable(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '=' && i+2 < len(s) {
			hi, okHi := unhex(s[i+1])
			lo, okLo := unhex(s[i+2])
			if okHi && okLo {
				out = append(out, hi<<4|lo)
				i += 2
				continue
			}
		}
		out = append(out, s[i])
	}
	return out
}

// EncodeQuotedPrintable escapes every byte as `=XX`, printable ASCII
// included, so that DecodeQuotedPrintable(EncodeQuotedPrintable(b)) == b.
func EncodeQuotedPrintable(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 3)
	for _, c := range b {
		sb.WriteByte('=')
		sb.WriteByte(upperHex[c>>4])
		sb.WriteByte(upperHex[c&0x0f])
	}
	return sb.String()
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Decode applies the transfer encoding named by the parameter list to a raw
// value. Without an ENCODING the value is returned unchanged. When the
// encoding is not supported the raw value is returned together with an error
// wrapping ErrUnsupportedEncoding.
func Decode(raw string, params Parameters) (string, error) {
	switch enc := params.Encoding(); enc {
	case "", Encoding8Bit, Encoding7Bit:
		return raw, nil
	case EncodingQuotedPrintable:
		return decodeCharset(DecodeQuotedPrintable(raw), params.Charset())
	default:
		return raw, fmt.Errorf("%w '%s'", ErrUnsupportedEncoding, enc)
	}
}

// Encode is the inverse of Decode.
func Encode(text string, params Parameters) (string, error) {
	switch enc := params.Encoding(); enc {
	case "", Encoding8Bit, Encoding7Bit:
		return text, nil
	case EncodingQuotedPrintable:
		b, err := encodeCharset(text, params.Charset())
		return EncodeQuotedPrintable(b), err
	default:
		return text, fmt.Errorf("%w '%s'", ErrUnsupportedEncoding, enc)
	}
}

func isUTF8(charset string) bool {
	switch strings.ToUpper(strings.TrimSpace(charset)) {
	case "", "UTF-8", "UTF8":
		return true
	}
	return false
}

func decodeCharset(b []byte, charset string) (string, error) {
	if isUTF8(charset) {
		return string(b), nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return string(b), fmt.Errorf("%w '%s'", ErrUnsupportedCharset, charset)
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return string(b), fmt.Errorf("decode %s: %w", charset, err)
	}
	return string(out), nil
}

func encodeCharset(text, charset string) ([]byte, error) {
	if isUTF8(charset) {
		return []byte(text), nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return []byte(text), fmt.Errorf("%w '%s'", ErrUnsupportedCharset, charset)
	}
	out, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return []byte(text), fmt.Errorf("encode %s: %w", charset, err)
	}
	return out, nil
}
