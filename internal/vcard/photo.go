package vcard

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultPhoto is the placeholder shown for contacts without a usable photo.
const DefaultPhoto = "images/avatar.png"

var errPhotoEncoding = errors.New("photo has unknown/unsupported encoding")

// PhotoValue is a PHOTO or LOGO value. Inline base64 payloads are passed
// through untouched and only reinterpreted as a data URI for display.
type PhotoValue struct {
	original  string
	formatted string
	foldWidth int
}

func parsePhoto(raw string, params Parameters, foldWidth int) (*PhotoValue, []error) {
	v := &PhotoValue{original: raw, foldWidth: foldWidth}

	enc := params.Encoding()
	switch {
	case enc == EncodingBase64 || enc == EncodingB:
		v.formatted = "data:image/" + imageType(params) + ";base64," + raw
	case enc == "" && isURIValue(raw, params):
		v.formatted = raw
	default:
		v.formatted = DefaultPhoto
		return v, []error{fmt.Errorf("%w '%s'", errPhotoEncoding, enc)}
	}

	return v, nil
}

// NewPhotoValue builds an inline photo from base64 data. The property must
// carry ENCODING=BASE64 (or b) for the value to render.
func NewPhotoValue(data string, params Parameters) (*PhotoValue, error) {
	v, issues := parsePhoto(data, params, DefaultFoldWidth)
	if len(issues) > 0 {
		return nil, issues[0]
	}
	return v, nil
}

func isURIValue(raw string, params Parameters) bool {
	if v, ok := params.Get(ParamValue); ok && (strings.EqualFold(v, "uri") || strings.EqualFold(v, "url")) {
		return true
	}
	return strings.HasPrefix(strings.ToLower(raw), "data:")
}

func imageType(params Parameters) string {
	for _, t := range params.Types() {
		switch strings.ToUpper(t) {
		case "PNG", "IMAGE/PNG":
			return "png"
		case "GIF", "IMAGE/GIF":
			return "gif"
		}
	}
	return "jpg"
}

func (v *PhotoValue) Kind() ValueKind   { return KindPhoto }
func (v *PhotoValue) Original() string  { return v.original }
func (v *PhotoValue) Formatted() string { return v.formatted }
func (v *PhotoValue) sealed()           {}

// FoldWidth is the physical line width the photo was folded at in its source
// file, or 0 when it was not folded.
func (v *PhotoValue) FoldWidth() int { return v.foldWidth }

// Export returns the payload unchanged. Folding is applied to the whole
// property line by Property.Export.
func (v *PhotoValue) Export() (string, error) {
	return v.original, nil
}
