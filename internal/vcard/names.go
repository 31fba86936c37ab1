package vcard

import "strings"

// PropertyName is the canonical (upper-case) name of a vCard property.
type PropertyName string

// VendorPrefix marks experimental, vendor-specific property names.
const VendorPrefix = "X-"

// General properties.
const (
	Begin   PropertyName = "BEGIN"
	End     PropertyName = "END"
	Source  PropertyName = "SOURCE"
	Kind    PropertyName = "KIND"
	XML     PropertyName = "XML"
	Version PropertyName = "VERSION"
	Profile PropertyName = "PROFILE"
	Name    PropertyName = "NAME"
)

// Identification properties.
const (
	FormattedName  PropertyName = "FN"
	StructuredName PropertyName = "N"
	Nickname       PropertyName = "NICKNAME"
	Photo          PropertyName = "PHOTO"
	Birthday       PropertyName = "BDAY"
	Anniversary    PropertyName = "ANNIVERSARY"
	Gender         PropertyName = "GENDER"
	SortString     PropertyName = "SORT-STRING"
)

// Delivery addressing properties.
const (
	Address PropertyName = "ADR"
	Label   PropertyName = "LABEL"
)

// Communication properties.
const (
	Telephone PropertyName = "TEL"
	Email     PropertyName = "EMAIL"
	Mailer    PropertyName = "MAILER"
	IMPP      PropertyName = "IMPP"
	Language  PropertyName = "LANG"
)

// Geographical properties.
const (
	TimeZone PropertyName = "TZ"
	Geo      PropertyName = "GEO"
)

// Organizational properties.
const (
	Title        PropertyName = "TITLE"
	Role         PropertyName = "ROLE"
	Logo         PropertyName = "LOGO"
	Agent        PropertyName = "AGENT"
	Organization PropertyName = "ORG"
	Member       PropertyName = "MEMBER"
	Related      PropertyName = "RELATED"
)

// Explanatory properties.
const (
	Categories   PropertyName = "CATEGORIES"
	Note         PropertyName = "NOTE"
	ProductID    PropertyName = "PRODID"
	Revision     PropertyName = "REV"
	Sound        PropertyName = "SOUND"
	UID          PropertyName = "UID"
	ClientPIDMap PropertyName = "CLIENTPIDMAP"
	URL          PropertyName = "URL"
)

// Security properties.
const (
	Key   PropertyName = "KEY"
	Class PropertyName = "CLASS"
)

// Calendar properties.
const (
	FreeBusyURL        PropertyName = "FBURL"
	CalendarAddressURI PropertyName = "CALADRURI"
	CalendarURI        PropertyName = "CALURI"
)

var knownProperties = map[PropertyName]struct{}{
	Begin: {}, End: {}, Source: {}, Kind: {}, XML: {}, Version: {}, Profile: {}, Name: {},
	FormattedName: {}, StructuredName: {}, Nickname: {}, Photo: {}, Birthday: {},
	Anniversary: {}, Gender: {}, SortString: {},
	Address: {}, Label: {},
	Telephone: {}, Email: {}, Mailer: {}, IMPP: {}, Language: {},
	TimeZone: {}, Geo: {},
	Title: {}, Role: {}, Logo: {}, Agent: {}, Organization: {}, Member: {}, Related: {},
	Categories: {}, Note: {}, ProductID: {}, Revision: {}, Sound: {}, UID: {},
	ClientPIDMap: {}, URL: {},
	Key: {}, Class: {},
	FreeBusyURL: {}, CalendarAddressURI: {}, CalendarURI: {},
}

// LookupPropertyName validates a property token and returns its canonical
// form. Matching is case-insensitive. Vendor-prefixed names are accepted.
func LookupPropertyName(token string) (PropertyName, bool) {
	name := PropertyName(strings.ToUpper(strings.TrimSpace(token)))
	if name == "" {
		return "", false
	}
	if _, ok := knownProperties[name]; ok {
		return name, true
	}
	if strings.HasPrefix(string(name), VendorPrefix) && len(name) > len(VendorPrefix) {
		return name, true
	}
	return "", false
}

// IsVendor reports whether the name is a vendor extension.
func (n PropertyName) IsVendor() bool {
	return strings.HasPrefix(string(n), VendorPrefix)
}

// IsBookkeeping reports whether the name is one of the card framing lines
// (BEGIN, END, VERSION) which are never shown or moved.
func (n PropertyName) IsBookkeeping() bool {
	return n == Begin || n == End || n == Version
}
