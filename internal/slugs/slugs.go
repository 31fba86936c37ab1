// Package slugs provides the identifier slugs used across cardboard.
//
// There are two slugging strategies:
//   - Contact slugs: ids for contacts within a document, built on gosimple/slug
//     from the contact's name. Empty results fall back to "contact".
//   - File slugs: base names for exported files, derived from a document's
//     display name with any ".vcf" extension stripped.
package slugs

import (
	"strconv"
	"strings"

	goslug "github.com/gosimple/slug"
)

// FallbackContactSlug is used when a name has no sluggable characters.
const FallbackContactSlug = "contact"

// ContactSlug converts a contact name to a URL-safe identifier.
func ContactSlug(name string) string {
	slugged := goslug.Make(strings.TrimSpace(name))
	if slugged == "" {
		return FallbackContactSlug
	}
	return slugged
}

// FileSlug converts a document display name to a file base name.
func FileSlug(name string) string {
	base := strings.TrimSpace(name)
	for _, ext := range []string{".vcf", ".VCF", ".vcard"} {
		base = strings.TrimSuffix(base, ext)
	}
	slugged := goslug.Make(base)
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(base, " ", "-"))
	}
	return slugged
}

// Unique returns base, or base with the lowest numeric suffix ("-2", "-3", ...)
// for which taken reports false.
func Unique(base string, taken func(string) bool) string {
	if !taken(base) {
		return base
	}
	for n := 2; ; n++ {
		candidate := base + "-" + strconv.Itoa(n)
		if !taken(candidate) {
			return candidate
		}
	}
}
