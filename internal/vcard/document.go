// Package vcard parses and serializes vCard contact files.
//
// Parsing is lossless: BEGIN, END and VERSION lines are kept as ordinary
// properties, every value remembers its wire text, and photos remember the
// width they were folded at, so exporting an unmodified document reproduces
// the source byte-for-byte when it was folded at DefaultFoldWidth.
package vcard

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aidanlsb/cardboard/internal/slugs"
)

const (
	beginMarker = "BEGIN:VCARD"
	endMarker   = "END:VCARD"
)

// Block is the raw text of one card, BEGIN through END, with CRLF terminators
// between its physical lines.
type Block struct {
	Text string
	Line int // 1-indexed line of the BEGIN marker in the file
}

// SplitCards locates the BEGIN:VCARD ... END:VCARD blocks of a file, in order.
// Cards do not nest: a BEGIN inside an open block discards the outer block.
// Text outside blocks is ignored.
func SplitCards(text string) ([]Block, []Warning) {
	physical := strings.Split(text, "\n")

	var blocks []Block
	var warnings []Warning
	start := -1

	for i, line := range physical {
		marker := strings.TrimRight(strings.TrimSuffix(line, "\r"), " \t")

		switch {
		case strings.EqualFold(marker, beginMarker):
			if start >= 0 {
				warnings = append(warnings, Warning{
					Code:    WarnNestedCard,
					Line:    start + 1,
					Message: fmt.Sprintf("card starting on line %d is not closed before line %d", start+1, i+1),
				})
			}
			start = i
		case strings.EqualFold(marker, endMarker) && start >= 0:
			lines := make([]string, 0, i-start+1)
			for _, l := range physical[start : i+1] {
				lines = append(lines, strings.TrimSuffix(l, "\r"))
			}
			blocks = append(blocks, Block{Text: strings.Join(lines, CRLF), Line: start + 1})
			start = -1
		}
	}

	if start >= 0 {
		warnings = append(warnings, Warning{
			Code:    WarnUnterminatedCard,
			Line:    start + 1,
			Message: fmt.Sprintf("card starting on line %d has no END:VCARD", start+1),
		})
	}

	return blocks, warnings
}

// Document is the set of contacts loaded from one file.
type Document struct {
	// ID identifies the document (a board column).
	ID string

	// Name is the display name, usually the file name.
	Name string

	contacts []*Contact
	byID     map[string]*Contact
	warnings []Warning
}

// NewDocument returns an empty document.
func NewDocument(name string) *Document {
	return &Document{
		ID:   uuid.NewString(),
		Name: name,
		byID: make(map[string]*Contact),
	}
}

// ParseDocument splits a file into cards and parses each one. Malformed cards
// and lines are reported as warnings; parsing never fails outright.
func ParseDocument(name, text string) *Document {
	doc := NewDocument(name)

	blocks, warnings := SplitCards(text)
	doc.warnings = warnings

	for _, block := range blocks {
		c := ParseContact(block.Text)
		for i := range c.warnings {
			c.warnings[i].Line += block.Line - 1
		}
		doc.Add(c)
	}

	return doc
}

// Add appends a contact and assigns it an id unique within the document.
// The contact's existing id is kept when it is free.
func (d *Document) Add(c *Contact) string {
	base := c.ID
	if base == "" || d.byID[base] != nil {
		base = slugs.ContactSlug(contactLabel(c))
	}
	c.ID = slugs.Unique(base, func(id string) bool { return d.byID[id] != nil })

	d.contacts = append(d.contacts, c)
	d.byID[c.ID] = c
	return c.ID
}

func contactLabel(c *Contact) string {
	if fn := c.formatted(FormattedName); fn != "" {
		return fn
	}
	if n := c.formatted(StructuredName); n != "" {
		return n
	}
	return c.DisplayName()
}

// Get returns the contact with the given id.
func (d *Document) Get(id string) (*Contact, bool) {
	c, ok := d.byID[id]
	return c, ok
}

// Remove takes a contact out of the document.
func (d *Document) Remove(id string) (*Contact, bool) {
	c, ok := d.byID[id]
	if !ok {
		return nil, false
	}
	delete(d.byID, id)
	for i, existing := range d.contacts {
		if existing == c {
			d.contacts = append(d.contacts[:i], d.contacts[i+1:]...)
			break
		}
	}
	return c, true
}

// Replace puts c in place of the contact with the given id, keeping its
// position and id. Used to commit edited clones.
func (d *Document) Replace(id string, c *Contact) error {
	old, ok := d.byID[id]
	if !ok {
		return fmt.Errorf("contact '%s' not found in %s", id, d.Name)
	}
	for i, existing := range d.contacts {
		if existing == old {
			d.contacts[i] = c
			break
		}
	}
	c.ID = id
	d.byID[id] = c
	return nil
}

// Contacts returns the contacts in file order. The slice is a copy.
func (d *Document) Contacts() []*Contact {
	out := make([]*Contact, len(d.contacts))
	copy(out, d.contacts)
	return out
}

// Len returns the number of contacts.
func (d *Document) Len() int { return len(d.contacts) }

// HasInvalidLines reports whether any contact has unparseable lines.
func (d *Document) HasInvalidLines() bool {
	for _, c := range d.contacts {
		if c.invalid {
			return true
		}
	}
	return false
}

// Warnings returns the document-level warnings followed by the warnings of
// every contact, tagged with the contact id.
func (d *Document) Warnings() []Warning {
	out := append([]Warning(nil), d.warnings...)
	for _, c := range d.contacts {
		for _, w := range c.warnings {
			w.Contact = c.ID
			out = append(out, w)
		}
	}
	return out
}

// Export returns the wire form of every contact, each followed by CRLF.
func (d *Document) Export() (string, error) {
	return d.ExportWidth(DefaultFoldWidth)
}

// ExportWidth is Export with an explicit fold width.
func (d *Document) ExportWidth(width int) (string, error) {
	var sb strings.Builder
	for _, c := range d.contacts {
		s, err := c.ExportWidth(width)
		if err != nil {
			return "", fmt.Errorf("contact %s: %w", c.ID, err)
		}
		sb.WriteString(s)
		sb.WriteString(CRLF)
	}
	return sb.String(), nil
}
