package vcard

import (
	"errors"
	"fmt"
	"strings"
)

// UnknownName is displayed for contacts without any identifying property.
const UnknownName = "Unknown"

// Contact is one card: an ordered list of properties, framed by BEGIN and END.
type Contact struct {
	// ID identifies the contact within its document.
	ID string

	properties []*Property
	kept       []keptLine
	raw        string
	invalid    bool
	warnings   []Warning
}

// keptLine is a source line that could not be parsed. It is written back
// verbatim after the property it followed.
type keptLine struct {
	after *Property
	text  string
}

// NewContact returns an empty card containing only the framing lines.
func NewContact(version string) *Contact {
	c := &Contact{}
	c.properties = append(c.properties, NewProperty(Begin, nil, &SimpleValue{original: "VCARD", formatted: "VCARD"}))
	if version != "" {
		c.properties = append(c.properties, NewProperty(Version, nil, &SimpleValue{original: version, formatted: version}))
	}
	c.properties = append(c.properties, NewProperty(End, nil, &SimpleValue{original: "VCARD", formatted: "VCARD"}))
	return c
}

// ParseContact parses one card block (BEGIN through END). Lines that cannot
// be parsed are recorded as warnings and kept as they were written, so export
// reproduces them in place; the contact is flagged as having invalid lines.
// BEGIN, END and VERSION are kept as properties so that export reproduces them.
func ParseContact(raw string) *Contact {
	c := &Contact{raw: raw}

	for _, line := range Unfold(raw) {
		p, warnings, err := ParseProperty(line)
		if err != nil {
			code := WarnUnknownProperty
			if errors.Is(err, ErrMissingSeparator) {
				code = WarnMissingSeparator
			}
			c.warnings = append(c.warnings, Warning{
				Code:    code,
				Line:    line.Number,
				Text:    line.Text,
				Message: fmt.Sprintf("Unhandled VCF line: '%s'", line.Text),
			})
			c.invalid = true
			c.kept = append(c.kept, keptLine{after: c.last(), text: strings.Join(line.Physical, CRLF)})
			continue
		}
		c.properties = append(c.properties, p)
		c.warnings = append(c.warnings, warnings...)
	}

	return c
}

func (c *Contact) last() *Property {
	if len(c.properties) == 0 {
		return nil
	}
	return c.properties[len(c.properties)-1]
}

// reanchor moves lines kept after from onto to.
func (c *Contact) reanchor(from, to *Property) {
	for i := range c.kept {
		if c.kept[i].after == from {
			c.kept[i].after = to
		}
	}
}

// Unparsed returns the source lines that could not be parsed, in order.
func (c *Contact) Unparsed() []string {
	out := make([]string, len(c.kept))
	for i, k := range c.kept {
		out[i] = k.text
	}
	return out
}

// Properties returns the ordered properties. The slice is a copy.
func (c *Contact) Properties() []*Property {
	out := make([]*Property, len(c.properties))
	copy(out, c.properties)
	return out
}

// Visible returns the properties without the BEGIN, END and VERSION lines.
func (c *Contact) Visible() []*Property {
	var out []*Property
	for _, p := range c.properties {
		if !p.Name.IsBookkeeping() {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of properties, framing lines included.
func (c *Contact) Len() int { return len(c.properties) }

// Raw returns the card block the contact was parsed from.
func (c *Contact) Raw() string { return c.raw }

// HasInvalidLines reports whether any line of the card could not be parsed.
func (c *Contact) HasInvalidLines() bool { return c.invalid }

// Warnings returns the parse diagnostics of the card.
func (c *Contact) Warnings() []Warning { return c.warnings }

// FindByName returns the first property with the given name.
func (c *Contact) FindByName(name PropertyName) (*Property, bool) {
	for _, p := range c.properties {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// FindAllByName returns every property with the given name, in order.
func (c *Contact) FindAllByName(name PropertyName) []*Property {
	var out []*Property
	for _, p := range c.properties {
		if p.Name == name {
			out = append(out, p)
		}
	}
	return out
}

func (c *Contact) formatted(name PropertyName) string {
	if p, ok := c.FindByName(name); ok {
		return p.Formatted()
	}
	return ""
}

// DisplayName is the primary label of the contact. A full name that differs
// from the structured name is shown with the structured name in parentheses.
func (c *Contact) DisplayName() string {
	fn := c.formatted(FormattedName)
	n := c.formatted(StructuredName)

	switch {
	case fn != "" && n != "" && fn != n:
		return fn + " (" + n + ")"
	case fn != "":
		return fn
	case n != "":
		return n
	}

	if email := c.formatted(Email); email != "" {
		return email
	}
	for _, p := range c.Visible() {
		if s := p.Formatted(); s != "" {
			return s
		}
	}
	return UnknownName
}

// Subtitle is the secondary line of the contact: job title and organisation,
// or else the first phone number or email address.
func (c *Contact) Subtitle() string {
	title := c.formatted(Title)
	org := organisation(c.formatted(Organization))

	switch {
	case title != "" && org != "":
		return title + ", " + org
	case org != "":
		return org
	case title != "":
		return title
	}

	if tel := c.formatted(Telephone); tel != "" {
		return tel
	}
	if email := c.formatted(Email); email != "" && email != c.DisplayName() {
		return email
	}
	return ""
}

// organisation joins the ORG name and units.
func organisation(s string) string {
	var parts []string
	for _, part := range strings.Split(s, ";") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

// Clone returns a contact with its own property slice. Properties are shared
// since they are never mutated in place.
func (c *Contact) Clone() *Contact {
	clone := *c
	clone.properties = c.Properties()
	clone.kept = append([]keptLine(nil), c.kept...)
	clone.warnings = append([]Warning(nil), c.warnings...)
	return &clone
}

func (c *Contact) checkFramed() error {
	n := len(c.properties)
	if n < 2 || c.properties[0].Name != Begin || c.properties[n-1].Name != End {
		return ErrMalformedContact
	}
	return nil
}

// Append inserts a property immediately before the terminal END.
func (c *Contact) Append(p *Property) error {
	if p.Name.IsBookkeeping() {
		return fmt.Errorf("%w: %s", ErrBookkeeping, p.Name)
	}
	if err := c.checkFramed(); err != nil {
		return err
	}
	end := len(c.properties) - 1
	c.properties = append(c.properties[:end], p, c.properties[end])
	return nil
}

// Remove takes the first property matching name and formatted value out of
// the contact and returns it.
func (c *Contact) Remove(name PropertyName, formatted string) (*Property, error) {
	if name.IsBookkeeping() {
		return nil, fmt.Errorf("%w: %s", ErrBookkeeping, name)
	}
	for i, p := range c.properties {
		if p.Matches(name, formatted) {
			var prev *Property
			if i > 0 {
				prev = c.properties[i-1]
			}
			c.reanchor(p, prev)
			c.properties = append(c.properties[:i], c.properties[i+1:]...)
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s '%s'", ErrPropertyNotFound, name, formatted)
}

// Replace swaps a property for an edited one at the same position.
func (c *Contact) Replace(old, updated *Property) error {
	if old.Name.IsBookkeeping() || updated.Name.IsBookkeeping() {
		return fmt.Errorf("%w: %s", ErrBookkeeping, old.Name)
	}
	for i, p := range c.properties {
		if p == old {
			c.reanchor(old, updated)
			c.properties[i] = updated
			return nil
		}
	}
	return fmt.Errorf("%w: %s '%s'", ErrPropertyNotFound, old.Name, old.Formatted())
}

// MoveProperty moves the first property of source with the given name and
// formatted value to target, immediately before target's END line.
func MoveProperty(source, target *Contact, name PropertyName, formatted string) error {
	if name.IsBookkeeping() {
		return fmt.Errorf("%w: %s", ErrBookkeeping, name)
	}
	if err := target.checkFramed(); err != nil {
		return fmt.Errorf("move to %s: %w", target.ID, err)
	}

	p, err := source.Remove(name, formatted)
	if err != nil {
		return fmt.Errorf("move from %s: %w", source.ID, err)
	}

	return target.Append(p)
}

// Export returns the wire form of the contact, folded at DefaultFoldWidth.
// Lines are joined with CRLF; there is no trailing terminator.
func (c *Contact) Export() (string, error) {
	return c.ExportWidth(DefaultFoldWidth)
}

// ExportWidth is Export with an explicit fold width for non-photo lines.
// Unparsed source lines are written back unchanged.
func (c *Contact) ExportWidth(width int) (string, error) {
	lines := make([]string, 0, len(c.properties)+len(c.kept))
	lines = c.appendKept(lines, nil)
	for _, p := range c.properties {
		line, err := p.Export(width)
		if err != nil {
			return "", fmt.Errorf("export %s: %w", p.Name, err)
		}
		lines = append(lines, line)
		lines = c.appendKept(lines, p)
	}
	return strings.Join(lines, CRLF), nil
}

func (c *Contact) appendKept(lines []string, after *Property) []string {
	for _, k := range c.kept {
		if k.after == after {
			lines = append(lines, k.text)
		}
	}
	return lines
}
