// Package merge implements the side-by-side merge of two contacts.
//
// A Session works on clones of both contacts, so nothing changes in the
// owning document until Commit. Moves are single-property transfers built on
// vcard.MoveProperty; Absorb moves everything one side has that the other
// lacks.
package merge

import (
	"errors"
	"fmt"

	"github.com/aidanlsb/cardboard/internal/vcard"
	"github.com/aidanlsb/cardboard/internal/view"
)

// ErrCommitted is returned when a session is used after Commit.
var ErrCommitted = errors.New("merge session already committed")

// Side selects one of the two contacts of a session.
type Side int

const (
	Left Side = iota
	Right
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == Left {
		return Right
	}
	return Left
}

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// ParseSide reads "left" or "right".
func ParseSide(s string) (Side, error) {
	switch s {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return Left, fmt.Errorf("unknown side %q (want left or right)", s)
}

// Columns holds the visible rows of both contacts.
type Columns struct {
	Left  []view.Row `json:"left" yaml:"left"`
	Right []view.Row `json:"right" yaml:"right"`
}

// Session is an in-progress merge.
type Session struct {
	contacts  [2]*vcard.Contact
	moved     int
	committed bool
}

// NewSession starts a merge of right into left (or either way). The contacts
// passed in are not modified.
func NewSession(left, right *vcard.Contact) *Session {
	return &Session{contacts: [2]*vcard.Contact{left.Clone(), right.Clone()}}
}

// Contact returns the working copy of one side.
func (s *Session) Contact(side Side) *vcard.Contact {
	return s.contacts[side]
}

// Rows returns the visible rows of both working copies.
func (s *Session) Rows() Columns {
	project := func(c *vcard.Contact) []view.Row {
		return view.Project(c, "").Rows
	}
	return Columns{
		Left:  project(s.contacts[Left]),
		Right: project(s.contacts[Right]),
	}
}

// Move transfers one property from a side to the other.
func (s *Session) Move(from Side, name vcard.PropertyName, value string) error {
	if s.committed {
		return ErrCommitted
	}
	if err := vcard.MoveProperty(s.contacts[from], s.contacts[from.Other()], name, value); err != nil {
		return err
	}
	s.moved++
	return nil
}

// Absorb moves every visible property of from that the other side does not
// already hold (same name and formatted value). Duplicates stay where they
// are. It returns the number of properties moved.
func (s *Session) Absorb(from Side) (int, error) {
	if s.committed {
		return 0, ErrCommitted
	}

	target := s.contacts[from.Other()]
	n := 0
	for _, p := range s.contacts[from].Visible() {
		if holds(target, p) {
			continue
		}
		if err := s.Move(from, p.Name, p.Formatted()); err != nil {
			return n, fmt.Errorf("absorb %s: %w", p.Name, err)
		}
		n++
	}
	return n, nil
}

func holds(c *vcard.Contact, p *vcard.Property) bool {
	for _, existing := range c.FindAllByName(p.Name) {
		if existing.Formatted() == p.Formatted() {
			return true
		}
	}
	return false
}

// Moved returns how many properties have been moved so far.
func (s *Session) Moved() int { return s.moved }

// Emptied reports whether a side has no visible properties left. A card still
// holding unparsed lines is never empty.
func (s *Session) Emptied(side Side) bool {
	c := s.contacts[side]
	return len(c.Visible()) == 0 && len(c.Unparsed()) == 0
}

// Result returns the working copies.
func (s *Session) Result() (left, right *vcard.Contact) {
	return s.contacts[Left], s.contacts[Right]
}

// Commit writes the working copies back into doc in place of the contacts
// with leftID and rightID. With dropEmptied, a side left without visible
// properties is removed from the document instead. Both ids are checked
// before anything changes.
func (s *Session) Commit(doc *vcard.Document, leftID, rightID string, dropEmptied bool) error {
	if s.committed {
		return ErrCommitted
	}
	if leftID == rightID {
		return fmt.Errorf("cannot merge contact '%s' with itself", leftID)
	}
	for _, id := range []string{leftID, rightID} {
		if _, ok := doc.Get(id); !ok {
			return fmt.Errorf("contact '%s' not found in %s", id, doc.Name)
		}
	}

	ids := [2]string{leftID, rightID}
	for _, side := range []Side{Left, Right} {
		if dropEmptied && s.Emptied(side) {
			doc.Remove(ids[side])
			continue
		}
		if err := doc.Replace(ids[side], s.contacts[side]); err != nil {
			return err
		}
	}

	s.committed = true
	return nil
}
