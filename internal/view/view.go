// Package view projects parsed contacts into render-ready cards.
//
// The projection is what a front end displays: a primary and secondary line,
// a photo URI and one row per visible property. It holds no reference back to
// the contact, so it can be serialized freely.
package view

import (
	"strings"

	"github.com/aidanlsb/cardboard/internal/vcard"
)

// Row is one visible property of a card.
type Row struct {
	Label      string `json:"label" yaml:"label"`
	Name       string `json:"name" yaml:"name"`
	Value      string `json:"value" yaml:"value"`
	Parameters string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Type       string `json:"type,omitempty" yaml:"type,omitempty"`
	Preferred  bool   `json:"preferred,omitempty" yaml:"preferred,omitempty"`
}

// Card is the display projection of a contact.
type Card struct {
	ID              string          `json:"id" yaml:"id"`
	DisplayName     string          `json:"display_name" yaml:"display_name"`
	Subtitle        string          `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Photo           string          `json:"photo" yaml:"photo"`
	HasInvalidLines bool            `json:"has_invalid_lines,omitempty" yaml:"has_invalid_lines,omitempty"`
	Warnings        []vcard.Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Rows            []Row           `json:"rows" yaml:"rows"`
}

// Column is the projection of a whole document.
type Column struct {
	ID       string          `json:"id" yaml:"id"`
	Name     string          `json:"name" yaml:"name"`
	Cards    []Card          `json:"cards" yaml:"cards"`
	Warnings []vcard.Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Project builds the card for c. placeholder is the photo shown when the
// contact has no usable photo; empty means vcard.DefaultPhoto.
func Project(c *vcard.Contact, placeholder string) Card {
	if placeholder == "" {
		placeholder = vcard.DefaultPhoto
	}

	card := Card{
		ID:              c.ID,
		DisplayName:     c.DisplayName(),
		Subtitle:        c.Subtitle(),
		Photo:           placeholder,
		HasInvalidLines: c.HasInvalidLines(),
		Warnings:        c.Warnings(),
		Rows:            []Row{},
	}

	if p, ok := c.FindByName(vcard.Photo); ok {
		if uri := p.Formatted(); uri != "" && uri != vcard.DefaultPhoto {
			card.Photo = uri
		}
	}

	for _, p := range c.Visible() {
		card.Rows = append(card.Rows, projectRow(p))
	}

	return card
}

// ProjectDocument projects every contact of d, in file order.
func ProjectDocument(d *vcard.Document, placeholder string) Column {
	col := Column{
		ID:    d.ID,
		Name:  d.Name,
		Cards: []Card{},
	}
	for _, c := range d.Contacts() {
		col.Cards = append(col.Cards, Project(c, placeholder))
	}

	// Contact warnings are already on each card.
	for _, w := range d.Warnings() {
		if w.Contact == "" {
			col.Warnings = append(col.Warnings, w)
		}
	}
	return col
}

func projectRow(p *vcard.Property) Row {
	types := p.Parameters.Types()
	label := Label(p.Name)
	if len(types) > 0 {
		label += " (" + strings.ToLower(strings.Join(types, ", ")) + ")"
	}

	return Row{
		Label:      label,
		Name:       string(p.Name),
		Value:      p.Formatted(),
		Parameters: p.Parameters.Summary(),
		Type:       strings.Join(types, ","),
		Preferred:  p.Parameters.Preferred(),
	}
}
