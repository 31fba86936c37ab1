package vcard

const addressComponentCount = 7

// AddressComponents are the decoded parts of a delivery address, in wire order.
type AddressComponents struct {
	POBox      string `json:"po_box,omitempty" yaml:"po_box,omitempty"`
	Extended   string `json:"extended,omitempty" yaml:"extended,omitempty"`
	Street     string `json:"street,omitempty" yaml:"street,omitempty"`
	Locality   string `json:"locality,omitempty" yaml:"locality,omitempty"`
	Region     string `json:"region,omitempty" yaml:"region,omitempty"`
	PostalCode string `json:"postal_code,omitempty" yaml:"postal_code,omitempty"`
	Country    string `json:"country,omitempty" yaml:"country,omitempty"`
}

func (c AddressComponents) texts() []string {
	return []string{c.POBox, c.Extended, c.Street, c.Locality, c.Region, c.PostalCode, c.Country}
}

// AddressValue is the structured ADR property.
type AddressValue struct {
	original   string
	formatted  string
	components []component
}

func parseAddress(raw string, params Parameters) (*AddressValue, []error) {
	components, issues := parseComponents(raw, addressComponentCount, params)
	return &AddressValue{
		original:   raw,
		formatted:  joinText(", ", components...),
		components: components,
	}, issues
}

// NewAddressValue builds an address from display components.
func NewAddressValue(c AddressComponents, params Parameters) (*AddressValue, error) {
	components, err := buildComponents(c.texts(), params)
	if err != nil {
		return nil, err
	}
	return &AddressValue{
		original:   joinWire(components),
		formatted:  joinText(", ", components...),
		components: components,
	}, nil
}

func (v *AddressValue) Kind() ValueKind   { return KindAddress }
func (v *AddressValue) Original() string  { return v.original }
func (v *AddressValue) Formatted() string { return v.formatted }
func (v *AddressValue) sealed()           {}

// Components returns the decoded address parts.
func (v *AddressValue) Components() AddressComponents {
	if len(v.components) != addressComponentCount {
		return AddressComponents{}
	}
	c := v.components
	return AddressComponents{
		POBox:      c[0].text,
		Extended:   c[1].text,
		Street:     c[2].text,
		Locality:   c[3].text,
		Region:     c[4].text,
		PostalCode: c[5].text,
		Country:    c[6].text,
	}
}

// Export reassembles the seven components in wire order.
func (v *AddressValue) Export() (string, error) {
	if len(v.components) != addressComponentCount {
		return "", ErrNoComponents
	}
	return joinWire(v.components), nil
}
