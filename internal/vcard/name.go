package vcard

// Positions of the N components on the wire.
const (
	nameFamily = iota
	nameGiven
	nameAdditional
	namePrefixes
	nameSuffixes

	nameComponentCount
)

// NameComponents are the decoded parts of a structured name.
type NameComponents struct {
	Family     string `json:"family,omitempty" yaml:"family,omitempty"`
	Given      string `json:"given,omitempty" yaml:"given,omitempty"`
	Additional string `json:"additional,omitempty" yaml:"additional,omitempty"`
	Prefixes   string `json:"prefixes,omitempty" yaml:"prefixes,omitempty"`
	Suffixes   string `json:"suffixes,omitempty" yaml:"suffixes,omitempty"`
}

// NameValue is the structured N property:
// family;given;additional;prefixes;suffixes.
type NameValue struct {
	original   string
	formatted  string
	components []component
}

func parseName(raw string, params Parameters) (*NameValue, []error) {
	components, issues := parseComponents(raw, nameComponentCount, params)
	v := &NameValue{original: raw, components: components}
	v.formatted = v.format()
	return v, issues
}

// NewNameValue builds a structured name from display components.
func NewNameValue(c NameComponents, params Parameters) (*NameValue, error) {
	components, err := buildComponents([]string{c.Family, c.Given, c.Additional, c.Prefixes, c.Suffixes}, params)
	if err != nil {
		return nil, err
	}
	v := &NameValue{components: components}
	v.original = joinWire(components)
	v.formatted = v.format()
	return v, nil
}

// format renders "prefix given additional family suffix".
func (v *NameValue) format() string {
	c := v.components
	return joinText(" ", c[namePrefixes], c[nameGiven], c[nameAdditional], c[nameFamily], c[nameSuffixes])
}

func (v *NameValue) Kind() ValueKind   { return KindName }
func (v *NameValue) Original() string  { return v.original }
func (v *NameValue) Formatted() string { return v.formatted }
func (v *NameValue) sealed()           {}

// Components returns the decoded name parts.
func (v *NameValue) Components() NameComponents {
	if len(v.components) != nameComponentCount {
		return NameComponents{}
	}
	c := v.components
	return NameComponents{
		Family:     c[nameFamily].text,
		Given:      c[nameGiven].text,
		Additional: c[nameAdditional].text,
		Prefixes:   c[namePrefixes].text,
		Suffixes:   c[nameSuffixes].text,
	}
}

// Export reassembles the five components in wire order.
func (v *NameValue) Export() (string, error) {
	if len(v.components) != nameComponentCount {
		return "", ErrNoComponents
	}
	return joinWire(v.components), nil
}
