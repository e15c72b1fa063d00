package attr

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/samber/lo"

	"github.com/ghettovoice/vcard/internal/grammar"
)

// Schema describes the components of a structured value.
type Schema struct {
	// Components holds component names in wire order.
	Components []string
	// Lists reports whether each component is a comma-separated list of text values.
	// Otherwise each component is a single text value.
	Lists bool
	// Repeat reports whether the last component may occur any number of times, including zero.
	Repeat bool
}

// Component names.
const (
	CompFamily          = "family"
	CompGiven           = "given"
	CompAdditional      = "additional"
	CompHonorificPrefix = "honorific-prefix"
	CompHonorificSuffix = "honorific-suffix"

	CompPOBox      = "po-box"
	CompExtended   = "extended"
	CompStreet     = "street"
	CompLocality   = "locality"
	CompRegion     = "region"
	CompPostalCode = "postal-code"
	CompCountry    = "country"

	CompLatitude  = "latitude"
	CompLongitude = "longitude"

	CompOrganization = "organization"
	CompUnit         = "unit"
)

var (
	// NameSchema describes the N value.
	NameSchema = &Schema{
		Components: []string{CompFamily, CompGiven, CompAdditional, CompHonorificPrefix, CompHonorificSuffix},
		Lists:      true,
	}
	// AddressSchema describes the ADR value.
	AddressSchema = &Schema{
		Components: []string{CompPOBox, CompExtended, CompStreet, CompLocality, CompRegion, CompPostalCode, CompCountry},
		Lists:      true,
	}
	// GeoSchema describes the GEO value.
	GeoSchema = &Schema{
		Components: []string{CompLatitude, CompLongitude},
		Lists:      true,
	}
	// OrgSchema describes the ORG value: organization name followed by zero or more unit names.
	OrgSchema = &Schema{
		Components: []string{CompOrganization, CompUnit},
		Repeat:     true,
	}
)

// Arity returns the number of components the value is padded to on decode.
func (s *Schema) Arity() int {
	if s.Repeat {
		return len(s.Components) - 1
	}
	return len(s.Components)
}

// Index returns the position of the named component or -1.
func (s *Schema) Index(name string) int { return slices.Index(s.Components, name) }

func (s *Schema) componentName(i int) string {
	switch {
	case i < len(s.Components):
		return s.Components[i]
	case s.Repeat:
		return s.Components[len(s.Components)-1]
	default:
		return "x-" + strconv.Itoa(i+1)
	}
}

// Structured is an attribute whose value is a ';'-separated sequence of components, like N or ADR.
type Structured struct {
	base
	// Components holds the decoded components in wire order.
	// Components beyond the schema are kept and encoded back.
	Components [][]string
	schema     *Schema
}

// NewStructured creates a structured attribute from components given in wire order.
func NewStructured(name string, schema *Schema, components ...[]string) *Structured {
	a := &Structured{base: base{name: Name(name)}, Components: components, schema: schema}
	a.raw = a.Encode()
	return a
}

func (*Structured) Kind() Kind { return KindStructured }

func (a *Structured) Schema() *Schema { return a.schema }

// Component returns the values of the named component.
// For a repeating component the values of all its occurrences are returned.
func (a *Structured) Component(name string) []string {
	i := a.schema.Index(name)
	if i < 0 || i >= len(a.Components) {
		return nil
	}
	if a.schema.Repeat && i == len(a.schema.Components)-1 {
		return slices.Concat(a.Components[i:]...)
	}
	return a.Components[i]
}

// SetComponent replaces the values of the named component, growing the value if needed.
// For a repeating component of single texts each value becomes a separate occurrence.
func (a *Structured) SetComponent(name string, values ...string) bool {
	i := a.schema.Index(name)
	if i < 0 {
		return false
	}
	for len(a.Components) < i {
		a.Components = append(a.Components, nil)
	}
	if a.schema.Repeat && i == len(a.schema.Components)-1 {
		a.Components = a.Components[:i]
		if a.schema.Lists {
			a.Components = append(a.Components, values)
		} else {
			for _, v := range values {
				a.Components = append(a.Components, []string{v})
			}
		}
		return true
	}
	if len(a.Components) == i {
		a.Components = append(a.Components, nil)
	}
	a.Components[i] = values
	return true
}

// Decode splits the raw value on unescaped semicolons and pads missing components with empty lists.
func (a *Structured) Decode(raw string) error {
	a.raw = raw
	parts := grammar.EscapedSplit(raw, ';', false)
	for len(parts) < a.schema.Arity() {
		parts = append(parts, "")
	}
	a.Components = lo.Map(parts, func(part string, _ int) []string {
		if a.schema.Lists {
			return decodeList(part)
		}
		if part == "" {
			return nil
		}
		return []string{grammar.Unescape(part)}
	})
	return nil
}

func (a *Structured) Encode() string {
	return strings.Join(lo.Map(a.Components, func(comp []string, _ int) string {
		return encodeList(comp)
	}), ";")
}

func (a *Structured) Typed() TypedValue {
	return TypedValue{
		Type: ValueStructured,
		Components: lo.Map(a.Components, func(comp []string, i int) Component {
			return Component{Name: a.schema.componentName(i), Values: slices.Clone(comp)}
		}),
	}
}

func (a *Structured) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderAttr(w, a, opts))
}

func (a *Structured) Render(opts *RenderOptions) string { return renderAttrString(a, opts) }

func (a *Structured) String() string { return a.Render(nil) }

func (a *Structured) Format(f fmt.State, verb rune) {
	if formatAttr(f, verb, a) {
		return
	}
	type hideMethods Structured
	type Structured hideMethods
	fmt.Fprintf(f, fmt.FormatString(f, verb), (*Structured)(a))
}

func (a *Structured) Clone() Attribute {
	if a == nil {
		return nil
	}
	return &Structured{
		base:       a.clone(),
		Components: lo.Map(a.Components, func(comp []string, _ int) []string { return slices.Clone(comp) }),
		schema:     a.schema,
	}
}

func (a *Structured) Equal(val any) bool {
	other, ok := val.(*Structured)
	if !ok || a == nil || other == nil {
		return ok && a == other
	}
	return a.equal(&other.base) && a.schema == other.schema &&
		slices.EqualFunc(a.Components, other.Components, func(c1, c2 []string) bool { return slices.Equal(c1, c2) })
}
