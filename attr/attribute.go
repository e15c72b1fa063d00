package attr

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard/internal/errorutil"
	"github.com/ghettovoice/vcard/internal/grammar"
	"github.com/ghettovoice/vcard/internal/ioutil"
	"github.com/ghettovoice/vcard/internal/util"
)

const (
	ErrInvalidValue errorutil.Error = "invalid value"
	ErrInvalidParam errorutil.Error = "invalid parameter"
)

// Well known parameter names.
const (
	ParamType      = "TYPE"
	ParamValueType = "VALUE"
	ParamEncoding  = "ENCODING"
	ParamCharset   = "CHARSET"
	ParamLanguage  = "LANGUAGE"
)

// Kind identifies the value codec of an attribute.
type Kind uint8

const (
	KindAny Kind = iota
	KindText
	KindTextList
	KindStructured
	KindBinary
)

func (k Kind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindText:
		return "text"
	case KindTextList:
		return "text-list"
	case KindStructured:
		return "structured"
	case KindBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// RenderOptions controls how a single content line is rendered.
type RenderOptions struct {
	// Original renders the raw value captured at parse time instead of the encoded fields.
	Original bool `json:"original,omitempty"`
}

// Attribute is a single vCard content line: an optional group, a name, parameters and a value.
//
// The set of implementations is closed: [*Any], [*Text], [*TextList], [*Structured] and [*Binary].
type Attribute interface {
	// Name returns the attribute name as it was written.
	Name() Name
	// Group returns the attribute group or an empty name.
	Group() Name
	SetGroup(group Name)
	// Params returns a pointer to the parameter list that can be modified in place.
	Params() *Params
	// SetParams replaces the parameter list.
	// Parameters must be set before Decode is called.
	SetParams(params Params)
	// Raw returns the value exactly as it was passed to Decode.
	Raw() string
	Kind() Kind
	// Decode parses the raw wire value into the typed fields.
	Decode(raw string) error
	// Encode renders the typed fields into a wire value.
	Encode() string
	// Typed returns the value in one of the export shapes.
	Typed() TypedValue
	RenderTo(w io.Writer, opts *RenderOptions) (int, error)
	Render(opts *RenderOptions) string
	String() string
	Clone() Attribute
	Equal(val any) bool

	attribute()
}

// Name is a case-insensitive attribute, group or parameter name.
type Name string

// ToCanonic returns the upper case form of the name.
func (n Name) ToCanonic() Name { return util.UCase(n) }

// IsValid checks whether the name is syntactically valid.
func (n Name) IsValid() bool { return grammar.IsName(n) }

// Equal compares names ignoring case.
func (n Name) Equal(val any) bool {
	var other Name
	switch v := val.(type) {
	case Name:
		other = v
	case *Name:
		if v == nil {
			return false
		}
		other = *v
	case string:
		other = Name(v)
	default:
		return false
	}
	return util.EqFold(n, other)
}

type base struct {
	name   Name
	group  Name
	params Params
	raw    string
}

func (a *base) Name() Name { return a.name }

func (a *base) Group() Name { return a.group }

func (a *base) SetGroup(group Name) { a.group = group }

func (a *base) Params() *Params { return &a.params }

func (a *base) SetParams(params Params) { a.params = params }

func (a *base) Raw() string { return a.raw }

func (*base) attribute() {}

func (a *base) clone() base {
	b := *a
	b.params = a.params.Clone()
	return b
}

func (a *base) equal(other *base) bool {
	return a.name.Equal(other.name) && a.group.Equal(other.group) && a.params.Equal(other.params)
}

// IsValid reports whether the attribute has a valid name, group and parameters.
func IsValid(a Attribute) bool {
	if a == nil || !a.Name().IsValid() {
		return false
	}
	if g := a.Group(); g != "" && !g.IsValid() {
		return false
	}
	return a.Params().IsValid()
}

func renderAttr(w io.Writer, a Attribute, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if g := a.Group(); g != "" {
		cw.Fprint(g, ".")
	}
	cw.Fprint(a.Name())
	if ps := a.Params(); len(*ps) > 0 {
		cw.WriteString(";")
		cw.Call(ps.RenderTo)
	}
	cw.WriteString(":")
	if opts != nil && opts.Original {
		cw.WriteString(a.Raw())
	} else {
		cw.WriteString(a.Encode())
	}
	return errtrace.Wrap2(cw.Result())
}

func renderAttrString(a Attribute, opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	renderAttr(sb, a, opts) //nolint:errcheck
	return sb.String()
}

func formatAttr(f fmt.State, verb rune, a Attribute) bool {
	switch verb {
	case 's':
		if f.Flag('+') {
			a.RenderTo(f, &RenderOptions{Original: true}) //nolint:errcheck
			return true
		}
		fmt.Fprint(f, a.String())
		return true
	case 'q':
		if f.Flag('+') {
			fmt.Fprint(f, strconv.Quote(a.Render(&RenderOptions{Original: true})))
			return true
		}
		fmt.Fprint(f, strconv.Quote(a.String()))
		return true
	default:
		return false
	}
}
