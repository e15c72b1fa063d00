package attr

import (
	"io"
	"slices"
	"strings"

	"braces.dev/errtrace"
	"github.com/samber/lo"

	"github.com/ghettovoice/vcard/internal/errorutil"
	"github.com/ghettovoice/vcard/internal/grammar"
	"github.com/ghettovoice/vcard/internal/ioutil"
	"github.com/ghettovoice/vcard/internal/util"
)

// ParamValue is a single parameter value.
type ParamValue struct {
	Value string
	// Quoted forces double quotes around the value on render.
	// Values that contain ';', ':' or ',' are always quoted.
	Quoted bool
}

// ParseParamValue builds a value from its wire form, stripping surrounding quotes.
// A value that is not a complete quoted string is taken as is.
func ParseParamValue(raw string) ParamValue {
	if grammar.IsQuoted(raw) {
		return ParamValue{Value: grammar.Unquote(raw), Quoted: true}
	}
	return ParamValue{Value: raw}
}

// IsValid reports whether the value can be rendered. Double quotes cannot be represented.
func (v ParamValue) IsValid() bool { return !strings.Contains(v.Value, `"`) }

func (v ParamValue) String() string {
	if v.Quoted || grammar.NeedsQuote(v.Value) {
		return grammar.Quote(v.Value)
	}
	return v.Value
}

// Param is a named parameter with one or more values.
type Param struct {
	Name   Name
	Values []ParamValue
}

// NewParam creates a parameter with the given unquoted values.
func NewParam(name string, values ...string) Param {
	if len(values) == 0 {
		values = []string{""}
	}
	return Param{
		Name:   Name(name),
		Values: lo.Map(values, func(v string, _ int) ParamValue { return ParamValue{Value: v} }),
	}
}

// Strings returns the plain parameter values.
func (p Param) Strings() []string {
	return lo.Map(p.Values, func(v ParamValue, _ int) string { return v.Value })
}

// First returns the first value or an empty string.
func (p Param) First() string {
	if len(p.Values) == 0 {
		return ""
	}
	return p.Values[0].Value
}

// Has reports whether p has the value ignoring case.
func (p Param) Has(value string) bool {
	return lo.ContainsBy(p.Values, func(v ParamValue) bool { return util.EqFold(v.Value, value) })
}

func (p Param) IsValid() bool {
	return p.Name.IsValid() && len(p.Values) > 0 && lo.EveryBy(p.Values, ParamValue.IsValid)
}

func (p Param) RenderTo(w io.Writer) (num int, err error) {
	if !p.Name.IsValid() {
		return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidParam, "bad name %q", p.Name))
	}
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.Fprint(p.Name, "=")
	for i, v := range p.Values {
		if !v.IsValid() {
			return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidParam, "%s: value %q contains a double quote", p.Name, v.Value))
		}
		if i > 0 {
			cw.WriteString(",")
		}
		cw.WriteString(v.String())
	}
	return errtrace.Wrap2(cw.Result())
}

func (p Param) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	p.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

func (p Param) Clone() Param {
	p.Values = slices.Clone(p.Values)
	return p
}

// Equal compares parameters. Names are compared ignoring case, values as is.
func (p Param) Equal(val any) bool {
	var other Param
	switch v := val.(type) {
	case Param:
		other = v
	case *Param:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return p.Name.Equal(other.Name) && slices.Equal(p.Strings(), other.Strings())
}

// Params is an ordered list of parameters with unique case-insensitive names.
type Params []Param

// Index returns the position of the named parameter or -1.
func (ps Params) Index(name string) int {
	_, i, ok := lo.FindIndexOf(ps, func(p Param) bool { return p.Name.Equal(name) })
	if !ok {
		return -1
	}
	return i
}

func (ps Params) Has(name string) bool { return ps.Index(name) >= 0 }

func (ps Params) Get(name string) (Param, bool) {
	if i := ps.Index(name); i >= 0 {
		return ps[i], true
	}
	return Param{}, false
}

// HasValue reports whether the named parameter has the value. Both are compared ignoring case.
func (ps Params) HasValue(name, value string) bool {
	p, ok := ps.Get(name)
	return ok && p.Has(value)
}

// Set replaces the named parameter values keeping its position, or appends a new parameter.
func (ps *Params) Set(name string, values ...string) *Params {
	return ps.SetParam(NewParam(name, values...))
}

// SetParam replaces the parameter with the same name keeping its position, or appends p.
func (ps *Params) SetParam(p Param) *Params {
	if i := ps.Index(string(p.Name)); i >= 0 {
		(*ps)[i] = p
	} else {
		*ps = append(*ps, p)
	}
	return ps
}

// Append adds values of p to the parameter with the same name, or appends p.
func (ps *Params) Append(p Param) *Params {
	if i := ps.Index(string(p.Name)); i >= 0 {
		(*ps)[i].Values = append((*ps)[i].Values, p.Values...)
	} else {
		*ps = append(*ps, p)
	}
	return ps
}

// Del removes the named parameter.
func (ps *Params) Del(name string) *Params {
	*ps = slices.DeleteFunc(*ps, func(p Param) bool { return p.Name.Equal(name) })
	return ps
}

func (ps Params) IsValid() bool { return lo.EveryBy(ps, Param.IsValid) }

// RenderTo writes parameters separated by ';' without a leading separator.
func (ps Params) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	for i, p := range ps {
		if i > 0 {
			cw.WriteString(";")
		}
		cw.Call(p.RenderTo)
	}
	return errtrace.Wrap2(cw.Result())
}

func (ps Params) Render() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	ps.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

func (ps Params) String() string { return ps.Render() }

func (ps Params) Clone() Params {
	if ps == nil {
		return nil
	}
	return lo.Map(ps, func(p Param, _ int) Param { return p.Clone() })
}

// Equal compares parameter lists. The order of parameters matters.
func (ps Params) Equal(val any) bool {
	var other Params
	switch v := val.(type) {
	case Params:
		other = v
	case *Params:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(ps, other, func(p1, p2 Param) bool { return p1.Equal(p2) })
}
