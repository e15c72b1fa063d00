package attr

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Any is an attribute without a registered codec. Its value is kept verbatim.
type Any struct {
	base
}

// NewAny creates an attribute holding the raw value as is.
func NewAny(name, raw string) *Any {
	return &Any{base: base{name: Name(name), raw: raw}}
}

func (*Any) Kind() Kind { return KindAny }

func (a *Any) Decode(raw string) error {
	a.raw = raw
	return nil
}

func (a *Any) Encode() string { return a.raw }

func (a *Any) Typed() TypedValue { return TypedValue{Type: ValueText, Text: a.raw} }

func (a *Any) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderAttr(w, a, opts))
}

func (a *Any) Render(opts *RenderOptions) string { return renderAttrString(a, opts) }

func (a *Any) String() string { return a.Render(nil) }

func (a *Any) Format(f fmt.State, verb rune) {
	if formatAttr(f, verb, a) {
		return
	}
	type hideMethods Any
	type Any hideMethods
	fmt.Fprintf(f, fmt.FormatString(f, verb), (*Any)(a))
}

func (a *Any) Clone() Attribute {
	if a == nil {
		return nil
	}
	return &Any{base: a.clone()}
}

func (a *Any) Equal(val any) bool {
	other, ok := val.(*Any)
	if !ok || a == nil || other == nil {
		return ok && a == other
	}
	return a.equal(&other.base) && a.raw == other.raw
}
