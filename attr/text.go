package attr

import (
	"fmt"
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard/internal/grammar"
)

// Text is an attribute with a single escaped text value, like FN, TEL or EMAIL.
type Text struct {
	base
	Value string
}

func NewText(name, value string) *Text {
	a := &Text{base: base{name: Name(name)}, Value: value}
	a.raw = a.Encode()
	return a
}

func (*Text) Kind() Kind { return KindText }

func (a *Text) Decode(raw string) error {
	a.raw = raw
	a.Value = grammar.Unescape(raw)
	return nil
}

func (a *Text) Encode() string { return grammar.Escape(a.Value) }

func (a *Text) Typed() TypedValue { return TypedValue{Type: ValueText, Text: a.Value} }

func (a *Text) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderAttr(w, a, opts))
}

func (a *Text) Render(opts *RenderOptions) string { return renderAttrString(a, opts) }

func (a *Text) String() string { return a.Render(nil) }

func (a *Text) Format(f fmt.State, verb rune) {
	if formatAttr(f, verb, a) {
		return
	}
	type hideMethods Text
	type Text hideMethods
	fmt.Fprintf(f, fmt.FormatString(f, verb), (*Text)(a))
}

func (a *Text) Clone() Attribute {
	if a == nil {
		return nil
	}
	return &Text{base: a.clone(), Value: a.Value}
}

func (a *Text) Equal(val any) bool {
	other, ok := val.(*Text)
	if !ok || a == nil || other == nil {
		return ok && a == other
	}
	return a.equal(&other.base) && a.Value == other.Value
}
