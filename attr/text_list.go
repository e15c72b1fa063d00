package attr

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"braces.dev/errtrace"
	"github.com/samber/lo"

	"github.com/ghettovoice/vcard/internal/grammar"
)

// TextList is an attribute with a comma-separated list of text values, like NICKNAME or CATEGORIES.
type TextList struct {
	base
	Values []string
}

func NewTextList(name string, values ...string) *TextList {
	a := &TextList{base: base{name: Name(name)}, Values: values}
	a.raw = a.Encode()
	return a
}

func (*TextList) Kind() Kind { return KindTextList }

// Decode splits the raw value on unescaped commas. An empty value gives an empty list.
func (a *TextList) Decode(raw string) error {
	a.raw = raw
	a.Values = decodeList(raw)
	return nil
}

func (a *TextList) Encode() string { return encodeList(a.Values) }

func (a *TextList) Typed() TypedValue {
	return TypedValue{Type: ValueTextList, List: slices.Clone(a.Values)}
}

func (a *TextList) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderAttr(w, a, opts))
}

func (a *TextList) Render(opts *RenderOptions) string { return renderAttrString(a, opts) }

func (a *TextList) String() string { return a.Render(nil) }

func (a *TextList) Format(f fmt.State, verb rune) {
	if formatAttr(f, verb, a) {
		return
	}
	type hideMethods TextList
	type TextList hideMethods
	fmt.Fprintf(f, fmt.FormatString(f, verb), (*TextList)(a))
}

func (a *TextList) Clone() Attribute {
	if a == nil {
		return nil
	}
	return &TextList{base: a.clone(), Values: slices.Clone(a.Values)}
}

func (a *TextList) Equal(val any) bool {
	other, ok := val.(*TextList)
	if !ok || a == nil || other == nil {
		return ok && a == other
	}
	return a.equal(&other.base) && slices.Equal(a.Values, other.Values)
}

func decodeList(raw string) []string {
	if raw == "" {
		return nil
	}
	return grammar.EscapedSplit(raw, ',', true)
}

func encodeList(vals []string) string {
	return strings.Join(lo.Map(vals, func(v string, _ int) string { return grammar.Escape(v) }), ",")
}
