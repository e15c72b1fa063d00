package vcard

import (
	"io"
	"slices"

	"braces.dev/errtrace"
	"github.com/samber/lo"

	"github.com/ghettovoice/vcard/attr"
	"github.com/ghettovoice/vcard/internal/grammar"
	"github.com/ghettovoice/vcard/internal/ioutil"
	"github.com/ghettovoice/vcard/internal/util"
)

// Card is an ordered list of attributes. The order is kept exactly as parsed.
type Card struct {
	Attrs []attr.Attribute
}

// Append adds attributes to the end of the card.
func (c *Card) Append(attrs ...attr.Attribute) *Card {
	c.Attrs = append(c.Attrs, attrs...)
	return c
}

// Find returns all attributes with the name, compared ignoring case.
func (c *Card) Find(name string) []attr.Attribute {
	if c == nil {
		return nil
	}
	return lo.Filter(c.Attrs, func(a attr.Attribute, _ int) bool { return a.Name().Equal(name) })
}

// First returns the first attribute with the name.
func (c *Card) First(name string) (attr.Attribute, bool) {
	if c == nil {
		return nil, false
	}
	return lo.Find(c.Attrs, func(a attr.Attribute) bool { return a.Name().Equal(name) })
}

// Binaries returns all binary attributes of the card.
func (c *Card) Binaries() []*attr.Binary {
	if c == nil {
		return nil
	}
	return lo.FilterMap(c.Attrs, func(a attr.Attribute, _ int) (*attr.Binary, bool) {
		b, ok := a.(*attr.Binary)
		return b, ok
	})
}

// RenderOptions controls how a card is rendered.
type RenderOptions struct {
	// Original renders raw values captured at parse time instead of encoding the typed fields.
	Original bool `json:"original,omitempty"`
	// Decoded overrides Original per attribute: attributes for which it returns true
	// are encoded from their typed fields, all others use their raw values.
	Decoded func(a attr.Attribute) bool `json:"-"`
	// LineWidth is the fold width in characters.
	// Zero means [DefaultLineWidth], negative disables folding.
	LineWidth int `json:"line_width,omitempty"`
	// Newline terminates every physical line. Empty means CRLF.
	Newline string `json:"newline,omitempty"`
}

// DefaultLineWidth is the fold width recommended by RFC 2425.
const DefaultLineWidth = 75

// DecodeBinaries is a [RenderOptions.Decoded] func that encodes binary attributes
// from their current data and keeps raw values of all others.
func DecodeBinaries(a attr.Attribute) bool { return a.Kind() == attr.KindBinary }

func (opts *RenderOptions) attrOptions(a attr.Attribute) *attr.RenderOptions {
	if opts == nil {
		return nil
	}
	if opts.Decoded != nil {
		return &attr.RenderOptions{Original: !opts.Decoded(a)}
	}
	return &attr.RenderOptions{Original: opts.Original}
}

func (opts *RenderOptions) lineWidth() int {
	if opts == nil || opts.LineWidth == 0 {
		return DefaultLineWidth
	}
	return opts.LineWidth
}

func (opts *RenderOptions) newline() string {
	if opts == nil || opts.Newline == "" {
		return grammar.CRLF
	}
	return opts.Newline
}

// RenderTo writes the card to w. Every content line is folded and terminated with the newline.
func (c *Card) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if c == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	width, nl := opts.lineWidth(), opts.newline()
	for _, a := range c.Attrs {
		sb.Reset()
		if _, err := a.RenderTo(sb, opts.attrOptions(a)); err != nil {
			num, _ = cw.Result()
			return num, errtrace.Wrap(err)
		}
		cw.WriteString(grammar.Fold(sb.String(), width, nl))
		cw.WriteString(nl)
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the card text, see [Card.RenderTo].
func (c *Card) Render(opts *RenderOptions) string {
	if c == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	c.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (c *Card) String() string { return c.Render(nil) }

// Clone returns a deep copy of the card.
func (c *Card) Clone() *Card {
	if c == nil {
		return nil
	}
	return &Card{Attrs: lo.Map(c.Attrs, func(a attr.Attribute, _ int) attr.Attribute { return a.Clone() })}
}

// Equal compares cards attribute by attribute, in order.
func (c *Card) Equal(val any) bool {
	other, ok := val.(*Card)
	if !ok || c == nil || other == nil {
		return ok && c == other
	}
	return slices.EqualFunc(c.Attrs, other.Attrs, func(a1, a2 attr.Attribute) bool { return a1.Equal(a2) })
}
