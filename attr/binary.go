package attr

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard/internal/errorutil"
)

// Binary is an attribute holding either inline base64 data or a URI reference, like PHOTO or LOGO.
//
// The attribute is in URI mode when one of the VALUE parameter values is "uri", otherwise the value is base64 data.
// Exactly one of [Binary.URI] and [Binary.Data] is meaningful at a time.
type Binary struct {
	base
	uri  string
	data []byte
}

// NewBinary creates an attribute with inline data.
func NewBinary(name string, data []byte) *Binary {
	a := &Binary{base: base{name: Name(name)}}
	a.SetData(data)
	a.raw = a.Encode()
	return a
}

// NewBinaryURI creates an attribute referencing the data by URI.
func NewBinaryURI(name, uri string) *Binary {
	a := &Binary{base: base{name: Name(name)}}
	a.SetURI(uri)
	a.raw = a.Encode()
	return a
}

func (*Binary) Kind() Kind { return KindBinary }

// IsURI reports whether the attribute is in URI mode.
func (a *Binary) IsURI() bool {
	p, ok := a.params.Get(ParamValueType)
	return ok && p.Has("uri")
}

// URI returns the referenced URI. It is empty in data mode.
func (a *Binary) URI() string { return a.uri }

// Data returns the inline data. It is nil in URI mode.
func (a *Binary) Data() []byte { return a.data }

// MediaType returns the first TYPE parameter value, like JPEG or GIF.
func (a *Binary) MediaType() string {
	p, _ := a.params.Get(ParamType)
	return p.First()
}

// SetURI switches the attribute to URI mode: VALUE=uri is set, ENCODING is removed and data is dropped.
func (a *Binary) SetURI(uri string) {
	a.params.Set(ParamValueType, "uri")
	a.params.Del(ParamEncoding)
	a.uri = uri
	a.data = nil
}

// SetData switches the attribute to data mode: VALUE is removed, ENCODING=b is set and the URI is dropped.
func (a *Binary) SetData(data []byte) {
	a.params.Del(ParamValueType)
	a.params.Set(ParamEncoding, "b")
	a.uri = ""
	a.data = data
}

// Decode interprets the raw value according to the VALUE parameter.
// Inline data is decoded as standard base64, padding and embedded whitespace are tolerated.
// A missing ENCODING parameter is set to "b".
func (a *Binary) Decode(raw string) error {
	a.raw = raw
	if a.IsURI() {
		a.uri = raw
		a.data = nil
		return nil
	}

	data, err := decodeBase64(raw)
	if err != nil {
		a.uri = ""
		a.data = nil
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidValue, fmt.Errorf("%s: %w", a.name, err)))
	}
	a.uri = ""
	a.data = data
	if !a.params.Has(ParamEncoding) {
		a.params.Set(ParamEncoding, "b")
	}
	return nil
}

func (a *Binary) Encode() string {
	if a.IsURI() {
		return a.uri
	}
	return base64.StdEncoding.EncodeToString(a.data)
}

func (a *Binary) Typed() TypedValue {
	if a.IsURI() {
		return TypedValue{Type: ValueURI, Text: a.uri}
	}
	return TypedValue{Type: ValueBinary, Text: base64.StdEncoding.EncodeToString(a.data)}
}

func (a *Binary) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(renderAttr(w, a, opts))
}

func (a *Binary) Render(opts *RenderOptions) string { return renderAttrString(a, opts) }

func (a *Binary) String() string { return a.Render(nil) }

func (a *Binary) Format(f fmt.State, verb rune) {
	if formatAttr(f, verb, a) {
		return
	}
	type hideMethods Binary
	type Binary hideMethods
	fmt.Fprintf(f, fmt.FormatString(f, verb), (*Binary)(a))
}

func (a *Binary) Clone() Attribute {
	if a == nil {
		return nil
	}
	return &Binary{base: a.clone(), uri: a.uri, data: bytes.Clone(a.data)}
}

func (a *Binary) Equal(val any) bool {
	other, ok := val.(*Binary)
	if !ok || a == nil || other == nil {
		return ok && a == other
	}
	return a.equal(&other.base) && a.uri == other.uri && bytes.Equal(a.data, other.data)
}

func decodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
	data, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return data, nil
}
