// Package cid resolves Content-ID references of vCard binary attributes
// against the parts of a MIME message (RFC 2392).
//
// A PHOTO, LOGO or SOUND attribute exported together with a message often refers
// to an attached part instead of carrying the data inline:
//
//	PHOTO;VALUE=uri:cid:image001@example.com
//
// [Resolver.Resolve] looks such parts up through a [PartFinder] and inlines their content.
package cid

//go:generate go tool errtrace -w .
//go:generate go tool mockgen -destination=../internal/testutil/cidmock/part_finder.go -package=cidmock . PartFinder

import (
	"net/url"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/vcard/internal/errorutil"
	"github.com/ghettovoice/vcard/internal/grammar"
	"github.com/ghettovoice/vcard/internal/util"
)

const (
	ErrNotCIDURI      errorutil.Error = "not a cid URI"
	ErrNotHeaderValue errorutil.Error = "not a Content-ID header value"
)

const scheme = "cid:"

// ContentID is a message part identifier without angle brackets.
// Identifiers are compared exactly, case matters.
type ContentID string

// ParseURI parses a "cid:" URI. The scheme is matched ignoring case, the rest is percent-decoded.
func ParseURI(uri string) (ContentID, error) {
	if !util.HasPrefixFold(uri, scheme) {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrNotCIDURI, "%q", uri))
	}
	return ContentID(grammar.PercentDecode(uri[len(scheme):])), nil
}

// ParseHeaderValue parses a Content-ID header value of the form "<id>".
func ParseHeaderValue(v string) (ContentID, error) {
	v = strings.TrimSpace(v)
	if len(v) < 2 || v[0] != '<' || v[len(v)-1] != '>' {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrNotHeaderValue, "%q", v))
	}
	return ContentID(v[1 : len(v)-1]), nil
}

// URI returns the "cid:" URI of the identifier.
func (id ContentID) URI() string {
	return scheme + url.PathEscape(string(id))
}

// HeaderValue returns the identifier wrapped in angle brackets.
func (id ContentID) HeaderValue() string { return "<" + string(id) + ">" }

func (id ContentID) String() string { return string(id) }

func (id ContentID) Equal(val any) bool {
	switch v := val.(type) {
	case ContentID:
		return id == v
	case *ContentID:
		return v != nil && id == *v
	default:
		return false
	}
}

// Part is a leaf part of a MIME message.
type Part struct {
	ID ContentID
	// MediaType is the lower case media type, like "image/jpeg".
	MediaType string
	// Content is the part body with the transfer encoding removed.
	Content []byte
}

// IsBinary reports whether the part carries binary content,
// that is anything except text, multipart and message media types.
func (p *Part) IsBinary() bool {
	if p == nil {
		return false
	}
	top, _, _ := strings.Cut(p.MediaType, "/")
	switch util.LCase(top) {
	case "text", "multipart", "message":
		return false
	default:
		return true
	}
}

// PartFinder looks up message parts by Content-ID.
type PartFinder interface {
	// PartByContentID returns the first part in depth-first order whose
	// Content-ID header matches id.
	PartByContentID(id ContentID) (*Part, bool)
}
