// Package eml reads MIME messages carrying vCards and their attachments.
//
// It exposes two capabilities on top of github.com/emersion/go-message:
// the vCard body of a message and the lookup of parts by Content-ID,
// the latter making a [*Message] usable as a [cid.PartFinder].
package eml

//go:generate go tool errtrace -w .

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"braces.dev/errtrace"
	"github.com/emersion/go-message"
	_ "github.com/emersion/go-message/charset"
	"github.com/samber/lo"

	"github.com/ghettovoice/vcard/cid"
	"github.com/ghettovoice/vcard/internal/errorutil"
	"github.com/ghettovoice/vcard/internal/util"
)

const (
	ErrNoVCard      errorutil.Error = "message has no vCard body"
	ErrPartTooLarge errorutil.Error = "message part is too large"
)

// VCardMediaTypes lists media types of a vCard body in the order of preference.
var VCardMediaTypes = []string{"text/vcard", "text/x-vcard", "text/directory", "text/plain"}

// ReadOptions controls message reading.
type ReadOptions struct {
	// MaxHeaderBytes limits the size of every header block.
	// Zero means the go-message default, negative means no limit.
	MaxHeaderBytes int64 `json:"max_header_bytes,omitempty"`
	// MaxPartSize limits the decoded size of every part body. Zero means no limit.
	MaxPartSize int64 `json:"max_part_size,omitempty"`
}

// Message is a MIME message with all leaf parts read into memory.
type Message struct {
	parts []*cid.Part
}

// Read reads the message from r.
// Parts with an unknown charset or transfer encoding are kept with their raw content.
func Read(r io.Reader, opts *ReadOptions) (*Message, error) {
	if opts == nil {
		opts = &ReadOptions{}
	}

	ent, err := message.ReadWithOptions(r, &message.ReadOptions{MaxHeaderBytes: opts.MaxHeaderBytes})
	if err != nil && !isSoftErr(err) {
		return nil, errtrace.Wrap(fmt.Errorf("read message: %w", err))
	}

	msg := new(Message)
	err = ent.Walk(func(_ []int, ent *message.Entity, err error) error {
		if err != nil && !isSoftErr(err) {
			return errtrace.Wrap(err)
		}
		if ent.MultipartReader() != nil {
			return nil
		}
		part, err := readPart(ent, opts.MaxPartSize)
		if err != nil {
			return errtrace.Wrap(err)
		}
		msg.parts = append(msg.parts, part)
		return nil
	})
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("walk message: %w", err))
	}
	return msg, nil
}

func isSoftErr(err error) bool {
	return message.IsUnknownCharset(err) || message.IsUnknownEncoding(err)
}

func readPart(ent *message.Entity, maxSize int64) (*cid.Part, error) {
	mt, _, err := ent.Header.ContentType()
	if err != nil || mt == "" {
		mt = "text/plain"
	}
	part := &cid.Part{MediaType: util.LCase(mt)}
	if hv := ent.Header.Get("Content-Id"); hv != "" {
		// malformed identifiers make the part unreachable by Content-ID
		part.ID, _ = cid.ParseHeaderValue(hv)
	}

	body := ent.Body
	if maxSize > 0 {
		body = io.LimitReader(body, maxSize+1)
	}
	if part.Content, err = io.ReadAll(body); err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("read %s part: %w", part.MediaType, err))
	}
	if maxSize > 0 && int64(len(part.Content)) > maxSize {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrPartTooLarge, "%s part exceeds %d bytes", part.MediaType, maxSize))
	}
	return part, nil
}

// Parts returns leaf parts in depth-first order.
func (m *Message) Parts() []*cid.Part {
	if m == nil {
		return nil
	}
	return slices.Clone(m.parts)
}

// VCardBody returns the content of the first part with the most preferred
// media type from [VCardMediaTypes]. Text content is already converted to UTF-8.
func (m *Message) VCardBody() ([]byte, error) {
	if m != nil {
		for _, mt := range VCardMediaTypes {
			if p, ok := lo.Find(m.parts, func(p *cid.Part) bool { return p.MediaType == mt }); ok {
				return p.Content, nil
			}
		}
	}
	return nil, errtrace.Wrap(ErrNoVCard)
}

// PartByContentID returns the first part in depth-first order with the Content-ID.
func (m *Message) PartByContentID(id cid.ContentID) (*cid.Part, bool) {
	if m == nil || id == "" {
		return nil, false
	}
	return lo.Find(m.parts, func(p *cid.Part) bool { return p.ID.Equal(id) })
}

// IsNoVCard reports whether the error means the message has no vCard body.
func IsNoVCard(err error) bool { return errors.Is(err, ErrNoVCard) }
