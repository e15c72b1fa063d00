package cid

import (
	"log/slog"

	"github.com/ghettovoice/vcard"
	"github.com/ghettovoice/vcard/attr"
	"github.com/ghettovoice/vcard/internal/log"
)

// Resolver inlines the content of message parts referenced by "cid:" URIs.
// The zero value is ready to use.
type Resolver struct {
	// Logger receives debug records about references that were left unresolved.
	// Nil means no logging.
	Logger *slog.Logger
}

func (r *Resolver) log() *slog.Logger {
	if r == nil || r.Logger == nil {
		return log.Noop
	}
	return r.Logger
}

// Resolve replaces every resolvable "cid:" reference of the card binary attributes
// with the referenced part content and returns the number of resolved attributes.
// Attributes that cannot be resolved are left untouched.
func (r *Resolver) Resolve(card *vcard.Card, finder PartFinder) int {
	var n int
	for _, a := range card.Binaries() {
		if r.ResolveAttr(a, finder) {
			n++
		}
	}
	return n
}

// ResolveAttr resolves a single attribute. On success the attribute is switched to data mode.
func (r *Resolver) ResolveAttr(a *attr.Binary, finder PartFinder) bool {
	if !a.IsURI() {
		return false
	}

	logger := r.log()
	id, err := ParseURI(a.URI())
	if err != nil {
		logger.Debug("skip non-cid reference", slog.Any("attr", a), slog.Any("error", err))
		return false
	}
	part, ok := finder.PartByContentID(id)
	if !ok {
		logger.Debug("referenced part not found", slog.Any("attr", a), slog.String("content_id", string(id)))
		return false
	}
	if !part.IsBinary() {
		logger.Debug("referenced part is not binary", slog.Any("attr", a),
			slog.String("content_id", string(id)),
			slog.String("media_type", part.MediaType),
			slog.Any("content", log.StringValue(part.Content)),
		)
		return false
	}

	a.SetData(part.Content)
	logger.Debug("reference resolved", slog.Any("attr", a),
		slog.String("content_id", string(id)),
		slog.Int("size", len(part.Content)),
	)
	return true
}
