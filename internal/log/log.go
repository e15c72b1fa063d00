// Package log provides logging utilities.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/vcard/attr"
	"github.com/ghettovoice/vcard/internal/constraints"
	"github.com/ghettovoice/vcard/internal/util"
)

const maxValueLen = 64

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(a attr.Attribute) slog.Value {
		attrs := []slog.Attr{
			slog.String("name", string(a.Name())),
			slog.String("kind", a.Kind().String()),
		}
		if g := a.Group(); g != "" {
			attrs = append(attrs, slog.String("group", string(g)))
		}
		if ps := a.Params(); len(*ps) > 0 {
			attrs = append(attrs, slog.String("params", ps.Render()))
		}
		attrs = append(attrs, slog.String("value", util.Ellipsis(a.Raw(), maxValueLen)))
		return slog.GroupValue(attrs...)
	}),
	slogformatter.FormatByType(func(ps attr.Params) slog.Value {
		return slog.StringValue(ps.Render())
	}),
)

// Def is a default logger.
var Def = slog.New(newHandler(
	console.NewHandler(os.Stderr, &console.HandlerOptions{
		AddSource:  true,
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339Nano,
	}),
))

// Dev is a developer logger.
var Dev = slog.New(newHandler(
	devslog.NewHandler(os.Stderr, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		},
		SortKeys:   true,
		TimeFormat: time.RFC3339Nano,
	}),
))

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }

type stringValue[T constraints.Byteseq] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(util.Ellipsis(string(v.v), maxValueLen))
}

// StringValue returns a value logger that formats v as a string shortened to a readable length.
func StringValue[T constraints.Byteseq](v T) slog.LogValuer { return stringValue[T]{v} }
