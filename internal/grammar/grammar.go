// Package grammar implements the lexical layer of RFC 2425 directory content lines:
// line folding, backslash escaping and the content line scanner.
package grammar

//go:generate go tool errtrace -w .

import (
	"fmt"
	"strings"

	"github.com/ghettovoice/vcard/internal/constraints"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput        Error = "empty input"
	ErrMissingName       Error = "missing name"
	ErrMissingGroupName  Error = "missing name after group"
	ErrMissingParamName  Error = "missing parameter name"
	ErrMissingParamEq    Error = "missing '=' after parameter name"
	ErrMissingColon      Error = "missing ':' before value"
	ErrUnterminatedQuote Error = "unterminated quoted string"
)

// SyntaxError describes a content line that does not match the grammar.
type SyntaxError struct {
	// Line is the offending logical line.
	Line string
	// LineNum is the 1-based logical line number, zero when unknown.
	LineNum int
	// Col is the byte offset inside Line where scanning stopped.
	Col int
	Err error
}

func (e *SyntaxError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.LineNum > 0 {
		return fmt.Sprintf("line %d col %d: %v: %q", e.LineNum, e.Col, e.Err, e.Line)
	}
	return fmt.Sprintf("col %d: %v: %q", e.Col, e.Err, e.Line)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func (*SyntaxError) Grammar() bool { return true }

// IsName reports whether s is a valid group, attribute or parameter name.
func IsName[T constraints.Byteseq](s T) bool { return matchAll(Name, s) }

// IsPText reports whether s can be written as an unquoted parameter value.
func IsPText[T constraints.Byteseq](s T) bool { return len(s) == 0 || matchAll(PText, s) }

// NeedsQuote reports whether a parameter value must be quoted to survive rendering.
func NeedsQuote[T constraints.Byteseq](s T) bool { return !IsPText(s) }

// IsQuoted reports whether s is a complete quoted parameter value.
func IsQuoted[T constraints.Byteseq](s T) bool { return matchAll(QuotedString, s) }

// Quote wraps s in double quotes.
// Quoted parameter values have no escape mechanism, so s is taken as is.
func Quote(s string) string { return `"` + s + `"` }

// Unquote strips surrounding double quotes from s.
func Unquote(s string) string { return strings.Trim(s, `"`) }
