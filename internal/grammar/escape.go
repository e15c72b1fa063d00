package grammar

import (
	"bytes"
	"strings"

	"github.com/ghettovoice/vcard/internal/constraints"
)

// Escape escapes text for use as a text value.
// Substitutions are applied one after another: backslash, semicolon, comma, and then
// any line break (CRLF, LF or CR) is turned into the "\n" sequence.
// The backslash goes first so that the inserted escapes are not escaped twice.
func Escape[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	v := string(s)
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `;`, `\;`)
	v = strings.ReplaceAll(v, `,`, `\,`)
	v = strings.ReplaceAll(v, "\r\n", `\n`)
	v = strings.ReplaceAll(v, "\n", `\n`)
	v = strings.ReplaceAll(v, "\r", `\n`)
	return T(v)
}

// Unescape reverts [Escape].
// Substitutions are applied one after another in the same order as [Escape] applies them:
// "\\", "\;", "\,", then "\n" and "\N" become a line feed.
//
// Text that contains a literal backslash followed by "n" does not survive
// an Escape/Unescape round trip: the escaped backslash collapses first and the
// remaining "\n" is read as a line break.
func Unescape[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}

	v := string(s)
	v = strings.ReplaceAll(v, `\\`, `\`)
	v = strings.ReplaceAll(v, `\;`, `;`)
	v = strings.ReplaceAll(v, `\,`, `,`)
	v = strings.ReplaceAll(v, `\n`, "\n")
	v = strings.ReplaceAll(v, `\N`, "\n")
	return T(v)
}

// EscapedSplit splits s around each delim that is not preceded by an active backslash escape.
// A backslash that is itself escaped does not protect the following character.
// When unescape is true, every part is passed through [Unescape].
// The result always has at least one element.
func EscapedSplit(s string, delim byte, unescape bool) []string {
	var (
		parts   = make([]string, 0, strings.Count(s, string(delim))+1)
		start   int
		escaped bool
	)
	push := func(part string) {
		if unescape {
			part = Unescape(part)
		}
		parts = append(parts, part)
	}

	for i := 0; i < len(s); i++ {
		switch {
		case escaped:
			escaped = false
		case s[i] == '\\':
			escaped = true
		case s[i] == delim:
			push(s[start:i])
			start = i + 1
		}
	}
	push(s[start:])
	return parts
}

// PercentDecode converts every "%" HEXDIG HEXDIG sequence of s into the encoded byte.
// Malformed sequences are kept as is.
func PercentDecode(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var b bytes.Buffer
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func ishex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
