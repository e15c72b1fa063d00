package grammar

import (
	"iter"
	"unicode/utf8"

	"github.com/ghettovoice/vcard/internal/constraints"
	"github.com/ghettovoice/vcard/internal/util"
)

// CRLF is the line break mandated by RFC 2425.
const CRLF = "\r\n"

// Fold splits a logical line into physical lines of width runes.
// A line break followed by a single space is inserted after every width-th rune,
// except right before the last rune of the line, which stays on the previous physical line.
// Zero or negative width disables folding. Empty newline means [CRLF].
func Fold(line string, width int, newline string) string {
	total := utf8.RuneCountInString(line)
	if width <= 0 || total <= width+1 {
		return line
	}
	if newline == "" {
		newline = CRLF
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	var n int
	for i := 0; i < len(line); {
		_, size := utf8.DecodeRuneInString(line[i:])
		if n > 0 && n%width == 0 && n < total-1 {
			sb.WriteString(newline)
			sb.WriteByte(' ')
		}
		sb.WriteString(line[i : i+size])
		i += size
		n++
	}
	return sb.String()
}

// UnfoldLines returns a sequence of logical lines found in s.
//
// CRLF, bare CR and bare LF are all accepted as line terminators.
// A physical line starting with a space or horizontal tab continues the previous logical line,
// the single leading whitespace character is dropped.
// Empty logical lines are skipped, the last line is yielded even if it is not terminated.
// Every iteration over the sequence starts from the beginning of s.
func UnfoldLines[T constraints.Byteseq](s T) iter.Seq[string] {
	return func(yield func(string) bool) {
		var (
			buf []byte
			brk bool
		)
		for i := 0; i < len(s); i++ {
			c := s[i]
			switch {
			case c == '\r' || c == '\n':
				brk = true
				continue
			case brk && (c == ' ' || c == '\t'):
				brk = false
				continue
			case brk:
				brk = false
				if len(buf) > 0 {
					if !yield(string(buf)) {
						return
					}
					buf = buf[:0]
				}
			}
			buf = append(buf, c)
		}
		if len(buf) > 0 {
			yield(string(buf))
		}
	}
}
