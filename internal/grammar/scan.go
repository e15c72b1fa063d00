package grammar

import (
	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"
)

// ContentLine is a logical line split into its lexical parts.
//
//	contentline = [group "."] name *(";" param) ":" value
type ContentLine struct {
	Group  string
	Name   string
	Params []RawParam
	// Value is everything after the first ':' that follows the parameters, taken verbatim.
	Value string
}

// RawParam is a parameter as it appears on the wire.
// Quoted values keep their double quotes.
//
//	param = param-name "=" param-value *("," param-value)
type RawParam struct {
	Name   string
	Values []string
}

// ScanContentLine splits a logical line into group, name, parameters and raw value.
// Backslash escapes in the value are not interpreted.
// On failure it returns a [*SyntaxError] wrapping one of the grammar sentinel errors.
func ScanContentLine(line string) (ContentLine, error) {
	var cl ContentLine
	if len(line) == 0 {
		return cl, errtrace.Wrap(&SyntaxError{Line: line, Err: ErrEmptyInput})
	}

	sc := scanner{s: line, b: []byte(line)}
	if cl.Name = sc.name(); cl.Name == "" {
		return cl, errtrace.Wrap(sc.fail(ErrMissingName))
	}
	if sc.accept('.') {
		cl.Group = cl.Name
		if cl.Name = sc.name(); cl.Name == "" {
			return cl, errtrace.Wrap(sc.fail(ErrMissingGroupName))
		}
	}

	for sc.accept(';') {
		p, err := sc.param()
		if err != nil {
			return cl, errtrace.Wrap(err)
		}
		cl.Params = append(cl.Params, p)
	}

	if !sc.accept(':') {
		return cl, errtrace.Wrap(sc.fail(ErrMissingColon))
	}
	cl.Value = sc.rest()
	return cl, nil
}

// scanner walks a content line token by token with the rule operators,
// so every failure is reported with its own sentinel and column.
type scanner struct {
	s   string
	b   []byte
	pos int
}

func (sc *scanner) fail(err error) *SyntaxError {
	return &SyntaxError{Line: sc.s, Col: sc.pos, Err: err}
}

func (sc *scanner) accept(c byte) bool {
	if sc.pos < len(sc.s) && sc.s[sc.pos] == c {
		sc.pos++
		return true
	}
	return false
}

func (sc *scanner) match(op abnf.Operator) string {
	start := sc.pos
	sc.pos += matchLen(op, sc.b, sc.pos)
	return sc.s[start:sc.pos]
}

func (sc *scanner) name() string { return sc.match(name) }

func (sc *scanner) param() (RawParam, error) {
	var p RawParam
	if p.Name = sc.name(); p.Name == "" {
		return p, errtrace.Wrap(sc.fail(ErrMissingParamName))
	}
	if !sc.accept('=') {
		return p, errtrace.Wrap(sc.fail(ErrMissingParamEq))
	}
	for {
		v := sc.match(paramValue)
		if v == "" && sc.pos < len(sc.s) && sc.s[sc.pos] == '"' {
			return p, errtrace.Wrap(sc.fail(ErrUnterminatedQuote))
		}
		p.Values = append(p.Values, v)
		if !sc.accept(',') {
			return p, nil
		}
	}
}

func (sc *scanner) rest() string {
	v := sc.s[sc.pos:]
	sc.pos = len(sc.s)
	return v
}
