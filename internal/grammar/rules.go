package grammar

import (
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/vcard/internal/constraints"
)

// Content line rules (RFC 2425 section 5.8.1), with the value left out:
// the value is taken verbatim and decoded by the attribute codecs.
//
//	contentline  = [group "."] name *(";" param) ":" value CRLF
//	name         = 1*(ALPHA / DIGIT / "-")
//	param        = name "=" param-value *("," param-value)
//	param-value  = ptext / quoted-string
//	ptext        = *SAFE-CHAR
//	quoted-string = DQUOTE *QSAFE-CHAR DQUOTE
//	SAFE-CHAR    = any octet except DQUOTE, ";", ":", ","
//	QSAFE-CHAR   = any octet except DQUOTE

func octet(key string, c byte) abnf.Operator {
	return abnf.Range(key, []byte{c}, []byte{c})
}

func octets(key string, low, high byte) abnf.Operator {
	return abnf.Range(key, []byte{low}, []byte{high})
}

var (
	alpha  = abnf.AltFirst("ALPHA", octets("%x41-5A", 0x41, 0x5A), octets("%x61-7A", 0x61, 0x7A))
	digit  = octets("DIGIT", 0x30, 0x39)
	dquote = octet("DQUOTE", 0x22)

	nameChar = abnf.AltFirst("name-char", alpha, digit, octet(`"-"`, '-'))
	name     = abnf.Repeat1Inf("name", nameChar)

	safeChar = abnf.AltFirst(
		"SAFE-CHAR",
		octets("%x00-21", 0x00, 0x21),
		octets("%x23-2B", 0x23, 0x2B),
		octets("%x2D-39", 0x2D, 0x39),
		octets("%x3C-FF", 0x3C, 0xFF),
	)
	qsafeChar = abnf.AltFirst(
		"QSAFE-CHAR",
		octets("%x00-21", 0x00, 0x21),
		octets("%x23-FF", 0x23, 0xFF),
	)

	ptext        = abnf.Repeat0Inf("ptext", safeChar)
	quotedString = abnf.Concat("quoted-string", dquote, abnf.Repeat0Inf("*QSAFE-CHAR", qsafeChar), dquote)
	paramValue   = abnf.AltFirst("param-value", quotedString, ptext)
)

// Name matches the name rule, used for groups, attribute and parameter names.
func Name(s []byte, ns *abnf.Nodes) error {
	return name(s, 0, ns) //errtrace:skip
}

// QuotedString matches a double quoted parameter value.
func QuotedString(s []byte, ns *abnf.Nodes) error {
	return quotedString(s, 0, ns) //errtrace:skip
}

// PText matches an unquoted parameter value.
func PText(s []byte, ns *abnf.Nodes) error {
	return ptext(s, 0, ns) //errtrace:skip
}

// matchLen runs op at pos and returns the length of the longest match, zero if nothing matched.
func matchLen(op abnf.Operator, s []byte, pos int) int {
	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op(s, uint(pos), ns); err != nil {
		return 0
	}
	if n := ns.Best(); n != nil {
		return n.Len()
	}
	return 0
}

// matchAll reports whether rule matches the whole s.
func matchAll[T constraints.Byteseq](rule func([]byte, *abnf.Nodes) error, s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rule([]byte(s), ns); err != nil {
		return false
	}
	n := ns.Best()
	return n != nil && n.Len() == len(s)
}
