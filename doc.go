// Package vcard parses and renders vCard directory content as defined by
// RFC 2425 and RFC 2426.
//
// # Parsing
//
// [Parse] turns the text of a single card into a [Card], an ordered list of
// [attr.Attribute] values. BEGIN and END lines are kept as ordinary attributes:
//
//	card, err := vcard.Parse("BEGIN:VCARD\r\nVERSION:3.0\r\nFN:John Doe\r\nEND:VCARD\r\n")
//
// Folded lines are unfolded first. CRLF, bare LF and bare CR line breaks are all accepted.
// Any grammar error is fatal for the card and is reported as a [*grammar.SyntaxError]
// that carries the logical line number.
//
// [ParseAll] splits a stream that holds several BEGIN:VCARD ... END:VCARD blocks
// and parses the blocks concurrently.
//
// # Rendering
//
// [Card.RenderTo] writes every attribute as a content line folded to [RenderOptions.LineWidth].
// Each attribute is rendered either from its current typed fields or from the raw value
// captured at parse time, see [RenderOptions.Original] and [RenderOptions.Decoded].
package vcard

//go:generate go tool errtrace -w .
