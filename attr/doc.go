// Package attr provides the attribute model of vCard content lines defined by
// RFC 2425 and RFC 2426: names, parameters and typed values.
//
// # Overview
//
// Every content line of a card is represented by an [Attribute]. The concrete type
// is chosen by [New] from a static registry keyed by the attribute name:
//
//   - [*Text] for single text values (FN, TEL, EMAIL, NOTE, ...);
//   - [*TextList] for comma-separated text lists (NICKNAME, CATEGORIES);
//   - [*Structured] for ';'-separated components (N, ADR, GEO, ORG);
//   - [*Binary] for inline base64 data or URI references (PHOTO, LOGO, SOUND);
//   - [*Any] for everything else, including BEGIN, END and extensions.
//
// # Raw and decoded values
//
// Each attribute keeps the raw value it was decoded from. Rendering with
// [RenderOptions.Original] writes that raw value back untouched, otherwise the value
// is encoded from the current typed fields:
//
//	a := attr.New("N")
//	a.Decode(`Doe;John;;;`)
//	a.(*attr.Structured).SetComponent(attr.CompGiven, "Jane")
//	a.Render(nil)                                   // N:Doe;Jane;;;
//	a.Render(&attr.RenderOptions{Original: true}) // N:Doe;John;;;
//
// Parameters must be attached with [Attribute.SetParams] before [Attribute.Decode]
// is called, since binary attributes choose between data and URI by the VALUE parameter.
//
// # Exporting
//
// [Attribute.Typed] returns the value as a [TypedValue] with one of five shapes:
// text, text list, structured text, base64 binary or URI.
package attr
