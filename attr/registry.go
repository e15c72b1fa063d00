package attr

import "github.com/ghettovoice/vcard/internal/util"

type factory func(name Name) Attribute

func text(name Name) Attribute { return &Text{base: base{name: name}} }

func textList(name Name) Attribute { return &TextList{base: base{name: name}} }

func binary(name Name) Attribute { return &Binary{base: base{name: name}} }

func structured(schema *Schema) factory {
	return func(name Name) Attribute {
		return &Structured{base: base{name: name}, schema: schema}
	}
}

var registry = map[Name]factory{
	// RFC 2425
	"SOURCE":  text,
	"NAME":    text,
	"PROFILE": text,
	// RFC 2426
	"FN":          text,
	"N":           structured(NameSchema),
	"NICKNAME":    textList,
	"PHOTO":       binary,
	"BDAY":        text,
	"ADR":         structured(AddressSchema),
	"LABEL":       text,
	"TEL":         text,
	"EMAIL":       text,
	"MAILER":      text,
	"TZ":          text,
	"GEO":         structured(GeoSchema),
	"TITLE":       text,
	"ROLE":        text,
	"LOGO":        binary,
	"AGENT":       text,
	"ORG":         structured(OrgSchema),
	"CATEGORIES":  textList,
	"NOTE":        text,
	"PRODID":      text,
	"REV":         text,
	"SORT-STRING": text,
	"SOUND":       binary,
	"UID":         text,
	"URL":         text,
	"VERSION":     text,
	"CLASS":       text,
	// RFC 4770
	"IMPP": text,
}

// New returns an empty attribute with the codec registered for the name.
// Names are matched ignoring case, unknown names get [*Any].
func New(name string) Attribute {
	if f, ok := registry[util.UCase(Name(name))]; ok {
		return f(Name(name))
	}
	return &Any{base: base{name: Name(name)}}
}

// KindOf returns the codec kind registered for the name.
func KindOf(name string) Kind {
	return New(name).Kind()
}
