package attr

// ValueType names the shape of a [TypedValue].
type ValueType string

const (
	ValueText       ValueType = "text"
	ValueTextList   ValueType = "text-list"
	ValueStructured ValueType = "structured-text"
	ValueBinary     ValueType = "binary-base64"
	ValueURI        ValueType = "uri"
)

// Component is a named part of a structured value.
type Component struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// TypedValue is a decoded attribute value in a form suitable for export.
//
// Text carries the value of text, base64 and URI shapes.
// List carries the items of the text-list shape.
// Components carries the parts of the structured shape.
type TypedValue struct {
	Type       ValueType   `json:"type"`
	Text       string      `json:"text,omitempty"`
	List       []string    `json:"list,omitempty"`
	Components []Component `json:"components,omitempty"`
}
