package vdom

import "strings"

// NewAttr creates an Attr with the given key and value.
func NewAttr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return NewAttr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return NewAttr("class", strings.Join(classes, " ")) }

// Title sets the title attribute.
func Title(title string) Attr { return NewAttr("title", title) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return NewAttr("data-"+key, value) }

// Src sets the src attribute.
func Src(url string) Attr { return NewAttr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return NewAttr("alt", text) }

// Type sets the type attribute.
func Type(t string) Attr { return NewAttr("type", t) }

// Name sets the name attribute.
func Name(name string) Attr { return NewAttr("name", name) }

// Disabled sets the disabled boolean attribute.
func Disabled(disabled bool) Attr { return NewAttr("disabled", disabled) }
