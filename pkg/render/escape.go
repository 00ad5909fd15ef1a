package render

import "strings"

// textSpecials are the characters that must never appear raw in element
// content. attrSpecials additionally covers whitespace that would break
// attribute parsing.
const (
	textSpecials = `&<>"'`
	attrSpecials = textSpecials + "\n\r\t"
)

// entities maps each special character to its HTML entity.
var entities = map[rune]string{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&quot;",
	'\'': "&#39;",
	'\n': "&#10;",
	'\r': "&#13;",
	'\t': "&#9;",
}

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	return escape(s, textSpecials)
}

// escapeAttr escapes text for safe inclusion in HTML attribute values.
func escapeAttr(s string) string {
	return escape(s, attrSpecials)
}

// escape replaces every occurrence of a special character with its
// entity. Strings containing no specials are returned unchanged without
// allocating; text nodes and attribute values are overwhelmingly clean.
func escape(s, specials string) string {
	if !strings.ContainsAny(s, specials) {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 8)
	for _, r := range s {
		if strings.ContainsRune(specials, r) {
			buf.WriteString(entities[r])
		} else {
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
