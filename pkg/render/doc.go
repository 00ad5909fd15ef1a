// Package render converts VNode trees into HTML strings or streams.
//
// The renderer produces valid, secure HTML output:
//
//   - HTML5 compliant element rendering
//   - Proper text and attribute escaping (XSS prevention)
//   - Void element handling (input, br, img, etc.)
//   - Boolean attribute handling (disabled, checked, etc.)
//   - Deterministic, sorted attribute output
//
// Internal props (attribute keys with a "_" prefix, including generated
// attached-property keys) are never emitted.
//
// # Basic Usage
//
// To render a VNode tree to a string:
//
//	renderer := render.New(render.Config{})
//	html, err := renderer.ToString(node)
//
// To stream HTML to a writer:
//
//	renderer := render.New(render.Config{})
//	err := renderer.ToWriter(w, node)
//
// # Pretty Printing
//
// Pretty mode indents block-level elements for readable output:
//
//	renderer := render.New(render.Config{Pretty: true, Indent: "    "})
package render
