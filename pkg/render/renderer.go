package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-go/attached/pkg/vdom"
)

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables pretty-printed HTML output with indentation.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer converts VNode trees to HTML.
type Renderer struct {
	config Config
}

// New creates a new Renderer with the given configuration.
func New(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// ToString renders a VNode tree to an HTML string.
func (r *Renderer) ToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.ToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToWriter streams a VNode tree to the given writer.
func (r *Renderer) ToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		return r.renderText(w, node)
	case vdom.KindFragment:
		return r.renderFragment(w, node, depth)
	default:
		return fmt.Errorf("render: unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := w.Write([]byte{'<'}); err != nil {
		return err
	}
	if _, err := w.Write([]byte(tag)); err != nil {
		return err
	}

	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	// Void elements self-close and render no children.
	if isVoidElement(tag) {
		if _, err := w.Write([]byte{'>'}); err != nil {
			return err
		}
		if r.config.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	hasBlockChildren := len(node.Children) > 0 && !isInlineElement(tag)
	if r.config.Pretty && hasBlockChildren {
		w.Write([]byte{'\n'})
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}

	if r.config.Pretty && hasBlockChildren {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}

	return nil
}

// renderText renders a text node with HTML escaping.
func (r *Renderer) renderText(w io.Writer, node *vdom.VNode) error {
	escaped := escapeHTML(node.Text)
	_, err := w.Write([]byte(escaped))
	return err
}

// renderFragment renders a fragment's children without a wrapper element.
func (r *Renderer) renderFragment(w io.Writer, node *vdom.VNode, depth int) error {
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth); err != nil {
			return err
		}
	}
	return nil
}

// renderAttributes renders all attributes for an element in sorted key
// order. Internal props (keys with a "_" prefix) are never emitted; this
// keeps generated attached-property keys out of the output.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if node.Props == nil {
		return nil
	}

	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]

		if strings.HasPrefix(key, "_") {
			continue
		}

		// Boolean attributes render bare when true and not at all when false.
		if isBooleanAttr(key) {
			if boolValue, ok := value.(bool); ok {
				if boolValue {
					if _, err := fmt.Fprintf(w, " %s", key); err != nil {
						return err
					}
				}
				continue
			}
		}

		strValue, ok := attrValueToString(value)
		if !ok {
			continue
		}
		escaped := escapeAttr(strValue)
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escaped); err != nil {
			return err
		}
	}

	return nil
}

// attrValueToString converts an attribute value to its string form.
// Unrecognized value types are skipped, not stringified.
func attrValueToString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		if v {
			return "true", true
		}
		return "false", true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.Write([]byte(r.config.Indent))
	}
}
