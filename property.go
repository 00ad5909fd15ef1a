package attached

import (
	"strings"

	"github.com/google/uuid"

	"github.com/vango-go/attached/pkg/vdom"
)

// TransformFunc derives the stored value from a setter's arguments.
type TransformFunc func(args ...any) any

// identity is the default transform: the first argument unchanged, or
// nil when no argument is given.
func identity(args ...any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

// Property is a declared, collision-free named slot stored in a node's
// attribute bag. Declare each property once, at component setup time, and
// share the *Property between the code that attaches values and the
// container that reads them.
type Property struct {
	key       string
	name      string
	transform TransformFunc
}

// Declare creates a new property with the given human-readable name.
// Returns ErrEmptyName when name is empty.
//
// The generated key is unique per declaration: two Declare calls never
// yield the same key, even for identical names. Keys carry a "_" prefix
// so the renderer treats them as internal props and never emits them.
func Declare(name string, opts ...Option) (*Property, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	o := applyOptions(opts)
	if o.transform == nil {
		o.transform = identity
	}

	return &Property{
		key:       "_attached-" + strings.ToLower(name) + "-" + uuid.NewString(),
		name:      name,
		transform: o.transform,
	}, nil
}

// MustDeclare is like Declare but panics on error. Use for package-level
// property declarations:
//
//	var row = attached.MustDeclare("row")
func MustDeclare(name string, opts ...Option) *Property {
	p, err := Declare(name, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the human-readable name the property was declared with.
func (p *Property) Name() string { return p.name }

// Key returns the generated attribute-bag key.
func (p *Property) Key() string { return p.key }

// String returns a printable form of the property.
func (p *Property) String() string { return "attached.Property(" + p.name + ")" }

// Attach returns a single-entry attribute fragment carrying the value
// derived from args by the property's transform. Merge it into a node at
// construction time or via VNode.With; Attach itself mutates nothing.
//
//	vdom.Div(row.Attach(3), vdom.Text("content"))
func (p *Property) Attach(args ...any) vdom.Attr {
	return vdom.Attr{Key: p.key, Value: p.transform(args...)}
}

// Clear returns an attribute fragment that marks the property as
// explicitly unset. Merged onto a node copy, it shadows any inherited
// value without deleting the key:
//
//	inner := node.With(row.Clear())
func (p *Property) Clear() vdom.Attr {
	return vdom.Attr{Key: p.key, Value: Unset}
}

// Read returns the value attached to node, if any. The second result is
// false when node is not a valid element (nil, text leaf, fragment), when
// the key is absent from its bag, or when the stored value is the Unset
// sentinel. Read never panics: strings, numbers, and nil are ordinary
// content and reading from them simply yields nothing.
func (p *Property) Read(node *vdom.VNode) (any, bool) {
	if !node.IsValid() {
		return nil, false
	}
	v, ok := node.Prop(p.key)
	if !ok || IsUnset(v) {
		return nil, false
	}
	return v, true
}

// ReadAs reads a property value and asserts it to T. The second result is
// false when the property is absent or the stored value is not a T.
func ReadAs[T any](p *Property, node *vdom.VNode) (T, bool) {
	var zero T
	v, ok := p.Read(node)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
