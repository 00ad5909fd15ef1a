package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
//
// Elements carry a Tag, a Props bag, and ordered Children. Text leaves
// carry only Text: no Props, no Children. Fragments group children
// without a wrapper element.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attribute bag
	Children []*VNode // Child nodes
	Text     string   // For KindText
}

// Props holds the open-ended attribute bag of an element.
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// IsValid returns true if the node is an element carrying an attribute bag.
// Text leaves and nil entries are not valid elements; reading attributes
// from them yields nothing rather than an error.
func (v *VNode) IsValid() bool {
	return v != nil && v.Kind == KindElement
}

// IsValidElement reports whether n is a non-nil element node.
func IsValidElement(n *VNode) bool {
	return n.IsValid()
}

// Prop reads a single attribute from the node's bag.
// Safe on nil receivers and leaves: returns (nil, false).
func (v *VNode) Prop(key string) (any, bool) {
	if v == nil || v.Props == nil {
		return nil, false
	}
	val, ok := v.Props[key]
	return val, ok
}

// With returns a shallow copy of the node with the given attributes merged
// into a fresh Props bag. The receiver is never mutated and the copy shares
// the receiver's Children slice. Empty attributes are skipped.
func (v *VNode) With(attrs ...Attr) *VNode {
	if v == nil {
		return nil
	}
	clone := *v
	clone.Props = make(Props, len(v.Props)+len(attrs))
	for k, val := range v.Props {
		clone.Props[k] = val
	}
	for _, a := range attrs {
		if a.IsEmpty() {
			continue
		}
		clone.Props[a.Key] = a.Value
	}
	return &clone
}

// WithChildren returns a shallow copy of the node with a replaced child
// list. The receiver's Props map is shared, not copied.
func (v *VNode) WithChildren(children []*VNode) *VNode {
	if v == nil {
		return nil
	}
	clone := *v
	clone.Children = children
	return &clone
}
