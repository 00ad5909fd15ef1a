package attached

import "github.com/vango-go/attached/pkg/vdom"

// Visitor is invoked once per visited node. Children are rewritten before
// the node itself is visited, so a visitor sees the node's finalized
// child list and may replace the node wholesale. Leaves and nil entries
// are passed through as-is.
type Visitor func(*vdom.VNode) *vdom.VNode

// Walker traverses a content subtree depth-first, visiting every node
// but refusing to descend into a nested node whose tag equals the bound
// boundary type. This keeps an outer container from misreading properties
// attached for an inner, same-kind nested container.
//
// A Walker is stateless after construction and safe to share.
type Walker struct {
	boundary string
}

// NewWalker binds a boundary type and returns a walker for it. Bind once
// per container type; invoke Walk per render.
func NewWalker(boundary string) *Walker {
	return &Walker{boundary: boundary}
}

// Boundary returns the bound boundary type.
func (w *Walker) Boundary() string { return w.boundary }

// Walk applies visit to every node reachable from children without
// crossing a boundary-typed node. It accepts any child-list shape that
// vdom.NormalizeChildren handles: nil, a single node, a node slice, or a
// mixed slice of nodes and text/number leaves.
//
// The result has the same length and order as the normalized input. For
// each entry:
//
//   - leaves, nil entries, childless nodes, and boundary-typed nodes are
//     passed to visit without structural recursion;
//   - every other node is replaced by a shallow copy whose children are
//     the recursive walk of its own children, then passed to visit.
//
// A boundary-typed node is therefore still visited; only descent into its
// children is suppressed. A nil visit acts as the identity.
func (w *Walker) Walk(children any, visit Visitor) []*vdom.VNode {
	items := vdom.NormalizeChildren(children)
	if len(items) == 0 {
		return items
	}

	out := make([]*vdom.VNode, len(items))
	for i, item := range items {
		if w.descends(item) {
			item = item.WithChildren(w.Walk(item.Children, visit))
		}
		if visit != nil {
			out[i] = visit(item)
		} else {
			out[i] = item
		}
	}
	return out
}

// descends reports whether the walk enters n's children.
func (w *Walker) descends(n *vdom.VNode) bool {
	return n.IsValid() && len(n.Children) > 0 && n.Tag != w.boundary
}

// Walk is a single-shot convenience for NewWalker(boundary).Walk(children, visit).
func Walk(children any, visit Visitor, boundary string) []*vdom.VNode {
	return NewWalker(boundary).Walk(children, visit)
}
