package attached

import "github.com/vango-go/attached/pkg/vdom"

// Re-exports of the host tree types, so property-store callers that never
// build trees themselves can work against a single import.

// Node is an element in the content tree. Alias of vdom.VNode.
type Node = vdom.VNode

// Props is the open-ended attribute bag of a node. Alias of vdom.Props.
type Props = vdom.Props

// Attr is a single-entry attribute fragment. Alias of vdom.Attr.
type Attr = vdom.Attr

// IsValidElement reports whether n is a non-nil element node (as opposed
// to a text leaf, fragment, or nil entry).
func IsValidElement(n *Node) bool {
	return vdom.IsValidElement(n)
}
