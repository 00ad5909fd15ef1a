// Package vdom provides the virtual element tree that the attached
// properties API operates on.
//
// The tree is an in-memory representation of UI content: typed elements
// with an open-ended attribute bag and ordered children, plus text leaves.
// Nodes are treated as immutable once built; updates go through
// copy-on-write clones.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text
// leaves, and fragments. Props holds the attribute bag. Attr is a single
// attribute used to build or merge into Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// Arbitrary tags use Element:
//
//	Element("x-modal", Class("overlay"))
//
// # Copy-on-Write Updates
//
// With returns a clone with extra attributes merged into a fresh bag; the
// clone shares the original's child list. WithChildren returns a clone
// with a replaced child list. Neither mutates the receiver:
//
//	marked := node.With(vdom.NewAttr("data-seen", "true"))
//
// # Child Normalization
//
// NormalizeChildren flattens the shapes a child list can take (a single
// node, a node slice, a mixed slice of nodes and text/number leaves) into
// a flat []*VNode, preserving order and sequence length.
package vdom
