// Package attached implements attached properties for virtual element
// trees: a container component reads metadata attached to its content
// nodes without requiring wrapper elements around them.
//
// A container declares its own properties once, at setup time. Content
// authors attach values to arbitrary nodes; the container reads them back
// while laying out its children. Generated keys are collision-free across
// the whole process, so independent containers can declare properties
// with the same human name without interfering.
//
// # Declaring and Using Properties
//
//	var row = attached.MustDeclare("row")
//
//	cell := vdom.Div(row.Attach(3), vdom.Text("content"))
//
//	if v, ok := row.Read(cell); ok {
//	    // place cell in row v
//	}
//
// Setters with other arities use WithTransform:
//
//	var closeOnClick = attached.MustDeclare("closeOnClick",
//	    attached.WithTransform(func(args ...any) any { return true }))
//
// # Clearing
//
// Clear marks a property as explicitly unset on a node copy, so a
// framework that propagates attribute bags downward does not treat
// descendants as still carrying the value:
//
//	inner := node.With(row.Clear())
//	_, ok := row.Read(inner) // ok == false
//
// # Confined Traversal
//
// A container inspecting its content walks the subtree with a Walker
// bound to its own boundary type. The walk visits every node but refuses
// to descend into a nested node of the boundary type, so properties
// intended for an inner, same-kind container are never misread by the
// outer one:
//
//	w := attached.NewWalker("x-grid")
//	children = w.Walk(children, func(n *vdom.VNode) *vdom.VNode {
//	    // inspect or replace n
//	    return n
//	})
//
// The boundary node itself is still visited; only its children are off
// limits. Text leaves and nil entries pass through the visitor unchanged
// in position.
package attached
