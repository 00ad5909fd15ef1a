// Package attachedtest provides testing helpers for attached-property
// containers.
//
// The package reduces boilerplate when asserting on walk order and on
// rendered output.
//
// # Recording Visits
//
// A Recorder produces a Visitor that logs every visit in order:
//
//	rec := attachedtest.NewRecorder()
//	w := attached.NewWalker("x-grid")
//	w.Walk(children, rec.Visitor())
//	if !rec.Visited("x-cell") {
//	    t.Error("cell was not visited")
//	}
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	attachedtest.ExpectContains(t, node, "Welcome")
//	attachedtest.ExpectAttribute(t, node, "class", "card")
package attachedtest
