package attached_test

import (
	"testing"

	"github.com/vango-go/attached"
	"github.com/vango-go/attached/pkg/vdom"
)

// benchTree builds width top-level rows, each with width cells holding a
// text leaf, plus one nested boundary container per row.
func benchTree(width int) []*vdom.VNode {
	rows := make([]*vdom.VNode, 0, width)
	for i := 0; i < width; i++ {
		cells := vdom.Repeat(width, func(j int) *vdom.VNode {
			return vdom.Div(vdom.Span(vdom.Textf("cell %d/%d", i, j)))
		})
		cells = append(cells, vdom.Element("x-grid", vdom.Div(vdom.Text("nested"))))
		rows = append(rows, vdom.Div(cells))
	}
	return rows
}

func BenchmarkWalk(b *testing.B) {
	tree := benchTree(10)
	w := attached.NewWalker("x-grid")
	visit := func(n *vdom.VNode) *vdom.VNode { return n }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Walk(tree, visit)
	}
}

func BenchmarkRead(b *testing.B) {
	p := attached.MustDeclare("row")
	node := vdom.Div(p.Attach(3))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := p.Read(node); !ok {
			b.Fatal("value missing")
		}
	}
}
