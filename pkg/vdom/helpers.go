package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0),
	}

	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		}
	}

	return node
}

// Repeat creates n nodes using the given function.
func Repeat(n int, fn func(i int) *VNode) []*VNode {
	if n <= 0 {
		return nil
	}
	result := make([]*VNode, 0, n)
	for i := 0; i < n; i++ {
		node := fn(i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}
