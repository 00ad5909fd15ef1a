package vdom

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, Props, *VNode, []*VNode, string, int.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			if !v.IsEmpty() {
				node.Props[v.Key] = v.Value
			}

		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					node.Props[a.Key] = a.Value
				}
			}

		case Props:
			for k, val := range v {
				if k != "" {
					node.Props[k] = val
				}
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case string:
			// Shorthand for text node
			node.Children = append(node.Children, Text(v))

		case int:
			node.Children = append(node.Children, Textf("%d", v))
		}
	}

	return node
}

// Element creates an element with an arbitrary tag name.
func Element(tag string, args ...any) *VNode {
	return createElement(tag, args)
}

// Content sectioning elements

func Header(args ...any) *VNode  { return createElement("header", args) }
func Footer(args ...any) *VNode  { return createElement("footer", args) }
func Main(args ...any) *VNode    { return createElement("main", args) }
func Nav(args ...any) *VNode     { return createElement("nav", args) }
func Section(args ...any) *VNode { return createElement("section", args) }
func Article(args ...any) *VNode { return createElement("article", args) }
func H1(args ...any) *VNode      { return createElement("h1", args) }
func H2(args ...any) *VNode      { return createElement("h2", args) }
func H3(args ...any) *VNode      { return createElement("h3", args) }

// Text content elements

func Div(args ...any) *VNode  { return createElement("div", args) }
func P(args ...any) *VNode    { return createElement("p", args) }
func Span(args ...any) *VNode { return createElement("span", args) }
func Ul(args ...any) *VNode   { return createElement("ul", args) }
func Ol(args ...any) *VNode   { return createElement("ol", args) }
func Li(args ...any) *VNode   { return createElement("li", args) }
func Hr(args ...any) *VNode   { return createElement("hr", args) }

// Inline text semantics

func A(args ...any) *VNode      { return createElement("a", args) }
func Strong(args ...any) *VNode { return createElement("strong", args) }
func Em(args ...any) *VNode     { return createElement("em", args) }
func Code(args ...any) *VNode   { return createElement("code", args) }
func Br(args ...any) *VNode     { return createElement("br", args) }

// Form elements

func Form(args ...any) *VNode   { return createElement("form", args) }
func Input(args ...any) *VNode  { return createElement("input", args) }
func Button(args ...any) *VNode { return createElement("button", args) }
func Label(args ...any) *VNode  { return createElement("label", args) }

// Table elements

func Table(args ...any) *VNode { return createElement("table", args) }
func Thead(args ...any) *VNode { return createElement("thead", args) }
func Tbody(args ...any) *VNode { return createElement("tbody", args) }
func Tr(args ...any) *VNode    { return createElement("tr", args) }
func Th(args ...any) *VNode    { return createElement("th", args) }
func Td(args ...any) *VNode    { return createElement("td", args) }

// Media elements

func Img(args ...any) *VNode { return createElement("img", args) }
