package attachedtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vango-go/attached/pkg/render"
	"github.com/vango-go/attached/pkg/vdom"
)

// RenderToString renders a VNode and returns the HTML string.
// This is useful for asserting on rendered output.
//
// Example:
//
//	html := attachedtest.RenderToString(Grid(children))
//	if !strings.Contains(html, "expected text") {
//	    t.Error("missing expected text")
//	}
func RenderToString(node *vdom.VNode) string {
	r := render.New(render.Config{})
	html, err := r.ToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains the expected substring.
func ExpectContains(t *testing.T, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain the substring.
func ExpectNotContains(t *testing.T, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to not contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains attr="value".
func ExpectAttribute(t *testing.T, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	want := fmt.Sprintf(`%s="%s"`, attr, value)
	if !strings.Contains(html, want) {
		t.Errorf("expected rendered output to contain %s, got:\n%s", want, truncate(html, 500))
	}
}

// truncate shortens long HTML in failure messages.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
