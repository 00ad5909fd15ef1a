package attachedtest_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vango-go/attached"
	"github.com/vango-go/attached/pkg/attachedtest"
	"github.com/vango-go/attached/pkg/vdom"
)

func TestRenderToString(t *testing.T) {
	html := attachedtest.RenderToString(vdom.Div(vdom.Class("card"), "hi"))
	assert.Equal(t, `<div class="card">hi</div>`, html)
}

func TestRenderToStringHidesPropertyKeys(t *testing.T) {
	row := attached.MustDeclare("row")
	html := attachedtest.RenderToString(vdom.Div(row.Attach(3), vdom.Class("cell")))

	assert.Equal(t, `<div class="cell"></div>`, html)
	assert.False(t, strings.Contains(html, "_attached"))
}

func TestExpectHelpers(t *testing.T) {
	node := vdom.Div(vdom.Class("card"), vdom.Span("Welcome"))

	attachedtest.ExpectContains(t, node, "Welcome")
	attachedtest.ExpectNotContains(t, node, "Goodbye")
	attachedtest.ExpectAttribute(t, node, "class", "card")
}
