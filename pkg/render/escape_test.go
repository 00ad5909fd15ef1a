package render

import (
	"testing"

	"github.com/vango-go/attached/pkg/vdom"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "hello", "hello"},
		{"ampersand", "a & b", "a &amp; b"},
		{"angle brackets", "<script>", "&lt;script&gt;"},
		{"quotes", `say "hi"`, "say &quot;hi&quot;"},
		{"single quote", "it's", "it&#39;s"},
		{"unicode preserved", "héllo → 世界", "héllo → 世界"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeHTML(tt.input); got != tt.want {
				t.Errorf("escapeHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "hello", "hello"},
		{"quotes", `a"b`, "a&quot;b"},
		{"newline", "a\nb", "a&#10;b"},
		{"carriage return", "a\rb", "a&#13;b"},
		{"tab", "a\tb", "a&#9;b"},
		{"angle brackets", "<b>", "&lt;b&gt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeAttr(tt.input); got != tt.want {
				t.Errorf("escapeAttr(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeAllSpecials(t *testing.T) {
	input := "&<>\"'\n\r\t"

	if got, want := escapeHTML(input), "&amp;&lt;&gt;&quot;&#39;\n\r\t"; got != want {
		t.Errorf("escapeHTML(%q) = %q, want %q", input, got, want)
	}
	if got, want := escapeAttr(input), "&amp;&lt;&gt;&quot;&#39;&#10;&#13;&#9;"; got != want {
		t.Errorf("escapeAttr(%q) = %q, want %q", input, got, want)
	}
}

func TestEscapeCleanStringUnchanged(t *testing.T) {
	inputs := []string{"", "hello world", "héllo → 世界", "a.b-c_d/e"}
	for _, s := range inputs {
		if got := escapeHTML(s); got != s {
			t.Errorf("escapeHTML(%q) = %q, want input unchanged", s, got)
		}
		if got := escapeAttr(s); got != s {
			t.Errorf("escapeAttr(%q) = %q, want input unchanged", s, got)
		}
	}
}

func TestEscapeHTMLLeavesAttrWhitespaceAlone(t *testing.T) {
	// Newlines, returns, and tabs are only dangerous inside attribute
	// values; element content keeps them literal.
	input := "line1\nline2\tend"
	if got := escapeHTML(input); got != input {
		t.Errorf("escapeHTML(%q) = %q, want input unchanged", input, got)
	}
	if got, want := escapeAttr(input), "line1&#10;line2&#9;end"; got != want {
		t.Errorf("escapeAttr(%q) = %q, want %q", input, got, want)
	}
}

func TestTextNodeEscaping(t *testing.T) {
	node := vdom.Text(`<img src=x onerror="alert(1)">`)
	html, err := New(Config{}).ToString(node)
	if err != nil {
		t.Fatalf("ToString() error = %v", err)
	}
	want := "&lt;img src=x onerror=&quot;alert(1)&quot;&gt;"
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}
