package vdom

import "testing"

func TestNormalizeChildren(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		wantLen  int
		wantText []string // expected Text of each entry, "" for non-text/nil
	}{
		{
			name:    "nil input",
			input:   nil,
			wantLen: 0,
		},
		{
			name:    "single node",
			input:   Div(),
			wantLen: 1,
		},
		{
			name:    "typed nil node",
			input:   (*VNode)(nil),
			wantLen: 0,
		},
		{
			name:    "node slice kept as-is",
			input:   []*VNode{Div(), nil, Span()},
			wantLen: 3,
		},
		{
			name:     "mixed slice",
			input:    []any{Div(), "hello", 42, nil, 1.5},
			wantLen:  5,
			wantText: []string{"", "hello", "42", "", "1.5"},
		},
		{
			name:     "bare string",
			input:    "hi",
			wantLen:  1,
			wantText: []string{"hi"},
		},
		{
			name:     "bare int",
			input:    7,
			wantLen:  1,
			wantText: []string{"7"},
		},
		{
			name:     "bare float",
			input:    2.5,
			wantLen:  1,
			wantText: []string{"2.5"},
		},
		{
			name:    "unrecognized input",
			input:   struct{}{},
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeChildren(tt.input)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			for i, want := range tt.wantText {
				if want == "" {
					continue
				}
				if got[i] == nil || got[i].Kind != KindText || got[i].Text != want {
					t.Errorf("entry %d = %+v, want text %q", i, got[i], want)
				}
			}
		})
	}
}

func TestNormalizeChildrenPreservesNilEntries(t *testing.T) {
	got := NormalizeChildren([]any{nil, "x", struct{}{}})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0] != nil {
		t.Error("entry 0 should stay nil")
	}
	if got[2] != nil {
		t.Error("unrecognized entry should map to nil")
	}
}

func TestNormalizeChildrenIdentityForNodeSlice(t *testing.T) {
	in := []*VNode{Div(), Span()}
	got := NormalizeChildren(in)
	if len(got) != 2 || got[0] != in[0] || got[1] != in[1] {
		t.Error("node slice should be returned with identical entries")
	}
}
