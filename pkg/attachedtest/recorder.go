package attachedtest

import (
	"github.com/vango-go/attached"
	"github.com/vango-go/attached/pkg/vdom"
)

// Recorder logs walker visits in order.
type Recorder struct {
	visits []*vdom.VNode
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Visitor returns an identity Visitor that records each visited node,
// including leaves and nil entries, before passing it through unchanged.
func (rec *Recorder) Visitor() attached.Visitor {
	return func(n *vdom.VNode) *vdom.VNode {
		rec.visits = append(rec.visits, n)
		return n
	}
}

// Len returns the total number of visits, nil entries and leaves included.
func (rec *Recorder) Len() int {
	return len(rec.visits)
}

// Tags returns the tags of visited element nodes, in visit order.
func (rec *Recorder) Tags() []string {
	var tags []string
	for _, n := range rec.visits {
		if n.IsValid() {
			tags = append(tags, n.Tag)
		}
	}
	return tags
}

// Texts returns the contents of visited text leaves, in visit order.
func (rec *Recorder) Texts() []string {
	var texts []string
	for _, n := range rec.visits {
		if n != nil && n.Kind == vdom.KindText {
			texts = append(texts, n.Text)
		}
	}
	return texts
}

// Visited reports whether any visited element carries the given tag.
func (rec *Recorder) Visited(tag string) bool {
	for _, n := range rec.visits {
		if n.IsValid() && n.Tag == tag {
			return true
		}
	}
	return false
}

// Reset clears the recorded visits for reuse.
func (rec *Recorder) Reset() {
	rec.visits = nil
}
