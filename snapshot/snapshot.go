// Package snapshot holds the flat, parent-indexed representation of a live
// DOM captured via a single CDP DOMSnapshot.captureSnapshot round trip (see
// SPEC_FULL.md §A). It is the Go-native stand-in for spec.md §4.2's
// "prepared DOM before extraction": parsing the snapshot response is pure
// and synchronous, with no dependency on a live page, so it is unit
// testable against recorded CDP payloads.
package snapshot

// BackRef is a node's CDP backend node id: a stable integer handle scoped
// to the page's current document, standing in for spec.md §4.2's injected
// back-reference attribute (see SPEC_FULL.md §A.4).
type BackRef int64

// Kind distinguishes element nodes from text nodes in the flat array.
type Kind int

const (
	KindElement Kind = iota
	KindText
)

// Rect is a CSS pixel bounding box in viewport coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rect has zero area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Node is one entry of the flat, parent-indexed snapshot array.
type Node struct {
	Index       int
	ParentIndex int // -1 for the document root
	Kind        Kind
	Tag         string // lowercase; empty for text nodes
	Text        string // text content; only set for text nodes
	BackRef     BackRef
	Attrs       map[string]string
	Bounds      Rect
	HasBounds   bool
	PaintOrder  int
	Styles      map[string]string // requested computed style properties
	Children    []int             // populated by Tree.build
}

// Tree is the parsed snapshot: a flat node array plus the index of <body>,
// with child-index lists computed from ParentIndex so downstream stages can
// walk it like an ordinary tree.
type Tree struct {
	Nodes       []Node
	BodyIndex   int
	DocumentURL string
}

// build populates each node's Children slice from ParentIndex. Called once
// after parsing.
func (t *Tree) build() {
	for i := range t.Nodes {
		p := t.Nodes[i].ParentIndex
		if p < 0 || p >= len(t.Nodes) {
			continue
		}
		t.Nodes[p].Children = append(t.Nodes[p].Children, i)
	}
}

// ByBackRef returns the node index carrying the given back-reference, or
// -1 if none does.
func (t *Tree) ByBackRef(ref BackRef) int {
	for i := range t.Nodes {
		if t.Nodes[i].BackRef == ref {
			return i
		}
	}
	return -1
}
