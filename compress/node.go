// Package compress implements spec.md §4.4's Compress stage: folding the
// flat walk.Record sequence into a tree, simplifying it to a fixed point,
// collapsing popups, truncating long homogeneous lists, pruning empty
// leaves, and flattening back out with hierarchical identifiers assigned.
package compress

import (
	"github.com/CodingLucasLi/Clawome/snapshot"
	"github.com/CodingLucasLi/Clawome/walk"
)

// Node is spec.md §3's "Compressed tree node": a walk.Record's fields plus
// a children list, with Depth dropped (tree position supersedes it) and
// Idx replaced later by Hid.
type Node struct {
	Tag      string
	Attrs    string
	Text     string
	Label    string
	Actions  map[walk.Action]bool
	State    map[string]string
	Rect     snapshot.Rect
	Selector string
	XPath    string
	Inlined  bool
	IsNew    bool

	Children []*Node
	Parent   *Node

	// Hid is assigned by flatten at the very end of the pipeline.
	Hid string
}

func nodeFromRecord(r walk.Record) *Node {
	return &Node{
		Tag:      r.Tag,
		Attrs:    r.Attrs,
		Text:     r.Text,
		Label:    r.Label,
		Actions:  r.Actions,
		State:    r.State,
		Rect:     r.Rect,
		Selector: r.Selector,
		XPath:    r.XPath,
		Inlined:  r.Inlined,
		IsNew:    r.IsNew,
	}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// HasActions reports whether n carries any action.
func (n *Node) HasActions() bool { return len(n.Actions) > 0 }

// Empty reports whether n has no displayable content at all: used by the
// prune-empty-leaves pass.
func (n *Node) Empty() bool {
	return n.Text == "" && n.Label == "" && n.Attrs == "" && len(n.State) == 0 && len(n.Actions) == 0
}
