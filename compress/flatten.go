package compress

import (
	"strconv"

	"github.com/CodingLucasLi/Clawome/walk"
)

// buildTree implements spec.md §4.4 step 1: "every record's parent is the
// most recent record at depth-1." root is a synthetic, never-rendered
// container standing in for the document body.
func buildTree(records []walk.Record) *Node {
	root := &Node{Tag: "#root"}
	stack := []*Node{root}

	for _, r := range records {
		depth := r.Depth
		if depth+1 > len(stack) {
			// Walk never emits a depth more than one past its parent's, but
			// clamp defensively rather than panic on a malformed sequence.
			depth = len(stack) - 1
		}
		stack = stack[:depth+1]
		parent := stack[depth]

		node := nodeFromRecord(r)
		node.Parent = parent
		parent.Children = append(parent.Children, node)
		stack = append(stack, node)
	}
	return root
}

// FlatNode is one output row of the final flatten pass: a compressed node
// together with the hierarchical identifier assigned to its tree position.
type FlatNode struct {
	Hid  string
	Node *Node
}

// flatten implements spec.md §4.4's final step: a preorder walk of the
// simplified tree assigning each node a dotted, 1-based sibling-position
// hierarchical identifier ("2.1.3") and returning the emission order.
func flatten(root *Node) []FlatNode {
	var out []FlatNode
	var walkFn func(n *Node, prefix string)
	walkFn = func(n *Node, prefix string) {
		for i, child := range n.Children {
			hid := strconv.Itoa(i + 1)
			if prefix != "" {
				hid = prefix + "." + hid
			}
			child.Hid = hid
			out = append(out, FlatNode{Hid: hid, Node: child})
			walkFn(child, hid)
		}
	}
	walkFn(root, "")
	return out
}
