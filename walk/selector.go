package walk

import (
	"fmt"
	"strings"

	"github.com/CodingLucasLi/Clawome/snapshot"
)

// buildSelector returns the stable back-reference selector an action
// collaborator uses to resolve a rendered node back to a live element
// (spec.md §3, §6). It encodes the CDP backend node id directly: the
// action layer resolves it with DOM.resolveNode / Page.ElementFromNode
// rather than re-running a CSS query, avoiding selector drift entirely.
func buildSelector(n *snapshot.Node) string {
	return fmt.Sprintf("backend-node:%d", n.BackRef)
}

// buildXPath computes a best-effort fallback XPath from the snapshot tree
// (nth-of-type sibling positions from <body> down), used only when a
// backend node id has gone stale after a page mutation.
func buildXPath(t *snapshot.Tree, idx int) string {
	var segs []string
	cur := idx
	for cur >= 0 {
		n := &t.Nodes[cur]
		if n.Tag == "" {
			cur = n.ParentIndex
			continue
		}
		segs = append([]string{fmt.Sprintf("%s[%d]", n.Tag, siblingPosition(t, cur))}, segs...)
		if cur == t.BodyIndex {
			break
		}
		cur = n.ParentIndex
	}
	return "/" + strings.Join(segs, "/")
}

func siblingPosition(t *snapshot.Tree, idx int) int {
	n := &t.Nodes[idx]
	if n.ParentIndex < 0 {
		return 1
	}
	pos := 1
	for _, sib := range t.Nodes[n.ParentIndex].Children {
		if sib == idx {
			return pos
		}
		if t.Nodes[sib].Tag == n.Tag {
			pos++
		}
	}
	return pos
}
