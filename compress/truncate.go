package compress

import (
	"fmt"
	"strings"

	"github.com/CodingLucasLi/Clawome/config"
)

// truncateLongLists implements spec.md §4.4 step 4 and resolves spec.md
// §9's open question on list-truncation parameters: a consecutive run of at
// least cfg.ListTruncateThreshold siblings sharing the same tag AND a
// structurally similar label prefix keeps its first cfg.ListTruncateKeep
// members and collapses the remainder into one synthetic "… (K more)" leaf.
func truncateLongLists(node *Node, cfg config.Config) {
	node.Children = truncateRun(node.Children, cfg)
	for _, c := range node.Children {
		truncateLongLists(c, cfg)
	}
}

// labelShape normalizes a node's label (or, failing that, its text) into a
// coarse similarity key: lowercased, trimmed, with any trailing digits,
// punctuation, or whitespace stripped. "Item 1", "Item 2", ... all collapse
// to "item", so a run of repeated list entries is recognized as homogeneous
// while a run of same-tag but differently-labeled siblings — e.g. a nav
// list's "Home"/"Settings"/"Logout" — is not, and so is exempt from
// truncation even if it is long and shares a tag.
func labelShape(n *Node) string {
	s := n.Label
	if s == "" {
		s = n.Text
	}
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.TrimRight(s, "0123456789 .,#-:")
}

func truncateRun(children []*Node, cfg config.Config) []*Node {
	if len(children) < cfg.ListTruncateThreshold {
		return children
	}
	out := make([]*Node, 0, len(children))
	i := 0
	for i < len(children) {
		j := i + 1
		for j < len(children) && children[j].Tag == children[i].Tag && labelShape(children[j]) == labelShape(children[i]) {
			j++
		}
		run := children[i:j]
		if len(run) >= cfg.ListTruncateThreshold {
			keep := cfg.ListTruncateKeep
			if keep > len(run) {
				keep = len(run)
			}
			out = append(out, run[:keep]...)
			more := len(run) - keep
			if more > 0 {
				out = append(out, &Node{
					Tag:  run[0].Tag,
					Text: fmt.Sprintf("… (%d more)", more),
				})
			}
		} else {
			out = append(out, run...)
		}
		i = j
	}
	return out
}
