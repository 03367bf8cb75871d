package walk

import (
	"github.com/CodingLucasLi/Clawome/config"
	"github.com/CodingLucasLi/Clawome/prepare"
	"github.com/CodingLucasLi/Clawome/snapshot"
)

// classification holds the per-node facts computed bottom-up before the
// main DFS, so spec.md §4.3 step 4's "no block children" test doesn't need
// to re-derive each descendant's emit decision on every call.
type classification struct {
	actions  []map[Action]bool
	attrs    []string
	blockish []bool // true if this node, once emitted or not, behaves as a block boundary in a parent's text pass
	willEmit []bool // true if this node is not silently skipped per step 4
}

func classify(t *snapshot.Tree, p *prepare.Prepared, cfg config.Config) *classification {
	n := len(t.Nodes)
	c := &classification{
		actions:  make([]map[Action]bool, n),
		attrs:    make([]string, n),
		blockish: make([]bool, n),
		willEmit: make([]bool, n),
	}

	var visit func(int)
	visit = func(idx int) {
		node := &t.Nodes[idx]
		for _, child := range node.Children {
			visit(child)
		}

		if node.Kind != snapshot.KindElement || p.Hidden[idx] || cfg.SkipTags[node.Tag] {
			return
		}
		if node.Tag == "svg" || node.Tag == "tr" {
			c.blockish[idx] = true
			c.willEmit[idx] = true
			return
		}

		c.actions[idx] = classifyActions(node, p.Clickable[idx], cfg)
		c.attrs[idx] = formatAttrs(node, cfg)

		hasBlockChild := false
		for _, child := range node.Children {
			if t.Nodes[child].Kind == snapshot.KindElement && c.blockish[child] {
				hasBlockChild = true
				break
			}
		}

		isInline := cfg.InlineTags[node.Tag]
		skip := isInline && len(c.actions[idx]) == 0 && !hasBlockChild && p.Icon[idx] == "" && c.attrs[idx] == ""

		c.willEmit[idx] = !skip
		c.blockish[idx] = !isInline || c.willEmit[idx]
	}

	visit(t.BodyIndex)
	return c
}
