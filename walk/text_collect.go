package walk

import (
	"github.com/CodingLucasLi/Clawome/config"
	"github.com/CodingLucasLi/Clawome/snapshot"
)

// collectText implements spec.md §4.3's "Text collection" over idx's
// direct children, using the precomputed classification to decide which
// children are silently-skipped inline pass-throughs, bracketed
// inline-interactive fragments, or block-level gaps.
func collectText(t *snapshot.Tree, hidden []bool, cfg config.Config, c *classification, idx int) string {
	var parts []string
	for _, child := range t.Nodes[idx].Children {
		cn := &t.Nodes[child]

		if cn.Kind == snapshot.KindText {
			parts = append(parts, cn.Text)
			continue
		}
		if cn.Kind != snapshot.KindElement || hidden[child] {
			continue
		}

		switch {
		case !c.willEmit[child]:
			parts = append(parts, collectText(t, hidden, cfg, c, child))
		case cfg.InlineTags[cn.Tag] && len(c.actions[child]) > 0:
			parts = append(parts, bracket(collectText(t, hidden, cfg, c, child)))
		default:
			// block child, table row, svg leaf, or a non-bracketed inline
			// emission: leaves a gap, the child appears as its own line.
		}
	}
	return collapseWhitespace(joinText(parts))
}
