package walk

import (
	"strings"

	"github.com/CodingLucasLi/Clawome/config"
	"github.com/CodingLucasLi/Clawome/snapshot"
)

func cellHasInteractiveDescendant(t *snapshot.Tree, hidden []bool, c *classification, idx int) bool {
	for _, child := range t.Nodes[idx].Children {
		if t.Nodes[child].Kind != snapshot.KindElement || hidden[child] {
			continue
		}
		if len(c.actions[child]) > 0 {
			return true
		}
		if cellHasInteractiveDescendant(t, hidden, c, child) {
			return true
		}
	}
	return false
}

// collectCellText joins a non-interactive cell's visible text, capped at
// cfg.TableCellMax characters (spec.md §4.3 step 3).
func collectCellText(t *snapshot.Tree, hidden []bool, cfg config.Config, c *classification, cellIdx int) string {
	text := collectText(t, hidden, cfg, c, cellIdx)
	if len(text) > cfg.TableCellMax {
		text = text[:cfg.TableCellMax] + "…"
	}
	return text
}

// joinCells implements the " | " cell separator for a compressed row.
func joinCells(cells []string) string {
	return strings.Join(cells, " | ")
}
