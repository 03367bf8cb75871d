package compress

import (
	"github.com/CodingLucasLi/Clawome/config"
	"github.com/CodingLucasLi/Clawome/walk"
)

// Result is Compress's return value: the simplified tree's preorder
// flattening, ready for Render.
type Result struct {
	Root  *Node
	Flat  []FlatNode
}

// Run implements spec.md §4.4 end to end: flat-to-tree, simplify to a fixed
// point, collapse popups, truncate long lists, prune empty leaves, and
// flatten back out with hierarchical identifiers assigned.
func Run(records []walk.Record, cfg config.Config) Result {
	root := buildTree(records)
	simplify(root, cfg.SimplifyMaxPasses)
	collapsePopups(root, cfg)
	truncateLongLists(root, cfg)
	pruneEmptyLeaves(root)
	flat := flatten(root)
	return Result{Root: root, Flat: flat}
}
