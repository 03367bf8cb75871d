package compress

// pruneEmptyLeaves implements spec.md §4.4 step 5: repeatedly removing leaf
// nodes with no text, label, attrs, state, or actions, since removing a
// leaf can turn its parent into a newly-empty leaf in turn.
func pruneEmptyLeaves(root *Node) {
	for {
		if !prunePass(root) {
			return
		}
	}
}

func prunePass(node *Node) bool {
	changed := false
	kept := node.Children[:0]
	for _, c := range node.Children {
		if prunePass(c) {
			changed = true
		}
		if c.IsLeaf() && c.Empty() {
			changed = true
			continue
		}
		kept = append(kept, c)
	}
	node.Children = kept
	return changed
}
