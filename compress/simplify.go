package compress

import "strings"

// simplify implements spec.md §4.4 step 2, run to a fixed point (bounded by
// maxPasses): collapsing uninformative single-child wrappers, dropping
// parent lines that duplicate their sole child's text, and merging runs of
// adjacent inline siblings that carry neither actions nor state.
//
// Invariant: a node that HasActions() is never removed or merged away — it
// may only ever survive as itself or be reparented.
func simplify(root *Node, maxPasses int) {
	for pass := 0; pass < maxPasses; pass++ {
		changed := false
		for i, child := range root.Children {
			replacement, ch := collapseWrapper(child)
			if ch {
				changed = true
			}
			replacement, ch = dedupeText(replacement)
			if ch {
				changed = true
			}
			replacement.Parent = root
			root.Children[i] = replacement
		}
		if mergeInlineRuns(root) {
			changed = true
		}
		if !changed {
			return
		}
	}
}

// collapseWrapper recursively simplifies node's subtree (collapsing,
// deduplicating and merging at every level), then — if node
// itself carries no actions, no surfaced attrs, and no state, and has
// exactly one child — replaces node with that child.
func collapseWrapper(node *Node) (*Node, bool) {
	changed := false
	for i, child := range node.Children {
		replacement, ch := collapseWrapper(child)
		if ch {
			changed = true
		}
		replacement, ch = dedupeText(replacement)
		if ch {
			changed = true
		}
		replacement.Parent = node
		node.Children[i] = replacement
	}
	if mergeInlineRuns(node) {
		changed = true
	}

	if len(node.Children) == 1 && isUninformativeWrapper(node) {
		child := node.Children[0]
		child.Parent = node.Parent
		return child, true
	}
	return node, changed
}

func isUninformativeWrapper(n *Node) bool {
	return !n.HasActions() && n.Attrs == "" && len(n.State) == 0
}

// dedupeText implements "when a parent and its sole child share identical
// collected text, keep the child — it inherits any attrs the parent could
// surface — and drop the duplicate line." Guarded by the never-merge-away
// invariant: a parent carrying actions is never dropped this way.
func dedupeText(node *Node) (*Node, bool) {
	if node.HasActions() || len(node.Children) != 1 {
		return node, false
	}
	child := node.Children[0]
	if node.Text == "" || node.Text != child.Text {
		return node, false
	}

	if child.Attrs == "" {
		child.Attrs = node.Attrs
	}
	if len(child.State) == 0 {
		child.State = node.State
	}
	if child.Label == "" {
		child.Label = node.Label
	}
	child.Parent = node.Parent
	return child, true
}

// mergeInlineRuns merges consecutive runs (length >= 2) of leaf children
// that carry no actions and no state into one synthetic text node per run.
func mergeInlineRuns(node *Node) bool {
	if len(node.Children) < 2 {
		return false
	}
	changed := false
	merged := make([]*Node, 0, len(node.Children))
	i := 0
	for i < len(node.Children) {
		c := node.Children[i]
		if !isInlineMergeable(c) {
			merged = append(merged, c)
			i++
			continue
		}
		j := i + 1
		texts := []string{c.Text}
		for j < len(node.Children) && isInlineMergeable(node.Children[j]) {
			texts = append(texts, node.Children[j].Text)
			j++
		}
		if j-i < 2 {
			merged = append(merged, c)
			i++
			continue
		}
		block := &Node{
			Tag:    c.Tag,
			Text:   strings.TrimSpace(strings.Join(texts, " ")),
			Parent: node,
		}
		merged = append(merged, block)
		changed = true
		i = j
	}
	node.Children = merged
	return changed
}

func isInlineMergeable(n *Node) bool {
	return !n.HasActions() && len(n.State) == 0 && n.IsLeaf()
}
