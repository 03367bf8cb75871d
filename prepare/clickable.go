package prepare

import (
	"github.com/CodingLucasLi/Clawome/config"
	"github.com/CodingLucasLi/Clawome/snapshot"
)

// nonSemanticBlockTags are the tags eligible for clickable-flag propagation
// from a marked parent (spec.md §4.2's last bullet): not already
// inherently actionable tags.
var nonSemanticBlockTags = map[string]bool{
	"div": true, "li": true, "tr": true, "td": true, "span": true,
	"p": true, "section": true, "article": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true,
}

// markClickable sets Prepared.Clickable from the three discovery
// mechanisms (listener interception, delegated-handler resolution,
// hover-pointer selector resolution) and then propagates it from marked
// list/menu-row containers to their non-semantic block children.
func markClickable(p *Prepared, sig Signals, cfg config.Config) {
	for i := range p.Tree.Nodes {
		n := &p.Tree.Nodes[i]
		if n.Kind != snapshot.KindElement {
			continue
		}
		if sig.ClickListenerTargets[n.BackRef] || sig.DelegatedTargets[n.BackRef] || sig.HoverPointerTargets[n.BackRef] {
			p.Clickable[i] = true
		}
	}

	propagateClickable(p)
}

func propagateClickable(p *Prepared) {
	for parent := range p.Tree.Nodes {
		if !p.Clickable[parent] {
			continue
		}
		eligible := make([]int, 0, len(p.Tree.Nodes[parent].Children))
		for _, c := range p.Tree.Nodes[parent].Children {
			n := &p.Tree.Nodes[c]
			if n.Kind != snapshot.KindElement || !nonSemanticBlockTags[n.Tag] {
				continue
			}
			if p.Hidden[c] {
				continue
			}
			if !hasContent(p.Tree, c) {
				continue
			}
			eligible = append(eligible, c)
		}
		if len(eligible) < 2 {
			continue
		}
		for _, c := range eligible {
			p.Clickable[c] = true
		}
	}
}

func hasContent(t *snapshot.Tree, i int) bool {
	if len(t.Nodes[i].Children) > 0 {
		return true
	}
	return directText(t, i) != ""
}
