package prepare

import (
	"github.com/CodingLucasLi/Clawome/config"
	"github.com/CodingLucasLi/Clawome/snapshot"
)

// detectSwitchableGroups partitions the children of any parent that has at
// least one raw-hidden child by (tag, normalized class key). Buckets with
// ≥2 members and a non-empty key, containing both visible and hidden
// members, have their visible members marked GroupActive and their hidden
// members marked GroupInactive (spec.md §4.2).
func detectSwitchableGroups(p *Prepared, cfg config.Config) {
	for parent := range p.Tree.Nodes {
		children := p.Tree.Nodes[parent].Children
		if !anyHidden(p, children) {
			continue
		}

		buckets := map[string][]int{}
		for _, c := range children {
			n := &p.Tree.Nodes[c]
			if n.Kind != snapshot.KindElement {
				continue
			}
			key := n.Tag + "|" + normalizedClassKey(n, cfg.StateClasses)
			buckets[key] = append(buckets[key], c)
		}

		for key, members := range buckets {
			if key == "|" || len(members) < 2 {
				continue
			}
			var hasVisible, hasHidden bool
			for _, m := range members {
				if p.Hidden[m] {
					hasHidden = true
				} else {
					hasVisible = true
				}
			}
			if !hasVisible || !hasHidden {
				continue
			}
			for _, m := range members {
				if p.Hidden[m] {
					p.GroupInactive[m] = true
				} else {
					p.GroupActive[m] = true
				}
			}
		}
	}
}

func anyHidden(p *Prepared, children []int) bool {
	for _, c := range children {
		if p.Hidden[c] {
			return true
		}
	}
	return false
}

// applyGroupOverrides folds the switchable-group verdict into Prepared's
// final Hidden slice: GroupActive always overrides to visible, GroupInactive
// always overrides to hidden, per spec.md §3's invariant.
func applyGroupOverrides(p *Prepared) {
	for i := range p.Tree.Nodes {
		switch {
		case p.GroupInactive[i]:
			p.Hidden[i] = true
		case p.GroupActive[i]:
			p.Hidden[i] = false
		}
	}
}
