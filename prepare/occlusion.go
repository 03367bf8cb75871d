package prepare

import (
	"github.com/CodingLucasLi/Clawome/config"
	"github.com/CodingLucasLi/Clawome/snapshot"
)

// ApplyOcclusionAndContainment runs the two additive filters documented in
// SPEC_FULL.md §E, adapted from dom/enhanced.go's markOccludedElements and
// markContainedElements in the teacher repo. Run calls it as its last
// step; cfg.EnableOcclusionFilter and cfg.EnableContainmentFilter switch
// each filter off so spec.md's literal hidden-element invariants can be
// checked.
func ApplyOcclusionAndContainment(p *Prepared, cfg config.Config) {
	if cfg.EnableOcclusionFilter {
		markOccluded(p, cfg)
	}
	if cfg.EnableContainmentFilter {
		markContained(p, cfg)
	}
}

func markOccluded(p *Prepared, cfg config.Config) {
	visible := visibleWithBounds(p)
	for _, i := range visible {
		for _, j := range visible {
			if i == j || p.Tree.Nodes[j].ParentIndex != p.Tree.Nodes[i].ParentIndex {
				continue
			}
			if p.Tree.Nodes[j].PaintOrder <= p.Tree.Nodes[i].PaintOrder {
				continue
			}
			if isContainedFraction(p.Tree.Nodes[i].Bounds, p.Tree.Nodes[j].Bounds) >= cfg.OcclusionThreshold {
				p.Hidden[i] = true
				break
			}
		}
	}
}

func markContained(p *Prepared, cfg config.Config) {
	visible := visibleWithBounds(p)
	for _, i := range visible {
		if p.Clickable[i] {
			continue // never fold away an element that is itself actionable
		}
		inArea := area(p.Tree.Nodes[i].Bounds)
		for _, j := range visible {
			if i == j || !p.Clickable[j] {
				continue
			}
			outArea := area(p.Tree.Nodes[j].Bounds)
			if outArea <= inArea {
				continue
			}
			isAncestor := false
			for a := p.Tree.Nodes[i].ParentIndex; a >= 0; a = p.Tree.Nodes[a].ParentIndex {
				if a == j {
					isAncestor = true
					break
				}
			}
			if !isAncestor {
				continue
			}
			if isContainedFraction(p.Tree.Nodes[i].Bounds, p.Tree.Nodes[j].Bounds) >= cfg.ContainmentThreshold {
				p.Hidden[i] = true
				break
			}
		}
	}
}

func visibleWithBounds(p *Prepared) []int {
	out := make([]int, 0, len(p.Tree.Nodes))
	for i := range p.Tree.Nodes {
		n := &p.Tree.Nodes[i]
		if n.Kind == snapshot.KindElement && !p.Hidden[i] && n.HasBounds && !n.Bounds.Empty() {
			out = append(out, i)
		}
	}
	return out
}

func area(r snapshot.Rect) float64 { return r.W * r.H }

// isContainedFraction returns the fraction of inner's area that overlaps
// outer.
func isContainedFraction(inner, outer snapshot.Rect) float64 {
	x1 := max(inner.X, outer.X)
	y1 := max(inner.Y, outer.Y)
	x2 := min(inner.X+inner.W, outer.X+outer.W)
	y2 := min(inner.Y+inner.H, outer.Y+outer.H)
	if x2 <= x1 || y2 <= y1 {
		return 0
	}
	inArea := area(inner)
	if inArea <= 0 {
		return 0
	}
	return (x2 - x1) * (y2 - y1) / inArea
}
