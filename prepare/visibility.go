package prepare

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/CodingLucasLi/Clawome/config"
	"github.com/CodingLucasLi/Clawome/snapshot"
)

// markRawHidden computes CSS/zero-size/hidden-input visibility (spec.md
// §4.3's "Visibility" definition) before any switchable-group override is
// considered.
func markRawHidden(p *Prepared, _ config.Config) {
	for i := range p.Tree.Nodes {
		n := &p.Tree.Nodes[i]
		if n.Kind != snapshot.KindElement {
			continue
		}
		p.Hidden[i] = isCSSHidden(n) || isZeroSizeLeaf(n) || isHiddenInput(n) || isAriaHidden(n)
	}
}

func isCSSHidden(n *snapshot.Node) bool {
	if n.Styles == nil {
		return false
	}
	if n.Styles["display"] == "none" {
		return true
	}
	v := n.Styles["visibility"]
	if v == "hidden" || v == "collapse" {
		return true
	}
	if n.Styles["opacity"] == "0" {
		return true
	}
	return false
}

func isZeroSizeLeaf(n *snapshot.Node) bool {
	return n.HasBounds && n.Bounds.Empty() && len(n.Children) == 0
}

func isHiddenInput(n *snapshot.Node) bool {
	if n.Tag != "input" {
		return false
	}
	return strings.EqualFold(n.Attrs["type"], "hidden")
}

func isAriaHidden(n *snapshot.Node) bool {
	return strings.EqualFold(n.Attrs["aria-hidden"], "true")
}

// markCloneHidden forces every element matching a configured clone
// selector to hidden, the Go-side stand-in for spec.md §4.2's
// "display:none" write to carousel clones.
func markCloneHidden(p *Prepared, cfg config.Config, log zerolog.Logger) {
	for i := range p.Tree.Nodes {
		n := &p.Tree.Nodes[i]
		if n.Kind != snapshot.KindElement {
			continue
		}
		for _, sel := range cfg.CloneSelectors {
			if matchesSimpleSelector(n, sel) {
				p.Hidden[i] = true
				log.Debug().Int("node", i).Str("selector", sel).Msg("clone selector hid element")
				break
			}
		}
	}
}
