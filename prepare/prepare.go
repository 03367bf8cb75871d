// Package prepare implements spec.md §4.2's Prepare stage: carousel-clone
// hiding, icon classification, switchable-group bucketing, and
// click-listener flag propagation, run against a captured snapshot.Tree
// (see SPEC_FULL.md §A for why this runs as Go post-processing rather than
// injected JS).
package prepare

import (
	"github.com/rs/zerolog"

	"github.com/CodingLucasLi/Clawome/config"
	"github.com/CodingLucasLi/Clawome/snapshot"
)

// Signals carries the results of the three sub-steps that remain genuinely
// in-browser JS (SPEC_FULL.md §A.3): the addEventListener interceptor, the
// jQuery delegated-handler probe, and the harvested :hover{cursor:pointer}
// selectors, already resolved to concrete back-references via
// querySelectorAll by the caller.
type Signals struct {
	// ClickListenerTargets are elements that received a click, mousedown,
	// or pointerdown listener, per the interceptor installed before page
	// scripts run.
	ClickListenerTargets map[snapshot.BackRef]bool

	// DelegatedTargets are elements resolved from a jQuery-like delegated
	// handler's selector via querySelectorAll.
	DelegatedTargets map[snapshot.BackRef]bool

	// HoverPointerTargets are elements matching a harvested :hover
	// selector whose declaration sets cursor: pointer (the :hover
	// pseudo-class already stripped, per spec.md §4.2).
	HoverPointerTargets map[snapshot.BackRef]bool
}

// Prepared is the annotated snapshot tree Walk consumes. All slices are
// indexed by snapshot.Node.Index.
type Prepared struct {
	Tree *snapshot.Tree

	// Hidden is the final visibility verdict: CSS/zero-size/hidden-input
	// hiding, clone hiding, and switchable-group overrides all folded in.
	Hidden []bool

	// GroupActive / GroupInactive record which nodes were classified as
	// the visible / hidden side of a switchable group, so Walk can emit
	// the "selected" / "hidden" state keys spec.md §4.3 calls for.
	GroupActive   []bool
	GroupInactive []bool

	// Icon holds the classified icon name for nodes Prepare determined to
	// be icons, empty otherwise.
	Icon []string

	// Clickable is the final clickable flag: listener targets, delegated
	// targets, hover-pointer targets, and their propagation to
	// non-semantic list/menu children (spec.md §4.2's last bullet).
	Clickable []bool
}

func newPrepared(t *snapshot.Tree) *Prepared {
	n := len(t.Nodes)
	return &Prepared{
		Tree:          t,
		Hidden:        make([]bool, n),
		GroupActive:   make([]bool, n),
		GroupInactive: make([]bool, n),
		Icon:          make([]string, n),
		Clickable:     make([]bool, n),
	}
}

// Run executes the Prepare stage. It has no error return: spec.md §7
// treats every per-element probe here as independently tolerable.
func Run(t *snapshot.Tree, sig Signals, cfg config.Config, log zerolog.Logger) *Prepared {
	p := newPrepared(t)

	markRawHidden(p, cfg)
	markCloneHidden(p, cfg, log)
	detectSwitchableGroups(p, cfg)
	applyGroupOverrides(p)
	classifyIcons(p, cfg)
	markClickable(p, sig, cfg)
	ApplyOcclusionAndContainment(p, cfg)

	return p
}
