package walk

import (
	"github.com/rs/zerolog"

	"github.com/CodingLucasLi/Clawome/config"
	"github.com/CodingLucasLi/Clawome/prepare"
	"github.com/CodingLucasLi/Clawome/snapshot"
)

// Result is Walk's return value: the flat record sequence plus whether a
// resource limit (spec.md §7's "resource-limit hit") truncated it.
type Result struct {
	Records   []Record
	Truncated bool
}

type walker struct {
	tree     *snapshot.Tree
	prep     *prepare.Prepared
	cfg      config.Config
	cls      *classification
	log      zerolog.Logger
	previous map[snapshot.BackRef]bool

	out       []Record
	truncated bool
}

// Walk runs spec.md §4.3's depth-first traversal of body, producing the
// flat ordered sequence of Record. previous, if non-nil, is the prior
// extraction's back-reference set used for the additive IsNew marker
// (SPEC_FULL.md §E); pass nil to disable it.
func Walk(prep *prepare.Prepared, cfg config.Config, previous map[snapshot.BackRef]bool, log zerolog.Logger) Result {
	w := &walker{
		tree:     prep.Tree,
		prep:     prep,
		cfg:      cfg,
		cls:      classify(prep.Tree, prep, cfg),
		log:      log,
		previous: previous,
	}

	for _, child := range w.tree.Nodes[w.tree.BodyIndex].Children {
		if !w.visit(child, 0) {
			break
		}
	}

	return Result{Records: w.out, Truncated: w.truncated}
}

// visit returns false when a resource limit has been hit and the whole
// walk must stop.
func (w *walker) visit(idx int, depth int) bool {
	n := &w.tree.Nodes[idx]
	if n.Kind != snapshot.KindElement || w.prep.Hidden[idx] || w.cfg.SkipTags[n.Tag] {
		return true
	}
	if depth > w.cfg.MaxDepth {
		w.truncated = true
		w.log.Info().Int("depth", depth).Msg("walk: max depth exceeded, stopping")
		return false
	}
	if len(w.out) >= w.cfg.MaxNodes {
		w.truncated = true
		w.log.Info().Int("nodes", len(w.out)).Msg("walk: max nodes exceeded, stopping")
		return false
	}

	switch n.Tag {
	case "svg":
		w.emitSVG(idx, depth)
		return true
	case "tr":
		return w.emitRow(idx, depth)
	}

	if !w.cls.willEmit[idx] {
		return true // inline pass-through: already folded into an ancestor's text
	}

	text := collectText(w.tree, w.prep.Hidden, w.cfg, w.cls, idx)
	label := computeLabel(w.tree, idx, text, w.prep.Icon[idx])
	state := classifyState(n, w.prep.GroupActive[idx], w.prep.GroupInactive[idx], w.cls.actions[idx], w.cfg)

	w.out = append(w.out, Record{
		Idx:      len(w.out) + 1,
		Depth:    depth,
		Tag:      n.Tag,
		Attrs:    w.cls.attrs[idx],
		Text:     text,
		Label:    label,
		Actions:  w.cls.actions[idx],
		State:    state,
		BackRef:  n.BackRef,
		Rect:     n.Bounds,
		Selector: buildSelector(n),
		XPath:    buildXPath(w.tree, idx),
		IsNew:    w.isNew(n.BackRef),
	})

	hasBlockChild := false
	for _, c := range n.Children {
		if w.tree.Nodes[c].Kind == snapshot.KindElement && w.cls.blockish[c] {
			hasBlockChild = true
			break
		}
	}
	if !hasBlockChild {
		return true
	}
	for _, c := range n.Children {
		if !w.visit(c, depth+1) {
			return false
		}
	}
	return true
}

func (w *walker) emitSVG(idx, depth int) {
	n := &w.tree.Nodes[idx]
	label := svgIconLabel(w.tree, idx, w.prep.Icon[idx])
	w.out = append(w.out, Record{
		Idx:      len(w.out) + 1,
		Depth:    depth,
		Tag:      "svg",
		Text:     "[icon: " + label + "]",
		Label:    label,
		BackRef:  n.BackRef,
		Rect:     n.Bounds,
		Selector: buildSelector(n),
		XPath:    buildXPath(w.tree, idx),
		IsNew:    w.isNew(n.BackRef),
	})
}

func (w *walker) emitRow(idx, depth int) bool {
	n := &w.tree.Nodes[idx]
	cells := make([]int, 0, len(n.Children))
	for _, c := range n.Children {
		if w.tree.Nodes[c].Tag == "td" || w.tree.Nodes[c].Tag == "th" {
			cells = append(cells, c)
		}
	}

	texts := make([]string, len(cells))
	interactive := make([]bool, len(cells))
	for i, cell := range cells {
		if cellHasInteractiveDescendant(w.tree, w.prep.Hidden, w.cls, cell) {
			interactive[i] = true
			texts[i] = ""
		} else {
			texts[i] = collectCellText(w.tree, w.prep.Hidden, w.cfg, w.cls, cell)
		}
	}

	w.out = append(w.out, Record{
		Idx:      len(w.out) + 1,
		Depth:    depth,
		Tag:      "tr",
		Text:     joinCells(texts),
		BackRef:  n.BackRef,
		Rect:     n.Bounds,
		Selector: buildSelector(n),
		XPath:    buildXPath(w.tree, idx),
		IsNew:    w.isNew(n.BackRef),
	})

	for i, cell := range cells {
		if !interactive[i] {
			continue
		}
		for _, child := range w.tree.Nodes[cell].Children {
			if !w.visit(child, depth+1) {
				return false
			}
		}
	}
	return true
}

func (w *walker) isNew(ref snapshot.BackRef) bool {
	if w.previous == nil {
		return false
	}
	return !w.previous[ref]
}
