package walk

import (
	"strings"

	"github.com/CodingLucasLi/Clawome/snapshot"
)

var formControlTags = map[string]bool{
	"input": true, "textarea": true, "select": true,
}

// computeLabel implements spec.md §3's "best human-readable label" chain,
// extended by §4.3's form-control association rule.
func computeLabel(t *snapshot.Tree, idx int, text, iconName string) string {
	n := &t.Nodes[idx]

	if text != "" {
		return text
	}
	if formControlTags[n.Tag] {
		if l := associatedLabelText(t, idx); l != "" {
			return l
		}
	}
	if v := n.Attrs["aria-label"]; v != "" {
		return v
	}
	if v := n.Attrs["title"]; v != "" {
		return v
	}
	if v := n.Attrs["placeholder"]; v != "" {
		return v
	}
	if v := n.Attrs["alt"]; v != "" {
		return v
	}
	if iconName != "" {
		return "icon: " + iconName
	}
	return ""
}

// associatedLabelText resolves <label for=id>, an ancestor <label>
// wrapper, or aria-labelledby, in that priority order.
func associatedLabelText(t *snapshot.Tree, idx int) string {
	n := &t.Nodes[idx]

	if id := n.Attrs["id"]; id != "" {
		if lbl, ok := findLabelFor(t, id); ok {
			return collapseWhitespace(collectSubtreeText(t, lbl))
		}
	}

	for p := n.ParentIndex; p >= 0; p = t.Nodes[p].ParentIndex {
		if t.Nodes[p].Tag == "label" {
			return collapseWhitespace(collectSubtreeText(t, p))
		}
		if p == t.BodyIndex {
			break
		}
	}

	if ids := n.Attrs["aria-labelledby"]; ids != "" {
		var out string
		for _, id := range strings.Fields(ids) {
			if el, ok := findByID(t, id); ok {
				out = joinText([]string{out, collectSubtreeText(t, el)})
			}
		}
		return collapseWhitespace(out)
	}

	return ""
}

func findLabelFor(t *snapshot.Tree, id string) (int, bool) {
	for i := range t.Nodes {
		if t.Nodes[i].Tag == "label" && t.Nodes[i].Attrs["for"] == id {
			return i, true
		}
	}
	return 0, false
}

func findByID(t *snapshot.Tree, id string) (int, bool) {
	for i := range t.Nodes {
		if t.Nodes[i].Kind == snapshot.KindElement && t.Nodes[i].Attrs["id"] == id {
			return i, true
		}
	}
	return 0, false
}

// collectSubtreeText concatenates every descendant text node's content, in
// document order.
func collectSubtreeText(t *snapshot.Tree, idx int) string {
	var parts []string
	var walk func(int)
	walk = func(i int) {
		n := &t.Nodes[i]
		if n.Kind == snapshot.KindText {
			parts = append(parts, n.Text)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(idx)
	return joinText(parts)
}
