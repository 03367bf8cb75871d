package walk

import (
	"strings"

	"github.com/CodingLucasLi/Clawome/snapshot"
)

// svgIconLabel implements spec.md §4.3 step 2: an <svg> is emitted as a
// single leaf node labeled "[icon: name]" and never descended into. The
// name comes from <title>, aria-label, a Prepare-assigned icon attr, or a
// <use href="#id"> reference, in that priority order.
func svgIconLabel(t *snapshot.Tree, idx int, preparedIcon string) string {
	n := &t.Nodes[idx]

	if titleIdx, ok := findDescendantTag(t, idx, "title"); ok {
		if txt := strings.TrimSpace(directChildText(t, titleIdx)); txt != "" {
			return txt
		}
	}
	if v := n.Attrs["aria-label"]; v != "" {
		return v
	}
	if preparedIcon != "" {
		return preparedIcon
	}
	if use, ok := findDescendantTag(t, idx, "use"); ok {
		href := t.Nodes[use].Attrs["href"]
		if href == "" {
			href = t.Nodes[use].Attrs["xlink:href"]
		}
		if len(href) > 1 && href[0] == '#' {
			return href[1:]
		}
	}
	return "icon"
}

func findDescendantTag(t *snapshot.Tree, idx int, tag string) (int, bool) {
	for _, c := range t.Nodes[idx].Children {
		if t.Nodes[c].Tag == tag {
			return c, true
		}
		if found, ok := findDescendantTag(t, c, tag); ok {
			return found, true
		}
	}
	return 0, false
}

func directChildText(t *snapshot.Tree, idx int) string {
	var sb strings.Builder
	for _, c := range t.Nodes[idx].Children {
		if t.Nodes[c].Kind == snapshot.KindText {
			sb.WriteString(t.Nodes[c].Text)
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
