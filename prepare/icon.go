package prepare

import (
	"regexp"
	"strings"

	"github.com/CodingLucasLi/Clawome/config"
	"github.com/CodingLucasLi/Clawome/snapshot"
)

// maxMaterialIconTextLen bounds how long an element's own text may be for
// the material-icon-class heuristic to treat that text as the icon's name
// (spec.md §4.2: "materialClasses regex match with short text content").
const maxMaterialIconTextLen = 30

// classifyIcons fills Prepared.Icon for elements whose visible text and
// aria-label are both empty, following the fallback chain in spec.md §4.2.
func classifyIcons(p *Prepared, cfg config.Config) {
	for i := range p.Tree.Nodes {
		n := &p.Tree.Nodes[i]
		if n.Kind != snapshot.KindElement || p.Hidden[i] {
			continue
		}
		if n.Attrs["aria-label"] != "" {
			continue
		}
		ownText := strings.TrimSpace(directText(p.Tree, i))
		if ownText != "" && !classMatchesAny(n, cfg.MaterialClasses) {
			continue
		}

		name, ok := classifyOne(p.Tree, i, ownText, cfg)
		if !ok {
			continue
		}
		if isSmallIcon(n, cfg.IconMaxSize) {
			p.Icon[i] = name
		}
	}
}

func classifyOne(t *snapshot.Tree, i int, ownText string, cfg config.Config) (string, bool) {
	n := &t.Nodes[i]

	if name, ok := iconPrefixName(n.Attrs["class"], cfg.IconPrefixes); ok {
		return name, true
	}
	if ownText != "" && classMatchesAny(n, cfg.MaterialClasses) && len(ownText) <= maxMaterialIconTextLen {
		return ownText, true
	}
	if name, ok := svgUseHref(t, i); ok {
		return name, true
	}
	if name, ok := svgTitle(t, i); ok {
		return name, true
	}
	maxAncestors := 4
	if !looksInteractive(n) {
		maxAncestors = 1
	}
	if name, ok := ancestorSemanticKeyword(t, i, maxAncestors, cfg.SemanticKeywords); ok {
		return name, true
	}
	return "", false
}

func looksInteractive(n *snapshot.Node) bool {
	switch n.Tag {
	case "a", "button", "input", "select", "textarea":
		return true
	}
	if n.Attrs["onclick"] != "" {
		return true
	}
	switch n.Attrs["role"] {
	case "button", "link", "tab", "menuitem":
		return true
	}
	return false
}

func iconPrefixName(class string, prefixes []string) (string, bool) {
	for _, tok := range strings.Fields(class) {
		for _, prefix := range prefixes {
			pfx := prefix + "-"
			if strings.HasPrefix(tok, pfx) && len(tok) > len(pfx) {
				return tok[len(pfx):], true
			}
		}
	}
	return "", false
}

func classMatchesAny(n *snapshot.Node, res []*regexp.Regexp) bool {
	class := n.Attrs["class"]
	for _, re := range res {
		if re.MatchString(class) {
			return true
		}
	}
	return false
}

func directText(t *snapshot.Tree, i int) string {
	var sb strings.Builder
	for _, c := range t.Nodes[i].Children {
		if t.Nodes[c].Kind == snapshot.KindText {
			sb.WriteString(t.Nodes[c].Text)
			sb.WriteByte(' ')
		}
	}
	return strings.TrimSpace(sb.String())
}

func svgUseHref(t *snapshot.Tree, i int) (string, bool) {
	root := &t.Nodes[i]
	if root.Tag != "svg" && !hasDescendantTag(t, i, "svg") {
		return "", false
	}
	if use, ok := findDescendant(t, i, "use"); ok {
		href := t.Nodes[use].Attrs["href"]
		if href == "" {
			href = t.Nodes[use].Attrs["xlink:href"]
		}
		if strings.HasPrefix(href, "#") && len(href) > 1 {
			return href[1:], true
		}
	}
	return "", false
}

func svgTitle(t *snapshot.Tree, i int) (string, bool) {
	if title, ok := findDescendant(t, i, "title"); ok {
		txt := strings.TrimSpace(directText(t, title))
		if txt != "" {
			return txt, true
		}
	}
	return "", false
}

func hasDescendantTag(t *snapshot.Tree, i int, tag string) bool {
	_, ok := findDescendant(t, i, tag)
	return ok
}

func findDescendant(t *snapshot.Tree, i int, tag string) (int, bool) {
	for _, c := range t.Nodes[i].Children {
		if t.Nodes[c].Tag == tag {
			return c, true
		}
		if found, ok := findDescendant(t, c, tag); ok {
			return found, true
		}
	}
	return 0, false
}

func ancestorSemanticKeyword(t *snapshot.Tree, i int, maxAncestors int, keywords []string) (string, bool) {
	cur := t.Nodes[i].ParentIndex
	for steps := 0; steps < maxAncestors && cur >= 0; steps++ {
		class := t.Nodes[cur].Attrs["class"]
		for _, tok := range strings.Fields(class) {
			low := strings.ToLower(tok)
			for _, kw := range keywords {
				if strings.Contains(low, kw) {
					return kw, true
				}
			}
		}
		cur = t.Nodes[cur].ParentIndex
	}
	return "", false
}

func isSmallIcon(n *snapshot.Node, maxSize int) bool {
	if len(n.Children) == 0 {
		return true
	}
	if !n.HasBounds {
		return false
	}
	return int(n.Bounds.W) <= maxSize && int(n.Bounds.H) <= maxSize
}
