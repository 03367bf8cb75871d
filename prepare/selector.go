package prepare

import (
	"sort"
	"strings"

	"github.com/CodingLucasLi/Clawome/snapshot"
)

// matchesSimpleSelector supports the restricted selector grammar
// config.Config.CloneSelectors uses: a bare tag name, a ".class", a
// "#id", an "[attr]" presence check, or an "[attr=value]" equality check.
// This is a deliberately minimal matcher, not a general CSS engine:
// compound and descendant selectors are not supported.
func matchesSimpleSelector(n *snapshot.Node, sel string) bool {
	sel = strings.TrimSpace(sel)
	switch {
	case strings.HasPrefix(sel, "."):
		return hasClass(n, sel[1:])
	case strings.HasPrefix(sel, "#"):
		return n.Attrs["id"] == sel[1:]
	case strings.HasPrefix(sel, "[") && strings.HasSuffix(sel, "]"):
		attr := strings.Trim(sel[1:len(sel)-1], " '\"")
		if eq := strings.IndexByte(attr, '='); eq >= 0 {
			key := strings.TrimSpace(attr[:eq])
			val := strings.Trim(strings.TrimSpace(attr[eq+1:]), "'\"")
			got, ok := n.Attrs[key]
			return ok && got == val
		}
		_, ok := n.Attrs[attr]
		return ok
	default:
		return strings.EqualFold(n.Tag, sel)
	}
}

func hasClass(n *snapshot.Node, class string) bool {
	classAttr := n.Attrs["class"]
	for _, tok := range strings.Fields(classAttr) {
		if tok == class {
			return true
		}
	}
	return false
}

// normalizedClassKey returns the element's class string with every class in
// stateClasses removed, tokens sorted for a stable bucket key, used by
// switchable-group detection (spec.md §4.2).
func normalizedClassKey(n *snapshot.Node, stateClasses map[string]bool) string {
	toks := strings.Fields(n.Attrs["class"])
	kept := toks[:0]
	for _, t := range toks {
		if !stateClasses[t] {
			kept = append(kept, t)
		}
	}
	sort.Strings(kept)
	return strings.Join(kept, " ")
}
