package walk

import (
	"fmt"
	"strings"

	"github.com/CodingLucasLi/Clawome/config"
	"github.com/CodingLucasLi/Clawome/snapshot"
)

// formatAttrs renders a node's surfaced attributes into the pre-formatted
// string spec.md §3/§6 expects on every Record: globalAttrs plus the
// tag's attrRules, href/src URL special-casing, and the 80-char value cap.
func formatAttrs(n *snapshot.Node, cfg config.Config) string {
	keys := orderedAttrKeys(n.Tag, cfg)
	parts := make([]string, 0, len(keys))

	for _, key := range keys {
		val, present := n.Attrs[key]
		if !present {
			continue
		}

		if key == "href" || (key == "src" && !strings.HasPrefix(val, "data:")) {
			if key == "src" {
				if fname, ok := shortFilename(val, cfg.AttrValueMax); ok {
					parts = append(parts, fmt.Sprintf("src=%q", fname))
					continue
				}
			}
			parts = append(parts, key)
			continue
		}

		if val == "" {
			parts = append(parts, key)
			continue
		}

		parts = append(parts, fmt.Sprintf("%s=%q", key, truncateValue(val, cfg.AttrValueMax)))
	}

	return strings.Join(parts, ", ")
}

// orderedAttrKeys returns globalAttrs followed by tag's attrRules, with
// duplicates removed (first occurrence wins).
func orderedAttrKeys(tag string, cfg config.Config) []string {
	seen := make(map[string]bool, len(cfg.GlobalAttrs)+4)
	out := make([]string, 0, len(cfg.GlobalAttrs)+4)
	for _, k := range cfg.GlobalAttrs {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	for _, k := range cfg.AttrRules[tag] {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

func truncateValue(val string, max int) string {
	if len(val) <= max {
		return val
	}
	return val[:max] + "…"
}

// shortFilename extracts the final path segment (query string stripped) of
// a URL and reports whether it is short enough (≤max) to show inline
// instead of the bare "src" flag.
func shortFilename(rawURL string, max int) (string, bool) {
	u := rawURL
	if q := strings.IndexByte(u, '?'); q >= 0 {
		u = u[:q]
	}
	if idx := strings.LastIndexByte(u, '/'); idx >= 0 {
		u = u[idx+1:]
	}
	if u == "" || len(u) > max {
		return "", false
	}
	return u, true
}
