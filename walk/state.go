package walk

import (
	"strconv"
	"strings"

	"github.com/CodingLucasLi/Clawome/config"
	"github.com/CodingLucasLi/Clawome/snapshot"
)

// classifyState implements spec.md §4.3's "State detection", including the
// switchable-group selected/hidden keys and the gray-preset-value
// placeholder heuristic.
func classifyState(n *snapshot.Node, groupActive, groupInactive bool, actions map[Action]bool, cfg config.Config) map[string]string {
	state := map[string]string{}

	for _, key := range cfg.StateAttrs {
		v, ok := n.Attrs[key]
		if !ok {
			continue
		}
		if v == "" {
			v = "true"
		}
		state[key] = v
	}

	switch n.Tag {
	case "input", "textarea", "select":
		if v, ok := n.Attrs["value"]; ok && v != "" {
			if actions[ActionType] && isGrayText(n, cfg) {
				state["placeholder"] = v
			} else {
				state["value"] = v
			}
		}
	}

	if groupActive {
		state["selected"] = "true"
	}
	if groupInactive {
		state["hidden"] = "true"
	}

	return state
}

// isGrayText implements the gray-preset-value-as-placeholder heuristic
// (spec.md §4.3): each of the computed text color's R/G/B channels is above
// GrayTextMinRgb and pairwise within GrayTextMaxDiff.
func isGrayText(n *snapshot.Node, cfg config.Config) bool {
	r, g, b, ok := parseRGB(n.Styles["color"])
	if !ok {
		return false
	}
	if r <= cfg.GrayTextMinRgb || g <= cfg.GrayTextMinRgb || b <= cfg.GrayTextMinRgb {
		return false
	}
	return absDiff(r, g) <= cfg.GrayTextMaxDiff &&
		absDiff(g, b) <= cfg.GrayTextMaxDiff &&
		absDiff(r, b) <= cfg.GrayTextMaxDiff
}

// parseRGB parses a CSS computed color string of the form
// "rgb(r, g, b)" or "rgba(r, g, b, a)".
func parseRGB(color string) (r, g, b int, ok bool) {
	color = strings.TrimSpace(color)
	open := strings.IndexByte(color, '(')
	close := strings.IndexByte(color, ')')
	if open < 0 || close < 0 || close <= open {
		return 0, 0, 0, false
	}
	parts := strings.Split(color[open+1:close], ",")
	if len(parts) < 3 {
		return 0, 0, 0, false
	}
	vals := make([]int, 3)
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return 0, 0, 0, false
		}
		vals[i] = n
	}
	return vals[0], vals[1], vals[2], true
}

func absDiff(a, b int) int {
	if a < b {
		return b - a
	}
	return a - b
}
