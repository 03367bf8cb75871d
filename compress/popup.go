package compress

import (
	"strings"

	"github.com/CodingLucasLi/Clawome/config"
)

// dialogTags and dialogKeywords detect a popup/dialog/overlay subtree root:
// either a native <dialog>, an explicit dialog/alertdialog role, or one of
// the common modal-widget keywords appearing anywhere in the node's rendered
// attrs string (role, aria-label, id, ...). A Node carries no class
// attribute, so class names themselves are not searched.
var dialogTags = map[string]bool{"dialog": true}

var dialogRoles = map[string]bool{"dialog": true, "alertdialog": true}

var dialogKeywords = []string{"modal", "popup", "dialog", "overlay", "lightbox"}

// collapsePopups implements spec.md §4.4 step 3: a detected popup/dialog
// subtree is replaced by a single summary node carrying a capped
// concatenation of the subtree's visible text, with its top-level
// interactive descendants hoisted up as direct children of the summary so
// they remain reachable and actionable.
func collapsePopups(node *Node, cfg config.Config) {
	for i, child := range node.Children {
		if isDialogRoot(child) {
			node.Children[i] = foldIntoSummary(child, cfg)
			node.Children[i].Parent = node
			continue
		}
		collapsePopups(child, cfg)
	}
}

func isDialogRoot(n *Node) bool {
	if dialogTags[n.Tag] {
		return true
	}
	attrs := strings.ToLower(n.Attrs)
	for _, role := range []string{"dialog", "alertdialog"} {
		if dialogRoles[role] && strings.Contains(attrs, `role="`+role+`"`) {
			return true
		}
	}
	for _, kw := range dialogKeywords {
		if strings.Contains(attrs, kw) {
			return true
		}
	}
	return false
}

func foldIntoSummary(n *Node, cfg config.Config) *Node {
	summary := &Node{
		Tag:      n.Tag,
		Attrs:    n.Attrs,
		Label:    n.Label,
		Actions:  n.Actions,
		State:    n.State,
		Rect:     n.Rect,
		Selector: n.Selector,
		XPath:    n.XPath,
		IsNew:    n.IsNew,
	}
	summary.Text = collapseSummaryText(n, cfg.PopupSummaryMax)
	summary.Children = hoistInteractive(n)
	for _, c := range summary.Children {
		c.Parent = summary
	}
	return summary
}

func collapseSummaryText(n *Node, max int) string {
	var parts []string
	collectAllText(n, &parts)
	text := strings.TrimSpace(strings.Join(parts, " "))
	if max > 0 && len(text) > max {
		text = text[:max] + "…"
	}
	return text
}

func collectAllText(n *Node, out *[]string) {
	if n.Text != "" {
		*out = append(*out, n.Text)
	}
	for _, c := range n.Children {
		collectAllText(c, out)
	}
}

// hoistInteractive finds the top-most interactive descendants of n: a DFS
// that stops descending into a branch as soon as it hoists one, so an
// interactive element's own children stay nested under it rather than
// being hoisted a second time.
func hoistInteractive(n *Node) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		for _, c := range cur.Children {
			if c.HasActions() {
				out = append(out, c)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return out
}
