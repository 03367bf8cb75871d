// Package render implements spec.md §4.5/§6: turning a compressed tree's
// flattened, hierarchically-identified nodes into the textual grammar an
// agent reads, plus the parallel node map used to resolve those ids back
// to live elements.
package render

import (
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/CodingLucasLi/Clawome/compress"
	"github.com/CodingLucasLi/Clawome/config"
	"github.com/CodingLucasLi/Clawome/nodemap"
	"github.com/CodingLucasLi/Clawome/walk"
)

// Mode selects the per-node text cap: Full keeps the 120-char spec.md §6
// budget, Lite applies the shorter lite-mode head truncation.
type Mode int

const (
	Full Mode = iota
	Lite
)

// Result is Render's return value.
type Result struct {
	Text    string
	NodeMap nodemap.NodeMap
}

// Run renders flat — the preorder, hierarchically-identified output of
// compress.Run — into spec.md §4.5's textual grammar:
//
//	[hid] tag(attrs) [actions] [state]: text
//
// indented two spaces per hid component, plus the accompanying node map.
func Run(flat []compress.FlatNode, cfg config.Config, mode Mode) Result {
	var sb strings.Builder
	nm := make(nodemap.NodeMap, len(flat))

	for _, fn := range flat {
		n := fn.Node
		depth := strings.Count(fn.Hid, ".")
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(formatLine(fn.Hid, n, cfg, mode))
		sb.WriteByte('\n')

		nm[fn.Hid] = nodemap.Entry{Selector: n.Selector, XPath: n.XPath}
	}

	return Result{Text: sb.String(), NodeMap: nm}
}

func formatLine(hid string, n *compress.Node, cfg config.Config, mode Mode) string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(hid)
	sb.WriteByte(']')
	sb.WriteByte(' ')
	sb.WriteString(n.Tag)

	if n.Attrs != "" {
		sb.WriteByte('(')
		sb.WriteString(truncateAttrs(html.UnescapeString(n.Attrs), cfg.AttrValueMax))
		sb.WriteByte(')')
	}
	if actions := formatActions(n.Actions); actions != "" {
		sb.WriteByte(' ')
		sb.WriteString(actions)
	}
	if state := formatState(n.State); state != "" {
		sb.WriteByte(' ')
		sb.WriteString(state)
	}
	if n.IsNew {
		sb.WriteString(" [new]")
	}

	text := renderText(n, cfg, mode)
	if text != "" {
		sb.WriteString(": ")
		sb.WriteString(text)
	}
	if label := n.Label; label != "" && text == "" {
		sb.WriteString(": ")
		sb.WriteString(html.UnescapeString(label))
	}
	return sb.String()
}

// formatActions implements spec.md:126/155's literal grammar: one
// space-separated `[marker]` bracket per action, not a combined list.
func formatActions(actions map[walk.Action]bool) string {
	if len(actions) == 0 {
		return ""
	}
	names := make([]string, 0, len(actions))
	for a := range actions {
		names = append(names, string(a))
	}
	sort.Strings(names)
	return "[" + strings.Join(names, "] [") + "]"
}

// formatState mirrors formatActions: one `[key]`/`[key=value]` bracket per
// state entry.
func formatState(state map[string]string) string {
	if len(state) == 0 {
		return ""
	}
	keys := make([]string, 0, len(state))
	for k := range state {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if v := state[k]; v != "" {
			parts = append(parts, k+"="+v)
		} else {
			parts = append(parts, k)
		}
	}
	return "[" + strings.Join(parts, "] [") + "]"
}

// renderText applies spec.md §6's per-mode caps. Interactive nodes (those
// carrying an action) are never truncated — an agent must always see their
// full label or value to act on them correctly.
func renderText(n *compress.Node, cfg config.Config, mode Mode) string {
	text := html.UnescapeString(n.Text)
	if n.HasActions() {
		return text
	}
	switch mode {
	case Lite:
		if len(text) > cfg.LiteTextMax {
			text = text[:cfg.LiteTextHead] + "…"
		}
	default:
		if len(text) > cfg.FullTextMax {
			text = text[:cfg.FullTextMax] + "…"
		}
	}
	return text
}

func truncateAttrs(attrs string, max int) string {
	if max <= 0 || len(attrs) <= max {
		return attrs
	}
	return attrs[:max] + "…"
}
