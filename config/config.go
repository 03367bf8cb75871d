// Package config defines the configuration surface for the Clawome
// compression pipeline (spec.md §4.1): tag classification, attribute
// surfacing rules, icon/semantic heuristics, and the numeric limits that
// bound a single extraction.
package config

import "regexp"

// Config parameterizes every stage of the pipeline. A zero Config is not
// ready for use; start from Default and override individual fields.
type Config struct {
	// SkipTags are never emitted and never descended into.
	SkipTags map[string]bool

	// InlineTags are treated as inline text carriers rather than block
	// elements: merged into their parent's collected text unless they
	// carry their own actions, surfaced attrs, a Prepare-assigned icon, or
	// a block-level child.
	InlineTags map[string]bool

	// AttrRules lists, per lowercase tag name, the attributes surfaced in
	// that tag's rendered attrs string.
	AttrRules map[string][]string

	// GlobalAttrs are surfaced on every tag regardless of AttrRules.
	GlobalAttrs []string

	// StateAttrs are read into a node's State map when present.
	StateAttrs []string

	// TypeableInputTypes classifies <input type=...> values that produce
	// a "type" action (text, search, email, ...).
	TypeableInputTypes map[string]bool

	// ClickableInputTypes classifies <input type=...> values that produce
	// a "click" action (checkbox, radio, submit, button, ...).
	ClickableInputTypes map[string]bool

	// IconPrefixes are class-name prefixes ("icon-", "fa-", "mdi-", ...)
	// searched during icon classification.
	IconPrefixes []string

	// MaterialClasses match Material-icon-style class names whose text
	// content is itself the icon's semantic name (e.g. "search").
	MaterialClasses []*regexp.Regexp

	// SemanticKeywords are tokens searched for in ancestor class strings
	// when no direct icon name is found ("close", "menu", "search", ...).
	SemanticKeywords []string

	// CloneSelectors match carousel/duplicate-slide clones hidden at
	// Prepare time.
	CloneSelectors []string

	// StateClasses are class names stripped before using an element's
	// class string as a switchable-group bucket key ("active", "current",
	// "selected", "is-open", ...).
	StateClasses map[string]bool

	// MaxNodes bounds the number of records Walk will emit.
	MaxNodes int

	// MaxDepth bounds traversal depth.
	MaxDepth int

	// MaxTextLen is a per-node collected-text limit, settable through
	// CLAWOME_MAX_TEXT_LEN. No pipeline stage reads it: Walk does not cap
	// collected text, and only Render's per-mode truncation shortens it.
	MaxTextLen int

	// GrayTextMinRgb / GrayTextMaxDiff implement the placeholder-vs-value
	// heuristic: a typeable input's live value is reclassified as a
	// placeholder when its computed text color's R, G, B channels are all
	// above GrayTextMinRgb and pairwise within GrayTextMaxDiff of each
	// other.
	GrayTextMinRgb int
	GrayTextMaxDiff int

	// IconMaxSize bounds the width/height (px) an element may have and
	// still be classified as an icon.
	IconMaxSize int

	// ListTruncateThreshold is the minimum run length of homogeneous
	// siblings before Compress truncates the tail.
	ListTruncateThreshold int

	// ListTruncateKeep is the number of leading siblings kept ("N" in
	// spec.md §9's open question); the rest collapse into a single
	// "… (K more)" node.
	ListTruncateKeep int

	// SimplifyMaxPasses bounds Compress's simplify fixed-point loop.
	SimplifyMaxPasses int

	// PopupSummaryMax caps a collapsed popup/dialog subtree's summary text.
	PopupSummaryMax int

	// LiteTextMax / LiteTextHead implement lite-mode text truncation on
	// non-interactive nodes (spec.md §4.5).
	LiteTextMax  int
	LiteTextHead int

	// FullTextMax is the full-mode per-node text cap (spec.md §6, 120
	// chars).
	FullTextMax int

	// TableCellMax caps a single <td>/<th> cell's collected text before
	// joining with " | " (spec.md §4.3 step 3, 500 chars).
	TableCellMax int

	// AttrValueMax caps a single rendered attribute value (spec.md §6,
	// 80 chars).
	AttrValueMax int

	// EnableOcclusionFilter gates the paint-order occlusion heuristic
	// documented in SPEC_FULL.md §E. Disable for strict spec.md §3
	// conformance testing.
	EnableOcclusionFilter bool

	// EnableContainmentFilter gates the bounding-box containment
	// heuristic documented in SPEC_FULL.md §E.
	EnableContainmentFilter bool

	// ContainmentThreshold is the fraction of a small element's area that
	// must sit inside a larger interactive ancestor's box to be folded.
	ContainmentThreshold float64

	// OcclusionThreshold is the fraction of a target element's area that
	// must be covered by a higher paint-order sibling to be treated as
	// hidden.
	OcclusionThreshold float64
}

// Default returns the configuration used when a caller supplies none.
func Default() Config {
	return Config{
		SkipTags: setOf(
			"script", "style", "meta", "link", "head", "noscript",
			"template", "title", "base", "source", "track", "param",
			"object", "embed",
		),
		InlineTags: setOf(
			"span", "em", "b", "i", "strong", "small", "font", "u", "s",
			"mark", "abbr", "cite", "code", "sub", "sup", "time", "q",
			"var", "samp", "kbd", "data", "wbr", "bdi", "bdo",
		),
		AttrRules: map[string][]string{
			"input":    {"type", "name", "placeholder", "value", "maxlength"},
			"textarea": {"name", "placeholder", "maxlength"},
			"select":   {"name", "multiple"},
			"option":   {"value"},
			"a":        {"href"},
			"img":      {"src", "alt"},
			"form":     {"name", "action", "method"},
			"label":    {"for"},
			"button":   {"name", "type"},
			"iframe":   {"src", "title"},
			"td":       {"colspan", "rowspan"},
			"th":       {"colspan", "rowspan"},
		},
		GlobalAttrs: []string{"role", "aria-label", "id", "name"},
		StateAttrs: []string{
			"checked", "disabled", "readonly", "open", "aria-expanded",
			"aria-selected", "aria-checked", "aria-disabled",
			"aria-readonly", "aria-pressed", "required",
		},
		TypeableInputTypes: setOf(
			"text", "search", "email", "password", "tel", "url", "number",
			"date", "datetime-local", "month", "week", "time", "",
		),
		ClickableInputTypes: setOf(
			"checkbox", "radio", "submit", "button", "reset", "image",
			"file", "color", "range",
		),
		IconPrefixes:    []string{"icon", "fa", "fas", "far", "fab", "mdi", "glyphicon", "bi"},
		MaterialClasses: []*regexp.Regexp{regexp.MustCompile(`(?i)material-icons?`)},
		SemanticKeywords: []string{
			"close", "menu", "search", "cart", "user", "account", "home",
			"back", "next", "prev", "more", "settings", "share", "download",
			"delete", "edit", "add", "remove", "expand", "collapse",
			"chevron", "arrow", "star", "heart", "like",
		},
		CloneSelectors: []string{
			".slick-cloned", ".swiper-slide-duplicate", "[data-clone]",
			".carousel-clone",
		},
		StateClasses: setOf(
			"active", "current", "selected", "is-active", "is-open",
			"is-selected", "is-current", "open", "expanded", "on",
		),
		MaxNodes:                5000,
		MaxDepth:                64,
		MaxTextLen:              2000,
		GrayTextMinRgb:          150,
		GrayTextMaxDiff:         20,
		IconMaxSize:             32,
		ListTruncateThreshold:   10,
		ListTruncateKeep:        5,
		SimplifyMaxPasses:       10,
		PopupSummaryMax:         300,
		LiteTextMax:             200,
		LiteTextHead:            80,
		FullTextMax:             120,
		TableCellMax:            500,
		AttrValueMax:            80,
		EnableOcclusionFilter:   true,
		EnableContainmentFilter: true,
		ContainmentThreshold:    0.99,
		OcclusionThreshold:      0.9,
	}
}

func setOf(vals ...string) map[string]bool {
	m := make(map[string]bool, len(vals))
	for _, v := range vals {
		m[v] = true
	}
	return m
}
