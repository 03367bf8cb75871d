// Package walk implements spec.md §4.3's Walk stage: a depth-first,
// left-to-right traversal of a prepare.Prepared tree that produces the flat
// ordered sequence of walk.Record node records described in spec.md §3.
package walk

import "github.com/CodingLucasLi/Clawome/snapshot"

// Action is one of the three action kinds spec.md recognizes.
type Action string

const (
	ActionClick  Action = "click"
	ActionType   Action = "type"
	ActionSelect Action = "select"
)

// Record is one emitted node, in emission order (spec.md §3's "Walker node
// record").
type Record struct {
	Idx      int
	Depth    int
	Tag      string
	Attrs    string // pre-formatted, comma-separated key/key="value" tokens
	Text     string
	Label    string
	Actions  map[Action]bool
	State    map[string]string
	BackRef  snapshot.BackRef
	Rect     snapshot.Rect
	Selector string
	XPath    string
	Inlined  bool

	// IsNew is the additive marker documented in SPEC_FULL.md §E; zero
	// value (false) whenever Walk was not given a previous back-reference
	// set.
	IsNew bool
}

// HasAction reports whether a is present in the record's action set.
func (r *Record) HasAction(a Action) bool {
	return r.Actions != nil && r.Actions[a]
}

// HasActions reports whether the record carries any action at all. Compress
// makes the same check on its tree nodes (compress.Node.HasActions) to decide
// whether a node may ever be collapsed away.
func (r *Record) HasActions() bool {
	return len(r.Actions) > 0
}
