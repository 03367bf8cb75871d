package prepare

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodingLucasLi/Clawome/config"
	"github.com/CodingLucasLi/Clawome/snapshot"
)

// buildTestTree assembles a snapshot.Tree from nodes whose ParentIndex is
// already set, populating Children the same way snapshot.Parse does.
func buildTestTree(nodes []snapshot.Node, bodyIndex int) *snapshot.Tree {
	t := &snapshot.Tree{Nodes: nodes, BodyIndex: bodyIndex}
	for i := range t.Nodes {
		p := t.Nodes[i].ParentIndex
		if p < 0 || p >= len(t.Nodes) {
			continue
		}
		t.Nodes[p].Children = append(t.Nodes[p].Children, i)
	}
	return t
}

// TestRun_SwitchableGroup covers spec.md §8 scenario 4: a <ul> with three
// <li> siblings, two display:none and one visible, all sharing a class
// once the "active" state token is stripped.
func TestRun_SwitchableGroup(t *testing.T) {
	nodes := []snapshot.Node{
		{Index: 0, ParentIndex: -1, Kind: snapshot.KindElement, Tag: "body"},
		{Index: 1, ParentIndex: 0, Kind: snapshot.KindElement, Tag: "ul"},
		{Index: 2, ParentIndex: 1, Kind: snapshot.KindElement, Tag: "li", Attrs: map[string]string{"class": "tab-item active"}},
		{Index: 3, ParentIndex: 1, Kind: snapshot.KindElement, Tag: "li", Attrs: map[string]string{"class": "tab-item"}, Styles: map[string]string{"display": "none"}},
		{Index: 4, ParentIndex: 1, Kind: snapshot.KindElement, Tag: "li", Attrs: map[string]string{"class": "tab-item"}, Styles: map[string]string{"display": "none"}},
	}
	tree := buildTestTree(nodes, 0)
	cfg := config.Default()

	p := Run(tree, Signals{}, cfg, zerolog.Nop())

	assert.False(t, p.Hidden[2], "active member stays visible")
	assert.True(t, p.GroupActive[2])
	assert.True(t, p.Hidden[3], "inactive member stays hidden")
	assert.True(t, p.GroupInactive[3])
	assert.True(t, p.Hidden[4])
	assert.True(t, p.GroupInactive[4])
}

func TestRun_SwitchableGroup_AtMostOneActivePerBucket(t *testing.T) {
	nodes := []snapshot.Node{
		{Index: 0, ParentIndex: -1, Kind: snapshot.KindElement, Tag: "body"},
		{Index: 1, ParentIndex: 0, Kind: snapshot.KindElement, Tag: "div"},
		{Index: 2, ParentIndex: 1, Kind: snapshot.KindElement, Tag: "div", Attrs: map[string]string{"class": "panel"}},
		{Index: 3, ParentIndex: 1, Kind: snapshot.KindElement, Tag: "div", Attrs: map[string]string{"class": "panel"}, Styles: map[string]string{"display": "none"}},
	}
	tree := buildTestTree(nodes, 0)
	p := Run(tree, Signals{}, config.Default(), zerolog.Nop())

	activeCount := 0
	for i := range tree.Nodes {
		if p.GroupActive[i] {
			activeCount++
		}
	}
	assert.LessOrEqual(t, activeCount, 1)
	assert.False(t, p.Hidden[2])
}

func TestClassifyIcons_IconPrefixClass(t *testing.T) {
	nodes := []snapshot.Node{
		{Index: 0, ParentIndex: -1, Kind: snapshot.KindElement, Tag: "body"},
		{Index: 1, ParentIndex: 0, Kind: snapshot.KindElement, Tag: "span", Attrs: map[string]string{"class": "fa-search"}},
	}
	tree := buildTestTree(nodes, 0)
	cfg := config.Default()

	p := Run(tree, Signals{}, cfg, zerolog.Nop())

	require.Equal(t, "search", p.Icon[1])
}

func TestClassifyIcons_SkipsWhenOwnTextPresent(t *testing.T) {
	nodes := []snapshot.Node{
		{Index: 0, ParentIndex: -1, Kind: snapshot.KindElement, Tag: "body"},
		{Index: 1, ParentIndex: 0, Kind: snapshot.KindElement, Tag: "span", Attrs: map[string]string{"class": "fa-search"}},
		{Index: 2, ParentIndex: 1, Kind: snapshot.KindText, Text: "Search"},
	}
	tree := buildTestTree(nodes, 0)
	p := Run(tree, Signals{}, config.Default(), zerolog.Nop())

	assert.Empty(t, p.Icon[1])
}

func TestMarkCloneHidden(t *testing.T) {
	nodes := []snapshot.Node{
		{Index: 0, ParentIndex: -1, Kind: snapshot.KindElement, Tag: "body"},
		{Index: 1, ParentIndex: 0, Kind: snapshot.KindElement, Tag: "div", Attrs: map[string]string{"class": "slick-cloned"}},
	}
	tree := buildTestTree(nodes, 0)
	p := Run(tree, Signals{}, config.Default(), zerolog.Nop())

	assert.True(t, p.Hidden[1])
}

func TestMarkClickable_Propagation(t *testing.T) {
	nodes := []snapshot.Node{
		{Index: 0, ParentIndex: -1, Kind: snapshot.KindElement, Tag: "body", BackRef: 1},
		{Index: 1, ParentIndex: 0, Kind: snapshot.KindElement, Tag: "div", BackRef: 2},
		{Index: 2, ParentIndex: 1, Kind: snapshot.KindElement, Tag: "div", BackRef: 3},
		{Index: 3, ParentIndex: 2, Kind: snapshot.KindText, Text: "Row one"},
		{Index: 4, ParentIndex: 1, Kind: snapshot.KindElement, Tag: "div", BackRef: 4},
		{Index: 5, ParentIndex: 4, Kind: snapshot.KindText, Text: "Row two"},
	}
	tree := buildTestTree(nodes, 0)
	sig := Signals{
		ClickListenerTargets: map[snapshot.BackRef]bool{2: true}, // the delegated-to container, not its rows
		DelegatedTargets:     map[snapshot.BackRef]bool{},
		HoverPointerTargets:  map[snapshot.BackRef]bool{},
	}
	p := Run(tree, sig, config.Default(), zerolog.Nop())

	assert.True(t, p.Clickable[1], "the directly-marked container")
	assert.True(t, p.Clickable[2], "row one inherits the parent's clickable flag")
	assert.True(t, p.Clickable[4], "row two inherits the parent's clickable flag")
}
