package walk

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodingLucasLi/Clawome/config"
	"github.com/CodingLucasLi/Clawome/prepare"
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

func preparedFrom(tree *snapshot.Tree, cfg config.Config) *prepare.Prepared {
	return prepare.Run(tree, prepare.Signals{}, cfg, zerolog.Nop())
}

// TestWalk_GrayPresetValueBecomesPlaceholder covers spec.md §8 scenario 3:
// a legacy text input that emulates a placeholder with a preset value and
// a gray computed color must surface as [type] [placeholder=...], never
// value=....
func TestWalk_GrayPresetValueBecomesPlaceholder(t *testing.T) {
	nodes := []snapshot.Node{
		{Index: 0, ParentIndex: -1, Kind: snapshot.KindElement, Tag: "body"},
		{Index: 1, ParentIndex: 0, Kind: snapshot.KindElement, Tag: "input", Attrs: map[string]string{
			"type": "text", "value": "请输入",
		}, Styles: map[string]string{"color": "rgb(170, 170, 170)"}},
	}
	tree := buildTestTree(nodes, 0)
	cfg := config.Default()
	prep := preparedFrom(tree, cfg)

	result := Walk(prep, cfg, nil, zerolog.Nop())

	require.Len(t, result.Records, 1)
	rec := result.Records[0]
	assert.True(t, rec.HasAction(ActionType))
	assert.False(t, rec.HasAction(ActionClick))
	assert.Equal(t, "请输入", rec.State["placeholder"])
	_, hasValue := rec.State["value"]
	assert.False(t, hasValue)
}

func TestWalk_NonGrayValueStaysValue(t *testing.T) {
	nodes := []snapshot.Node{
		{Index: 0, ParentIndex: -1, Kind: snapshot.KindElement, Tag: "body"},
		{Index: 1, ParentIndex: 0, Kind: snapshot.KindElement, Tag: "input", Attrs: map[string]string{
			"type": "text", "value": "hello",
		}, Styles: map[string]string{"color": "rgb(17, 17, 17)"}},
	}
	tree := buildTestTree(nodes, 0)
	cfg := config.Default()
	prep := preparedFrom(tree, cfg)

	result := Walk(prep, cfg, nil, zerolog.Nop())

	require.Len(t, result.Records, 1)
	assert.Equal(t, "hello", result.Records[0].State["value"])
}

// TestWalk_TableRow covers spec.md §8 scenario 6: a <tr> with no
// interactive descendants collapses to one "tr: Name | 42" line.
func TestWalk_TableRow(t *testing.T) {
	nodes := []snapshot.Node{
		{Index: 0, ParentIndex: -1, Kind: snapshot.KindElement, Tag: "body"},
		{Index: 1, ParentIndex: 0, Kind: snapshot.KindElement, Tag: "table"},
		{Index: 2, ParentIndex: 1, Kind: snapshot.KindElement, Tag: "tr"},
		{Index: 3, ParentIndex: 2, Kind: snapshot.KindElement, Tag: "td"},
		{Index: 4, ParentIndex: 3, Kind: snapshot.KindText, Text: "Name"},
		{Index: 5, ParentIndex: 2, Kind: snapshot.KindElement, Tag: "td"},
		{Index: 6, ParentIndex: 5, Kind: snapshot.KindText, Text: "42"},
	}
	tree := buildTestTree(nodes, 0)
	cfg := config.Default()
	prep := preparedFrom(tree, cfg)

	result := Walk(prep, cfg, nil, zerolog.Nop())

	require.Len(t, result.Records, 2) // the <table> wrapper, then the collapsed row
	rec := result.Records[1]
	assert.Equal(t, "tr", rec.Tag)
	assert.Equal(t, "Name | 42", rec.Text)
}

func TestWalk_TableRow_RecursesIntoInteractiveCell(t *testing.T) {
	nodes := []snapshot.Node{
		{Index: 0, ParentIndex: -1, Kind: snapshot.KindElement, Tag: "body"},
		{Index: 1, ParentIndex: 0, Kind: snapshot.KindElement, Tag: "table"},
		{Index: 2, ParentIndex: 1, Kind: snapshot.KindElement, Tag: "tr"},
		{Index: 3, ParentIndex: 2, Kind: snapshot.KindElement, Tag: "td"},
		{Index: 4, ParentIndex: 3, Kind: snapshot.KindElement, Tag: "button", BackRef: 5},
		{Index: 5, ParentIndex: 4, Kind: snapshot.KindText, Text: "Delete"},
	}
	tree := buildTestTree(nodes, 0)
	cfg := config.Default()
	prep := preparedFrom(tree, cfg)

	result := Walk(prep, cfg, nil, zerolog.Nop())

	require.Len(t, result.Records, 3) // <table>, the row (blank cell placeholder), then the hoisted button
	assert.Equal(t, "tr", result.Records[1].Tag)
	assert.Equal(t, "button", result.Records[2].Tag)
	assert.True(t, result.Records[2].HasAction(ActionClick))
}

func TestWalk_SVGEmitsIconLeafWithoutDescending(t *testing.T) {
	nodes := []snapshot.Node{
		{Index: 0, ParentIndex: -1, Kind: snapshot.KindElement, Tag: "body"},
		{Index: 1, ParentIndex: 0, Kind: snapshot.KindElement, Tag: "svg"},
		{Index: 2, ParentIndex: 1, Kind: snapshot.KindElement, Tag: "use", Attrs: map[string]string{"href": "#close"}},
	}
	tree := buildTestTree(nodes, 0)
	cfg := config.Default()
	prep := preparedFrom(tree, cfg)

	result := Walk(prep, cfg, nil, zerolog.Nop())

	require.Len(t, result.Records, 1)
	assert.Equal(t, "svg", result.Records[0].Tag)
	assert.Equal(t, "[icon: close]", result.Records[0].Text)
}

func TestWalk_InlineTagWithNoActionsIsSkipped(t *testing.T) {
	nodes := []snapshot.Node{
		{Index: 0, ParentIndex: -1, Kind: snapshot.KindElement, Tag: "body"},
		{Index: 1, ParentIndex: 0, Kind: snapshot.KindElement, Tag: "p"},
		{Index: 2, ParentIndex: 1, Kind: snapshot.KindElement, Tag: "span"},
		{Index: 3, ParentIndex: 2, Kind: snapshot.KindText, Text: "hello"},
	}
	tree := buildTestTree(nodes, 0)
	cfg := config.Default()
	prep := preparedFrom(tree, cfg)

	result := Walk(prep, cfg, nil, zerolog.Nop())

	require.Len(t, result.Records, 1)
	assert.Equal(t, "p", result.Records[0].Tag)
	assert.Equal(t, "hello", result.Records[0].Text)
}

func TestWalk_MaxNodesTruncates(t *testing.T) {
	nodes := []snapshot.Node{
		{Index: 0, ParentIndex: -1, Kind: snapshot.KindElement, Tag: "body"},
	}
	for i := 1; i <= 5; i++ {
		nodes = append(nodes, snapshot.Node{Index: i, ParentIndex: 0, Kind: snapshot.KindElement, Tag: "div"})
	}
	tree := buildTestTree(nodes, 0)
	cfg := config.Default()
	cfg.MaxNodes = 2
	prep := preparedFrom(tree, cfg)

	result := Walk(prep, cfg, nil, zerolog.Nop())

	assert.True(t, result.Truncated)
	assert.Len(t, result.Records, 2)
}

func TestWalk_IsNewMarker(t *testing.T) {
	nodes := []snapshot.Node{
		{Index: 0, ParentIndex: -1, Kind: snapshot.KindElement, Tag: "body"},
		{Index: 1, ParentIndex: 0, Kind: snapshot.KindElement, Tag: "div", BackRef: 42},
	}
	tree := buildTestTree(nodes, 0)
	cfg := config.Default()
	prep := preparedFrom(tree, cfg)

	previous := map[snapshot.BackRef]bool{42: true}
	result := Walk(prep, cfg, previous, zerolog.Nop())
	require.Len(t, result.Records, 1)
	assert.False(t, result.Records[0].IsNew)

	resultNoHistory := Walk(prep, cfg, nil, zerolog.Nop())
	require.Len(t, resultNoHistory.Records, 1)
	assert.False(t, resultNoHistory.Records[0].IsNew)

	resultFresh := Walk(prep, cfg, map[snapshot.BackRef]bool{}, zerolog.Nop())
	require.Len(t, resultFresh.Records, 1)
	assert.True(t, resultFresh.Records[0].IsNew)
}
