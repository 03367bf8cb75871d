package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodingLucasLi/Clawome/config"
	"github.com/CodingLucasLi/Clawome/walk"
)

func TestBuildTree_DepthReconstruction(t *testing.T) {
	records := []walk.Record{
		{Idx: 1, Depth: 0, Tag: "div", Text: "a"},
		{Idx: 2, Depth: 1, Tag: "span", Text: "b"},
		{Idx: 3, Depth: 1, Tag: "span", Text: "c"},
		{Idx: 4, Depth: 0, Tag: "div", Text: "d"},
	}
	root := buildTree(records)
	require.Len(t, root.Children, 2)
	assert.Len(t, root.Children[0].Children, 2)
	assert.Equal(t, "b", root.Children[0].Children[0].Text)
	assert.Equal(t, "c", root.Children[0].Children[1].Text)
	assert.Empty(t, root.Children[1].Children)
}

func TestCollapseWrapper_UninformativeSingleChild(t *testing.T) {
	child := &Node{Tag: "span", Text: "hello"}
	parent := &Node{Tag: "div", Children: []*Node{child}}
	root := &Node{Children: []*Node{parent}}

	simplify(root, 5)

	require.Len(t, root.Children, 1)
	assert.Equal(t, "span", root.Children[0].Tag)
	assert.Equal(t, "hello", root.Children[0].Text)
}

func TestCollapseWrapper_PreservesActionsNode(t *testing.T) {
	child := &Node{Tag: "span", Text: "ok"}
	parent := &Node{
		Tag:      "button",
		Actions:  map[walk.Action]bool{walk.ActionClick: true},
		Children: []*Node{child},
	}
	root := &Node{Children: []*Node{parent}}

	simplify(root, 5)

	require.Len(t, root.Children, 1)
	assert.Equal(t, "button", root.Children[0].Tag)
	assert.True(t, root.Children[0].HasActions())
}

func TestDedupeText_DropsDuplicateParentLine(t *testing.T) {
	child := &Node{Tag: "span", Text: "Submit"}
	parent := &Node{Tag: "button", Text: "Submit", Attrs: `type="submit"`, Children: []*Node{child}}
	root := &Node{Children: []*Node{parent}}

	simplify(root, 5)

	require.Len(t, root.Children, 1)
	survivor := root.Children[0]
	assert.Equal(t, "span", survivor.Tag)
	assert.Equal(t, `type="submit"`, survivor.Attrs)
}

func TestMergeInlineRuns(t *testing.T) {
	node := &Node{Children: []*Node{
		{Tag: "span", Text: "Hello"},
		{Tag: "b", Text: "World"},
		{Tag: "span", Text: "!"},
	}}
	changed := mergeInlineRuns(node)
	require.True(t, changed)
	require.Len(t, node.Children, 1)
	assert.Equal(t, "Hello World !", node.Children[0].Text)
}

func TestMergeInlineRuns_SkipsActionableSiblings(t *testing.T) {
	node := &Node{Children: []*Node{
		{Tag: "span", Text: "Hello"},
		{Tag: "a", Text: "click me", Actions: map[walk.Action]bool{walk.ActionClick: true}},
		{Tag: "span", Text: "World"},
	}}
	mergeInlineRuns(node)
	require.Len(t, node.Children, 3)
}

func TestCollapsePopups_HoistsTopInteractive(t *testing.T) {
	okBtn := &Node{Tag: "button", Text: "OK", Actions: map[walk.Action]bool{walk.ActionClick: true}}
	wrapper := &Node{Tag: "div", Children: []*Node{
		{Tag: "p", Text: "Are you sure?"},
		{Tag: "div", Children: []*Node{okBtn}},
	}}
	dialog := &Node{Tag: "dialog", Children: []*Node{wrapper}}
	root := &Node{Children: []*Node{dialog}}

	collapsePopups(root, config.Default())

	require.Len(t, root.Children, 1)
	summary := root.Children[0]
	assert.Equal(t, "dialog", summary.Tag)
	assert.Contains(t, summary.Text, "Are you sure?")
	require.Len(t, summary.Children, 1)
	assert.Equal(t, okBtn, summary.Children[0])
	assert.Equal(t, summary, summary.Children[0].Parent)
}

func TestTruncateLongLists(t *testing.T) {
	cfg := config.Default()
	cfg.ListTruncateThreshold = 4
	cfg.ListTruncateKeep = 2
	var kids []*Node
	for i := 0; i < 6; i++ {
		kids = append(kids, &Node{Tag: "li", Text: "item"})
	}
	root := &Node{Children: kids}

	truncateLongLists(root, cfg)

	require.Len(t, root.Children, 3)
	assert.Equal(t, "… (4 more)", root.Children[2].Text)
}

func TestTruncateLongLists_ExemptsHeterogeneousLabels(t *testing.T) {
	cfg := config.Default()
	cfg.ListTruncateThreshold = 4
	cfg.ListTruncateKeep = 2
	labels := []string{"Home", "Products", "Pricing", "Docs", "Blog", "Contact"}
	var kids []*Node
	for _, l := range labels {
		kids = append(kids, &Node{Tag: "li", Label: l})
	}
	root := &Node{Children: kids}

	truncateLongLists(root, cfg)

	require.Len(t, root.Children, len(labels), "a same-tag run of differently-labeled nav entries is not truncated")
}

func TestPruneEmptyLeaves(t *testing.T) {
	root := &Node{Children: []*Node{
		{Tag: "div", Children: []*Node{
			{Tag: "span"},
		}},
		{Tag: "span", Text: "kept"},
	}}
	pruneEmptyLeaves(root)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "kept", root.Children[0].Text)
}

func TestFlatten_AssignsHierarchicalIds(t *testing.T) {
	root := &Node{Children: []*Node{
		{Tag: "div", Children: []*Node{
			{Tag: "span", Text: "a"},
			{Tag: "span", Text: "b"},
		}},
		{Tag: "div", Text: "c"},
	}}
	flat := flatten(root)
	require.Len(t, flat, 4)
	assert.Equal(t, "1", flat[0].Hid)
	assert.Equal(t, "1.1", flat[1].Hid)
	assert.Equal(t, "1.2", flat[2].Hid)
	assert.Equal(t, "2", flat[3].Hid)
}

func TestRun_EndToEnd(t *testing.T) {
	records := []walk.Record{
		{Idx: 1, Depth: 0, Tag: "div"},
		{Idx: 2, Depth: 1, Tag: "span", Text: "hi"},
	}
	result := Run(records, config.Default())
	require.NotEmpty(t, result.Flat)
	assert.Equal(t, "span", result.Flat[0].Node.Tag)
}
