package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodingLucasLi/Clawome/compress"
	"github.com/CodingLucasLi/Clawome/config"
	"github.com/CodingLucasLi/Clawome/walk"
)

func TestRun_BasicGrammar(t *testing.T) {
	flat := []compress.FlatNode{
		{Hid: "1", Node: &compress.Node{
			Tag:      "button",
			Attrs:    `type="submit"`,
			Text:     "Submit",
			Actions:  map[walk.Action]bool{walk.ActionClick: true},
			Selector: "backend-node:42",
		}},
	}
	result := Run(flat, config.Default(), Full)
	assert.Contains(t, result.Text, `[1] button(type="submit") [click]: Submit`)
	require.Contains(t, result.NodeMap, "1")
	assert.Equal(t, "backend-node:42", result.NodeMap["1"].Selector)
}

func TestRun_IndentsByHidDepth(t *testing.T) {
	flat := []compress.FlatNode{
		{Hid: "1", Node: &compress.Node{Tag: "div"}},
		{Hid: "1.1", Node: &compress.Node{Tag: "span", Text: "child"}},
	}
	result := Run(flat, config.Default(), Full)
	lines := strings.Split(strings.TrimRight(result.Text, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.False(t, strings.HasPrefix(lines[0], " "))
	assert.True(t, strings.HasPrefix(lines[1], "  "))
}

func TestRenderText_NeverTruncatesInteractiveNode(t *testing.T) {
	cfg := config.Default()
	cfg.FullTextMax = 5
	n := &compress.Node{
		Tag:     "button",
		Text:    "a very long label that exceeds the cap",
		Actions: map[walk.Action]bool{walk.ActionClick: true},
	}
	assert.Equal(t, n.Text, renderText(n, cfg, Full))
}

func TestRenderText_TruncatesNonInteractiveFullMode(t *testing.T) {
	cfg := config.Default()
	cfg.FullTextMax = 5
	n := &compress.Node{Tag: "p", Text: "this text is too long"}
	assert.Equal(t, "this …", renderText(n, cfg, Full))
}

func TestFormatActions_SortedAndBracketed(t *testing.T) {
	actions := map[walk.Action]bool{walk.ActionType: true, walk.ActionClick: true}
	assert.Equal(t, "[click] [type]", formatActions(actions))
}

func TestFormatState_KeyValueAndBareTokens(t *testing.T) {
	state := map[string]string{"checked": "", "aria-expanded": "true"}
	assert.Equal(t, "[aria-expanded=true] [checked]", formatState(state))
}
