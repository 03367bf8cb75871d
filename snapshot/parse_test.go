package snapshot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalSnapshot builds a raw DOMSnapshot.captureSnapshot-shaped payload
// for <body><button id="go">Go</button></body>, with the button laid out
// and styled, to exercise Parse end to end against a realistic response
// shape (grounded on dom/enhanced.go's parseSnapshotResponse in the
// teacher repo).
func minimalSnapshot(t *testing.T) []byte {
	t.Helper()
	raw := `{
		"documents": [{
			"documentURL": "https://example.com/",
			"nodes": {
				"parentIndex":   [-1, 0, 1],
				"nodeType":      [1, 1, 3],
				"nodeName":      [0, 1, -1],
				"nodeValue":     [-1, -1, 2],
				"backendNodeId": [10, 11, 12],
				"attributes":    [[], [3, 4], []],
				"textValue":     [-1, -1, -1],
				"inputValue":    [-1, -1, -1]
			},
			"layout": {
				"nodeIndex": [1],
				"bounds": [[8.0, 8.0, 40.0, 20.0]],
				"paintOrders": [2],
				"styles": [[5, 6, 7, 8, 9, 10, 11]]
			},
			"strings": [
				"body", "button", "Go", "id", "go",
				"block", "visible", "1", "pointer", "auto", "visible", "rgb(17, 17, 17)"
			]
		}]
	}`
	return []byte(raw)
}

func TestParse_ElementsAndTextAndLayout(t *testing.T) {
	tree, err := Parse(minimalSnapshot(t))
	require.NoError(t, err)

	require.Equal(t, 0, tree.BodyIndex)
	require.Len(t, tree.Nodes, 3)

	body := tree.Nodes[0]
	assert.Equal(t, "body", body.Tag)
	assert.Equal(t, KindElement, body.Kind)
	assert.Equal(t, []int{1}, body.Children)

	button := tree.Nodes[1]
	assert.Equal(t, "button", button.Tag)
	assert.Equal(t, "go", button.Attrs["id"])
	assert.Equal(t, BackRef(11), button.BackRef)
	assert.True(t, button.HasBounds)
	assert.Equal(t, Rect{X: 8, Y: 8, W: 40, H: 20}, button.Bounds)
	assert.Equal(t, 2, button.PaintOrder)
	assert.Equal(t, "block", button.Styles["display"])
	assert.Equal(t, "rgb(17, 17, 17)", button.Styles["color"])

	text := tree.Nodes[2]
	assert.Equal(t, KindText, text.Kind)
	assert.Equal(t, "Go", text.Text)
	assert.Equal(t, 1, text.ParentIndex)
}

func TestParse_NoBodyIsError(t *testing.T) {
	raw := `{"documents": [{"nodes": {"nodeType": [1], "nodeName": [0]}, "strings": ["div"]}]}`
	_, err := Parse([]byte(raw))
	assert.Error(t, err)
}

func TestParse_NoDocumentsIsError(t *testing.T) {
	_, err := Parse([]byte(`{"documents": []}`))
	assert.Error(t, err)
}

func TestParse_MalformedJSONIsError(t *testing.T) {
	_, err := Parse([]byte(`not json`))
	assert.Error(t, err)
}

func TestRect_Empty(t *testing.T) {
	assert.True(t, Rect{W: 0, H: 10}.Empty())
	assert.True(t, Rect{W: 10, H: 0}.Empty())
	assert.False(t, Rect{W: 10, H: 10}.Empty())
}

func TestTree_ByBackRef(t *testing.T) {
	tree, err := Parse(minimalSnapshot(t))
	require.NoError(t, err)
	assert.Equal(t, 1, tree.ByBackRef(11))
	assert.Equal(t, -1, tree.ByBackRef(999))
}

func TestMinimalSnapshot_StringsTableHoldsAttrValue(t *testing.T) {
	var probe struct {
		Documents []struct {
			Strings []string `json:"strings"`
		} `json:"documents"`
	}
	require.NoError(t, json.Unmarshal(minimalSnapshot(t), &probe))
	assert.Contains(t, probe.Documents[0].Strings, "go")
}
