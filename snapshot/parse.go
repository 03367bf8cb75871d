package snapshot

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RequestedStyles is the computedStyles list callers must pass to
// DOMSnapshot.captureSnapshot; Parse assumes this exact order when reading
// the per-node Styles slice back out of the response (mirrors
// dom/enhanced.go's hard-coded style-index comments in the teacher repo).
// "color" is requested in addition to the teacher's list so walk's
// gray-placeholder heuristic (spec.md §4.3) has computed text color to
// read.
var RequestedStyles = []string{"display", "visibility", "opacity", "cursor", "pointer-events", "overflow", "color"}

// domSnapshotResponse mirrors the subset of DOMSnapshot.captureSnapshot's
// response shape this package consumes, grounded on dom/enhanced.go's
// parseSnapshotResponse in the teacher repo.
type domSnapshotResponse struct {
	Documents []struct {
		DocumentURL string `json:"documentURL"`
		Nodes       struct {
			ParentIndex   []int   `json:"parentIndex"`
			NodeType      []int   `json:"nodeType"`
			NodeName      []int   `json:"nodeName"`
			NodeValue     []int   `json:"nodeValue"`
			BackendNodeID []int   `json:"backendNodeId"`
			Attributes    [][]int `json:"attributes"`
			TextValue     []int   `json:"textValue"`
			InputValue    []int   `json:"inputValue"`
		} `json:"nodes"`
		Layout struct {
			NodeIndex   []int       `json:"nodeIndex"`
			Bounds      [][]float64 `json:"bounds"`
			PaintOrders []int       `json:"paintOrders"`
			Styles      [][]int     `json:"styles"`
		} `json:"layout"`
		Strings []string `json:"strings"`
	} `json:"documents"`
}

// nodeTypeElement / nodeTypeText are the DOM NodeType constants used by the
// snapshot's NodeType array.
const (
	nodeTypeElement = 1
	nodeTypeText    = 3
)

// Parse decodes a raw DOMSnapshot.captureSnapshot payload into a Tree. It
// tolerates a missing or empty document list by returning an error, per
// spec.md §7's pipeline-internal failure kind: the caller should treat a
// Parse error as fatal to the whole extraction, not a per-element
// tolerated failure.
func Parse(raw []byte) (*Tree, error) {
	var resp domSnapshotResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("snapshot: decode captureSnapshot response: %w", err)
	}
	if len(resp.Documents) == 0 {
		return nil, fmt.Errorf("snapshot: captureSnapshot returned no documents")
	}

	doc := resp.Documents[0]
	strs := doc.Strings
	str := func(i int) string {
		if i < 0 || i >= len(strs) {
			return ""
		}
		return strs[i]
	}

	layoutByNode := make(map[int]int, len(doc.Layout.NodeIndex))
	for li, ni := range doc.Layout.NodeIndex {
		layoutByNode[ni] = li
	}

	n := len(doc.Nodes.NodeType)
	tree := &Tree{Nodes: make([]Node, n), DocumentURL: doc.DocumentURL, BodyIndex: -1}

	for i := 0; i < n; i++ {
		node := Node{
			Index:       i,
			ParentIndex: -1,
		}
		if i < len(doc.Nodes.ParentIndex) {
			node.ParentIndex = doc.Nodes.ParentIndex[i]
		}
		if i < len(doc.Nodes.BackendNodeID) {
			node.BackRef = BackRef(doc.Nodes.BackendNodeID[i])
		}

		switch {
		case i < len(doc.Nodes.NodeType) && doc.Nodes.NodeType[i] == nodeTypeElement:
			node.Kind = KindElement
			if i < len(doc.Nodes.NodeName) {
				node.Tag = strings.ToLower(str(doc.Nodes.NodeName[i]))
			}
			node.Attrs = parseAttrs(doc.Nodes.Attributes, i, str)
			if node.Tag == "body" {
				tree.BodyIndex = i
			}
		case i < len(doc.Nodes.NodeType) && doc.Nodes.NodeType[i] == nodeTypeText:
			node.Kind = KindText
			if i < len(doc.Nodes.NodeValue) {
				node.Text = str(doc.Nodes.NodeValue[i])
			}
		default:
			node.Kind = KindElement // treat unknown node types (comments, doctype) as opaque elements with no tag
		}

		if i < len(doc.Nodes.TextValue) && doc.Nodes.TextValue[i] >= 0 {
			if v := str(doc.Nodes.TextValue[i]); v != "" {
				node.Attrs = setAttr(node.Attrs, "value", v)
			}
		}
		if i < len(doc.Nodes.InputValue) && doc.Nodes.InputValue[i] >= 0 {
			if v := str(doc.Nodes.InputValue[i]); v != "" {
				node.Attrs = setAttr(node.Attrs, "value", v)
			}
		}

		if li, ok := layoutByNode[i]; ok {
			if li < len(doc.Layout.Bounds) && len(doc.Layout.Bounds[li]) >= 4 {
				b := doc.Layout.Bounds[li]
				node.Bounds = Rect{X: b[0], Y: b[1], W: b[2], H: b[3]}
				node.HasBounds = true
			}
			if li < len(doc.Layout.PaintOrders) {
				node.PaintOrder = doc.Layout.PaintOrders[li]
			}
			if li < len(doc.Layout.Styles) {
				node.Styles = make(map[string]string, len(RequestedStyles))
				styleIdx := doc.Layout.Styles[li]
				for si, name := range RequestedStyles {
					if si < len(styleIdx) {
						node.Styles[name] = str(styleIdx[si])
					}
				}
			}
		}

		tree.Nodes[i] = node
	}

	if tree.BodyIndex < 0 {
		return nil, fmt.Errorf("snapshot: no <body> element in captured document")
	}

	tree.build()
	return tree, nil
}

func parseAttrs(attrs [][]int, nodeIdx int, str func(int) string) map[string]string {
	if nodeIdx >= len(attrs) {
		return nil
	}
	flat := attrs[nodeIdx]
	if len(flat) == 0 {
		return nil
	}
	out := make(map[string]string, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		out[str(flat[i])] = str(flat[i+1])
	}
	return out
}

func setAttr(attrs map[string]string, key, val string) map[string]string {
	if attrs == nil {
		attrs = make(map[string]string, 1)
	}
	if _, exists := attrs[key]; !exists {
		attrs[key] = val
	}
	return attrs
}
