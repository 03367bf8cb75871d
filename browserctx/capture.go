// Package browserctx adapts a live go-rod page to the Clawome pipeline: it
// runs the single CDP DOMSnapshot.captureSnapshot round trip, injects the
// click-listener interceptor before page scripts (SPEC_FULL.md §A.3), and
// waits for a page to settle before capture. Everything it produces is a
// plain value consumed by the pure snapshot/prepare/walk/compress/render
// packages — no package outside browserctx talks to rod directly.
package browserctx

import (
	"encoding/json"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"github.com/CodingLucasLi/Clawome/snapshot"
)

// CaptureSnapshot runs DOMSnapshot.captureSnapshot against page, requesting
// exactly the computed styles snapshot.RequestedStyles expects, and decodes
// the result into a snapshot.Tree via the same Parse path unit tests use
// against recorded payloads.
func CaptureSnapshot(page *rod.Page) (*snapshot.Tree, error) {
	result, err := proto.DOMSnapshotCaptureSnapshot{
		ComputedStyles:    snapshot.RequestedStyles,
		IncludePaintOrder: true,
		IncludeDOMRects:   true,
	}.Call(page)
	if err != nil {
		return nil, fmt.Errorf("browserctx: DOMSnapshot.captureSnapshot: %w", err)
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("browserctx: marshal captureSnapshot result: %w", err)
	}

	tree, err := snapshot.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("browserctx: parse captureSnapshot result: %w", err)
	}
	return tree, nil
}
