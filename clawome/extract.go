// Package clawome is the public facade named in SPEC_FULL.md §D: it wires
// browserctx's live-page capture through the pure snapshot -> prepare ->
// walk -> compress -> render pipeline and exposes spec.md §6's two
// external operations, Extract and Resolve, to collaborators (an action
// layer, an agent loop, a CLI).
package clawome

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/rs/zerolog"

	"github.com/CodingLucasLi/Clawome/browserctx"
	"github.com/CodingLucasLi/Clawome/compress"
	"github.com/CodingLucasLi/Clawome/config"
	"github.com/CodingLucasLi/Clawome/nodemap"
	"github.com/CodingLucasLi/Clawome/prepare"
	"github.com/CodingLucasLi/Clawome/render"
	"github.com/CodingLucasLi/Clawome/snapshot"
	"github.com/CodingLucasLi/Clawome/walk"
)

// PageHandle is the "handle for executing code in the DOM context" spec.md
// §6 asks Extract to accept; here it is simply a live go-rod page that has
// already navigated to the target URL.
type PageHandle = *rod.Page

// Stats summarizes one extraction, per spec.md §6: raw/rendered sizes,
// node counts before and after compression, approximate token counts, and
// the resulting compression ratio.
type Stats struct {
	RawHTMLChars        int
	RenderedChars       int
	NodesBeforeCompress int
	NodesAfterCompress  int
	ApproxTokensRaw     int
	ApproxTokensOut     int
	CompressionRatio    float64
	WalkTruncated       bool
}

// Result is Extract's return value: the rendered tree, its node map, and
// summary stats.
type Result struct {
	Rendered string
	NodeMap  nodemap.NodeMap
	Stats    Stats
}

// Options bundles the per-call knobs Extract needs beyond the pipeline
// Config: render mode, the previous snapshot's back-reference set (for the
// additive IsNew marker, SPEC_FULL.md §E), the timeout for
// browserctx.WaitSettled's idle wait, a logger, and an optional node-map
// Store.
type Options struct {
	Cfg      config.Config
	Mode     render.Mode
	Previous map[snapshot.BackRef]bool
	IdleWait time.Duration
	Log      zerolog.Logger

	// Store, if non-nil, receives the freshly rendered NodeMap via an
	// atomic Replace (spec.md §5: "the node map is replaced atomically...
	// the previous node map, if any, is kept [until replacement]"), so a
	// caller resolving hids concurrently with the next extraction always
	// sees one complete map, never a partially-built one.
	Store *nodemap.Store
}

// Extract runs the full pipeline against page once: wait for the page to
// settle, capture a DOMSnapshot, run Prepare's heuristics and the
// click-listener/hover-pointer/delegated-handler signal sweep, Walk the
// prepared tree, Compress the flat record list, Render the result, and —
// if opts.Store is set — atomically publish the new NodeMap to it.
//
// The click-listener interceptor is registered here, on a page that has
// already loaded its document, so it only takes effect for documents the
// page loads afterwards: listeners bound by the current document are not
// recorded, and ClickListenerTargets stays empty on the first Extract
// against a freshly navigated page.
//
// Per spec.md §7, a pipeline-internal failure at any stage fails the whole
// extraction — no partial tree or node map is returned — while resource
// limit hits inside Walk are not errors and simply truncate the result
// (Stats.WalkTruncated reports this).
func Extract(page PageHandle, opts Options) (Result, error) {
	if err := browserctx.InstallClickListenerInterceptor(page); err != nil {
		return Result{}, fmt.Errorf("clawome: install click-listener interceptor: %w", err)
	}
	if err := browserctx.WaitSettled(page, opts.IdleWait); err != nil {
		return Result{}, fmt.Errorf("clawome: wait for page to settle: %w", err)
	}

	tree, err := browserctx.CaptureSnapshot(page)
	if err != nil {
		return Result{}, fmt.Errorf("clawome: capture snapshot: %w", err)
	}

	sig, err := browserctx.ResolveSignals(page, tree)
	if err != nil {
		return Result{}, fmt.Errorf("clawome: resolve click/hover/delegated signals: %w", err)
	}

	prep := prepare.Run(tree, sig, opts.Cfg, opts.Log)

	walkResult := walk.Walk(prep, opts.Cfg, opts.Previous, opts.Log)

	compressResult := compress.Run(walkResult.Records, opts.Cfg)

	renderResult := render.Run(compressResult.Flat, opts.Cfg, opts.Mode)

	if opts.Store != nil {
		opts.Store.Replace(renderResult.NodeMap)
	}

	rawChars := rawHTMLChars(tree)
	stats := Stats{
		RawHTMLChars:        rawChars,
		RenderedChars:       len(renderResult.Text),
		NodesBeforeCompress: len(walkResult.Records),
		NodesAfterCompress:  len(compressResult.Flat),
		ApproxTokensRaw:     rawChars / 4,
		ApproxTokensOut:     len(renderResult.Text) / 4,
		WalkTruncated:       walkResult.Truncated,
	}
	if rawChars > 0 {
		stats.CompressionRatio = float64(len(renderResult.Text)) / float64(rawChars)
	}

	return Result{Rendered: renderResult.Text, NodeMap: renderResult.NodeMap, Stats: stats}, nil
}

// rawHTMLChars approximates the original document's HTML size by summing
// every captured node's text content and tag markup, standing in for the
// "raw-html character count" spec.md §6 asks Extract's stats to report —
// the pipeline never holds a serialized HTML string, only the snapshot.
func rawHTMLChars(tree *snapshot.Tree) int {
	total := 0
	for _, n := range tree.Nodes {
		switch n.Kind {
		case snapshot.KindText:
			total += len(n.Text)
		case snapshot.KindElement:
			total += len(n.Tag) + 2 // "<tag>" / "</tag>" markup, approximated
			for k, v := range n.Attrs {
				total += len(k) + len(v) + 4 // space + = + two quotes
			}
		}
	}
	return total
}
