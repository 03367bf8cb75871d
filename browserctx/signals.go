package browserctx

import (
	"fmt"

	"github.com/go-rod/rod"

	"github.com/CodingLucasLi/Clawome/prepare"
	"github.com/CodingLucasLi/Clawome/snapshot"
)

// clickListenerMarkerAttr is the transient attribute the interceptor script
// stamps onto any element that receives a click/mousedown/pointerdown
// listener, so it can be found again with a plain querySelectorAll once
// the page has settled.
const clickListenerMarkerAttr = "data-clawome-listener"

// clickListenerScript overrides EventTarget.addEventListener before any
// page script runs (installed via Page.AddScriptToEvaluateOnNewDocument,
// mirroring browser/stealth.go's EvalOnNewDocument-based injection) so it
// sees every listener a page attaches to itself, including ones bound
// during initial script execution.
const clickListenerScript = `
(() => {
	const marked = new WeakSet();
	const targetEvents = new Set(['click', 'mousedown', 'pointerdown']);
	const original = EventTarget.prototype.addEventListener;
	EventTarget.prototype.addEventListener = function(type, listener, options) {
		if (targetEvents.has(type) && this instanceof Element && !marked.has(this)) {
			marked.add(this);
			this.setAttribute('` + clickListenerMarkerAttr + `', '1');
		}
		return original.call(this, type, listener, options);
	};
})();
`

// hoverPointerScript harvests every stylesheet rule whose selector includes
// :hover and whose declaration sets cursor: pointer, stripping the :hover
// pseudo-class so the remaining selector can be matched with
// querySelectorAll (spec.md §4.2's hover-pointer sub-step).
const hoverPointerScript = `
(() => {
	const out = [];
	for (const sheet of document.styleSheets) {
		let rules;
		try { rules = sheet.cssRules; } catch (e) { continue; }
		if (!rules) continue;
		for (const rule of rules) {
			if (!rule.selectorText || !rule.style) continue;
			if (!rule.selectorText.includes(':hover')) continue;
			if (rule.style.cursor !== 'pointer') continue;
			for (const part of rule.selectorText.split(',')) {
				out.push(part.replace(/:hover/g, '').trim());
			}
		}
	}
	return out;
})();
`

// delegatedHandlerScript inspects jQuery's internal event registry (when
// jQuery is present) for delegated click handlers bound via
// $(ancestor).on('click', selector, handler), returning each handler's
// delegate selector.
const delegatedHandlerScript = `
(() => {
	const jq = window.jQuery || window.$;
	if (!jq || !jq._data) return [];
	const out = [];
	const all = [document, ...document.querySelectorAll('*')];
	for (const el of all) {
		const data = jq._data(el, 'events');
		if (!data || !data.click) continue;
		for (const handler of data.click) {
			if (handler.selector) out.push(handler.selector);
		}
	}
	return out;
})();
`

// InstallClickListenerInterceptor must be called before Navigate so the
// interceptor is present for the page's very first script execution
// (spec.md §4.2: "installed before page scripts run").
func InstallClickListenerInterceptor(page *rod.Page) error {
	_, err := page.EvalOnNewDocument(clickListenerScript)
	if err != nil {
		return fmt.Errorf("browserctx: install click-listener interceptor: %w", err)
	}
	return nil
}

// ResolveSignals reads back everything InstallClickListenerInterceptor
// marked, plus the hover-pointer and jQuery-delegated selector sweeps, and
// resolves every match to a CDP back-reference against tree. Call only
// after the page has settled (see WaitSettled).
func ResolveSignals(page *rod.Page, tree *snapshot.Tree) (prepare.Signals, error) {
	sig := prepare.Signals{
		ClickListenerTargets: map[snapshot.BackRef]bool{},
		DelegatedTargets:     map[snapshot.BackRef]bool{},
		HoverPointerTargets:  map[snapshot.BackRef]bool{},
	}

	if err := resolveSelectorInto(page, tree, "["+clickListenerMarkerAttr+"]", sig.ClickListenerTargets); err != nil {
		return sig, err
	}

	hoverSelectors, err := evalStringSlice(page, hoverPointerScript)
	if err != nil {
		return sig, fmt.Errorf("browserctx: harvest hover-pointer selectors: %w", err)
	}
	for _, sel := range hoverSelectors {
		resolveSelectorBestEffort(page, tree, sel, sig.HoverPointerTargets)
	}

	delegatedSelectors, err := evalStringSlice(page, delegatedHandlerScript)
	if err != nil {
		return sig, fmt.Errorf("browserctx: harvest delegated handler selectors: %w", err)
	}
	for _, sel := range delegatedSelectors {
		resolveSelectorBestEffort(page, tree, sel, sig.DelegatedTargets)
	}

	return sig, nil
}

func resolveSelectorInto(page *rod.Page, tree *snapshot.Tree, sel string, into map[snapshot.BackRef]bool) error {
	els, err := page.Elements(sel)
	if err != nil {
		return fmt.Errorf("browserctx: query %q: %w", sel, err)
	}
	for _, el := range els {
		if ref, ok := backRefOf(el); ok {
			into[ref] = true
		}
	}
	return nil
}

// resolveSelectorBestEffort tolerates an invalid harvested selector: a
// malformed :hover rule should never abort the whole capture (spec.md §7's
// per-element tolerated-failure policy).
func resolveSelectorBestEffort(page *rod.Page, tree *snapshot.Tree, sel string, into map[snapshot.BackRef]bool) {
	if sel == "" {
		return
	}
	els, err := page.Elements(sel)
	if err != nil {
		return
	}
	for _, el := range els {
		if ref, ok := backRefOf(el); ok {
			into[ref] = true
		}
	}
}

func backRefOf(el *rod.Element) (snapshot.BackRef, bool) {
	node, err := el.Describe(0, false)
	if err != nil || node == nil {
		return 0, false
	}
	return snapshot.BackRef(node.BackendNodeID), true
}

func evalStringSlice(page *rod.Page, script string) ([]string, error) {
	res, err := page.Eval(script)
	if err != nil {
		return nil, err
	}
	var out []string
	if err := res.Value.Unmarshal(&out); err != nil {
		return nil, fmt.Errorf("browserctx: decode script result: %w", err)
	}
	return out, nil
}
