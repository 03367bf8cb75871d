package browserctx

import (
	"time"

	"github.com/go-rod/rod"
)

// SettleWait is the small fixed pause applied after load and the idle wait
// before Prepare/Walk run. It covers client-side renders that finish a
// tick after the page first goes idle (React/Vue hydration, CSS
// transitions toggling display).
const SettleWait = 300 * time.Millisecond

// WaitSettled blocks until page has finished loading, then calls
// page.WaitIdle with idleDuration as its timeout, then waits SettleWait.
// page.WaitIdle waits for the browser's next requestIdleCallback (main
// thread idle); it does not track network requests, so WaitSettled does
// not wait for the network to go idle. An idleDuration of zero or less
// uses one second.
func WaitSettled(page *rod.Page, idleDuration time.Duration) error {
	if err := page.WaitLoad(); err != nil {
		return err
	}
	if idleDuration <= 0 {
		idleDuration = time.Second
	}
	if err := page.WaitIdle(idleDuration); err != nil {
		return err
	}

	time.Sleep(SettleWait)
	return nil
}
