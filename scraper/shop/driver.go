package shop

import "time"

// Block is one candidate element's raw contents: its trimmed innerText
// and the number of star markers found among its descendants (already
// clamped to 0–5 by the locator).
type Block struct {
	Text  string `json:"text"`
	Stars int    `json:"stars"`
}

// PageDriver is the page-source capability the pagination strategies
// consume. In production it is backed by a live chromedp browser
// session; tests supply fixture implementations.
//
// Element lookups are best-effort: a failed or empty lookup yields an
// empty slice or zero count, never an error. Errors from any method
// mean the session itself is unusable and abort the run.
type PageDriver interface {
	// Navigate loads a page and waits for it to settle.
	Navigate(url string) error
	// Blocks returns all elements matching the selector.
	Blocks(selector string) ([]Block, error)
	// BlockCount returns the number of elements matching the selector.
	BlockCount(selector string) (int, error)
	// ScrollBottom scrolls to the bottom of the page and waits for
	// newly triggered content to render.
	ScrollBottom() error
	// ScrollHeight returns the current document height.
	ScrollHeight() (int64, error)
	// ClickVisible clicks the first element matching the selector.
	// It reports false when the element is absent or not visible.
	ClickVisible(selector string) (bool, error)
	// WaitMoreBlocks blocks until more than `than` elements match the
	// selector, or the timeout elapses. It reports whether the count
	// grew in time.
	WaitMoreBlocks(selector string, than int, timeout time.Duration) bool
}
