package shop

import (
	"fmt"
	"strconv"
	"time"

	"github.com/chromedp/chromedp"

	"shopscrape/config"
	"shopscrape/utils"
)

// starMarkerJS counts the yellow SVG star paths inside one element,
// clamped to 5. This is the site's only reliable rating signal.
const starMarkerJS = `Math.min(el.querySelectorAll('path[fill="#ffce31"]').length, 5)`

// chromedpDriver implements PageDriver against a live browser session.
type chromedpDriver struct {
	session *Session
	logger  *utils.Logger
	retry   *utils.RetryConfig

	navSettle    time.Duration
	scrollSettle time.Duration
}

func newChromedpDriver(session *Session, cfg *config.Config, logger *utils.Logger) *chromedpDriver {
	return &chromedpDriver{
		session: session,
		logger:  logger,
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
		navSettle:    time.Duration(cfg.NavSettleMs) * time.Millisecond,
		scrollSettle: time.Duration(cfg.ScrollSettleMs) * time.Millisecond,
	}
}

// Navigate loads the page and sleeps through the initial render. Only
// navigation retries: a page that fails to load repeatedly means the
// session is not worth continuing with.
func (d *chromedpDriver) Navigate(url string) error {
	return d.retry.Do("navigate "+url, func() error {
		return chromedp.Run(d.session.ctx,
			chromedp.Navigate(url),
			chromedp.Sleep(d.navSettle),
		)
	})
}

// Blocks gathers the innerText and star-marker count of every element
// matching the selector. Lookup failures degrade to an empty result
// unless the session itself is gone.
func (d *chromedpDriver) Blocks(selector string) ([]Block, error) {
	js := fmt.Sprintf(`
		(function() {
			var out = [];
			var els = document.querySelectorAll(%s);
			for (var i = 0; i < els.length; i++) {
				var el = els[i];
				out.push({
					text:  (el.innerText || '').trim(),
					stars: %s
				});
			}
			return out;
		})()
	`, strconv.Quote(selector), starMarkerJS)

	var blocks []Block
	if err := chromedp.Run(d.session.ctx, chromedp.Evaluate(js, &blocks)); err != nil {
		if d.session.ctx.Err() != nil {
			return nil, err
		}
		d.logger.Debug("[driver] block lookup %q failed: %v", selector, err)
		return nil, nil
	}
	return blocks, nil
}

// BlockCount returns how many elements match the selector, degrading
// to zero on lookup failure.
func (d *chromedpDriver) BlockCount(selector string) (int, error) {
	js := fmt.Sprintf(`document.querySelectorAll(%s).length`, strconv.Quote(selector))

	var count int
	if err := chromedp.Run(d.session.ctx, chromedp.Evaluate(js, &count)); err != nil {
		if d.session.ctx.Err() != nil {
			return 0, err
		}
		d.logger.Debug("[driver] block count %q failed: %v", selector, err)
		return 0, nil
	}
	return count, nil
}

// ScrollBottom scrolls to the page bottom and waits for any triggered
// content to render.
func (d *chromedpDriver) ScrollBottom() error {
	return chromedp.Run(d.session.ctx,
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
		chromedp.Sleep(d.scrollSettle),
	)
}

// ScrollHeight measures the current document height.
func (d *chromedpDriver) ScrollHeight() (int64, error) {
	var height int64
	err := chromedp.Run(d.session.ctx,
		chromedp.Evaluate(`document.body.scrollHeight`, &height),
	)
	return height, err
}

// ClickVisible clicks the first matching element if it is present and
// visible. A missing or hidden element is a normal outcome, not an
// error.
func (d *chromedpDriver) ClickVisible(selector string) (bool, error) {
	js := fmt.Sprintf(`
		(function() {
			var el = document.querySelector(%s);
			if (!el) return false;
			var style = window.getComputedStyle(el);
			if (style.display === 'none' || style.visibility === 'hidden' || el.offsetParent === null) {
				return false;
			}
			el.scrollIntoView();
			el.click();
			return true;
		})()
	`, strconv.Quote(selector))

	var clicked bool
	if err := chromedp.Run(d.session.ctx, chromedp.Evaluate(js, &clicked)); err != nil {
		if d.session.ctx.Err() != nil {
			return false, err
		}
		d.logger.Debug("[driver] click %q failed: %v", selector, err)
		return false, nil
	}
	return clicked, nil
}

// WaitMoreBlocks polls until the match count exceeds `than` or the
// timeout elapses. A timeout is a termination signal for the caller,
// never an error.
func (d *chromedpDriver) WaitMoreBlocks(selector string, than int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		count, err := d.BlockCount(selector)
		if err != nil {
			return false
		}
		if count > than {
			return true
		}
		time.Sleep(250 * time.Millisecond)
	}
	return false
}
