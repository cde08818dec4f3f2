package shop

import (
	"context"
	"os"
	"os/exec"

	"github.com/chromedp/chromedp"

	"shopscrape/config"
	"shopscrape/utils"
)

// Session owns one browser process for the duration of a run. The
// three collection passes share it sequentially; it is never accessed
// concurrently.
type Session struct {
	ctx          context.Context
	cancelCtx    context.CancelFunc
	cancelAlloc  context.CancelFunc
	cancelSilent context.CancelFunc
}

// NewSession launches a headless browser and verifies it is usable.
// There is no retry at this layer: a launch failure is fatal to the run.
func NewSession(cfg *config.Config, logger *utils.Logger) (*Session, error) {
	chromeBin := findChromeBinary(cfg.ChromeBin)
	logger.Info("[session] Using browser binary: %s", chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)

	// Suppress chromedp log noise
	silentCtx, cancelSilent := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	ctx, cancelCtx := chromedp.NewContext(silentCtx)

	// Start the browser process now so provisioning failures surface
	// before any collection begins.
	if err := chromedp.Run(ctx); err != nil {
		cancelCtx()
		cancelSilent()
		cancelAlloc()
		return nil, ErrSessionStart{Err: err}
	}

	return &Session{
		ctx:          ctx,
		cancelCtx:    cancelCtx,
		cancelAlloc:  cancelAlloc,
		cancelSilent: cancelSilent,
	}, nil
}

// Close tears the browser down. It is safe to call on every exit path.
func (s *Session) Close() {
	s.cancelCtx()
	s.cancelSilent()
	s.cancelAlloc()
}

// findChromeBinary locates a Chrome/Chromium binary, preferring the
// configured path.
func findChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
