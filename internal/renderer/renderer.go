/*
Package renderer captures the html result table as a PNG with headless Chrome.
*/
package renderer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
)

// defaults.
const (
	DefaultTimeout = 30 * time.Second
	quality        = 100
)

// Screenshot loads the html document in a headless browser and returns a
// full page PNG.
func Screenshot(ctx context.Context, html []byte, logger *slog.Logger) ([]byte, error) {
	dir, err := os.MkdirTemp("", "cvelookup-")
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = os.RemoveAll(dir)
	}()

	page := filepath.Join(dir, "table.html")
	if err = os.WriteFile(page, html, 0o600); err != nil {
		return nil, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)

	ctx, cancelTimeout := context.WithTimeout(ctx, DefaultTimeout)
	defer cancelTimeout()

	allocatorCtx, cancelAllocator := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAllocator()

	browserCtx, cancelBrowser := chromedp.NewContext(allocatorCtx)
	defer cancelBrowser()

	logger.Debug("navigating to", "file", page)

	var buf []byte
	if err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+page),
		chromedp.WaitVisible("table", chromedp.ByQuery),
		chromedp.FullScreenshot(&buf, quality),
	); err != nil {
		logger.Error("screenshot", "err", err)

		return nil, err
	}

	if len(buf) == 0 {
		logger.Warn("empty screenshot received")
	}

	return buf, nil
}

// ScreenshotToFile writes Screenshot output to path.
func ScreenshotToFile(ctx context.Context, html []byte, path string, logger *slog.Logger) error {
	buf, err := Screenshot(ctx, html, logger)
	if err != nil {
		return err
	}

	return os.WriteFile(path, buf, 0o644)
}
