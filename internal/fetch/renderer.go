package fetch

import (
	"context"
	"log/slog"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// Config for the headless renderer.
type Config struct {
	Timeout    time.Duration // whole render budget; expiry is a fetch error
	TextBudget int           // max extracted characters
	ExecPath   string        // optional chrome binary path
}

// ChromeRenderer renders pages in headless Chrome. Target pages may be
// JS-rendered, so a static HTML parse is not enough.
type ChromeRenderer struct {
	cfg    Config
	logger *slog.Logger
}

func NewChromeRenderer(cfg Config, logger *slog.Logger) *ChromeRenderer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.TextBudget <= 0 {
		cfg.TextBudget = 15000
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ChromeRenderer{cfg: cfg, logger: logger}
}

// Render loads the URL, waits for the document, and extracts visible text
// plus a best-effort screenshot. Browser contexts are always cancelled, even
// on error paths, so a failed scan never leaks a Chrome process.
func (r *ChromeRenderer) Render(ctx context.Context, url string) (*Result, error) {
	start := time.Now()

	opts := chromedp.DefaultExecAllocatorOptions[:]
	if r.cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.cfg.ExecPath))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, r.cfg.Timeout)
	defer cancelRun()

	// Status of the main document; subresource responses are ignored.
	var statusCode int
	chromedp.ListenTarget(runCtx, func(ev interface{}) {
		if resp, ok := ev.(*network.EventResponseReceived); ok {
			if resp.Type == network.ResourceTypeDocument && statusCode == 0 {
				statusCode = int(resp.Response.Status)
			}
		}
	})

	var html string
	err := chromedp.Run(runCtx,
		network.Enable(),
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		reason := "render failed: " + err.Error()
		if runCtx.Err() == context.DeadlineExceeded {
			reason = "render timed out after " + r.cfg.Timeout.String()
		}
		r.logger.Warn("fetch.render.failed", "url", url, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, &Error{URL: url, StatusCode: statusCode, Reason: reason}
	}

	if err := checkStatus(url, statusCode); err != nil {
		return nil, err
	}

	text, err := ExtractText(html, r.cfg.TextBudget)
	if err != nil {
		return nil, &Error{URL: url, StatusCode: statusCode, Reason: "text extraction failed: " + err.Error()}
	}

	if IsSoft404(text) {
		return nil, &Error{URL: url, StatusCode: statusCode, Reason: "page renders a not-found message (soft 404)"}
	}

	// Screenshot in a separate run; failure is logged and ignored.
	var shot []byte
	if err := chromedp.Run(runCtx, chromedp.CaptureScreenshot(&shot)); err != nil {
		r.logger.Warn("fetch.screenshot.failed", "url", url, "error", err)
		shot = nil
	}

	r.logger.Info("fetch.render.ok",
		"url", url,
		"status", statusCode,
		"text_len", len(text),
		"screenshot_bytes", len(shot),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &Result{StatusCode: statusCode, Screenshot: shot, Text: text}, nil
}

// checkStatus admits only an observed 2xx/3xx main-document response. A
// navigation that never produced one (about:blank, data: URLs, a dropped
// response event) is as suspect as an error status.
func checkStatus(url string, statusCode int) error {
	if statusCode == 0 {
		return &Error{URL: url, Reason: "no main-document response observed"}
	}
	if statusCode >= 400 {
		return &Error{URL: url, StatusCode: statusCode, Reason: "http error status"}
	}
	return nil
}
