// Package fetch loads target pages in a headless browser and extracts the
// visible text the extraction client works on.
package fetch

import (
	"context"
	"fmt"
)

// Result is a successfully rendered page.
type Result struct {
	StatusCode int
	Screenshot []byte // PNG, best-effort; nil when capture failed
	Text       string // stripped, whitespace-collapsed, budget-truncated
}

// Error is terminal for the current scan: network failure, non-success HTTP
// status, render timeout, or the soft-404 heuristic.
type Error struct {
	URL        string
	StatusCode int // 0 when no response was observed
	Reason     string
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch %s: %s (status %d)", e.URL, e.Reason, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Reason)
}

// Renderer loads a URL in a browser engine and returns the rendered page.
type Renderer interface {
	Render(ctx context.Context, url string) (*Result, error)
}
