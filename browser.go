package sfcrawl

import "context"

// BrowserSession is the capability contract a browser-automation driver
// must satisfy. The crawler core depends only on this interface so it can
// be tested with a fake implementation.
//
// A session is not safe for concurrent use: each worker owns an
// exclusively-held session for its lifetime.
type BrowserSession interface {
	// Navigate loads the URL and waits for the page to render.
	Navigate(ctx context.Context, url string) error

	// DismissOverlays closes cookie-consent popups and similar overlays
	// that would otherwise block content. Absence of an overlay is not
	// an error.
	DismissOverlays(ctx context.Context) error

	// RenderedHTML returns the rendered DOM of the current page.
	RenderedHTML(ctx context.Context) (string, error)

	// Close releases the session's browser resources.
	Close() error
}

// SessionFactory creates browser sessions. Workers request a fresh
// session at startup and once more after a driver failure.
type SessionFactory interface {
	// NewSession opens a new exclusively-owned browser session.
	NewSession() (BrowserSession, error)

	// Close releases shared browser resources.
	// Must be called after all sessions are closed.
	Close() error
}
