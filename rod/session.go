// Package rod implements browser sessions on top of headless Chrome.
// Each crawl worker owns one Session; the Factory recycles the shared
// browser process periodically to keep Chrome's memory in check.
package rod

import (
	"context"

	"github.com/go-rod/rod"
	"github.com/jkoenig72/sfcrawl"
)

var _ sfcrawl.BrowserSession = (*Session)(nil)

// Session is a single browser tab. It is owned by exactly one worker
// and must not be shared between goroutines.
type Session struct {
	page *rod.Page

	// release returns the session's slot to the factory, allowing a
	// deferred browser recycle to proceed.
	release func()
}

// Navigate loads a URL and waits for the page to finish loading.
// Load failures are transient: the retry loop may try again.
func (s *Session) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	page := s.page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return sfcrawl.Errorf(sfcrawl.EUNAVAILABLE, "navigating to %s: %v", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return sfcrawl.Errorf(sfcrawl.EUNAVAILABLE, "waiting for %s to load: %v", url, err)
	}
	return nil
}

// dismissOverlaysJS clicks the cookie-consent reject button when one is
// present. The portal renders its consent dialog over the article text,
// so undismissed overlays leak banner text into the extraction.
const dismissOverlaysJS = `() => {
	const reject = document.querySelector('#onetrust-reject-all-handler');
	if (reject) {
		reject.click();
		return true;
	}
	for (const b of document.querySelectorAll('button')) {
		const t = (b.textContent || '').trim().toLowerCase();
		if (t === 'do not accept' || t === 'reject all' || t === 'decline') {
			b.click();
			return true;
		}
	}
	return false;
}`

// DismissOverlays closes cookie and consent dialogs if present. A page
// without overlays is not an error.
func (s *Session) DismissOverlays(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := s.page.Context(ctx).Eval(dismissOverlaysJS); err != nil {
		return sfcrawl.Errorf(sfcrawl.EUNAVAILABLE, "dismissing overlays: %v", err)
	}
	return nil
}

// RenderedHTML returns the current DOM serialized to HTML, after
// JavaScript has run.
func (s *Session) RenderedHTML(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	html, err := s.page.Context(ctx).HTML()
	if err != nil {
		return "", sfcrawl.Errorf(sfcrawl.EDRIVER, "reading page HTML: %v", err)
	}
	return html, nil
}

// Close closes the underlying tab and returns its factory slot.
func (s *Session) Close() error {
	err := s.page.Close()
	if s.release != nil {
		s.release()
		s.release = nil
	}
	return err
}
