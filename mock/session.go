// Package mock provides function-field mock implementations of the
// sfcrawl interfaces for testing.
package mock

import (
	"context"

	"github.com/jkoenig72/sfcrawl"
)

var _ sfcrawl.BrowserSession = (*Session)(nil)

// Session is a mock implementation of sfcrawl.BrowserSession.
// Unset functions are no-ops.
type Session struct {
	NavigateFn        func(ctx context.Context, url string) error
	DismissOverlaysFn func(ctx context.Context) error
	RenderedHTMLFn    func(ctx context.Context) (string, error)
	CloseFn           func() error
}

func (s *Session) Navigate(ctx context.Context, url string) error {
	if s.NavigateFn == nil {
		return nil
	}
	return s.NavigateFn(ctx, url)
}

func (s *Session) DismissOverlays(ctx context.Context) error {
	if s.DismissOverlaysFn == nil {
		return nil
	}
	return s.DismissOverlaysFn(ctx)
}

func (s *Session) RenderedHTML(ctx context.Context) (string, error) {
	if s.RenderedHTMLFn == nil {
		return "", nil
	}
	return s.RenderedHTMLFn(ctx)
}

func (s *Session) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}

var _ sfcrawl.SessionFactory = (*SessionFactory)(nil)

// SessionFactory is a mock implementation of sfcrawl.SessionFactory.
// An unset NewSessionFn returns an empty Session.
type SessionFactory struct {
	NewSessionFn func() (sfcrawl.BrowserSession, error)
	CloseFn      func() error
}

func (f *SessionFactory) NewSession() (sfcrawl.BrowserSession, error) {
	if f.NewSessionFn == nil {
		return &Session{}, nil
	}
	return f.NewSessionFn()
}

func (f *SessionFactory) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
