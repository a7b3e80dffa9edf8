package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/jkoenig72/sfcrawl"
)

var _ sfcrawl.BrowserSession = (*LoggingSession)(nil)

// LoggingSession wraps a BrowserSession with debug logging.
type LoggingSession struct {
	next   sfcrawl.BrowserSession
	logger *slog.Logger
}

// NewLoggingSession creates a new LoggingSession.
func NewLoggingSession(next sfcrawl.BrowserSession, logger *slog.Logger) *LoggingSession {
	return &LoggingSession{next: next, logger: logger}
}

// Navigate logs the URL and load duration and delegates to the wrapped session.
func (s *LoggingSession) Navigate(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("navigate",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Navigate(ctx, url)
}

// DismissOverlays delegates to the wrapped session.
func (s *LoggingSession) DismissOverlays(ctx context.Context) error {
	return s.next.DismissOverlays(ctx)
}

// RenderedHTML logs the DOM size and delegates to the wrapped session.
func (s *LoggingSession) RenderedHTML(ctx context.Context) (html string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("rendered html",
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RenderedHTML(ctx)
}

// Close delegates to the wrapped session.
func (s *LoggingSession) Close() error {
	return s.next.Close()
}

var _ sfcrawl.SessionFactory = (*LoggingFactory)(nil)

// LoggingFactory wraps a SessionFactory so every session it hands out
// logs its page loads.
type LoggingFactory struct {
	next   sfcrawl.SessionFactory
	logger *slog.Logger
}

// NewLoggingFactory creates a new LoggingFactory.
func NewLoggingFactory(next sfcrawl.SessionFactory, logger *slog.Logger) *LoggingFactory {
	return &LoggingFactory{next: next, logger: logger}
}

// NewSession delegates to the wrapped factory and wraps the result.
func (f *LoggingFactory) NewSession() (sfcrawl.BrowserSession, error) {
	session, err := f.next.NewSession()
	if err != nil {
		f.logger.Error("opening browser session", "err", err)
		return nil, err
	}
	return NewLoggingSession(session, f.logger), nil
}

// Close delegates to the wrapped factory.
func (f *LoggingFactory) Close() error {
	return f.next.Close()
}
