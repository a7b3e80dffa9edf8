package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/jkoenig72/sfcrawl"
)

// DefaultMaxSessions is the number of sessions opened before a browser
// recycle becomes due. Chrome accumulates memory over long crawls and
// never returns to its baseline, so the factory replaces the process
// periodically instead of letting it grow.
const DefaultMaxSessions = 75

var _ sfcrawl.SessionFactory = (*Factory)(nil)

// Factory launches and owns one headless Chrome process and hands out
// tabs as sessions. Sessions are worker-lifetime, so a due recycle is
// deferred until every handed-out session has been closed: replacing
// the process earlier would sever the tabs of live workers.
// Factory is safe for concurrent use.
type Factory struct {
	mu           sync.Mutex
	browser      *rod.Browser
	launcher     *launcher.Launcher
	sessionCount int
	openSessions int
	recycleDue   bool
	maxSessions  int
	closed       bool
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithMaxSessions sets how many sessions are created before the browser
// process is recycled. Defaults to DefaultMaxSessions.
func WithMaxSessions(n int) FactoryOption {
	return func(f *Factory) {
		f.maxSessions = n
	}
}

// NewFactory creates a Factory and launches the browser. Close must be
// called when the Factory is no longer needed.
func NewFactory(opts ...FactoryOption) (*Factory, error) {
	f := &Factory{maxSessions: DefaultMaxSessions}
	for _, opt := range opts {
		opt(f)
	}

	if err := f.launchBrowser(); err != nil {
		return nil, err
	}
	return f, nil
}

// NewSession opens a new tab, recycling the browser process first when
// a recycle is due and no handed-out session remains open.
func (f *Factory) NewSession() (sfcrawl.BrowserSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, sfcrawl.Errorf(sfcrawl.EDRIVER, "session factory is closed")
	}
	if f.canRecycle() {
		f.recycleBrowser()
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, sfcrawl.Errorf(sfcrawl.EDRIVER, "opening browser tab: %v", err)
	}
	f.sessionCount++
	f.openSessions++
	if f.sessionCount >= f.maxSessions {
		f.recycleDue = true
	}

	return &Session{page: page, release: f.releaseSession}, nil
}

// canRecycle reports whether a due recycle may run now. The browser is
// only replaced once every handed-out session has been closed.
// Must be called with mu held.
func (f *Factory) canRecycle() bool {
	return f.recycleDue && f.openSessions == 0
}

// releaseSession returns a session's slot. Called by Session.Close.
func (f *Factory) releaseSession() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.openSessions > 0 {
		f.openSessions--
	}
}

// Close shuts down the browser process. Safe to call multiple times.
func (f *Factory) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	return f.closeBrowser()
}

// launchBrowser starts a new browser with stability flags for long
// headless runs.
func (f *Factory) launchBrowser() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = lnchr
	return nil
}

// closeBrowser shuts down the current browser and launcher.
// Must be called with mu held.
func (f *Factory) closeBrowser() error {
	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}
	return err
}

// recycleBrowser starts a fresh browser and closes the old one. If the
// new launch fails the old browser is kept so crawling can continue.
// Must be called with mu held.
func (f *Factory) recycleBrowser() {
	oldBrowser := f.browser
	oldLauncher := f.launcher
	f.browser = nil
	f.launcher = nil

	if err := f.launchBrowser(); err != nil {
		f.browser = oldBrowser
		f.launcher = oldLauncher
		return
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	f.sessionCount = 0
	f.recycleDue = false
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Factory) LauncherPID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.launcher == nil {
		return 0
	}
	return f.launcher.PID()
}
