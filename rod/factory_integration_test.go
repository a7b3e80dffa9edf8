//go:build integration

package rod_test

import (
	"context"
	"testing"

	"github.com/jkoenig72/sfcrawl/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration tests launch a real headless Chrome.
// Run with: go test -tags=integration ./rod/...

func TestFactory_SessionLifecycle(t *testing.T) {
	f, err := rod.NewFactory()
	require.NoError(t, err)
	defer f.Close()

	session, err := f.NewSession()
	require.NoError(t, err)
	defer session.Close()

	ctx := context.Background()
	dataURL := "data:text/html,<html><head><title>t</title></head><body><h1>Hello</h1></body></html>"

	require.NoError(t, session.Navigate(ctx, dataURL))
	require.NoError(t, session.DismissOverlays(ctx))

	html, err := session.RenderedHTML(ctx)
	require.NoError(t, err)
	assert.Contains(t, html, "Hello")
}

func TestFactory_RecyclesBrowser(t *testing.T) {
	f, err := rod.NewFactory(rod.WithMaxSessions(2))
	require.NoError(t, err)
	defer f.Close()

	firstPID := f.LauncherPID()
	require.NotZero(t, firstPID)

	for i := 0; i < 3; i++ {
		s, err := f.NewSession()
		require.NoError(t, err)
		require.NoError(t, s.Close())
	}

	assert.NotEqual(t, firstPID, f.LauncherPID(), "browser process is replaced after the session threshold")
}

func TestFactory_RecycleDeferredWhileSessionsLive(t *testing.T) {
	f, err := rod.NewFactory(rod.WithMaxSessions(1))
	require.NoError(t, err)
	defer f.Close()

	firstPID := f.LauncherPID()
	require.NotZero(t, firstPID)

	// The first session makes a recycle due, but it must not run while
	// that session is still open.
	s1, err := f.NewSession()
	require.NoError(t, err)

	s2, err := f.NewSession()
	require.NoError(t, err)
	assert.Equal(t, firstPID, f.LauncherPID(), "recycle waits for open sessions")

	// Both sessions still work against the original browser.
	ctx := context.Background()
	dataURL := "data:text/html,<html><head><title>t</title></head><body><h1>Still alive</h1></body></html>"
	require.NoError(t, s1.Navigate(ctx, dataURL))
	html, err := s1.RenderedHTML(ctx)
	require.NoError(t, err)
	assert.Contains(t, html, "Still alive")

	require.NoError(t, s1.Close())
	require.NoError(t, s2.Close())

	s3, err := f.NewSession()
	require.NoError(t, err)
	defer s3.Close()
	assert.NotEqual(t, firstPID, f.LauncherPID(), "recycle runs once all sessions are closed")
}

func TestFactory_ClosedFactoryRejectsSessions(t *testing.T) {
	f, err := rod.NewFactory()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = f.NewSession()
	assert.Error(t, err)
}
