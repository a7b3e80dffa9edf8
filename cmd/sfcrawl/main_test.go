package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jkoenig72/sfcrawl"
	main "github.com/jkoenig72/sfcrawl/cmd/sfcrawl"
	"github.com/jkoenig72/sfcrawl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "sfcrawl")
	assert.Contains(t, stdout.String(), "--manifest")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_MissingConfig(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--config", "/does/not/exist.yaml"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, sfcrawl.ENOTFOUND, sfcrawl.ErrorCode(err))
}

func TestMain_Run_InvalidManifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configPath := writeTestFile(t, dir, "config.yaml", testConfigYAML(dir))
	manifestPath := writeTestFile(t, dir, "manifest.yaml", "products: []\n")

	m := main.NewMain()
	m.Sessions = &mock.SessionFactory{}
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--config", configPath, "--manifest", manifestPath}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, sfcrawl.EINVALID, sfcrawl.ErrorCode(err))
}

func TestMain_Run_CrawlsSiteEndToEnd(t *testing.T) {
	t.Parallel()

	pages := map[string]string{
		"https://help.example.com/s/articleView?id=sales.intro": helpArticle("Sales Intro",
			`<a href="/s/articleView?id=sales.leads">Leads</a>`),
		"https://help.example.com/s/articleView?id=sales.leads": helpArticle("Working with Leads", ""),
	}

	dir := t.TempDir()
	configPath := writeTestFile(t, dir, "config.yaml", testConfigYAML(dir))
	manifestPath := writeTestFile(t, dir, "manifest.yaml", `products:
  - product: Sales_Cloud
    urls:
      - https://help.example.com/s/articleView?id=sales.intro
`)

	m := main.NewMain()
	m.Sessions = siteSessionFactory(pages)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--config", configPath, "--manifest", manifestPath}, &stdout, &stderr)

	require.NoError(t, err, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "Crawled 2 pages")

	entries, err := os.ReadDir(filepath.Join(dir, "out", "Sales_Cloud"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	summary, err := os.ReadFile(filepath.Join(dir, "out", "summary.log"))
	require.NoError(t, err)
	assert.Contains(t, string(summary), "Sales_Cloud")
}

func TestMain_Run_FailsWhenNothingWritten(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// Seeds outside the allowed domain are rejected at the frontier.
	configPath := writeTestFile(t, dir, "config.yaml", testConfigYAML(dir))
	manifestPath := writeTestFile(t, dir, "manifest.yaml", `products:
  - product: Sales_Cloud
    urls:
      - https://other.example.org/docs
`)

	m := main.NewMain()
	m.Sessions = &mock.SessionFactory{}
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--config", configPath, "--manifest", manifestPath}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pages")
}

func testConfigYAML(dir string) string {
	return `output_dir: ` + filepath.Join(dir, "out") + `
workers_per_product: 2
requests_per_second: 1000
scope:
  allowed_domains:
    - help.example.com
`
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func helpArticle(title, extra string) string {
	return `<html><head><title>` + title + `</title></head><body>
<h1>` + title + `</h1>
<div class="article-body"><h2>Overview</h2><p>Details about ` + title + `.</p>` + extra + `</div>
</body></html>`
}

// siteSessionFactory serves an in-memory site: Navigate records the URL,
// RenderedHTML returns that page's HTML.
func siteSessionFactory(pages map[string]string) *mock.SessionFactory {
	return &mock.SessionFactory{
		NewSessionFn: func() (sfcrawl.BrowserSession, error) {
			var mu sync.Mutex
			var current string
			return &mock.Session{
				NavigateFn: func(ctx context.Context, url string) error {
					mu.Lock()
					defer mu.Unlock()
					if _, ok := pages[url]; !ok {
						return sfcrawl.Errorf(sfcrawl.ENOTFOUND, "no such page: %s", url)
					}
					current = url
					return nil
				},
				RenderedHTMLFn: func(ctx context.Context) (string, error) {
					mu.Lock()
					defer mu.Unlock()
					return pages[current], nil
				},
			}, nil
		},
	}
}
