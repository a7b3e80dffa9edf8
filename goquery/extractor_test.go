package goquery_test

import (
	"testing"

	"github.com/jkoenig72/sfcrawl"
	"github.com/jkoenig72/sfcrawl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helpArticleHTML = `<html>
<head><title>Set Up Leads</title></head>
<body>
<nav><a href="/s/articleView?id=sales.other">Other article</a></nav>
<div id="onetrust-consent-sdk"><p>We use cookies.</p></div>
<h1>Set Up Leads</h1>
<div class="article-body">
  <p>Leads track prospects before conversion.</p>
  <a href="/s/articleView?id=sales.convert">Convert leads</a>
  <a href="mailto:support@example.com">Contact us</a>
</div>
<footer><a href="/legal">Legal</a></footer>
</body>
</html>`

func TestStandardHelpExtractor_ExtractsArticleBody(t *testing.T) {
	t.Parallel()

	e := goquery.NewStandardHelpExtractor()
	doc, err := e.Extract("https://help.example.com/s/articleView?id=sales.leads", helpArticleHTML)

	require.NoError(t, err)
	assert.Equal(t, "Set Up Leads", doc.Title)
	assert.Contains(t, doc.ContentHTML, "Leads track prospects")
	assert.NotContains(t, doc.ContentHTML, "We use cookies")
	assert.False(t, doc.LowConfidence)
}

func TestStandardHelpExtractor_CollectsNavigationLinks(t *testing.T) {
	t.Parallel()

	e := goquery.NewStandardHelpExtractor()
	doc, err := e.Extract("https://help.example.com/s/articleView?id=sales.leads", helpArticleHTML)
	require.NoError(t, err)

	var urls []string
	for _, l := range doc.Links {
		urls = append(urls, l.URL)
	}
	assert.Contains(t, urls, "https://help.example.com/s/articleView?id=sales.other")
	assert.Contains(t, urls, "https://help.example.com/s/articleView?id=sales.convert")
	assert.Contains(t, urls, "https://help.example.com/legal")
	assert.NotContains(t, urls, "mailto:support@example.com")
}

func TestExtractor_FallsBackToLargestTextBlock(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<div class="unexpected-layout">
  <p>A long passage of documentation text that no selector strategy anticipated,
  spanning enough characters to be the dominant block on the page.</p>
</div>
<div class="tiny">x</div>
</body></html>`

	e := goquery.NewStandardHelpExtractor()
	doc, err := e.Extract("https://help.example.com/odd", html)

	require.NoError(t, err)
	assert.True(t, doc.LowConfidence, "rescued pages are flagged")
	assert.Contains(t, doc.ContentHTML, "dominant block")
}

func TestExtractor_DetectsSoftNotFound(t *testing.T) {
	t.Parallel()

	e := goquery.NewStandardHelpExtractor()

	tests := []struct {
		name string
		html string
	}{
		{
			name: "404 in title",
			html: `<html><head><title>Error 404</title></head><body><div>gone</div></body></html>`,
		},
		{
			name: "not found heading",
			html: `<html><body><h1>Page Not Found</h1><div>sorry</div></body></html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := e.Extract("https://help.example.com/gone", tt.html)
			require.Error(t, err)
			assert.Equal(t, sfcrawl.ENOTFOUND, sfcrawl.ErrorCode(err))
		})
	}
}

func TestExtractor_ErrorsOnEmptyPage(t *testing.T) {
	t.Parallel()

	e := goquery.NewGenericExtractor()
	_, err := e.Extract("https://help.example.com/empty", `<html><body></body></html>`)

	require.Error(t, err)
	assert.Equal(t, sfcrawl.EINVALID, sfcrawl.ErrorCode(err))
}

func TestTrailheadExtractor_CapturesModuleAndUnit(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<div class="module-title">Sales Cloud Basics</div>
<h1 class="unit-title">Get Started with Leads</h1>
<div class="unit-content"><p>In this unit you learn about leads.</p></div>
</body></html>`

	e := goquery.NewTrailheadExtractor()
	doc, err := e.Extract("https://trailhead.example.com/content/learn/modules/sales/leads", html)

	require.NoError(t, err)
	assert.Equal(t, "Sales Cloud Basics", doc.Meta.Extra["module"])
	assert.Equal(t, "Get Started with Leads", doc.Meta.Extra["unit"])
	assert.Contains(t, doc.ContentHTML, "you learn about leads")
}

func TestApexHelpExtractor_ExtractsHelpContent(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<div class="helpHeader">chrome</div>
<div class="helpContent"><p>Legacy help body.</p></div>
</body></html>`

	e := goquery.NewApexHelpExtractor()
	doc, err := e.Extract("https://help.example.com/apex/HTViewHelpDoc?id=x.htm", html)

	require.NoError(t, err)
	assert.Contains(t, doc.ContentHTML, "Legacy help body")
	assert.False(t, doc.LowConfidence)
}

func TestExtractor_IsDeterministic(t *testing.T) {
	t.Parallel()

	e := goquery.NewStandardHelpExtractor()
	first, err := e.Extract("https://help.example.com/s/articleView?id=sales.leads", helpArticleHTML)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		doc, err := e.Extract("https://help.example.com/s/articleView?id=sales.leads", helpArticleHTML)
		require.NoError(t, err)
		assert.Equal(t, first.ContentHTML, doc.ContentHTML)
		assert.Equal(t, first.Links, doc.Links)
	}
}
