package crawl

import (
	"net/url"
	"sort"
	"strings"

	"github.com/jkoenig72/sfcrawl"
)

// NormalizeURL canonicalizes a URL for visited-set membership:
// scheme and host lowercased, fragment stripped, query parameters sorted
// by key, and the trailing slash removed from non-root paths. Two URLs
// that normalize identically are the same page for crawl purposes.
func NormalizeURL(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", sfcrawl.Errorf(sfcrawl.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", sfcrawl.Errorf(sfcrawl.EINVALID, "URL %q missing scheme or host", rawURL)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	if u.Path != "/" {
		u.Path = strings.TrimSuffix(u.Path, "/")
	}

	if u.RawQuery != "" {
		u.RawQuery = canonicalQuery(u.Query())
	}

	return u.String(), nil
}

// canonicalQuery re-encodes query parameters with keys in sorted order.
func canonicalQuery(values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		for _, v := range values[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(k))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}
