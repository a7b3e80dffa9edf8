package markdown

import "strings"

// maxSlugLength caps the URL-derived part of the filename so the full
// name stays under common filesystem limits.
const maxSlugLength = 200

// Filename derives a deterministic file name from a source URL:
// output_<sanitized-url>.md. The scheme is stripped and every character
// outside [a-zA-Z0-9-_.] becomes an underscore, so distinct URLs map to
// distinct, filesystem-safe names and a re-crawl overwrites in place.
func Filename(sourceURL string) string {
	return "output_" + sanitizeURL(sourceURL) + ".md"
}

func sanitizeURL(sourceURL string) string {
	s := sourceURL
	for _, prefix := range []string{"https://", "http://"} {
		if strings.HasPrefix(s, prefix) {
			s = strings.TrimPrefix(s, prefix)
			break
		}
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	slug := b.String()
	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
	}
	return slug
}
