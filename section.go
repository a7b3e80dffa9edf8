package sfcrawl

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Section represents a heading in a markdown document.
type Section struct {
	Level  int
	Title  string
	Anchor string
}

var (
	headingRe   = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	codeBlockRe = regexp.MustCompile("(?s)```.*?```")
)

// ExtractSections parses markdown and returns all headings (H1-H6) in
// document order. Anchors are URL-safe; duplicates get numeric suffixes.
func ExtractSections(markdown string) []Section {
	if markdown == "" {
		return nil
	}

	// Remove fenced code blocks so # inside code is not treated as a heading.
	cleaned := codeBlockRe.ReplaceAllString(markdown, "")

	matches := headingRe.FindAllStringSubmatch(cleaned, -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(matches))
	anchorCounts := make(map[string]int)

	for _, match := range matches {
		level := len(match[1])
		title := strings.TrimSpace(match[2])
		base := generateAnchor(title)

		anchor := base
		if count, exists := anchorCounts[base]; exists {
			anchor = base + "-" + strconv.Itoa(count)
			anchorCounts[base]++
		} else {
			anchorCounts[base] = 1
		}

		sections = append(sections, Section{Level: level, Title: title, Anchor: anchor})
	}

	return sections
}

// BuildTOC renders sections as anchor-linked bullet entries nested by
// heading level. Entry order follows document order, so output is
// deterministic for a given markdown body.
func BuildTOC(sections []Section) string {
	if len(sections) == 0 {
		return ""
	}

	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat("  ", s.Level-1))
		b.WriteString("- [")
		b.WriteString(s.Title)
		b.WriteString("](#")
		b.WriteString(s.Anchor)
		b.WriteString(")")
	}
	return b.String()
}

// generateAnchor creates a URL-safe anchor from a heading title:
// lowercase, spaces to hyphens, everything else dropped.
func generateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			prevHyphen = false
		case unicode.IsSpace(r) || r == '-':
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
