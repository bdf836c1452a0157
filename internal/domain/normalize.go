package domain

import "strings"

// NormalizeGenres trims each genre tag and drops empties, preserving order.
// Returns an empty slice (never nil) so the field counts as "touched".
func NormalizeGenres(genres []string) []string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		out = append(out, g)
	}
	return out
}

// ParseLinkLines parses contributor-submitted download links, one per line in
// the form "label | url". Lines missing either part are silently dropped —
// documented lenient-input policy, not an error.
func ParseLinkLines(raw string) []DownloadLink {
	lines := strings.Split(raw, "\n")
	out := make([]DownloadLink, 0, len(lines))
	for _, line := range lines {
		label, url, ok := strings.Cut(line, "|")
		if !ok {
			continue
		}
		label = strings.TrimSpace(label)
		url = strings.TrimSpace(url)
		if label == "" || url == "" {
			continue
		}
		out = append(out, DownloadLink{Label: label, URL: url})
	}
	return out
}
