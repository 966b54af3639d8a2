package scan

import "strings"

// ParseKeywords splits a comma-separated keyword string into a clean list:
// whitespace trimmed, empty entries dropped, duplicates removed
// case-insensitively with first-occurrence order preserved.
func ParseKeywords(s string) []string {
	parts := strings.Split(s, ",")
	keywords := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		kw := strings.TrimSpace(part)
		if kw == "" {
			continue
		}
		folded := strings.ToLower(kw)
		if _, dup := seen[folded]; dup {
			continue
		}
		seen[folded] = struct{}{}
		keywords = append(keywords, kw)
	}
	return keywords
}
