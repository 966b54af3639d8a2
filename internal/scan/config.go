package scan

import (
	"fmt"
	"strings"
)

// ConfigError reports an invalid scan configuration. It is surfaced to the
// user before any document is processed.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Config is the per-scan configuration: the active keyword list and the
// context window width in characters on each side of a match.
type Config struct {
	Keywords      []string
	ContextWindow int
}

// Validate rejects configurations the scanner cannot honor. An empty
// keyword list is allowed and simply produces no matches.
func (c Config) Validate() error {
	if c.ContextWindow <= 0 {
		return &ConfigError{Field: "context_window", Reason: "must be a positive number of characters"}
	}
	seen := make(map[string]struct{}, len(c.Keywords))
	for _, kw := range c.Keywords {
		if strings.TrimSpace(kw) == "" {
			return &ConfigError{Field: "keywords", Reason: "keyword must not be empty"}
		}
		folded := strings.ToLower(kw)
		if _, dup := seen[folded]; dup {
			return &ConfigError{Field: "keywords", Reason: fmt.Sprintf("duplicate keyword %q", kw)}
		}
		seen[folded] = struct{}{}
	}
	return nil
}
