package tailor

import (
	"regexp"
	"strings"
)

// FixPattern defines a search-and-replace cleanup applied to generated fragments.
type FixPattern struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// Cleaner normalizes generated section fragments before validation.
type Cleaner struct {
	patterns []FixPattern
}

// NewCleaner creates a cleaner with the predefined fix patterns.
func NewCleaner() (cleaner *Cleaner) {
	cleaner = &Cleaner{
		patterns: buildCleanupPatterns(),
	}
	return cleaner
}

func buildCleanupPatterns() (patterns []FixPattern) {
	patterns = []FixPattern{
		{
			Name:        "code fence",
			Pattern:     regexp.MustCompile("(?m)^[ \t]*```[a-zA-Z]*[ \t]*$"),
			Replacement: "",
		},
		{
			Name:        "document wrapper",
			Pattern:     regexp.MustCompile(`(?i)</?(?:html|body)[^>]*>`),
			Replacement: "",
		},
		{
			Name:        "markdown bold",
			Pattern:     regexp.MustCompile(`\*\*([^*\n]+)\*\*`),
			Replacement: "<strong>$1</strong>",
		},
	}
	return patterns
}

// Clean applies every fix pattern to fragment and trims the result.
func (c *Cleaner) Clean(fragment string) (cleaned string, applied []string) {
	cleaned = fragment
	applied = []string{}

	for _, fix := range c.patterns {
		if !fix.Pattern.MatchString(cleaned) {
			continue
		}
		cleaned = fix.Pattern.ReplaceAllString(cleaned, fix.Replacement)
		applied = append(applied, fix.Name)
	}

	cleaned = strings.TrimSpace(cleaned)

	return cleaned, applied
}
