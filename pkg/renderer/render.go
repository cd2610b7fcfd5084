// Package renderer fills HTML resume templates and converts them to PDF.
package renderer

import (
	_ "embed"
	"regexp"
	"sort"
	"strings"

	"github.com/nikogura/resume-forge/pkg/profile"
)

// DefaultTemplate is the built-in resume layout. It references every profile key.
//
//go:embed templates/resume.html
var DefaultTemplate string

//nolint:gochecknoglobals // Compiled once
var placeholderPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// Placeholder returns the template token for key.
func Placeholder(key string) (token string) {
	token = "{{" + key + "}}"
	return token
}

// Render replaces every {{key}} token in template for each profile key and each
// key of content. Missing values render as the empty string. Substitution is a
// single pass, so inserted values are never scanned for tokens.
func Render(template string, content map[string]string) (html string) {
	keys := make(map[string]bool, len(profile.Keys)+len(content))
	for _, key := range profile.Keys {
		keys[key] = true
	}
	for key := range content {
		keys[key] = true
	}

	ordered := make([]string, 0, len(keys))
	for key := range keys {
		ordered = append(ordered, key)
	}
	sort.Strings(ordered)

	pairs := make([]string, 0, 2*len(ordered))
	for _, key := range ordered {
		pairs = append(pairs, Placeholder(key), content[key])
	}

	html = strings.NewReplacer(pairs...).Replace(template)
	return html
}

// Unreplaced returns the sorted, unique names of tokens left in html.
func Unreplaced(html string) (names []string) {
	names = []string{}
	seen := make(map[string]bool)

	for _, match := range placeholderPattern.FindAllStringSubmatch(html, -1) {
		name := match[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
