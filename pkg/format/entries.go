// Package format renders raw profile sections as fixed HTML fragments.
//
// Every formatter is pure and total: empty or whitespace-only input yields a
// fixed, non-empty default fragment. Raw text is HTML-escaped before use.
package format

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitEntries splits a multi-record section into entries.
//
// An entry starts at a line that follows at least one blank line and whose
// first character is a letter. Lines after a blank that start with a digit,
// punctuation or indentation continue the current entry. Entries are trimmed
// and empty entries are dropped.
func SplitEntries(text string) (entries []string) {
	entries = make([]string, 0)

	var current []string
	sawBlank := false

	flush := func() {
		entry := strings.TrimSpace(strings.Join(current, "\n"))
		if entry != "" {
			entries = append(entries, entry)
		}
		current = nil
	}

	for _, line := range lines(text) {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				sawBlank = true
			}
			continue
		}

		if sawBlank && startsWithLetter(line) {
			flush()
		}
		sawBlank = false
		current = append(current, line)
	}
	flush()

	return entries
}

// SplitItems splits text on '-' delimiters, trimming and dropping empty tokens.
func SplitItems(text string) (items []string) {
	items = make([]string, 0)
	for _, token := range strings.Split(text, "-") {
		token = strings.TrimSpace(token)
		if token != "" {
			items = append(items, token)
		}
	}
	return items
}

// nonBlankLines returns the trimmed non-blank lines of text.
func nonBlankLines(text string) (out []string) {
	out = make([]string, 0)
	for _, line := range lines(text) {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func lines(text string) (out []string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	out = strings.Split(text, "\n")
	return out
}

func startsWithLetter(line string) (ok bool) {
	r, _ := utf8.DecodeRuneInString(line)
	ok = r != utf8.RuneError && unicode.IsLetter(r)
	return ok
}

func isBlank(text string) (blank bool) {
	blank = strings.TrimSpace(text) == ""
	return blank
}

func escape(text string) (escaped string) {
	escaped = html.EscapeString(text)
	return escaped
}
