package profile

import (
	"strings"
)

// SplitSections slices text into named sections.
//
// A header line is a line which, once trimmed and stripped of leading '#' and
// wrapping '*', equals one of headers (case-insensitive), optionally followed
// by ':' and inline content. Bulleted lines are never headers, and headers with
// inline content must be capitalized. Inline content becomes the first body
// line. A body runs until the next header line of any known header, so
// headers may appear in any order. Repeated headers append to the earlier body.
//
// Result keys are lowercase header names. Headers that never appear are absent.
func SplitSections(text string, headers []string) (sections map[string]string) {
	sections = make(map[string]string)

	known := make(map[string]string, len(headers))
	for _, h := range headers {
		known[strings.ToUpper(h)] = strings.ToLower(h)
	}

	current := ""
	bodies := make(map[string][]string)
	order := make([]string, 0, len(headers))

	for _, line := range splitLines(text) {
		name, inline, ok := matchHeader(line, known)
		if ok {
			current = name
			if _, seen := bodies[name]; !seen {
				order = append(order, name)
				bodies[name] = []string{}
			}
			if inline != "" {
				bodies[name] = append(bodies[name], inline)
			}
			continue
		}

		if current == "" {
			continue
		}
		bodies[current] = append(bodies[current], line)
	}

	for _, name := range order {
		sections[name] = strings.TrimSpace(strings.Join(bodies[name], "\n"))
	}

	return sections
}

// matchHeader reports whether line is a header line for one of known.
//
// Markdown heading marks and '*' emphasis wrapping the header are ignored, but
// a bulleted line ("* ", "- ", "• ") is never a header. A header carrying
// inline content after ':' must be written in capitals, so "Projects: led X"
// inside a section body stays body text.
func matchHeader(line string, known map[string]string) (name, inline string, ok bool) {
	candidate := strings.TrimSpace(line)
	candidate = strings.TrimSpace(strings.TrimLeft(candidate, "#"))
	if isBulleted(candidate) {
		return name, inline, ok
	}
	candidate = strings.TrimLeft(candidate, "*")
	candidate = strings.TrimRight(candidate, "* \t")
	if candidate == "" {
		return name, inline, ok
	}

	head := candidate
	rest := ""
	if idx := strings.Index(candidate, ":"); idx >= 0 {
		head = candidate[:idx]
		rest = candidate[idx+1:]
	}

	head = strings.TrimSpace(strings.TrimRight(head, "*"))
	name, ok = known[strings.ToUpper(head)]
	if !ok {
		return name, inline, ok
	}

	inline = strings.TrimSpace(strings.TrimLeft(rest, "* \t"))
	if inline != "" && head != strings.ToUpper(head) {
		name, inline, ok = "", "", false
		return name, inline, ok
	}

	return name, inline, ok
}

// isBulleted reports whether line starts with a list marker followed by a space.
func isBulleted(line string) (ok bool) {
	for _, marker := range []string{"* ", "- ", "• "} {
		if strings.HasPrefix(line, marker) {
			ok = true
			return ok
		}
	}
	return ok
}

// splitLines normalizes line endings and splits text into lines.
func splitLines(text string) (lines []string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines = strings.Split(text, "\n")
	return lines
}
