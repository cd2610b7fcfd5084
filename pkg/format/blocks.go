package format

import (
	"strings"
)

const (
	// DefaultProjects is rendered when the profile has no projects.
	DefaultProjects = `<p class="empty-section">No projects listed</p>`

	// DefaultEducation is rendered when the profile has no education.
	DefaultEducation = `<p class="empty-section">No education listed</p>`
)

// Projects renders each project entry as a bold name plus a description.
func Projects(text string) (fragment string) {
	entries := SplitEntries(text)
	if len(entries) == 0 {
		fragment = DefaultProjects
		return fragment
	}

	var b strings.Builder
	for _, entry := range entries {
		name, description := headAndBody(entry)
		b.WriteString(`<div class="project-item">`)
		b.WriteString(`<strong>` + escape(name) + `</strong>`)
		if description != "" {
			b.WriteString(`<p>` + escape(description) + `</p>`)
		}
		b.WriteString(`</div>`)
	}

	fragment = b.String()
	return fragment
}

// Education renders each education entry with its first line in bold.
func Education(text string) (fragment string) {
	entries := SplitEntries(text)
	if len(entries) == 0 {
		fragment = DefaultEducation
		return fragment
	}

	var b strings.Builder
	for _, entry := range entries {
		degree, details := headAndBody(entry)
		b.WriteString(`<div class="education-item">`)
		b.WriteString(`<strong>` + escape(degree) + `</strong>`)
		if details != "" {
			b.WriteString(`<p>` + escape(details) + `</p>`)
		}
		b.WriteString(`</div>`)
	}

	fragment = b.String()
	return fragment
}

// Summary renders blank-line separated paragraphs. An empty summary renders
// as nothing, since templates treat it as optional.
func Summary(text string) (fragment string) {
	if isBlank(text) {
		return fragment
	}

	var b strings.Builder
	for _, paragraph := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		paragraph = strings.Join(nonBlankLines(paragraph), " ")
		if paragraph == "" {
			continue
		}
		b.WriteString(`<p>` + escape(paragraph) + `</p>`)
	}

	fragment = b.String()
	return fragment
}

// headAndBody returns the first line of an entry and the remaining lines joined with spaces.
func headAndBody(entry string) (head, body string) {
	entryLines := nonBlankLines(entry)
	if len(entryLines) == 0 {
		return head, body
	}

	head = entryLines[0]
	body = strings.Join(entryLines[1:], " ")
	return head, body
}
