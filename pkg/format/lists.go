package format

import (
	"strings"
)

const (
	// DefaultSkills is rendered when the profile has no skills.
	DefaultSkills = `<span class="skill">No skills provided</span>`

	// DefaultAchievements is rendered when the profile has no achievements.
	DefaultAchievements = `<ul class="achievements">` +
		`<li>Delivered key projects on schedule and within scope</li>` +
		`<li>Improved team processes and collaboration</li>` +
		`<li>Recognized for quality of work and reliability</li>` +
		`</ul>`

	// DefaultCertifications is rendered when the profile has no certifications.
	DefaultCertifications = `<ul class="certifications compact"><li>No certifications listed</li></ul>`
)

// Skills renders '-' delimited skills as inline skill tags.
func Skills(text string) (fragment string) {
	items := SplitItems(text)
	if len(items) == 0 {
		fragment = DefaultSkills
		return fragment
	}

	tags := make([]string, len(items))
	for i, item := range items {
		tags[i] = `<span class="skill">` + escape(item) + `</span>`
	}

	fragment = strings.Join(tags, " ")
	return fragment
}

// Achievements renders '-' delimited achievements as a bulleted list.
func Achievements(text string) (fragment string) {
	items := SplitItems(text)
	if len(items) == 0 {
		fragment = DefaultAchievements
		return fragment
	}

	fragment = listHTML(`<ul class="achievements">`, items)
	return fragment
}

// Certifications renders '-' delimited certifications as a compact list.
func Certifications(text string) (fragment string) {
	items := SplitItems(text)
	if len(items) == 0 {
		fragment = DefaultCertifications
		return fragment
	}

	fragment = listHTML(`<ul class="certifications compact">`, items)
	return fragment
}

func listHTML(open string, items []string) (fragment string) {
	var b strings.Builder
	b.WriteString(open)
	for _, item := range items {
		b.WriteString("<li>")
		b.WriteString(escape(item))
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")

	fragment = b.String()
	return fragment
}
