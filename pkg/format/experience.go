package format

import (
	"strings"
)

const (
	// DefaultExperience is rendered when the profile has no experience.
	DefaultExperience = `<p class="empty-section">No experience provided</p>`

	defaultTitle  = "Position"
	defaultBullet = "Contributed to team goals and key deliverables"
)

// misSplitHeaders guard against entries that are really the start of another section.
//
//nolint:gochecknoglobals // Fixed keyword list
var misSplitHeaders = []string{"ACHIEVEMENTS", "EDUCATION", "PROJECTS", "CERTIFICATIONS", "SKILLS"}

// Job is one parsed experience entry.
type Job struct {
	Title    string
	Company  string
	Location string
	Dates    string
	Bullets  []string
}

// ExperienceEntries returns the experience entries that will be rendered,
// with mis-split section headers dropped.
func ExperienceEntries(text string) (entries []string) {
	entries = make([]string, 0)
	for _, entry := range SplitEntries(text) {
		if startsWithSectionHeader(entry) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// ParseJob parses a single experience entry.
func ParseJob(entry string) (job Job) {
	entryLines := nonBlankLines(entry)
	if len(entryLines) == 0 {
		job.Title = defaultTitle
		job.Bullets = []string{defaultBullet}
		return job
	}

	parts := strings.Split(entryLines[0], "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	job.Title = parts[0]
	if len(parts) > 1 {
		job.Company = parts[1]
	}
	if len(parts) > 2 {
		job.Location = parts[2]
	}
	if job.Title == "" {
		job.Title = defaultTitle
	}

	rest := entryLines[1:]
	if len(rest) > 0 && isDateRange(rest[0]) {
		job.Dates = rest[0]
		rest = rest[1:]
	}

	job.Bullets = make([]string, 0, len(rest))
	for _, line := range rest {
		bullet := stripBulletMarker(line)
		if bullet != "" {
			job.Bullets = append(job.Bullets, bullet)
		}
	}
	if len(job.Bullets) == 0 {
		job.Bullets = []string{defaultBullet}
	}

	return job
}

// Experience renders each experience entry as an experience-item block.
func Experience(text string) (fragment string) {
	entries := ExperienceEntries(text)
	if len(entries) == 0 {
		fragment = DefaultExperience
		return fragment
	}

	var b strings.Builder
	for _, entry := range entries {
		b.WriteString(jobHTML(ParseJob(entry)))
	}

	fragment = b.String()
	return fragment
}

func jobHTML(job Job) (block string) {
	var b strings.Builder

	b.WriteString(`<div class="experience-item">`)
	b.WriteString(`<div class="experience-header">`)
	b.WriteString(`<span class="job-title">` + escape(job.Title) + `</span>`)
	if job.Company != "" {
		b.WriteString(`<span class="company">` + escape(job.Company) + `</span>`)
	}
	if job.Location != "" {
		b.WriteString(`<span class="location">` + escape(job.Location) + `</span>`)
	}
	b.WriteString(`<span class="date">` + escape(job.Dates) + `</span>`)
	b.WriteString(`</div>`)

	b.WriteString(`<ul class="experience-bullets">`)
	for _, bullet := range job.Bullets {
		b.WriteString("<li>" + escape(bullet) + "</li>")
	}
	b.WriteString(`</ul>`)
	b.WriteString(`</div>`)

	block = b.String()
	return block
}

// isDateRange treats a line as a date range when it contains a hyphen or en
// dash and is not itself a bullet.
func isDateRange(line string) (ok bool) {
	if hasBulletMarker(line) {
		return ok
	}
	ok = strings.ContainsAny(line, "-–")
	return ok
}

func hasBulletMarker(line string) (ok bool) {
	line = strings.TrimSpace(line)
	ok = strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "*")
	return ok
}

func stripBulletMarker(line string) (bullet string) {
	bullet = strings.TrimSpace(line)
	bullet = strings.TrimPrefix(bullet, "-")
	bullet = strings.TrimPrefix(bullet, "•")
	bullet = strings.TrimPrefix(bullet, "*")
	bullet = strings.TrimSpace(bullet)
	return bullet
}

// startsWithSectionHeader reports whether the first line of entry is a bare
// section header such as "EDUCATION" or "**Skills:**". The whole line must be
// the header word, so a title like "Skills Trainer" is a job.
func startsWithSectionHeader(entry string) (ok bool) {
	first := strings.Trim(strings.TrimSpace(firstLineOf(entry)), "#* \t")
	head, _, _ := strings.Cut(first, ":")
	head = strings.ToUpper(strings.Trim(head, "* \t"))
	for _, header := range misSplitHeaders {
		if head == header {
			ok = true
			return ok
		}
	}
	return ok
}

func firstLineOf(text string) (line string) {
	line, _, _ = strings.Cut(strings.TrimSpace(text), "\n")
	return line
}
