package profile

import (
	"regexp"
	"strings"
)

// SectionHeaders is the fixed, ordered list of profile section headers.
//
//nolint:gochecknoglobals // Fixed header list
var SectionHeaders = []string{
	"SUMMARY",
	"SKILLS",
	"EXPERIENCE",
	"EDUCATION",
	"PROJECTS",
	"CERTIFICATIONS",
	"ACHIEVEMENTS",
}

//nolint:gochecknoglobals // Compiled once
var labelPatterns = map[string]*regexp.Regexp{
	KeyName:     labelPattern("Name"),
	KeyEmail:    labelPattern("Email"),
	KeyPhone:    labelPattern("Phone"),
	KeyLinkedIn: labelPattern("LinkedIn"),
	KeyGitHub:   labelPattern("GitHub"),
	KeyWebsite:  labelPattern("Website"),
	KeyTagline:  labelPattern("Tagline"),
}

func labelPattern(label string) (re *regexp.Regexp) {
	re = regexp.MustCompile(`(?mi)^[ \t]*` + regexp.QuoteMeta(label) + `[ \t]*:[ \t]*(.*)$`)
	return re
}

// Parse extracts labeled fields and named sections from profile text.
// It never fails: anything missing is the empty string.
func Parse(text string) (p Profile) {
	p.Name = labelValue(text, KeyName)
	p.Email = labelValue(text, KeyEmail)
	p.Phone = labelValue(text, KeyPhone)
	p.LinkedIn = labelValue(text, KeyLinkedIn)
	p.GitHub = labelValue(text, KeyGitHub)
	p.Website = labelValue(text, KeyWebsite)

	sections := SplitSections(text, SectionHeaders)
	p.Summary = sections["summary"]
	p.Skills = sections["skills"]
	p.Experience = sections["experience"]
	p.Education = sections["education"]
	p.Projects = sections["projects"]
	p.Certifications = sections["certifications"]
	p.Achievements = sections["achievements"]

	// Tagline is taken from the summary that was parsed above.
	p.Tagline = labelValue(text, KeyTagline)
	if p.Tagline == "" {
		p.Tagline = firstLine(p.Summary)
	}

	return p
}

// labelValue returns the trimmed remainder of the first "Label:" line for key.
func labelValue(text, key string) (value string) {
	re, ok := labelPatterns[key]
	if !ok {
		return value
	}

	match := re.FindStringSubmatch(text)
	if len(match) < 2 {
		return value
	}

	value = strings.TrimSpace(match[1])
	return value
}

func firstLine(text string) (line string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return line
	}

	line, _, _ = strings.Cut(text, "\n")
	line = strings.TrimSpace(line)
	return line
}
