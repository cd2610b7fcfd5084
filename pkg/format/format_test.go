package format

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHTML(t *testing.T, fragment string) (doc *goquery.Document) {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	require.NoError(t, err)
	return doc
}

func TestDefaultsForEmptyInput(t *testing.T) {
	formatters := map[string]struct {
		fn   func(string) string
		want string
	}{
		"skills":         {Skills, DefaultSkills},
		"experience":     {Experience, DefaultExperience},
		"achievements":   {Achievements, DefaultAchievements},
		"projects":       {Projects, DefaultProjects},
		"certifications": {Certifications, DefaultCertifications},
		"education":      {Education, DefaultEducation},
	}

	for name, f := range formatters {
		t.Run(name, func(t *testing.T) {
			for _, input := range []string{"", "   ", "\n\t\n"} {
				got := f.fn(input)
				assert.NotEmpty(t, got)
				assert.Equal(t, f.want, got)
				assert.Equal(t, got, f.fn(input))
			}
		})
	}
}

func TestSkillsNoSkillsScenario(t *testing.T) {
	assert.Equal(t, `<span class="skill">No skills provided</span>`, Skills(""))
}

func TestSkills(t *testing.T) {
	got := Skills("- Go - Kubernetes -  - Terraform ")
	assert.Equal(t, `<span class="skill">Go</span> <span class="skill">Kubernetes</span> <span class="skill">Terraform</span>`, got)
}

func TestSkillsEscapes(t *testing.T) {
	assert.Equal(t, `<span class="skill">C&amp;C++</span> <span class="skill">&lt;b&gt;</span>`, Skills("C&C++ - <b>"))
}

func TestSplitEntries(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: []string{}},
		{name: "single", text: "Engineer\n- did things", want: []string{"Engineer\n- did things"}},
		{
			name: "two entries",
			text: "Engineer\n- a\n\nManager\n- b",
			want: []string{"Engineer\n- a", "Manager\n- b"},
		},
		{
			name: "blank before digit continues",
			text: "Engineer\n\n2020 - 2021\n- a",
			want: []string{"Engineer\n2020 - 2021\n- a"},
		},
		{
			name: "blank before bullet continues",
			text: "Engineer\n\n- a\n\n\nManager",
			want: []string{"Engineer\n- a", "Manager"},
		},
		{
			name: "leading blank lines",
			text: "\n\nEngineer",
			want: []string{"Engineer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitEntries(tt.text))
		})
	}
}

func TestExperienceTwoEntries(t *testing.T) {
	text := "Staff Engineer | Acme | Remote\n2020 - Present\n- Led platform\n- Cut costs\n\nEngineer | Globex\n2016 – 2020\n- Built billing"

	doc := parseHTML(t, Experience(text))

	items := doc.Find(".experience-item")
	require.Equal(t, 2, items.Length())
	items.Each(func(_ int, item *goquery.Selection) {
		assert.Equal(t, 1, item.Find(".experience-header").Length())
		assert.Equal(t, 1, item.Find("ul").Length())
	})

	first := items.First()
	assert.Equal(t, "Staff Engineer", first.Find(".job-title").Text())
	assert.Equal(t, "Acme", first.Find(".company").Text())
	assert.Equal(t, "Remote", first.Find(".location").Text())
	assert.Equal(t, "2020 - Present", first.Find(".date").Text())
	assert.Equal(t, 2, first.Find("li").Length())
	assert.Equal(t, "Led platform", first.Find("li").First().Text())

	second := items.Last()
	assert.Equal(t, "2016 – 2020", second.Find(".date").Text())
	assert.Equal(t, 0, second.Find(".location").Length())
}

func TestExperienceBlockCountMatchesEntries(t *testing.T) {
	for n := 1; n <= 5; n++ {
		var parts []string
		for i := 0; i < n; i++ {
			parts = append(parts, "Engineer | Co\n- work")
		}
		fragment := Experience(strings.Join(parts, "\n\n"))
		assert.Equal(t, n, strings.Count(fragment, `class="experience-item"`))
	}
}

func TestExperienceDropsMisSplitHeaders(t *testing.T) {
	text := "Engineer | Co\n- work\n\nEDUCATION\nMIT\n\nManager | Other\n- lead"

	assert.Len(t, ExperienceEntries(text), 2)
	assert.Equal(t, 2, strings.Count(Experience(text), `class="experience-item"`))
}

func TestExperienceKeepsTitlesStartingWithHeaderWords(t *testing.T) {
	text := "Skills Trainer | Acme\n- Ran workshops\n\n" +
		"Education Coordinator | State University\n- Planned curricula\n\n" +
		"Projects:\n- side work\n\n" +
		"EDUCATION\nMIT"

	entries := ExperienceEntries(text)

	require.Len(t, entries, 2)
	assert.True(t, strings.HasPrefix(entries[0], "Skills Trainer"))
	assert.True(t, strings.HasPrefix(entries[1], "Education Coordinator"))

	doc := parseHTML(t, Experience(text))
	assert.Equal(t, 2, doc.Find(".experience-item").Length())
	assert.Equal(t, "Skills Trainer", doc.Find(".job-title").First().Text())
}

func TestParseJob(t *testing.T) {
	tests := []struct {
		name  string
		entry string
		want  Job
	}{
		{
			name:  "full header",
			entry: "SRE | Acme | Remote\nJan 2020 - Dec 2021\n- Kept things up",
			want:  Job{Title: "SRE", Company: "Acme", Location: "Remote", Dates: "Jan 2020 - Dec 2021", Bullets: []string{"Kept things up"}},
		},
		{
			name:  "no dates",
			entry: "SRE | Acme\nKept things up",
			want:  Job{Title: "SRE", Company: "Acme", Bullets: []string{"Kept things up"}},
		},
		{
			name:  "bullet second line is not a date",
			entry: "SRE\n- Kept things up\n- Paged less",
			want:  Job{Title: "SRE", Bullets: []string{"Kept things up", "Paged less"}},
		},
		{
			name:  "no bullets gets placeholder",
			entry: "SRE | Acme\n2020 - 2021",
			want:  Job{Title: "SRE", Company: "Acme", Dates: "2020 - 2021", Bullets: []string{defaultBullet}},
		},
		{
			name:  "empty title defaults",
			entry: " | Acme",
			want:  Job{Title: defaultTitle, Company: "Acme", Bullets: []string{defaultBullet}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseJob(tt.entry))
		})
	}
}

func TestAchievements(t *testing.T) {
	doc := parseHTML(t, Achievements("- Won award\n- Shipped v2"))

	items := doc.Find("ul.achievements li")
	require.Equal(t, 2, items.Length())
	assert.Equal(t, "Shipped v2", items.Last().Text())
}

func TestDefaultAchievementsHasThreeItems(t *testing.T) {
	assert.Equal(t, 3, parseHTML(t, DefaultAchievements).Find("li").Length())
}

func TestCertifications(t *testing.T) {
	got := Certifications("- CKA - CKAD")
	assert.Equal(t, `<ul class="certifications compact"><li>CKA</li><li>CKAD</li></ul>`, got)
}

func TestProjects(t *testing.T) {
	doc := parseHTML(t, Projects("kubefmt\nFormats manifests.\nWritten in Go.\n\nlogtail\nTails logs."))

	items := doc.Find(".project-item")
	require.Equal(t, 2, items.Length())
	assert.Equal(t, "kubefmt", items.First().Find("strong").Text())
	assert.Equal(t, "Formats manifests. Written in Go.", items.First().Find("p").Text())
}

func TestEducation(t *testing.T) {
	got := Education("B.Sc. Computer Science\nState University\n2012\n\nBootcamp")

	doc := parseHTML(t, got)
	items := doc.Find(".education-item")
	require.Equal(t, 2, items.Length())
	assert.Equal(t, "State University 2012", items.First().Find("p").Text())
	assert.Equal(t, 0, items.Last().Find("p").Length())
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "", Summary("  "))
	assert.Equal(t, "<p>Line one line two</p><p>Next</p>", Summary("Line one\nline two\n\nNext"))
}
