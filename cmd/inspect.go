package cmd

import (
	"fmt"
	"strings"

	"github.com/nikogura/resume-forge/pkg/format"
	"github.com/nikogura/resume-forge/pkg/profile"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//nolint:gochecknoglobals // Cobra boilerplate
var inspectProfile string

//nolint:gochecknoglobals // Cobra boilerplate
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show how a profile file is parsed",
	Long: `Show the fields and sections parsed from a profile, with the number of
entries each formatter will render.

Example:
  resume-forge inspect --profile profile.txt`,
	RunE: runInspect,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectProfile, "profile", "", "Plain-text profile file (required)")
	_ = inspectCmd.MarkFlagRequired("profile")
}

func runInspect(cmd *cobra.Command, args []string) (err error) {
	var p profile.Profile
	p, err = profile.Load(inspectProfile)
	if err != nil {
		return err
	}

	validateErr := p.Validate()
	if validateErr != nil {
		printWarning("%v", validateErr)
	}

	fmt.Print(describeProfile(p))

	return err
}

// describeProfile renders the inspect report.
func describeProfile(p profile.Profile) (report string) {
	titleCaser := cases.Title(language.English)
	fields := p.Fields()

	var b strings.Builder

	b.WriteString(styleHeading.Render("Fields"))
	b.WriteString("\n")
	for _, key := range []string{
		profile.KeyName, profile.KeyEmail, profile.KeyPhone, profile.KeyLinkedIn,
		profile.KeyGitHub, profile.KeyWebsite, profile.KeyTagline,
	} {
		value := fields[key]
		if value == "" {
			value = styleMuted.Render("(none)")
		}
		fmt.Fprintf(&b, "  %-10s %s\n", titleCaser.String(key)+":", value)
	}

	b.WriteString("\n")
	b.WriteString(styleHeading.Render("Sections"))
	b.WriteString("\n")
	for _, key := range profile.SectionKeys {
		fmt.Fprintf(&b, "  %-15s %s\n", titleCaser.String(key)+":", sectionSummary(key, fields[key]))
	}

	jobs := format.ExperienceEntries(p.Experience)
	if len(jobs) > 0 {
		b.WriteString("\n")
		b.WriteString(styleHeading.Render("Experience"))
		b.WriteString("\n")
		for i, entry := range jobs {
			job := format.ParseJob(entry)
			fmt.Fprintf(&b, "  %d. %s", i+1, job.Title)
			if job.Company != "" {
				fmt.Fprintf(&b, " @ %s", job.Company)
			}
			if job.Dates != "" {
				fmt.Fprintf(&b, " (%s)", job.Dates)
			}
			fmt.Fprintf(&b, ", %d bullets\n", len(job.Bullets))
		}
	}

	report = b.String()
	return report
}

// sectionSummary describes one section body: its size and the entries it renders as.
func sectionSummary(key, body string) (summary string) {
	if strings.TrimSpace(body) == "" {
		summary = styleMuted.Render("empty, default rendering")
		return summary
	}

	var count int
	var unit string
	switch key {
	case profile.KeySkills, profile.KeyAchievements, profile.KeyCertifications:
		count, unit = len(format.SplitItems(body)), "items"
	case profile.KeyExperience:
		count, unit = len(format.ExperienceEntries(body)), "entries"
	case profile.KeyProjects, profile.KeyEducation:
		count, unit = len(format.SplitEntries(body)), "entries"
	default:
		count, unit = len(strings.Fields(body)), "words"
	}

	summary = fmt.Sprintf("%d chars, %d %s", len(body), count, unit)
	return summary
}
