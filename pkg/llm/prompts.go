package llm

import (
	"encoding/json"
	"fmt"

	"github.com/nikogura/resume-forge/pkg/profile"
)

// SystemPrompt frames every tailoring request.
const SystemPrompt = `You are an expert resume writer. You tailor resume content to a specific job description without inventing employers, titles, dates, degrees or contact details.`

// ResponseLabels are the section labels the model must emit, in order.
//
//nolint:gochecknoglobals // Fixed response format
var ResponseLabels = []string{
	"WEBSITE",
	"TAGLINE",
	"SUMMARY",
	"SKILLS",
	"EXPERIENCE",
	"ACHIEVEMENTS",
	"PROJECTS",
	"CERTIFICATIONS",
	"EDUCATION",
}

// BuildTailoringPrompt creates the single tailoring prompt for a profile and job description.
//
//nolint:funlen // Prompt template with explicit output format
func BuildTailoringPrompt(p profile.Profile, jobDescription string) (prompt string) {
	profileJSON, _ := json.MarshalIndent(p, "", "  ")

	prompt = fmt.Sprintf(`Tailor the candidate's resume content to the job description below.

JOB DESCRIPTION:
%s

CANDIDATE PROFILE:
%s

RULES:
- Preserve EVERY experience entry from the profile. Do not drop, merge or reorder positions.
- Keep company names, job titles, locations and dates exactly as given.
- Rephrase and reorder bullets, skills and achievements to emphasize what the job asks for.
- Never add skills, certifications or degrees the candidate does not list.
- Emit HTML fragments only. No markdown, no code fences, no <html> or <body> tags.

Return plain text with these labeled sections, in this order, each label on its own line:

WEBSITE:
<the candidate's website, unchanged, or empty>

TAGLINE:
<one line professional headline aimed at this role>

SUMMARY:
<p>Two or three sentences tailored to the role.</p>

SKILLS:
<span class="skill">Go</span> <span class="skill">Kubernetes</span>

EXPERIENCE:
<div class="experience-item"><div class="experience-header"><span class="job-title">Staff Engineer</span><span class="company">Acme Corp</span><span class="location">Remote</span><span class="date">2020 - Present</span></div><ul class="experience-bullets"><li>Tailored bullet</li></ul></div>
(one experience-item block per position in the profile)

ACHIEVEMENTS:
<ul class="achievements"><li>Achievement</li></ul>

PROJECTS:
<div class="project-item"><strong>Project name</strong><p>Description</p></div>

CERTIFICATIONS:
<ul class="certifications compact"><li>Certification</li></ul>

EDUCATION:
<div class="education-item"><strong>Degree</strong><p>Institution, year</p></div>`, jobDescription, string(profileJSON))

	return prompt
}
