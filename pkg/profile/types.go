package profile

// Profile represents the personal information parsed from a plain-text profile.
// Every field is a string; absent data is the empty string.
type Profile struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	LinkedIn       string `json:"linkedin"`
	GitHub         string `json:"github"`
	Website        string `json:"website"`
	Tagline        string `json:"tagline"`
	Summary        string `json:"summary"`
	Skills         string `json:"skills"`
	Experience     string `json:"experience"`
	Achievements   string `json:"achievements"`
	Projects       string `json:"projects"`
	Certifications string `json:"certifications"`
	Education      string `json:"education"`
}

// Field keys, shared with generated content and template placeholders.
const (
	KeyName           = "name"
	KeyEmail          = "email"
	KeyPhone          = "phone"
	KeyLinkedIn       = "linkedin"
	KeyGitHub         = "github"
	KeyWebsite        = "website"
	KeyTagline        = "tagline"
	KeySummary        = "summary"
	KeySkills         = "skills"
	KeyExperience     = "experience"
	KeyAchievements   = "achievements"
	KeyProjects       = "projects"
	KeyCertifications = "certifications"
	KeyEducation      = "education"
)

// Keys lists every profile key in template order.
//
//nolint:gochecknoglobals // Fixed field list
var Keys = []string{
	KeyName,
	KeyEmail,
	KeyPhone,
	KeyLinkedIn,
	KeyGitHub,
	KeyWebsite,
	KeyTagline,
	KeySummary,
	KeySkills,
	KeyExperience,
	KeyAchievements,
	KeyProjects,
	KeyCertifications,
	KeyEducation,
}

// IdentityKeys are the contact fields that always come from the profile itself.
//
//nolint:gochecknoglobals // Fixed field list
var IdentityKeys = []string{KeyName, KeyEmail, KeyPhone, KeyLinkedIn, KeyGitHub}

// SectionKeys are the multi-line section bodies, in template order.
//
//nolint:gochecknoglobals // Fixed field list
var SectionKeys = []string{
	KeySummary,
	KeySkills,
	KeyExperience,
	KeyAchievements,
	KeyProjects,
	KeyCertifications,
	KeyEducation,
}

// Fields returns the profile as a key to value map.
func (p Profile) Fields() (fields map[string]string) {
	fields = map[string]string{
		KeyName:           p.Name,
		KeyEmail:          p.Email,
		KeyPhone:          p.Phone,
		KeyLinkedIn:       p.LinkedIn,
		KeyGitHub:         p.GitHub,
		KeyWebsite:        p.Website,
		KeyTagline:        p.Tagline,
		KeySummary:        p.Summary,
		KeySkills:         p.Skills,
		KeyExperience:     p.Experience,
		KeyAchievements:   p.Achievements,
		KeyProjects:       p.Projects,
		KeyCertifications: p.Certifications,
		KeyEducation:      p.Education,
	}
	return fields
}
