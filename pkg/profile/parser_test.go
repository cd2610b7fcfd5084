package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProfile = `Name: Jane Doe
Email: jane@example.com
Phone: +1 555 0100
LinkedIn: linkedin.com/in/janedoe
GitHub: github.com/janedoe
Website: janedoe.dev

SUMMARY
Platform engineer focused on reliable infrastructure.
Ten years of building distributed systems.

SKILLS
- Go - Kubernetes - Terraform

EXPERIENCE
Staff Engineer | Acme Corp | Remote
2020 - Present
- Led the platform team
- Cut deploy times in half

Senior Engineer | Globex | Berlin
2016 - 2020
- Built the billing pipeline

EDUCATION
B.Sc. Computer Science
State University, 2012

PROJECTS
kubefmt
Formatter for Kubernetes manifests.

CERTIFICATIONS
- CKA - AWS Solutions Architect

ACHIEVEMENTS
- Speaker at GopherCon
`

func TestParse(t *testing.T) {
	p := Parse(sampleProfile)

	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "jane@example.com", p.Email)
	assert.Equal(t, "+1 555 0100", p.Phone)
	assert.Equal(t, "linkedin.com/in/janedoe", p.LinkedIn)
	assert.Equal(t, "github.com/janedoe", p.GitHub)
	assert.Equal(t, "janedoe.dev", p.Website)

	assert.Equal(t, "Platform engineer focused on reliable infrastructure.\nTen years of building distributed systems.", p.Summary)
	assert.Equal(t, "- Go - Kubernetes - Terraform", p.Skills)
	assert.Contains(t, p.Experience, "Staff Engineer | Acme Corp | Remote")
	assert.Contains(t, p.Experience, "Built the billing pipeline")
	assert.NotContains(t, p.Experience, "EDUCATION")
	assert.Equal(t, "B.Sc. Computer Science\nState University, 2012", p.Education)
	assert.Equal(t, "kubefmt\nFormatter for Kubernetes manifests.", p.Projects)
	assert.Equal(t, "- CKA - AWS Solutions Architect", p.Certifications)
	assert.Equal(t, "- Speaker at GopherCon", p.Achievements)
}

func TestParseMissingFieldsAreEmpty(t *testing.T) {
	p := Parse("Name: Jane Doe\nEmail: jane@x.com\n")

	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "jane@x.com", p.Email)

	for _, key := range Keys {
		if key == KeyName || key == KeyEmail {
			continue
		}
		assert.Empty(t, p.Fields()[key], "field %s should be empty", key)
	}
}

func TestParseEmptyText(t *testing.T) {
	p := Parse("")
	assert.Equal(t, Profile{}, p)
}

func TestParseCaseInsensitive(t *testing.T) {
	p := Parse("name: jane\nskills\n- Go\nExperience:\nEngineer | Co\n")

	assert.Equal(t, "jane", p.Name)
	assert.Equal(t, "- Go", p.Skills)
	assert.Equal(t, "Engineer | Co", p.Experience)
}

func TestParseTagline(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "derived from summary",
			text: "SUMMARY\nBuilder of things.\nSecond line.\n",
			want: "Builder of things.",
		},
		{
			name: "explicit label wins",
			text: "Tagline: Gopher\nSUMMARY\nBuilder of things.\n",
			want: "Gopher",
		},
		{
			name: "no summary",
			text: "Name: Jane\n",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text).Tagline)
		})
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "profile.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleProfile), 0600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", p.Name)
}

func TestLoadNonexistent(t *testing.T) {
	_, err := Load("/nonexistent/profile.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/nonexistent/profile.txt")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		profile   Profile
		wantError bool
	}{
		{name: "valid", profile: Profile{Name: "Jane", Email: "j@x.com"}},
		{name: "phone only", profile: Profile{Name: "Jane", Phone: "555"}},
		{name: "missing name", profile: Profile{Email: "j@x.com"}, wantError: true},
		{name: "missing contact", profile: Profile{Name: "Jane"}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
