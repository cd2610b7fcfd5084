package profile

import (
	"os"

	"github.com/pkg/errors"
)

// Load reads and parses a profile file.
func Load(path string) (p Profile, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read profile file: %s", path)
		return p, err
	}

	p = Parse(string(data))

	return p, err
}

// Validate checks that the profile carries the fields a resume cannot do without.
func (p *Profile) Validate() (err error) {
	if p.Name == "" {
		err = errors.New("profile name is required (add a 'Name:' line)")
		return err
	}

	if p.Email == "" && p.Phone == "" {
		err = errors.New("profile needs at least one contact line ('Email:' or 'Phone:')")
		return err
	}

	return err
}
