// Package inputs reads everything a run needs before generation starts.
package inputs

import (
	"context"
	"os"

	"github.com/nikogura/resume-forge/pkg/jd"
	"github.com/nikogura/resume-forge/pkg/renderer"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Paths names the run inputs. Job may be a file path, an http(s) URL, or
// jd.StdinInput. An empty Job skips the job description; an empty Template
// selects the built-in one.
type Paths struct {
	Profile  string
	Job      string
	Template string
}

// Set holds the loaded inputs.
type Set struct {
	ProfileText    string
	JobDescription string
	Template       string
}

// Load reads the profile, job description and template concurrently. The first
// failure cancels the remaining reads and is returned.
//
// A job description on standard input is read only after the files load, since
// a stdin read cannot be canceled and would hold up a failing run.
func Load(ctx context.Context, paths Paths) (set Set, err error) {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() (readErr error) {
		set.ProfileText, readErr = readFile(gCtx, paths.Profile, "profile")
		return readErr
	})

	if paths.Job != "" && paths.Job != jd.StdinInput {
		g.Go(func() (fetchErr error) {
			set.JobDescription, fetchErr = jd.FetchWithContext(gCtx, paths.Job)
			return fetchErr
		})
	}

	g.Go(func() (readErr error) {
		if paths.Template == "" {
			set.Template = renderer.DefaultTemplate
			return readErr
		}
		set.Template, readErr = readFile(gCtx, paths.Template, "template")
		return readErr
	})

	err = g.Wait()
	if err != nil {
		set = Set{}
		return set, err
	}

	if paths.Job == jd.StdinInput {
		set.JobDescription, err = jd.FetchWithContext(ctx, paths.Job)
		if err != nil {
			set = Set{}
			return set, err
		}
	}

	return set, err
}

func readFile(ctx context.Context, path, kind string) (content string, err error) {
	err = ctx.Err()
	if err != nil {
		return content, err
	}

	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read %s file: %s", kind, path)
		return content, err
	}

	content = string(data)
	return content, err
}
