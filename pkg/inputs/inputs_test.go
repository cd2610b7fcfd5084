package inputs

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/nikogura/resume-forge/pkg/jd"
	"github.com/nikogura/resume-forge/pkg/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeFile(t *testing.T, dir, name, content string) (path string) {
	t.Helper()
	path = filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	paths := Paths{
		Profile:  writeFile(t, dir, "profile.txt", "Name: Jane Doe"),
		Job:      writeFile(t, dir, "job.txt", "Platform engineer"),
		Template: writeFile(t, dir, "resume.html", "<h1>{{name}}</h1>"),
	}

	set, err := Load(context.Background(), paths)

	require.NoError(t, err)
	assert.Equal(t, Set{
		ProfileText:    "Name: Jane Doe",
		JobDescription: "Platform engineer",
		Template:       "<h1>{{name}}</h1>",
	}, set)
}

func TestLoadDefaultTemplate(t *testing.T) {
	dir := t.TempDir()

	set, err := Load(context.Background(), Paths{Profile: writeFile(t, dir, "profile.txt", "Name: Jane")})

	require.NoError(t, err)
	assert.Equal(t, renderer.DefaultTemplate, set.Template)
	assert.Empty(t, set.JobDescription)
}

func TestLoadJobFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><h1>SRE</h1></body></html>"))
	}))
	defer server.Close()

	dir := t.TempDir()
	set, err := Load(context.Background(), Paths{
		Profile: writeFile(t, dir, "profile.txt", "Name: Jane"),
		Job:     server.URL,
	})

	require.NoError(t, err)
	assert.Equal(t, "SRE", set.JobDescription)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	profilePath := writeFile(t, dir, "profile.txt", "Name: Jane")
	jobPath := writeFile(t, dir, "job.txt", "Engineer")

	tests := []struct {
		name    string
		paths   Paths
		wantMsg string
	}{
		{
			name:    "missing profile",
			paths:   Paths{Profile: filepath.Join(dir, "nope.txt"), Job: jobPath},
			wantMsg: "nope.txt",
		},
		{
			name:    "missing job",
			paths:   Paths{Profile: profilePath, Job: filepath.Join(dir, "gone.txt")},
			wantMsg: "gone.txt",
		},
		{
			name:    "missing template",
			paths:   Paths{Profile: profilePath, Job: jobPath, Template: filepath.Join(dir, "missing.html")},
			wantMsg: "missing.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Load(context.Background(), tt.paths)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Equal(t, Set{}, set)
		})
	}
}

func TestLoadCanceledContext(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, Paths{Profile: writeFile(t, dir, "profile.txt", "Name: Jane")})

	assert.ErrorIs(t, err, context.Canceled)
}

// pipeStdin replaces os.Stdin with a pipe holding content.
func pipeStdin(t *testing.T, content string) (r *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	orig := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = orig
		_ = r.Close()
	})
	return r
}

func TestLoadJobFromStdin(t *testing.T) {
	pipeStdin(t, "Backend engineer\n")
	dir := t.TempDir()

	set, err := Load(context.Background(), Paths{
		Profile: writeFile(t, dir, "profile.txt", "Name: Jane"),
		Job:     jd.StdinInput,
	})

	require.NoError(t, err)
	assert.Equal(t, "Backend engineer", set.JobDescription)
	assert.Equal(t, "Name: Jane", set.ProfileText)
}

func TestLoadStdinUntouchedWhenFileFails(t *testing.T) {
	stdin := pipeStdin(t, "Backend engineer\n")
	dir := t.TempDir()

	set, err := Load(context.Background(), Paths{
		Profile: filepath.Join(dir, "nope.txt"),
		Job:     jd.StdinInput,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.txt")
	assert.Equal(t, Set{}, set)

	unread, readErr := io.ReadAll(stdin)
	require.NoError(t, readErr)
	assert.Equal(t, "Backend engineer\n", string(unread))
}
