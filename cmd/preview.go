package cmd

import (
	"context"
	"time"

	"github.com/nikogura/resume-forge/pkg/config"
	"github.com/nikogura/resume-forge/pkg/inputs"
	"github.com/nikogura/resume-forge/pkg/tailor"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var previewProfile string

//nolint:gochecknoglobals // Cobra boilerplate
var previewTemplate string

//nolint:gochecknoglobals // Cobra boilerplate
var previewOutput string

//nolint:gochecknoglobals // Cobra boilerplate
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the profile into the template without tailoring",
	Long: `Render a resume directly from the profile, with no API call and no API key.

Useful for checking how a profile parses and how a custom template looks before
spending a generation call on it.

Example:
  resume-forge preview --profile profile.txt
  resume-forge preview --profile profile.txt --template my.html --output out/preview.html`,
	RunE: runPreview,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVar(&previewProfile, "profile", "", "Plain-text profile file (required)")
	previewCmd.Flags().StringVar(&previewTemplate, "template", "", "HTML template (default from config, else built-in)")
	previewCmd.Flags().StringVar(&previewOutput, "output", "", "Output HTML path (default <output_dir>/<name>-preview.html)")
	_ = previewCmd.MarkFlagRequired("profile")
}

func runPreview(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	var set inputs.Set
	set, err = loadInputs(ctx, inputs.Paths{
		Profile:  previewProfile,
		Template: templatePath(previewTemplate, cfg),
	})
	if err != nil {
		return err
	}

	p := parseProfile(set.ProfileText)
	content := tailor.Fallback(p)

	_, err = writeResume(ctx, cfg, outputRequest{
		template:   set.Template,
		content:    content,
		name:       p.Name,
		outputFlag: previewOutput,
		suffix:     "preview",
	})

	return err
}
