package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nikogura/resume-forge/pkg/config"
	"github.com/nikogura/resume-forge/pkg/inputs"
	"github.com/nikogura/resume-forge/pkg/llm"
	"github.com/nikogura/resume-forge/pkg/profile"
	"github.com/nikogura/resume-forge/pkg/tailor"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Cobra boilerplate
var generateProfile string

//nolint:gochecknoglobals // Cobra boilerplate
var generateJob string

//nolint:gochecknoglobals // Cobra boilerplate
var generateTemplate string

//nolint:gochecknoglobals // Cobra boilerplate
var generateOutput string

//nolint:gochecknoglobals // Cobra boilerplate
var generatePDF bool

//nolint:gochecknoglobals // Cobra boilerplate
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a resume tailored to a job description",
	Long: `Generate an HTML resume tailored to a job description.

The job description can be provided as:
- A file path (e.g., jd.txt, or a saved posting.html)
- A URL (e.g., https://example.com/jobs/123)
- "-" to read it from stdin

Sections the model omits, leaves empty, or cuts short are rendered straight
from the profile. Contact details always come from the profile.

Example:
  resume-forge generate --profile profile.txt --job jd.txt
  resume-forge generate --profile profile.txt --job https://example.com/jobs/123 --pdf
  resume-forge generate --profile profile.txt --job jd.txt --template my.html --output out/acme.html`,
	RunE: runGenerate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&generateProfile, "profile", "", "Plain-text profile file (required)")
	generateCmd.Flags().StringVar(&generateJob, "job", "", "Job description file, URL, or - for stdin (required)")
	generateCmd.Flags().StringVar(&generateTemplate, "template", "", "HTML template (default from config, else built-in)")
	generateCmd.Flags().StringVar(&generateOutput, "output", "", "Output HTML path (default <output_dir>/<name>-resume.html)")
	generateCmd.Flags().BoolVar(&generatePDF, "pdf", false, "Also convert the HTML resume to PDF with pandoc")
	_ = generateCmd.MarkFlagRequired("profile")
	_ = generateCmd.MarkFlagRequired("job")
}

func runGenerate(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	// The credential is checked before any input is touched.
	err = cfg.RequireAPIKey()
	if err != nil {
		return err
	}

	runLogger := getLogger().With(
		zap.String("run_id", uuid.NewString()),
		zap.String("provider", cfg.Provider),
	)

	var set inputs.Set
	set, err = loadInputs(ctx, inputs.Paths{
		Profile:  generateProfile,
		Job:      generateJob,
		Template: templatePath(generateTemplate, cfg),
	})
	if err != nil {
		return err
	}

	p := parseProfile(set.ProfileText)

	var generator llm.Generator
	generator, err = llm.NewGenerator(ctx, cfg.LLMOptions())
	if err != nil {
		err = errors.Wrap(err, "failed to create generation client")
		return err
	}
	defer func() {
		closeErr := generator.Close()
		if closeErr != nil {
			runLogger.Debug("failed to close generation client", zap.Error(closeErr))
		}
	}()

	reconciler := tailor.NewReconciler(generator, runLogger)

	var result tailor.Result
	withProgress(fmt.Sprintf("Tailoring resume with %s...", generator.Name()), func() {
		result = reconciler.Reconcile(ctx, p, set.JobDescription)
	})

	reportResult(result)

	_, err = writeResume(ctx, cfg, outputRequest{
		template:   set.Template,
		content:    result.Content,
		name:       p.Name,
		outputFlag: generateOutput,
		suffix:     "resume",
		pdf:        generatePDF,
	})

	return err
}

// templatePath prefers the flag, then the config. Empty selects the built-in template.
func templatePath(flag string, cfg config.Config) (path string) {
	path = flag
	if path == "" {
		path = cfg.TemplatePath
	}
	return path
}

func loadInputs(ctx context.Context, paths inputs.Paths) (set inputs.Set, err error) {
	if getVerbose() {
		fmt.Printf("Loading profile from: %s\n", paths.Profile)
		if paths.Job != "" {
			fmt.Printf("Loading job description from: %s\n", paths.Job)
		}
		if paths.Template != "" {
			fmt.Printf("Loading template from: %s\n", paths.Template)
		}
	}

	set, err = inputs.Load(ctx, paths)
	if err != nil {
		err = errors.Wrap(err, "failed to load inputs")
		return set, err
	}

	if getVerbose() {
		fmt.Printf("✓ Inputs loaded (profile %d chars, job description %d chars)\n",
			len(set.ProfileText), len(set.JobDescription))
	}

	return set, err
}

// parseProfile parses profile text and warns about missing essentials.
func parseProfile(text string) (p profile.Profile) {
	p = profile.Parse(text)

	err := p.Validate()
	if err != nil {
		printWarning("%v", err)
	}

	return p
}

func reportResult(result tailor.Result) {
	if result.Degraded() {
		printWarning("tailoring unavailable (%v)", result.Err)
		printDetail("every section was rendered directly from the profile")
		return
	}

	if len(result.Fallbacks) == 0 {
		printSuccess("All sections tailored")
		return
	}

	printSuccess("Resume tailored")
	printDetail("rendered from profile: %s", strings.Join(result.Fallbacks, ", "))
}
