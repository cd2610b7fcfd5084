package cmd

import (
	"github.com/nikogura/resume-forge/pkg/config"
	"github.com/nikogura/resume-forge/pkg/renderer"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initTemplateOut string

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config file",
	Long: `Create a starter config file at $HOME/.resume-forge/config.yaml (or --config).

Use --template-out to also write the built-in HTML template for customization.
Existing files are never overwritten.`,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initTemplateOut, "template-out", "", "Also write the built-in template to this path")
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	var path string
	path, err = config.InitConfig(getConfigFile())
	if err != nil {
		return err
	}

	printSuccess("Config written to: %s", path)
	printDetail("set api_key there, or export ANTHROPIC_API_KEY / OPENAI_API_KEY / GEMINI_API_KEY")

	if initTemplateOut == "" {
		return err
	}

	err = renderer.WriteTemplate(initTemplateOut)
	if err != nil {
		return err
	}

	printSuccess("Template written to: %s", initTemplateOut)
	printDetail("point template_path in the config at it, or pass --template")

	return err
}
