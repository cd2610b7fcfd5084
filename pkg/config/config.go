// Package config loads resume-forge settings from YAML and the environment.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nikogura/resume-forge/pkg/llm"
	"github.com/nikogura/resume-forge/pkg/renderer"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file.
const (
	EnvProvider = "RESUME_FORGE_PROVIDER"
	EnvModel    = "RESUME_FORGE_MODEL"
)

// DefaultOutputDir is where generated resumes go when output_dir is unset.
const DefaultOutputDir = "./output"

//nolint:gochecknoglobals // Provider credential lookup
var apiKeyEnv = map[string]string{
	llm.ProviderAnthropic: "ANTHROPIC_API_KEY",
	llm.ProviderOpenAI:    "OPENAI_API_KEY",
	llm.ProviderGemini:    "GEMINI_API_KEY",
}

// Config represents the application configuration.
type Config struct {
	Provider     string       `yaml:"provider" validate:"required,oneof=anthropic openai gemini"`
	APIKey       string       `yaml:"api_key,omitempty"`
	Model        string       `yaml:"model,omitempty"`
	BaseURL      string       `yaml:"base_url,omitempty" validate:"omitempty,url"`
	MaxTokens    int          `yaml:"max_tokens" validate:"gte=1,lte=200000"`
	TemplatePath string       `yaml:"template_path,omitempty"`
	OutputDir    string       `yaml:"output_dir" validate:"required"`
	Pandoc       PandocConfig `yaml:"pandoc"`
}

// PandocConfig holds pandoc-related configuration.
type PandocConfig struct {
	PDFEngine string `yaml:"pdf_engine" validate:"required"`
}

// Default returns the configuration used when no file is present.
func Default() (cfg Config) {
	cfg = Config{
		Provider:  llm.ProviderAnthropic,
		MaxTokens: llm.DefaultMaxTokens,
		OutputDir: DefaultOutputDir,
		Pandoc: PandocConfig{
			PDFEngine: renderer.DefaultPDFEngine,
		},
	}
	return cfg
}

// DefaultPath returns ~/.resume-forge/config.yaml.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".resume-forge", "config.yaml")
	return path, err
}

// Load reads configuration from file with environment variable overrides. An
// empty configPath selects the default location, which may be absent.
func Load(configPath string) (cfg Config, err error) {
	cfg = Default()

	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	var data []byte
	data, err = os.ReadFile(path)
	switch {
	case err == nil:
		err = yaml.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(err) && configPath == "":
		err = nil
	case os.IsNotExist(err):
		err = errors.Errorf("config file not found: %s (run 'resume-forge init' to create)", path)
		return cfg, err
	default:
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

func (c *Config) applyEnv() {
	if provider := os.Getenv(EnvProvider); provider != "" {
		c.Provider = provider
	}
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))

	if model := os.Getenv(EnvModel); model != "" {
		c.Model = model
	}

	if name, ok := apiKeyEnv[c.Provider]; ok {
		if apiKey := os.Getenv(name); apiKey != "" {
			c.APIKey = apiKey
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Provider == "" {
		c.Provider = llm.ProviderAnthropic
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = llm.DefaultMaxTokens
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Pandoc.PDFEngine == "" {
		c.Pandoc.PDFEngine = renderer.DefaultPDFEngine
	}
}

// Validate checks field values against their constraints.
func (c *Config) Validate() (err error) {
	err = validator.New().Struct(c)
	if err == nil {
		return err
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		err = errors.Errorf("invalid %s: failed %q check (value %v)", ve.Namespace(), ve.Tag(), ve.Value())
		return err
	}

	err = errors.Wrap(err, "invalid config")
	return err
}

// RequireAPIKey reports a missing credential for the configured provider.
func (c *Config) RequireAPIKey() (err error) {
	if c.APIKey != "" {
		return err
	}

	err = errors.Errorf("no API key for provider %q (set api_key in config or %s)", c.Provider, apiKeyEnv[c.Provider])
	return err
}

// LLMOptions returns the generator settings.
func (c *Config) LLMOptions() (opts llm.Options) {
	opts = llm.Options{
		Provider:  c.Provider,
		APIKey:    c.APIKey,
		Model:     c.Model,
		BaseURL:   c.BaseURL,
		MaxTokens: c.MaxTokens,
	}
	return opts
}

// InitConfig creates a starter configuration file and returns its path. The
// starter carries no API key.
func InitConfig(configPath string) (path string, err error) {
	path = configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return path, err
		}
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return path, err
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return path, err
	}

	// The key is left unset so a run fails on the missing credential until
	// the user adds one here or in the environment.
	starter := Default()

	var data []byte
	data, err = yaml.Marshal(starter)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return path, err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return path, err
	}

	return path, err
}
