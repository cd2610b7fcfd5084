package tailor

import (
	"context"
	"regexp"
	"strings"

	"github.com/nikogura/resume-forge/pkg/format"
	"github.com/nikogura/resume-forge/pkg/llm"
	"github.com/nikogura/resume-forge/pkg/profile"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrNoGenerator is reported when reconciliation runs without a generation client.
var ErrNoGenerator = errors.New("no generator configured")

//nolint:gochecknoglobals // Compiled once
var experienceMarker = regexp.MustCompile(`class\s*=\s*["'][^"']*\bexperience-item\b`)

// Reconciler merges generated content with the deterministic rendering of a profile.
type Reconciler struct {
	generator llm.Generator
	cleaner   *Cleaner
	logger    *zap.Logger
}

// NewReconciler creates a Reconciler. A nil logger disables logging; a nil
// generator makes every reconciliation fall back to deterministic rendering.
func NewReconciler(generator llm.Generator, logger *zap.Logger) (r *Reconciler) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r = &Reconciler{
		generator: generator,
		cleaner:   NewCleaner(),
		logger:    logger,
	}
	return r
}

// Reconcile calls the generator once and keeps each generated section unless it
// is empty or fails validation, in which case the deterministic rendering is used.
// Contact fields always come from the profile. Reconcile never fails: a failed
// call yields the full fallback with Result.Err set.
func (r *Reconciler) Reconcile(ctx context.Context, p profile.Profile, jobDescription string) (result Result) {
	if r.generator == nil {
		result = fullFallback(p, ErrNoGenerator)
		return result
	}

	r.logger.Info("requesting tailored content",
		zap.String("provider", r.generator.Name()),
		zap.Int("job_description_chars", len(jobDescription)))

	reply, err := r.generator.Generate(ctx, llm.BuildTailoringPrompt(p, jobDescription))
	if err != nil {
		r.logger.Warn("generation failed, rendering profile deterministically", zap.Error(err))
		result = fullFallback(p, errors.Wrap(err, "generation failed"))
		return result
	}

	r.logger.Info("received tailored content", zap.Int("chars", len(reply)))

	sections := r.extract(reply)
	if len(sections) == 0 {
		r.logger.Warn("reply contained no recognizable sections")
	}

	fallbacks := fallbackFuncs(p)
	profileJobs := len(format.ExperienceEntries(p.Experience))

	result.Content = make(Content, len(profile.Keys))
	result.Fallbacks = []string{}

	for _, key := range generatedKeys() {
		valid := nonEmpty
		if key == profile.KeyExperience {
			valid = coversExperience(profileJobs)
		}

		value, usedFallback := choose(sections[key], valid, fallbacks[key])
		result.Content[key] = value

		if usedFallback {
			result.Fallbacks = append(result.Fallbacks, key)
			r.logFallback(key, sections[key], profileJobs)
		}
	}

	copyIdentity(result.Content, p)

	return result
}

// extract splits a reply into cleaned, labeled sections.
func (r *Reconciler) extract(reply string) (sections map[string]string) {
	sections = ExtractSections(reply)
	for key, fragment := range sections {
		cleaned, applied := r.cleaner.Clean(fragment)
		if len(applied) > 0 {
			r.logger.Debug("cleaned generated section", zap.String("section", key), zap.Strings("fixes", applied))
		}
		sections[key] = cleaned
	}
	return sections
}

func (r *Reconciler) logFallback(key, generated string, profileJobs int) {
	if key == profile.KeyExperience && strings.TrimSpace(generated) != "" {
		r.logger.Warn("generated experience dropped positions, using profile experience",
			zap.Int("profile_entries", profileJobs),
			zap.Int("generated_entries", countExperienceBlocks(generated)))
		return
	}
	r.logger.Debug("section missing from reply, using profile rendering", zap.String("section", key))
}

// ExtractSections returns the labeled sections of a model reply, keyed by
// lowercase label. Labels are matched case-insensitively.
func ExtractSections(reply string) (sections map[string]string) {
	sections = profile.SplitSections(llm.StripCodeFences(reply), llm.ResponseLabels)
	return sections
}

// choose keeps generated when valid accepts it, otherwise it renders the fallback.
func choose(generated string, valid func(string) bool, fallback func() string) (value string, usedFallback bool) {
	if valid(generated) {
		value = generated
		return value, usedFallback
	}

	value = fallback()
	usedFallback = true
	return value, usedFallback
}

func nonEmpty(fragment string) (ok bool) {
	ok = strings.TrimSpace(fragment) != ""
	return ok
}

// coversExperience rejects generated experience with fewer blocks than the profile has entries.
func coversExperience(profileEntries int) (valid func(string) bool) {
	valid = func(fragment string) (ok bool) {
		if !nonEmpty(fragment) {
			return ok
		}
		ok = countExperienceBlocks(fragment) >= profileEntries
		return ok
	}
	return valid
}

func countExperienceBlocks(fragment string) (count int) {
	count = len(experienceMarker.FindAllStringIndex(fragment, -1))
	return count
}

// fallbackFuncs returns the deterministic rendering for every generated key.
func fallbackFuncs(p profile.Profile) (funcs map[string]func() string) {
	funcs = map[string]func() string{
		profile.KeyWebsite:        func() string { return p.Website },
		profile.KeyTagline:        func() string { return p.Tagline },
		profile.KeySummary:        func() string { return format.Summary(p.Summary) },
		profile.KeySkills:         func() string { return format.Skills(p.Skills) },
		profile.KeyExperience:     func() string { return format.Experience(p.Experience) },
		profile.KeyAchievements:   func() string { return format.Achievements(p.Achievements) },
		profile.KeyProjects:       func() string { return format.Projects(p.Projects) },
		profile.KeyCertifications: func() string { return format.Certifications(p.Certifications) },
		profile.KeyEducation:      func() string { return format.Education(p.Education) },
	}
	return funcs
}

func fullFallback(p profile.Profile, cause error) (result Result) {
	result.Content = Fallback(p)
	result.Err = cause
	result.Fallbacks = generatedKeys()
	return result
}
