// Package tailor reconciles language-model output with the deterministic
// rendering of a profile.
package tailor

import (
	"sort"

	"github.com/nikogura/resume-forge/pkg/profile"
)

// Content maps each profile key to a ready-to-insert HTML fragment.
type Content map[string]string

// Result is the outcome of one reconciliation.
type Result struct {
	Content Content
	// Fallbacks lists, sorted, the keys rendered deterministically.
	Fallbacks []string
	// Err is the generation failure, if the call failed entirely.
	Err error
}

// Degraded reports whether the whole result is the deterministic fallback.
func (r Result) Degraded() (degraded bool) {
	degraded = r.Err != nil
	return degraded
}

// Fallback renders a profile without any generated content.
func Fallback(p profile.Profile) (content Content) {
	content = make(Content, len(profile.Keys))
	for key, render := range fallbackFuncs(p) {
		content[key] = render()
	}
	copyIdentity(content, p)
	return content
}

// Complete fills every missing profile key with the empty string.
func (c Content) Complete() (complete Content) {
	complete = make(Content, len(profile.Keys))
	for _, key := range profile.Keys {
		complete[key] = ""
	}
	for key, value := range c {
		complete[key] = value
	}
	return complete
}

// copyIdentity copies the contact fields verbatim from the profile.
func copyIdentity(content Content, p profile.Profile) {
	fields := p.Fields()
	for _, key := range profile.IdentityKeys {
		content[key] = fields[key]
	}
}

// generatedKeys are the keys that can be taken from a model reply.
func generatedKeys() (keys []string) {
	keys = make([]string, 0, len(profile.Keys))
	identity := make(map[string]bool, len(profile.IdentityKeys))
	for _, key := range profile.IdentityKeys {
		identity[key] = true
	}
	for _, key := range profile.Keys {
		if !identity[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
