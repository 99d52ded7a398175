// Package core defines the essential data structures shared across the
// application: repository identity, provider constants, and the guard rules
// the orchestration layer enforces before touching the network.
package core

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Provider identifies the source-code host a repository lives on.
type Provider string

const (
	ProviderGitHub Provider = "github"
	ProviderAzure  Provider = "azure"
)

// MaxInstructionLength mirrors the backend's hard limit on custom
// instructions; requests above it are rejected before any network call.
const MaxInstructionLength = 1000

// RepoRef identifies the repository a diagram is generated for.
type RepoRef struct {
	Owner    string
	Repo     string
	Provider Provider
}

// FullName returns the owner/repo form used in logs and cache keys.
func (r RepoRef) FullName() string {
	return fmt.Sprintf("%s/%s", r.Owner, r.Repo)
}

// Validate checks that the reference is complete and the provider is known.
func (r RepoRef) Validate() error {
	if r.Owner == "" || r.Repo == "" {
		return fmt.Errorf("repository reference is incomplete: %q", r.FullName())
	}
	switch r.Provider {
	case ProviderGitHub, ProviderAzure:
		return nil
	default:
		return fmt.Errorf("unsupported provider: %q", r.Provider)
	}
}

// exampleRepos are the showcase repositories whose diagrams are served
// pre-generated; the backend refuses to regenerate them, so the client
// rejects the request without a network call.
var exampleRepos = map[string]struct{}{
	"fastapi":       {},
	"streamlit":     {},
	"flask":         {},
	"api-analytics": {},
	"monkeytype":    {},
}

// ErrExampleRepo is returned when a user tries to modify or regenerate one
// of the designated example repositories.
var ErrExampleRepo = fmt.Errorf("example repositories cannot be regenerated")

// IsExampleRepo reports whether the repository is in the fixed example set.
func IsExampleRepo(repo string) bool {
	_, ok := exampleRepos[strings.ToLower(repo)]
	return ok
}

// ValidateInstructions rejects instructions the backend would refuse anyway.
// The limit counts characters, not bytes.
func ValidateInstructions(instructions string) error {
	if utf8.RuneCountInString(instructions) > MaxInstructionLength {
		return fmt.Errorf("instructions exceed maximum length of %d characters", MaxInstructionLength)
	}
	return nil
}
