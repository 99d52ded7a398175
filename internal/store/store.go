// Package store provides small keyed local persistence for user
// credentials and flags. Secret values live in the operating system
// keychain; non-secret flags live in a JSON file under the user config
// directory. The KeyValue interface keeps the backend swappable so tests
// can run against an in-memory map.
package store

import "errors"

// Keys persisted by the application. Names match the values the backend
// ecosystem has always used; there is no namespacing or versioning.
const (
	KeyOpenAIKey             = "openai_key"
	KeyGitHubPAT             = "github_pat"
	KeyAzurePAT              = "azure_pat"
	KeyHasUsedFreeGeneration = "has_used_free_generation"
)

// ErrNotFound is returned when a key has never been set.
var ErrNotFound = errors.New("key not found")

// KeyValue is the minimal persistence capability the rest of the
// application depends on.
type KeyValue interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// secretKeys route to the OS keychain rather than the flags file.
var secretKeys = map[string]struct{}{
	KeyOpenAIKey: {},
	KeyGitHubPAT: {},
	KeyAzurePAT:  {},
}

// IsSecret reports whether a key holds credential material.
func IsSecret(key string) bool {
	_, ok := secretKeys[key]
	return ok
}
