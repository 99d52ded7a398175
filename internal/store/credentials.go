package store

import (
	"errors"
	"fmt"

	"github.com/sevigo/repograph/internal/core"
)

// Credentials wraps a KeyValue with the credential semantics the
// orchestration layer needs. Absent keys read as empty strings; only real
// storage failures surface as errors.
type Credentials struct {
	kv KeyValue
}

// NewCredentials wraps the given store.
func NewCredentials(kv KeyValue) *Credentials {
	return &Credentials{kv: kv}
}

func (c *Credentials) get(key string) (string, error) {
	value, err := c.kv.Get(key)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return value, err
}

// APIKey returns the user-supplied generation API key, if any.
func (c *Credentials) APIKey() (string, error) {
	return c.get(KeyOpenAIKey)
}

// SetAPIKey persists the generation API key.
func (c *Credentials) SetAPIKey(key string) error {
	return c.kv.Set(KeyOpenAIKey, key)
}

// DeleteAPIKey removes the stored generation API key.
func (c *Credentials) DeleteAPIKey() error {
	err := c.kv.Delete(KeyOpenAIKey)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

// PAT returns the stored personal access token for the provider.
func (c *Credentials) PAT(provider core.Provider) (string, error) {
	switch provider {
	case core.ProviderGitHub:
		return c.get(KeyGitHubPAT)
	case core.ProviderAzure:
		return c.get(KeyAzurePAT)
	default:
		return "", fmt.Errorf("no token kind for provider %q", provider)
	}
}

// SetPAT persists the personal access token for the provider.
func (c *Credentials) SetPAT(provider core.Provider, token string) error {
	switch provider {
	case core.ProviderGitHub:
		return c.kv.Set(KeyGitHubPAT, token)
	case core.ProviderAzure:
		return c.kv.Set(KeyAzurePAT, token)
	default:
		return fmt.Errorf("no token kind for provider %q", provider)
	}
}

// DeletePAT removes the stored personal access token for the provider.
func (c *Credentials) DeletePAT(provider core.Provider) error {
	var err error
	switch provider {
	case core.ProviderGitHub:
		err = c.kv.Delete(KeyGitHubPAT)
	case core.ProviderAzure:
		err = c.kv.Delete(KeyAzurePAT)
	default:
		return fmt.Errorf("no token kind for provider %q", provider)
	}
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

// HasUsedFreeGeneration reports whether the free-tier generation was
// already consumed on this machine.
func (c *Credentials) HasUsedFreeGeneration() (bool, error) {
	value, err := c.get(KeyHasUsedFreeGeneration)
	return value == "true", err
}

// MarkFreeGenerationUsed records consumption of the free-tier generation.
func (c *Credentials) MarkFreeGenerationUsed() error {
	return c.kv.Set(KeyHasUsedFreeGeneration, "true")
}
