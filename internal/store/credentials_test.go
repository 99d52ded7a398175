package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/repograph/internal/core"
)

func TestCredentials_AbsentKeysReadAsEmpty(t *testing.T) {
	creds := NewCredentials(NewMemory())

	key, err := creds.APIKey()
	require.NoError(t, err)
	assert.Empty(t, key)

	pat, err := creds.PAT(core.ProviderGitHub)
	require.NoError(t, err)
	assert.Empty(t, pat)

	used, err := creds.HasUsedFreeGeneration()
	require.NoError(t, err)
	assert.False(t, used)
}

func TestCredentials_RoundTrip(t *testing.T) {
	creds := NewCredentials(NewMemory())

	require.NoError(t, creds.SetAPIKey("sk-test"))
	require.NoError(t, creds.SetPAT(core.ProviderGitHub, "ghp_abc"))
	require.NoError(t, creds.SetPAT(core.ProviderAzure, "az_xyz"))
	require.NoError(t, creds.MarkFreeGenerationUsed())

	key, err := creds.APIKey()
	require.NoError(t, err)
	assert.Equal(t, "sk-test", key)

	ghPAT, err := creds.PAT(core.ProviderGitHub)
	require.NoError(t, err)
	assert.Equal(t, "ghp_abc", ghPAT)

	azPAT, err := creds.PAT(core.ProviderAzure)
	require.NoError(t, err)
	assert.Equal(t, "az_xyz", azPAT)

	used, err := creds.HasUsedFreeGeneration()
	require.NoError(t, err)
	assert.True(t, used)
}

func TestCredentials_Delete(t *testing.T) {
	creds := NewCredentials(NewMemory())

	require.NoError(t, creds.SetAPIKey("sk-test"))
	require.NoError(t, creds.SetPAT(core.ProviderGitHub, "ghp_abc"))

	require.NoError(t, creds.DeleteAPIKey())
	require.NoError(t, creds.DeletePAT(core.ProviderGitHub))

	key, err := creds.APIKey()
	require.NoError(t, err)
	assert.Empty(t, key)

	pat, err := creds.PAT(core.ProviderGitHub)
	require.NoError(t, err)
	assert.Empty(t, pat)

	// Deleting an absent credential is not an error.
	assert.NoError(t, creds.DeleteAPIKey())
	assert.NoError(t, creds.DeletePAT(core.ProviderAzure))
}

func TestCredentials_UnknownProvider(t *testing.T) {
	creds := NewCredentials(NewMemory())

	_, err := creds.PAT("gitlab")
	assert.Error(t, err)
	assert.Error(t, creds.SetPAT("gitlab", "tok"))
}

func TestIsSecret(t *testing.T) {
	assert.True(t, IsSecret(KeyOpenAIKey))
	assert.True(t, IsSecret(KeyGitHubPAT))
	assert.True(t, IsSecret(KeyAzurePAT))
	assert.False(t, IsSecret(KeyHasUsedFreeGeneration))
}
