package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepoRef_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ref     RepoRef
		wantErr bool
	}{
		{name: "valid github", ref: RepoRef{Owner: "sevigo", Repo: "repograph", Provider: ProviderGitHub}},
		{name: "valid azure", ref: RepoRef{Owner: "org", Repo: "project", Provider: ProviderAzure}},
		{name: "missing owner", ref: RepoRef{Repo: "repograph", Provider: ProviderGitHub}, wantErr: true},
		{name: "missing repo", ref: RepoRef{Owner: "sevigo", Provider: ProviderGitHub}, wantErr: true},
		{name: "unknown provider", ref: RepoRef{Owner: "a", Repo: "b", Provider: "gitlab"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ref.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsExampleRepo(t *testing.T) {
	assert.True(t, IsExampleRepo("fastapi"))
	assert.True(t, IsExampleRepo("MonkeyType"))
	assert.False(t, IsExampleRepo("repograph"))
}

func TestValidateInstructions(t *testing.T) {
	assert.NoError(t, ValidateInstructions(""))
	assert.NoError(t, ValidateInstructions(strings.Repeat("x", MaxInstructionLength)))
	assert.Error(t, ValidateInstructions(strings.Repeat("x", MaxInstructionLength+1)))

	// Multi-byte input counts characters, not bytes.
	assert.NoError(t, ValidateInstructions(strings.Repeat("ü", MaxInstructionLength)))
	assert.Error(t, ValidateInstructions(strings.Repeat("ü", MaxInstructionLength+1)))
}
