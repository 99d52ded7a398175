package gitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevigo/repograph/internal/core"
)

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		wantOwner    string
		wantRepo     string
		wantProvider core.Provider
		wantErr      bool
	}{
		{
			name:         "GitHub HTTPS URL",
			url:          "https://github.com/sevigo/repograph",
			wantOwner:    "sevigo",
			wantRepo:     "repograph",
			wantProvider: core.ProviderGitHub,
		},
		{
			name:         "GitHub URL with .git suffix",
			url:          "https://github.com/sevigo/repograph.git",
			wantOwner:    "sevigo",
			wantRepo:     "repograph",
			wantProvider: core.ProviderGitHub,
		},
		{
			name:         "GitHub SSH remote",
			url:          "git@github.com:sevigo/repograph.git",
			wantOwner:    "sevigo",
			wantRepo:     "repograph",
			wantProvider: core.ProviderGitHub,
		},
		{
			name:         "GitHub URL with trailing slash",
			url:          "https://github.com/sevigo/repograph/",
			wantOwner:    "sevigo",
			wantRepo:     "repograph",
			wantProvider: core.ProviderGitHub,
		},
		{
			name:         "Azure DevOps URL",
			url:          "https://dev.azure.com/myorg/myproject/_git/myrepo",
			wantOwner:    "myorg",
			wantRepo:     "myrepo",
			wantProvider: core.ProviderAzure,
		},
		{
			name:         "Azure DevOps SSH remote",
			url:          "git@ssh.dev.azure.com:v3/myorg/myproject/myrepo",
			wantOwner:    "myorg",
			wantRepo:     "myrepo",
			wantProvider: core.ProviderAzure,
		},
		{
			name:         "owner/repo shorthand",
			url:          "sevigo/repograph",
			wantOwner:    "sevigo",
			wantRepo:     "repograph",
			wantProvider: core.ProviderGitHub,
		},
		{
			name:    "plain word",
			url:     "repograph",
			wantErr: true,
		},
		{
			name:    "unsupported host",
			url:     "https://gitlab.com/owner/repo",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseRepoURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOwner, ref.Owner)
			assert.Equal(t, tt.wantRepo, ref.Repo)
			assert.Equal(t, tt.wantProvider, ref.Provider)
		})
	}
}
