package core

import "time"

// CachedDiagram is a previously generated result fetched from the remote
// cache. UsedOwnKey records whether the generation that produced it was
// paid for with a user-supplied API key.
type CachedDiagram struct {
	Diagram     string
	Explanation string
	UsedOwnKey  bool
	UpdatedAt   *time.Time
}

// RepoConfig represents the structure of the optional .repograph.yml file
// a repository can carry to customize its own diagram.
type RepoConfig struct {
	// Default custom instructions applied when the user supplies none.
	Instructions string `yaml:"instructions"`

	// Preferred provider when the remote URL is ambiguous.
	Provider string `yaml:"provider"`
}

// DefaultRepoConfig returns a config with default values.
func DefaultRepoConfig() *RepoConfig {
	return &RepoConfig{}
}
