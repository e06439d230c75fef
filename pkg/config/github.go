package config

// DefaultLessonLabels are the labels applied to lessons-learned issues.
var DefaultLessonLabels = []string{"lesson-learned", "automated"}

// GitHubConfig contains lesson reporting configuration.
// Lesson reporting is only reachable from the operator CLI; the hook path
// performs no GitHub calls.
type GitHubConfig struct {
	// Enabled controls whether lesson reporting is permitted.
	// Default: false (requires an explicit repo anyway)
	Enabled *bool `json:"enabled,omitempty" koanf:"enabled" toml:"enabled"`

	// Repo is the target repository in "owner/name" form.
	Repo string `json:"repo,omitempty" koanf:"repo" toml:"repo,omitempty"`

	// Labels are applied to created issues.
	// Default: ["lesson-learned", "automated"]
	Labels []string `json:"labels,omitempty" koanf:"labels" toml:"labels,omitempty"`
}

// IsEnabled returns true if lesson reporting is enabled (default false).
func (g *GitHubConfig) IsEnabled() bool {
	if g == nil || g.Enabled == nil {
		return false
	}

	return *g.Enabled
}

// GetLabels returns the issue labels, falling back to the defaults.
func (g *GitHubConfig) GetLabels() []string {
	if g == nil || len(g.Labels) == 0 {
		return DefaultLessonLabels
	}

	return g.Labels
}
