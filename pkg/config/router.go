package config

// Default values for router configuration.
const (
	// DefaultRouterThreshold is the minimum score for an agent match to
	// be reported.
	DefaultRouterThreshold = 1.0

	// DefaultRouterMaxAgents caps how many agents a single prompt may
	// activate.
	DefaultRouterMaxAgents = 5
)

// RouterConfig contains keyword agent routing configuration.
// Routing is a prioritized table of (keyword, agent, weight) tuples
// evaluated by a pure scoring function; it never dispatches anything
// itself, it only annotates the allow response.
type RouterConfig struct {
	// Enabled controls whether prompt routing annotations are produced.
	// Default: true
	Enabled *bool `json:"enabled,omitempty" koanf:"enabled" toml:"enabled"`

	// Threshold is the minimum score for a match to be reported.
	// Default: 1.0
	Threshold float64 `json:"threshold,omitempty" koanf:"threshold" toml:"threshold,omitempty"`

	// MaxAgents caps the number of reported agents. Default: 5
	MaxAgents int `json:"max_agents,omitempty" koanf:"max_agents" toml:"max_agents,omitempty"`

	// AgentsDir is a directory of agent definition files (markdown with
	// YAML frontmatter) merged over the built-in table.
	AgentsDir string `json:"agents_dir,omitempty" koanf:"agents_dir" toml:"agents_dir,omitempty"`

	// Agents is an inline list of table entries merged over everything
	// else. Entries with the same agent name replace earlier ones.
	Agents []RouterAgent `json:"agents,omitempty" koanf:"agents" toml:"agents,omitempty"`
}

// RouterAgent is one inline routing table entry.
type RouterAgent struct {
	// Name is the agent identifier (e.g. "test-writer-fixer").
	Name string `json:"name" koanf:"name" toml:"name"`

	// Category groups related agents (e.g. "engineering").
	Category string `json:"category,omitempty" koanf:"category" toml:"category,omitempty"`

	// Keywords are the trigger keywords for this agent.
	Keywords []string `json:"keywords" koanf:"keywords" toml:"keywords"`

	// Weight is the score contributed per keyword hit. Default: 1.0
	Weight float64 `json:"weight,omitempty" koanf:"weight" toml:"weight,omitempty"`
}

// IsEnabled returns true if routing is enabled (default true).
func (r *RouterConfig) IsEnabled() bool {
	if r == nil || r.Enabled == nil {
		return true
	}

	return *r.Enabled
}

// GetThreshold returns the match threshold (default 1.0).
func (r *RouterConfig) GetThreshold() float64 {
	if r == nil || r.Threshold <= 0 {
		return DefaultRouterThreshold
	}

	return r.Threshold
}

// GetMaxAgents returns the agent cap (default 5).
func (r *RouterConfig) GetMaxAgents() int {
	if r == nil || r.MaxAgents <= 0 {
		return DefaultRouterMaxAgents
	}

	return r.MaxAgents
}
