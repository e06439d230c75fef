package config

// ValidatorsConfig groups all validator configurations by category.
type ValidatorsConfig struct {
	// Shell validator configurations.
	Shell *ShellConfig `json:"shell,omitempty" koanf:"shell" toml:"shell,omitempty"`

	// File validator configurations.
	File *FileConfig `json:"file,omitempty" koanf:"file" toml:"file,omitempty"`

	// Secrets validator configurations.
	Secrets *SecretsConfig `json:"secrets,omitempty" koanf:"secrets" toml:"secrets,omitempty"`
}

// GetShell returns the shell config, creating it if absent.
func (v *ValidatorsConfig) GetShell() *ShellConfig {
	if v.Shell == nil {
		v.Shell = &ShellConfig{}
	}

	return v.Shell
}

// ShellConfig contains configuration for shell command validation.
type ShellConfig struct {
	// Enabled controls whether destructive command validation is active.
	// Default: true
	Enabled *bool `json:"enabled,omitempty" koanf:"enabled" toml:"enabled"`

	// ExtraPatterns is a list of additional regex patterns that deny a
	// command when matched. Evaluated after the built-in rules.
	ExtraPatterns []string `json:"extra_patterns,omitempty" koanf:"extra_patterns" toml:"extra_patterns,omitempty"`

	// AllowList is a list of regex patterns that exempt a command from
	// built-in destructive rules. Evaluated before everything else.
	AllowList []string `json:"allow_list,omitempty" koanf:"allow_list" toml:"allow_list,omitempty"`
}

// IsEnabled returns true if shell validation is enabled (default true).
func (s *ShellConfig) IsEnabled() bool {
	if s == nil || s.Enabled == nil {
		return true
	}

	return *s.Enabled
}

// FileConfig contains configuration for file operation validation.
type FileConfig struct {
	// Enabled controls whether workspace write validation is active.
	// Default: true
	Enabled *bool `json:"enabled,omitempty" koanf:"enabled" toml:"enabled"`

	// ProtectedPaths is a list of doublestar glob patterns, relative to
	// the workspace root, that must not be written.
	ProtectedPaths []string `json:"protected_paths,omitempty" koanf:"protected_paths" toml:"protected_paths,omitempty"`

	// AllowOutsideWorkspace permits writes outside the working directory.
	// Default: false
	AllowOutsideWorkspace *bool `json:"allow_outside_workspace,omitempty" koanf:"allow_outside_workspace" toml:"allow_outside_workspace"`
}

// DefaultProtectedPaths are the glob patterns protected when no
// configuration overrides them.
var DefaultProtectedPaths = []string{
	".git/**",
	"**/.env",
	"**/.env.*",
	"**/id_rsa",
	"**/id_ed25519",
}

// IsEnabled returns true if file validation is enabled (default true).
func (f *FileConfig) IsEnabled() bool {
	if f == nil || f.Enabled == nil {
		return true
	}

	return *f.Enabled
}

// GetProtectedPaths returns the protected path globs, falling back to the
// defaults when none are configured.
func (f *FileConfig) GetProtectedPaths() []string {
	if f == nil || len(f.ProtectedPaths) == 0 {
		return DefaultProtectedPaths
	}

	return f.ProtectedPaths
}

// IsOutsideWorkspaceAllowed returns true if writes outside the workspace
// are permitted (default false).
func (f *FileConfig) IsOutsideWorkspaceAllowed() bool {
	if f == nil || f.AllowOutsideWorkspace == nil {
		return false
	}

	return *f.AllowOutsideWorkspace
}

// SecretsConfig contains configuration for credential detection.
type SecretsConfig struct {
	// Enabled controls whether secret assignment detection is active.
	// Default: true
	Enabled *bool `json:"enabled,omitempty" koanf:"enabled" toml:"enabled"`

	// ExtraPatterns is a list of additional regex patterns treated as
	// credential assignments.
	ExtraPatterns []string `json:"extra_patterns,omitempty" koanf:"extra_patterns" toml:"extra_patterns,omitempty"`
}

// IsEnabled returns true if secret detection is enabled (default true).
func (s *SecretsConfig) IsEnabled() bool {
	if s == nil || s.Enabled == nil {
		return true
	}

	return *s.Enabled
}
