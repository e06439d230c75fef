package config

import "time"

// Default values for session configuration.
const (
	// DefaultSessionStateFile is the default state file path.
	DefaultSessionStateFile = "~/.popkit/state/sessions.json"

	// DefaultMaxSessionAge is the default maximum session age.
	DefaultMaxSessionAge = 24 * time.Hour
)

// SessionConfig contains configuration for session tracking.
// Session tracking records session lifecycle events in a state file and
// enables fast-fail for commands after a blocking error in the same
// host session.
type SessionConfig struct {
	// Enabled controls whether session tracking is active.
	// Default: true
	Enabled *bool `json:"enabled,omitempty" koanf:"enabled" toml:"enabled"`

	// StateFile is the path to the session state file.
	// Default: "~/.popkit/state/sessions.json"
	StateFile string `json:"state_file,omitempty" koanf:"state_file" toml:"state_file"`

	// MaxSessionAge is the maximum age before a session is expired.
	// Default: "24h"
	MaxSessionAge Duration `json:"max_session_age,omitempty" koanf:"max_session_age" toml:"max_session_age"`
}

// IsEnabled returns true if session tracking is enabled (default true).
func (s *SessionConfig) IsEnabled() bool {
	if s == nil || s.Enabled == nil {
		return true
	}

	return *s.Enabled
}

// GetStateFile returns the state file path, falling back to the default.
func (s *SessionConfig) GetStateFile() string {
	if s == nil || s.StateFile == "" {
		return DefaultSessionStateFile
	}

	return s.StateFile
}

// GetMaxSessionAge returns the maximum session age as a time.Duration.
func (s *SessionConfig) GetMaxSessionAge() time.Duration {
	if s == nil || s.MaxSessionAge == 0 {
		return DefaultMaxSessionAge
	}

	return time.Duration(s.MaxSessionAge)
}
