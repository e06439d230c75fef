// Package config provides configuration schema types for popkit.
package config

import (
	"time"

	"github.com/cockroachdb/errors"
)

// CurrentConfigVersion is the latest config schema version.
const CurrentConfigVersion = 1

// ErrNegativeDuration is returned when a duration value is negative.
var ErrNegativeDuration = errors.New("duration must not be negative")

// Config represents the root configuration for popkit.
type Config struct {
	// Version is the config schema version. Defaults to 1 when omitted.
	Version int `json:"version,omitempty" koanf:"version" toml:"version,omitempty"`

	// Validators groups all validator configurations.
	Validators *ValidatorsConfig `json:"validators,omitempty" koanf:"validators" toml:"validators,omitempty"`

	// Router contains keyword agent routing configuration.
	Router *RouterConfig `json:"router,omitempty" koanf:"router" toml:"router,omitempty"`

	// Session contains session tracking configuration.
	Session *SessionConfig `json:"session,omitempty" koanf:"session" toml:"session,omitempty"`

	// Observability contains event log and forwarding configuration.
	Observability *ObservabilityConfig `json:"observability,omitempty" koanf:"observability" toml:"observability,omitempty"`

	// GitHub contains lesson reporting configuration.
	GitHub *GitHubConfig `json:"github,omitempty" koanf:"github" toml:"github,omitempty"`

	// Notification contains notification event behavior.
	Notification *NotificationConfig `json:"notification,omitempty" koanf:"notification" toml:"notification,omitempty"`
}

// GetValidators returns the validators config, creating it if absent.
func (c *Config) GetValidators() *ValidatorsConfig {
	if c.Validators == nil {
		c.Validators = &ValidatorsConfig{}
	}

	return c.Validators
}

// GetRouter returns the router config, creating it if absent.
func (c *Config) GetRouter() *RouterConfig {
	if c.Router == nil {
		c.Router = &RouterConfig{}
	}

	return c.Router
}

// Duration is a time.Duration that round-trips as a string ("10s", "24h")
// in TOML and JSON.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	dur, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrap(err, "invalid duration")
	}

	if dur < 0 {
		return errors.Wrapf(ErrNegativeDuration, "got %s", dur)
	}

	*d = Duration(dur)

	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// ToDuration converts Duration to time.Duration.
func (d Duration) ToDuration() time.Duration {
	return time.Duration(d)
}

// NotificationConfig controls Notification event behavior.
type NotificationConfig struct {
	// Bell controls whether a terminal bell is emitted on Notification
	// events. Default: true
	Bell *bool `json:"bell,omitempty" koanf:"bell" toml:"bell"`
}

// IsBellEnabled returns true if the bell is enabled (default true).
func (n *NotificationConfig) IsBellEnabled() bool {
	if n == nil || n.Bell == nil {
		return true
	}

	return *n.Bell
}
