package config

import "time"

// Default values for observability configuration.
const (
	// DefaultEventLogFile is the default JSONL event log path.
	DefaultEventLogFile = "~/.popkit/logs/events.jsonl"

	// DefaultForwardTimeout bounds the collector POST so a slow collector
	// can never eat into the host's hook timeout budget.
	DefaultForwardTimeout = 2 * time.Second
)

// ObservabilityConfig contains event log and forwarding configuration.
type ObservabilityConfig struct {
	// Enabled controls whether events are recorded at all.
	// Default: true
	Enabled *bool `json:"enabled,omitempty" koanf:"enabled" toml:"enabled"`

	// LogFile is the JSONL event log path.
	// Default: "~/.popkit/logs/events.jsonl"
	LogFile string `json:"log_file,omitempty" koanf:"log_file" toml:"log_file"`

	// Endpoint is an optional HTTP collector URL. Empty disables
	// forwarding; forwarding failures never affect the decision.
	Endpoint string `json:"endpoint,omitempty" koanf:"endpoint" toml:"endpoint,omitempty"`

	// ForwardTimeout bounds the collector POST. Default: "2s"
	ForwardTimeout Duration `json:"forward_timeout,omitempty" koanf:"forward_timeout" toml:"forward_timeout"`
}

// IsEnabled returns true if event recording is enabled (default true).
func (o *ObservabilityConfig) IsEnabled() bool {
	if o == nil || o.Enabled == nil {
		return true
	}

	return *o.Enabled
}

// GetLogFile returns the event log path, falling back to the default.
func (o *ObservabilityConfig) GetLogFile() string {
	if o == nil || o.LogFile == "" {
		return DefaultEventLogFile
	}

	return o.LogFile
}

// GetEndpoint returns the collector endpoint ("" when disabled).
func (o *ObservabilityConfig) GetEndpoint() string {
	if o == nil {
		return ""
	}

	return o.Endpoint
}

// GetForwardTimeout returns the forwarding timeout as a time.Duration.
func (o *ObservabilityConfig) GetForwardTimeout() time.Duration {
	if o == nil || o.ForwardTimeout == 0 {
		return DefaultForwardTimeout
	}

	return time.Duration(o.ForwardTimeout)
}
