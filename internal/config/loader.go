// Package config loads the layered popkit configuration.
//
// Layers, later overriding earlier:
//  1. built-in defaults
//  2. global config (~/.popkit/config.toml)
//  3. project config (<workdir>/.popkit/config.toml)
//  4. environment (POPKIT_*)
//  5. an explicit --config file, replacing layers 2-3
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/popkit-dev/popkit/internal/xdg"
	pkgconfig "github.com/popkit-dev/popkit/pkg/config"
)

const (
	delim     = "."
	envPrefix = "POPKIT_"
)

// Loader assembles the effective configuration.
type Loader struct {
	// ExplicitPath, when set, replaces the global and project layers.
	ExplicitPath string

	// WorkDir locates the project layer. Empty skips it.
	WorkDir string
}

// Load returns the effective configuration.
func (l *Loader) Load() (*pkgconfig.Config, error) {
	k := koanf.New(delim)

	if err := k.Load(confmap.Provider(defaults(), delim), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	if err := l.loadFiles(k); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(delim, env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))

			return strings.ReplaceAll(key, "__", delim), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load environment")
	}

	return unmarshal(k)
}

func (l *Loader) loadFiles(k *koanf.Koanf) error {
	if l.ExplicitPath != "" {
		if err := loadFileIfExists(k, l.ExplicitPath); err != nil {
			return err
		}

		return nil
	}

	globalPath, err := xdg.GlobalConfigPath()
	if err == nil {
		if err := loadFileIfExists(k, globalPath); err != nil {
			return err
		}
	}

	if l.WorkDir != "" {
		if err := loadFileIfExists(k, xdg.ProjectConfigPath(l.WorkDir)); err != nil {
			return err
		}
	}

	return nil
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return errors.Wrapf(err, "failed to stat config file %s", path)
	}

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, "failed to load config file %s", path)
	}

	return nil
}

// defaults returns the built-in configuration layer.
func defaults() map[string]any {
	return map[string]any{
		"version":                        pkgconfig.CurrentConfigVersion,
		"validators.shell.enabled":       true,
		"validators.file.enabled":        true,
		"validators.secrets.enabled":     true,
		"router.enabled":                 true,
		"router.threshold":               pkgconfig.DefaultRouterThreshold,
		"router.max_agents":              pkgconfig.DefaultRouterMaxAgents,
		"session.enabled":                true,
		"session.state_file":             pkgconfig.DefaultSessionStateFile,
		"session.max_session_age":        pkgconfig.DefaultMaxSessionAge.String(),
		"observability.enabled":          true,
		"observability.log_file":         pkgconfig.DefaultEventLogFile,
		"observability.forward_timeout":  pkgconfig.DefaultForwardTimeout.String(),
		"github.enabled":                 false,
		"notification.bell":              true,
	}
}
