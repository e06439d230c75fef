package config

import (
	"bytes"
	"os"

	"github.com/cockroachdb/errors"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/popkit-dev/popkit/internal/xdg"
	pkgconfig "github.com/popkit-dev/popkit/pkg/config"
)

// ErrConfigExists is returned when the target config file already exists.
var ErrConfigExists = errors.New("config file already exists")

const fileHeader = `# popkit configuration.
# Every key is optional; omitted keys use the built-in defaults.

`

// WriteDefault writes a starter config file with the default values
// spelled out. Refuses to overwrite an existing file unless force is
// set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.Wrapf(ErrConfigExists, "at %s", path)
		}
	}

	if err := xdg.EnsureParentDir(path); err != nil {
		return err
	}

	data, err := renderDefault()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

func renderDefault() ([]byte, error) {
	enabled := true
	disabled := false

	cfg := pkgconfig.Config{
		Version: pkgconfig.CurrentConfigVersion,
		Validators: &pkgconfig.ValidatorsConfig{
			Shell:   &pkgconfig.ShellConfig{Enabled: &enabled},
			File:    &pkgconfig.FileConfig{Enabled: &enabled, ProtectedPaths: pkgconfig.DefaultProtectedPaths},
			Secrets: &pkgconfig.SecretsConfig{Enabled: &enabled},
		},
		Router: &pkgconfig.RouterConfig{
			Enabled:   &enabled,
			Threshold: pkgconfig.DefaultRouterThreshold,
			MaxAgents: pkgconfig.DefaultRouterMaxAgents,
		},
		Session: &pkgconfig.SessionConfig{
			Enabled:       &enabled,
			StateFile:     pkgconfig.DefaultSessionStateFile,
			MaxSessionAge: pkgconfig.Duration(pkgconfig.DefaultMaxSessionAge),
		},
		Observability: &pkgconfig.ObservabilityConfig{
			Enabled:        &enabled,
			LogFile:        pkgconfig.DefaultEventLogFile,
			ForwardTimeout: pkgconfig.Duration(pkgconfig.DefaultForwardTimeout),
		},
		GitHub: &pkgconfig.GitHubConfig{
			Enabled: &disabled,
			Labels:  pkgconfig.DefaultLessonLabels,
		},
		Notification: &pkgconfig.NotificationConfig{Bell: &enabled},
	}

	var buf bytes.Buffer

	buf.WriteString(fileHeader)

	encoder := gotoml.NewEncoder(&buf)
	encoder.SetIndentTables(true)

	if err := encoder.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to encode config")
	}

	return buf.Bytes(), nil
}
