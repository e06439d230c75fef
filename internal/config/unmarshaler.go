package config

import (
	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/v2"

	pkgconfig "github.com/popkit-dev/popkit/pkg/config"
)

// unmarshal decodes the merged koanf tree into the typed config.
// Durations are decoded through their TextUnmarshaler so "24h" strings
// work in every layer, including the environment.
func unmarshal(k *koanf.Koanf) (*pkgconfig.Config, error) {
	var cfg pkgconfig.Config

	decoderConfig := &mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "koanf",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag:           "koanf",
		DecoderConfig: decoderConfig,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.Version == 0 {
		cfg.Version = pkgconfig.CurrentConfigVersion
	}

	return &cfg, nil
}
