package config

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"

	pkgconfig "github.com/popkit-dev/popkit/pkg/config"
)

// Schema renders the JSON Schema of the configuration file, used by
// editors for completion on .popkit/config.toml equivalents.
func Schema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: false,
	}

	schema := reflector.Reflect(&pkgconfig.Config{})
	schema.Title = "popkit configuration"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal schema")
	}

	return data, nil
}
