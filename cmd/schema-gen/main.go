// Package main emits the JSON Schema of the popkit configuration.
// Run via go generate; the output is committed as schema/config.json.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	internalconfig "github.com/popkit-dev/popkit/internal/config"
)

func main() {
	data, err := internalconfig.Schema()
	if err != nil {
		fmt.Fprintf(os.Stderr, "schema-gen: %v\n", err)
		os.Exit(1)
	}

	out := "schema/config.json"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "schema-gen: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "schema-gen: %v\n", err)
		os.Exit(1)
	}
}
