package router

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/popkit-dev/popkit/pkg/config"
	"github.com/popkit-dev/popkit/pkg/logger"
)

// agentFrontmatter is the YAML header of an agent definition file.
type agentFrontmatter struct {
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
	Weight   float64  `yaml:"weight"`
}

// ErrNoFrontmatter is returned when an agent file has no YAML header.
var ErrNoFrontmatter = errors.New("agent file has no frontmatter")

// LoadTable builds the routing table: the built-in table, overlaid by
// agent definition files from the configured directory, overlaid by
// inline configuration entries. Later entries with the same agent name
// replace earlier ones.
func LoadTable(cfg *config.RouterConfig, log logger.Logger) []Agent {
	table := DefaultTable()

	if cfg != nil && cfg.AgentsDir != "" {
		fromDir, err := loadAgentsDir(cfg.AgentsDir)
		if err != nil {
			log.Error("failed to load agents directory", "dir", cfg.AgentsDir, "error", err)
		} else {
			table = mergeAgents(table, fromDir)
		}
	}

	if cfg != nil {
		inline := make([]Agent, 0, len(cfg.Agents))
		for _, a := range cfg.Agents {
			inline = append(inline, Agent{
				Name:     a.Name,
				Category: a.Category,
				Keywords: a.Keywords,
				Weight:   a.Weight,
			})
		}

		table = mergeAgents(table, inline)
	}

	return table
}

// loadAgentsDir reads every .md file in dir as an agent definition.
func loadAgentsDir(dir string) ([]Agent, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read agents directory")
	}

	agents := make([]Agent, 0)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		agent, parseErr := parseAgentFile(filepath.Join(dir, entry.Name()))
		if parseErr != nil {
			return nil, errors.Wrapf(parseErr, "failed to parse agent file %s", entry.Name())
		}

		agents = append(agents, agent)
	}

	return agents, nil
}

// parseAgentFile reads one markdown agent definition: a YAML
// frontmatter block delimited by --- lines, followed by free-form
// description text which the router does not use.
func parseAgentFile(path string) (Agent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Agent{}, errors.Wrap(err, "failed to read agent file")
	}

	front, err := extractFrontmatter(data)
	if err != nil {
		return Agent{}, err
	}

	var fm agentFrontmatter
	if err := yaml.Unmarshal(front, &fm); err != nil {
		return Agent{}, errors.Wrap(err, "invalid frontmatter")
	}

	if fm.Name == "" {
		// Fall back to the file name without extension.
		fm.Name = strings.TrimSuffix(filepath.Base(path), ".md")
	}

	return Agent{
		Name:     fm.Name,
		Category: fm.Category,
		Keywords: fm.Keywords,
		Weight:   fm.Weight,
	}, nil
}

var frontmatterDelim = []byte("---")

// extractFrontmatter returns the YAML between the leading --- fences.
func extractFrontmatter(data []byte) ([]byte, error) {
	trimmed := bytes.TrimLeft(data, "\r\n \t")
	if !bytes.HasPrefix(trimmed, frontmatterDelim) {
		return nil, ErrNoFrontmatter
	}

	rest := trimmed[len(frontmatterDelim):]

	end := bytes.Index(rest, append([]byte("\n"), frontmatterDelim...))
	if end < 0 {
		return nil, ErrNoFrontmatter
	}

	return rest[:end], nil
}

// mergeAgents overlays updates onto base, replacing entries with the
// same name and appending new ones in order.
func mergeAgents(base, updates []Agent) []Agent {
	merged := make([]Agent, len(base))
	copy(merged, base)

	index := make(map[string]int, len(merged))
	for i, a := range merged {
		index[a.Name] = i
	}

	for _, update := range updates {
		if i, ok := index[update.Name]; ok {
			merged[i] = update
		} else {
			index[update.Name] = len(merged)
			merged = append(merged, update)
		}
	}

	return merged
}
