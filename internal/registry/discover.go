package registry

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"

	"github.com/opensymbolicai/osai/internal/scanner"
)

// Source represents a location to search for agents.
type Source struct {
	Name     string // e.g., "default", "team-agents"
	BasePath string // path to the source root
}

// DiscoveredAgent pairs a scanned agent with the source it was found in.
type DiscoveredAgent struct {
	scanner.DiscoveredAgent
	Source string `json:"source,omitempty"`
}

// DiscoverAgents scans all sources and returns their agents in source order.
// Agents found in earlier sources take priority: a later agent with the same
// source file name and class name is skipped as a duplicate.
func DiscoverAgents(log zerolog.Logger, sources []Source) []DiscoveredAgent {
	s := scanner.New(log)
	seen := make(map[string]bool)
	var result []DiscoveredAgent

	for _, src := range sources {
		for _, agent := range s.ScanDir(src.BasePath) {
			key := filepath.Base(agent.FilePath) + "|" + agent.ClassName
			if seen[key] {
				log.Debug().Str("source", src.Name).Str("class", agent.ClassName).
					Msg("skipping duplicate agent from lower-priority source")
				continue
			}
			seen[key] = true
			result = append(result, DiscoveredAgent{DiscoveredAgent: agent, Source: src.Name})
		}
	}
	return result
}

// FilterByConstraint keeps agents whose version satisfies the given semver
// constraint (e.g., ">=1.0.0"). Agents with an empty or unparsable version
// never satisfy a constraint. An empty constraint keeps everything.
func FilterByConstraint(agents []DiscoveredAgent, constraint string) ([]DiscoveredAgent, error) {
	if constraint == "" {
		return agents, nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}

	var filtered []DiscoveredAgent
	for _, agent := range agents {
		v, err := semver.NewVersion(strings.TrimPrefix(agent.Version, "v"))
		if err != nil {
			continue
		}
		if c.Check(v) {
			filtered = append(filtered, agent)
		}
	}
	return filtered, nil
}

// FindAgent locates an agent by display name or class name, case-insensitive.
func FindAgent(agents []DiscoveredAgent, name string) (DiscoveredAgent, bool) {
	for _, agent := range agents {
		if strings.EqualFold(agent.Name, name) || strings.EqualFold(agent.ClassName, name) {
			return agent, true
		}
	}
	return DiscoveredAgent{}, false
}
