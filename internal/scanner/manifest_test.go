package scanner

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func scanManifestFixture(t *testing.T, name string) DiscoveredAgent {
	t.Helper()
	agents := New(zerolog.Nop()).ScanFile(filepath.Join("testdata", "manifests", name))
	if len(agents) != 1 {
		t.Fatalf("%s: expected 1 agent, got %d", name, len(agents))
	}
	return agents[0]
}

func TestManifestOverridesInlineMetadata(t *testing.T) {
	agent := scanManifestFixture(t, "agent.py")

	// The sidecar carries description and version but no name, so the
	// inline name survives while the rest is overridden.
	if agent.Name != "Inline Name" {
		t.Errorf("Name = %q, want %q", agent.Name, "Inline Name")
	}
	if agent.Description != "B" {
		t.Errorf("Description = %q, want %q", agent.Description, "B")
	}
	if agent.Version != "2.0" {
		t.Errorf("Version = %q, want %q", agent.Version, "2.0")
	}
}

func TestManifestCustomName(t *testing.T) {
	agent := scanManifestFixture(t, "custom_agent.py")

	if agent.Name != "Custom Agent" {
		t.Errorf("Name = %q, want %q", agent.Name, "Custom Agent")
	}
	if agent.Description != "inline description" {
		t.Errorf("Description = %q, want %q", agent.Description, "inline description")
	}
	if agent.Version != "3.1.4" {
		t.Errorf("Version = %q, want %q", agent.Version, "3.1.4")
	}
}

func TestManifestKeywordName(t *testing.T) {
	agent := scanManifestFixture(t, "kw_agent.py")

	if agent.Name != "From YAML" {
		t.Errorf("Name = %q, want %q", agent.Name, "From YAML")
	}
	if agent.Description != "Loaded from a YAML sidecar" {
		t.Errorf("Description = %q", agent.Description)
	}
}

func TestManifestMissingSidecar(t *testing.T) {
	agent := scanManifestFixture(t, "missing_agent.py")

	if agent.Name != "Still Inline" {
		t.Errorf("Name = %q, want %q", agent.Name, "Still Inline")
	}
}

func TestManifestUnreadableSidecar(t *testing.T) {
	agent := scanManifestFixture(t, "broken_agent.py")

	// Malformed sidecar JSON must not discard the inline metadata.
	if agent.Version != "0.9.0" {
		t.Errorf("Version = %q, want %q", agent.Version, "0.9.0")
	}
	if agent.Name != "BrokenManifestAgent" {
		t.Errorf("Name = %q, want class name fallback", agent.Name)
	}
}
