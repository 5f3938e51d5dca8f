package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if CLIName() != "osai" {
		t.Errorf("CLIName = %q, want osai", CLIName())
	}
	if HomeDir() != ".osai" {
		t.Errorf("HomeDir = %q, want .osai", HomeDir())
	}
	if EnvPrefix() != "OSAI" {
		t.Errorf("EnvPrefix = %q, want OSAI", EnvPrefix())
	}
	if DisplayName() == "" || Description() == "" {
		t.Error("display name and description must be set")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("home"); got != "OSAI_HOME" {
		t.Errorf("EnvVar(home) = %q, want OSAI_HOME", got)
	}
}
