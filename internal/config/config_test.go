package config

import (
	"path/filepath"
	"testing"
)

func TestDir_HomeOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("OSAI_HOME", tmp)

	if got := Dir(); got != tmp {
		t.Errorf("Dir() = %q, want %q", got, tmp)
	}
	if got := FilePath(); got != filepath.Join(tmp, "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
	if got := CacheDir(); got != filepath.Join(tmp, "cache") {
		t.Errorf("CacheDir() = %q", got)
	}
}

func TestSetAndGet(t *testing.T) {
	t.Setenv("OSAI_HOME", t.TempDir())
	Load()

	if err := Set(KeyAgentsFolder, "/srv/agents"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := Get(KeyAgentsFolder); got != "/srv/agents" {
		t.Errorf("Get(%s) = %q, want /srv/agents", KeyAgentsFolder, got)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OSAI_HOME", t.TempDir())
	Load()

	if got := Get(KeyDefaultProvider); got != "ollama" {
		t.Errorf("default provider = %q, want ollama", got)
	}
	if got := Get(KeyLogLevel); got != "warn" {
		t.Errorf("default log level = %q, want warn", got)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("OSAI_HOME", t.TempDir())
	t.Setenv("OSAI_DEFAULT_PROVIDER", "groq")
	Load()

	if got := Get(KeyDefaultProvider); got != "groq" {
		t.Errorf("provider = %q, want env override groq", got)
	}
}
