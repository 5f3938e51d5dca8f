package modelcache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CachedModels holds a cached model list with the day it was written.
type CachedModels struct {
	Date     string   `json:"date"`
	Provider string   `json:"provider"`
	Models   []string `json:"models"`
}

// cacheFile returns the cache file path for a provider.
func cacheFile(cacheDir, provider string) string {
	return filepath.Join(cacheDir, "models_"+provider+".json")
}

// today returns the current date in ISO format, the cache validity key.
func today() string {
	return time.Now().Format("2006-01-02")
}

// LoadCached returns the cached model list for a provider if it was written
// today. A missing, stale, or unparsable cache returns ok=false.
func LoadCached(cacheDir, provider string) ([]string, bool) {
	data, err := os.ReadFile(cacheFile(cacheDir, provider))
	if err != nil {
		return nil, false
	}

	var cached CachedModels
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false
	}
	if cached.Date != today() {
		return nil, false
	}
	return cached.Models, true
}

// Save writes a provider's model list to the cache directory.
func Save(cacheDir, provider string, models []string) error {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := json.MarshalIndent(CachedModels{
		Date:     today(),
		Provider: provider,
		Models:   models,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling model cache: %w", err)
	}

	if err := os.WriteFile(cacheFile(cacheDir, provider), data, 0644); err != nil {
		return fmt.Errorf("writing model cache: %w", err)
	}
	return nil
}
