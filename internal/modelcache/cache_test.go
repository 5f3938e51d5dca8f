package modelcache

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"
)

func TestCacheRoundTrip(t *testing.T) {
	tmp := t.TempDir()
	models := []string{"llama3.2", "qwen2.5"}

	if err := Save(tmp, "ollama", models); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, ok := LoadCached(tmp, "ollama")
	if !ok {
		t.Fatal("LoadCached: expected a hit")
	}
	if !reflect.DeepEqual(got, models) {
		t.Errorf("LoadCached = %v, want %v", got, models)
	}
}

func TestLoadCached_Miss(t *testing.T) {
	tmp := t.TempDir()

	if _, ok := LoadCached(tmp, "ollama"); ok {
		t.Error("expected a miss for an empty cache dir")
	}

	// A cache entry from a previous day is stale.
	stale, err := json.Marshal(CachedModels{
		Date:     "2001-01-01",
		Provider: "ollama",
		Models:   []string{"old-model"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cacheFile(tmp, "ollama"), stale, 0644); err != nil {
		t.Fatal(err)
	}
	if _, ok := LoadCached(tmp, "ollama"); ok {
		t.Error("expected a miss for a stale cache entry")
	}

	if err := os.WriteFile(cacheFile(tmp, "openai"), []byte("{bad"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, ok := LoadCached(tmp, "openai"); ok {
		t.Error("expected a miss for an unparsable cache entry")
	}
}

func TestLoadCached_PerProvider(t *testing.T) {
	tmp := t.TempDir()
	if err := Save(tmp, "ollama", []string{"llama3.2"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, ok := LoadCached(tmp, "openai"); ok {
		t.Error("cache entry for one provider leaked to another")
	}
}

func TestFetch_Ollama(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"models": []map[string]string{
				{"name": "llama3.2"},
				{"name": "qwen2.5"},
			},
		})
	}))
	defer srv.Close()

	old := ollamaBaseURL
	ollamaBaseURL = srv.URL
	defer func() { ollamaBaseURL = old }()

	tmp := t.TempDir()
	models, err := Fetch(context.Background(), tmp, "ollama", false)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	want := []string{"llama3.2", "qwen2.5"}
	if !reflect.DeepEqual(models, want) {
		t.Errorf("Fetch = %v, want %v", models, want)
	}

	// The fetch is cached; a second call must not hit the server.
	srv.Close()
	cached, err := Fetch(context.Background(), tmp, "ollama", false)
	if err != nil {
		t.Fatalf("cached Fetch: %v", err)
	}
	if !reflect.DeepEqual(cached, want) {
		t.Errorf("cached Fetch = %v, want %v", cached, want)
	}
}

func TestFetch_RefreshBypassesCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"models": []map[string]string{{"name": "llama3.2"}},
		})
	}))
	defer srv.Close()

	old := ollamaBaseURL
	ollamaBaseURL = srv.URL
	defer func() { ollamaBaseURL = old }()

	tmp := t.TempDir()
	for i := 0; i < 2; i++ {
		if _, err := Fetch(context.Background(), tmp, "ollama", true); err != nil {
			t.Fatalf("Fetch: %v", err)
		}
	}
	if hits != 2 {
		t.Errorf("server hits = %d, want 2", hits)
	}
}

func TestFetch_UnknownProvider(t *testing.T) {
	if _, err := Fetch(context.Background(), t.TempDir(), "nonesuch", false); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestFetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	old := ollamaBaseURL
	ollamaBaseURL = srv.URL
	defer func() { ollamaBaseURL = old }()

	if _, err := Fetch(context.Background(), t.TempDir(), "ollama", true); err == nil {
		t.Error("expected error for a failing server")
	}
}

func TestFetch_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := Fetch(context.Background(), t.TempDir(), "openai", true); err == nil {
		t.Error("expected error when the API key is unset")
	}
}
