package modelcache

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"
)

// Providers lists the supported model providers.
var Providers = []string{"ollama", "openai", "anthropic", "fireworks", "groq"}

// Fetch returns the model list for a provider, consulting the daily cache
// first unless refresh is set. Fresh results are written back to the cache.
func Fetch(ctx context.Context, cacheDir, provider string, refresh bool) ([]string, error) {
	if !refresh {
		if models, ok := LoadCached(cacheDir, provider); ok {
			return models, nil
		}
	}

	var (
		models []string
		err    error
	)
	switch provider {
	case "ollama":
		models, err = fetchOllama(ctx)
	case "openai":
		models, err = fetchOpenAI(ctx)
	case "anthropic":
		models, err = fetchAnthropic(ctx)
	case "fireworks":
		models, err = fetchFireworks(ctx)
	case "groq":
		models, err = fetchGroq(ctx)
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
	if err != nil {
		return nil, err
	}

	// Cache failures don't invalidate a successful fetch.
	_ = Save(cacheDir, provider, models)
	return models, nil
}

// ollamaBaseURL is a var so tests can point it at a stub server.
var ollamaBaseURL = "http://localhost:11434"

// getJSON performs a GET request and decodes the JSON response into out.
func getJSON(ctx context.Context, url string, headers map[string]string, timeout time.Duration, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", url, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("requesting %s: status %d: %s", url, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}
	return nil
}

// apiKey reads a provider API key from the environment.
func apiKey(envVar string) (string, error) {
	key := os.Getenv(envVar)
	if key == "" {
		return "", fmt.Errorf("%s not set", envVar)
	}
	return key, nil
}

// idList is the {"data": [{"id": ...}]} shape shared by OpenAI-style APIs.
type idList struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (l idList) ids() []string {
	ids := make([]string, 0, len(l.Data))
	for _, m := range l.Data {
		ids = append(ids, m.ID)
	}
	return ids
}

// fetchOllama lists models from a local Ollama instance.
func fetchOllama(ctx context.Context) ([]string, error) {
	var payload struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := getJSON(ctx, ollamaBaseURL+"/api/tags", nil, 5*time.Second, &payload); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(payload.Models))
	for _, m := range payload.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// fetchOpenAI lists OpenAI models, filtered to GPT models for usability.
func fetchOpenAI(ctx context.Context) ([]string, error) {
	key, err := apiKey("OPENAI_API_KEY")
	if err != nil {
		return nil, err
	}

	var payload idList
	headers := map[string]string{"Authorization": "Bearer " + key}
	if err := getJSON(ctx, "https://api.openai.com/v1/models", headers, 10*time.Second, &payload); err != nil {
		return nil, err
	}

	var gptModels []string
	for _, id := range payload.ids() {
		if strings.Contains(strings.ToLower(id), "gpt") {
			gptModels = append(gptModels, id)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(gptModels)))
	return gptModels, nil
}

// fetchAnthropic lists Anthropic models, newest naming first.
func fetchAnthropic(ctx context.Context) ([]string, error) {
	key, err := apiKey("ANTHROPIC_API_KEY")
	if err != nil {
		return nil, err
	}

	var payload idList
	headers := map[string]string{
		"x-api-key":         key,
		"anthropic-version": "2023-06-01",
	}
	if err := getJSON(ctx, "https://api.anthropic.com/v1/models", headers, 10*time.Second, &payload); err != nil {
		return nil, err
	}

	models := payload.ids()
	sort.Sort(sort.Reverse(sort.StringSlice(models)))
	return models, nil
}

// fetchFireworks lists Fireworks models.
func fetchFireworks(ctx context.Context) ([]string, error) {
	key, err := apiKey("FIREWORKS_API_KEY")
	if err != nil {
		return nil, err
	}

	var payload idList
	headers := map[string]string{"Authorization": "Bearer " + key}
	if err := getJSON(ctx, "https://api.fireworks.ai/inference/v1/models", headers, 10*time.Second, &payload); err != nil {
		return nil, err
	}

	models := payload.ids()
	sort.Strings(models)
	return models, nil
}

// groqExcluded marks model families that are not chat-compatible:
// whisper (audio), guard/safeguard (safety), compound (special), orpheus (TTS).
var groqExcluded = []string{"whisper", "guard", "compound", "orpheus", "safeguard"}

// fetchGroq lists Groq models, filtered to chat-compatible ones.
func fetchGroq(ctx context.Context) ([]string, error) {
	key, err := apiKey("GROQ_API_KEY")
	if err != nil {
		return nil, err
	}

	var payload idList
	headers := map[string]string{"Authorization": "Bearer " + key}
	if err := getJSON(ctx, "https://api.groq.com/openai/v1/models", headers, 10*time.Second, &payload); err != nil {
		return nil, err
	}

	var chatModels []string
	for _, id := range payload.ids() {
		lower := strings.ToLower(id)
		excluded := false
		for _, pattern := range groqExcluded {
			if strings.Contains(lower, pattern) {
				excluded = true
				break
			}
		}
		if !excluded {
			chatModels = append(chatModels, id)
		}
	}
	sort.Strings(chatModels)
	return chatModels, nil
}
