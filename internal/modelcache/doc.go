// Package modelcache lists available models per provider with a file-based
// cache that expires daily. Supported providers: ollama (local), openai,
// anthropic, fireworks, and groq. API keys come from the environment.
package modelcache
