package orientation

import (
	"context"
	"testing"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CLIN_LLM_PROVIDER",
		"CLIN_ANTHROPIC_API_KEY", "CLIN_OPENAI_API_KEY",
		"CLIN_GEMINI_API_KEY", "CLIN_OPENROUTER_API_KEY",
		"GEMINI_API_KEY", "OPENAI_API_KEY",
		"ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestNewProviderFromEnvUnconfigured(t *testing.T) {
	clearProviderEnv(t)

	p, err := NewProviderFromEnv(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil provider with no keys configured, got %T", p)
	}
}

func TestNewProviderFromEnvMock(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("CLIN_LLM_PROVIDER", "mock")

	p, err := NewProviderFromEnv(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil || p.ModelID() != "mock" {
		t.Fatalf("expected mock provider, got %v", p)
	}
}

func TestNewProviderFromEnvDiscovery(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	p, err := NewProviderFromEnv(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil {
		t.Fatal("expected a provider from discovered key")
	}
	if p.ModelID() != "gpt-4o-mini" {
		t.Errorf("model = %q, want default gpt-4o-mini", p.ModelID())
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("ANTHROPIC_API_KEY", "a-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini (highest priority)", cfg.Provider)
	}
}
