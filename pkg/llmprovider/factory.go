package llmprovider

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"mental-health-support/config"
	"mental-health-support/pkg/ollama"
)

const (
	defaultRetryDelay      = 500 * time.Millisecond
	defaultMaxTotalTimeout = 30 * time.Second
)

// ConfigFrom translates config.LLMConfig knobs into a manager Config.
// Missing or malformed durations fall back to safe defaults rather than
// failing startup.
func ConfigFrom(cfg *config.LLMConfig) *Config {
	retryDelay, err := time.ParseDuration(cfg.RetryDelay)
	if err != nil || retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}
	maxTimeout, err := time.ParseDuration(cfg.MaxTotalTimeout)
	if err != nil || maxTimeout <= 0 {
		maxTimeout = defaultMaxTotalTimeout
	}
	return &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTimeout,
	}
}

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers
// filtered out. Providers that fail to initialize are skipped instead of
// failing the entire service.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.Slice(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors,
				fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	switch cfg.Name {
	case "ollama":
		client, err := ollama.New(ollama.Config{
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return NewOllamaAdapter(client), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
