package cmd

import (
	"fmt"
	"os"

	"github.com/sitegen-ai/sitegen/internal/config"
	"github.com/sitegen-ai/sitegen/internal/generator"
	"github.com/sitegen-ai/sitegen/internal/llm"
)

// createProviderFromConfig creates an llm.Provider based on config settings.
func createProviderFromConfig(cfg *config.Config) (llm.Provider, error) {
	if cfg.Provider == config.ProviderGateway {
		return llm.NewGatewayProvider(llm.GatewayConfig{
			Endpoint:   cfg.Gateway.Endpoint,
			APIKey:     os.Getenv(config.APIKeyEnvVar(config.ProviderGateway)),
			CustomerID: cfg.Gateway.CustomerID,
		}, cfg.Model), nil
	}
	return llm.NewProvider(string(cfg.Provider), cfg.Model)
}

// createServiceFromConfig builds the generation service from config.
func createServiceFromConfig(cfg *config.Config) (*generator.Service, error) {
	provider, err := createProviderFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating provider: %w", err)
	}
	return generator.NewService(provider, cfg.Model, cfg.MaxTokens, cfg.Temperature), nil
}

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `sitegen init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
