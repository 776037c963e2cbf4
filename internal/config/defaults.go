package config

// QualityPreset describes the model to use for a given quality tier.
type QualityPreset struct {
	Model string
}

// qualityPresets maps each provider+quality combination to its model choice.
// Gateway models are addressed by their OpenRouter route behind the gateway.
var qualityPresets = map[ProviderType]map[QualityTier]QualityPreset{
	ProviderGateway: {
		QualityLite:   {Model: "openrouter/anthropic/claude-3.5-haiku"},
		QualityNormal: {Model: "openrouter/anthropic/claude-sonnet-4"},
		QualityMax:    {Model: "openrouter/anthropic/claude-opus-4"},
	},
	ProviderOpenRouter: {
		QualityLite:   {Model: "anthropic/claude-3.5-haiku"},
		QualityNormal: {Model: "anthropic/claude-sonnet-4"},
		QualityMax:    {Model: "anthropic/claude-opus-4"},
	},
	ProviderOpenAI: {
		QualityLite:   {Model: "gpt-4o-mini"},
		QualityNormal: {Model: "gpt-4o"},
		QualityMax:    {Model: "gpt-4o"},
	},
	ProviderOllama: {
		QualityLite:   {Model: "llama3"},
		QualityNormal: {Model: "llama3"},
		QualityMax:    {Model: "llama3:70b"},
	},
}

// DefaultGatewayEndpoint is the hosted completion gateway used unless a
// deployment overrides it.
const DefaultGatewayEndpoint = "https://oi-server.onrender.com/chat/completions"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderGateway,
		Model:       "openrouter/anthropic/claude-sonnet-4",
		Quality:     QualityNormal,
		MaxTokens:   8000,
		Temperature: 0.7,
		OutputFile:  "generated-website.html",
		Gateway: GatewaySettings{
			Endpoint: DefaultGatewayEndpoint,
		},
		Server: ServerSettings{
			Port:            8080,
			AllowAllOrigins: true,
			DataDir:         ".sitegen",
		},
	}
}

// GetPreset returns the quality preset for the given provider and tier.
// Returns the Normal gateway preset if the combination is not found.
func GetPreset(provider ProviderType, tier QualityTier) QualityPreset {
	if tiers, ok := qualityPresets[provider]; ok {
		if preset, ok := tiers[tier]; ok {
			return preset
		}
	}
	return qualityPresets[ProviderGateway][QualityNormal]
}
