package config

// QualityTier controls model selection: trade-off between speed/cost and quality.
type QualityTier string

const (
	QualityLite   QualityTier = "lite"
	QualityNormal QualityTier = "normal"
	QualityMax    QualityTier = "max"
)

// ProviderType identifies a chat completion provider.
type ProviderType string

const (
	ProviderGateway    ProviderType = "gateway"
	ProviderOpenAI     ProviderType = "openai"
	ProviderOpenRouter ProviderType = "openrouter"
	ProviderOllama     ProviderType = "ollama"
)

// GatewaySettings configures the OpenAI-compatible completion gateway. The
// endpoint and customer id are deployment-specific; the bearer credential is
// read from the environment (see APIKeyEnvVar), never from the config file.
type GatewaySettings struct {
	Endpoint   string `yaml:"endpoint" koanf:"endpoint"`
	CustomerID string `yaml:"customer_id" koanf:"customer_id"`
}

// ServerSettings holds HTTP server options.
type ServerSettings struct {
	Port            int    `yaml:"port" koanf:"port"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	DataDir         string `yaml:"data_dir" koanf:"data_dir"`
	DisableLog      bool   `yaml:"disable_log" koanf:"disable_log"`
}

// Config is the top-level sitegen configuration, corresponding to .sitegen.yml.
type Config struct {
	Provider    ProviderType    `yaml:"provider" koanf:"provider"`
	Model       string          `yaml:"model" koanf:"model"`
	Quality     QualityTier     `yaml:"quality" koanf:"quality"`
	MaxTokens   int             `yaml:"max_tokens" koanf:"max_tokens"`
	Temperature float64         `yaml:"temperature" koanf:"temperature"`
	OutputFile  string          `yaml:"output_file" koanf:"output_file"`
	Gateway     GatewaySettings `yaml:"gateway" koanf:"gateway"`
	Server      ServerSettings  `yaml:"server" koanf:"server"`
}
