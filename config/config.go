package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the recommendation service
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Vector    VectorConfig    `mapstructure:"vector"`
	Embedding EmbeddingConfig `mapstructure:"embedding"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Cache     CacheConfig     `mapstructure:"cache"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// CatalogConfig points at the assessment catalog file and the collection
// it is indexed into.
type CatalogConfig struct {
	Path       string `mapstructure:"path"`
	Collection string `mapstructure:"collection"`
}

func (c CatalogConfig) Validate() error {
	if strings.TrimSpace(c.Path) == "" {
		return fmt.Errorf("catalog.path is required")
	}
	if strings.TrimSpace(c.Collection) == "" {
		return fmt.Errorf("catalog.collection is required")
	}
	return nil
}

// VectorConfig contains Qdrant connection settings. URL and APIKey are
// checked lazily at first use, not at startup.
type VectorConfig struct {
	URL     string        `mapstructure:"url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// EmbeddingConfig contains the embedding endpoint settings
type EmbeddingConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LLMConfig contains the reranking model settings
type LLMConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// CacheConfig contains Redis settings for the response cache. The cache is
// disabled when host is empty.
type CacheConfig struct {
	Host     string        `mapstructure:"host"`
	Port     string        `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Enabled reports whether a Redis response cache is configured.
func (c CacheConfig) Enabled() bool {
	return strings.TrimSpace(c.Host) != ""
}

func (c CacheConfig) Addr() string {
	port := c.Port
	if port == "" {
		port = "6379"
	}
	return fmt.Sprintf("%s:%s", c.Host, port)
}

// MissingError signals that a required credential or endpoint is absent.
// It is raised at first use of the dependent service, so an unconfigured
// process still starts and fails per request with a clear message.
type MissingError struct {
	Key string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s must be set", e.Key)
}

// IsMissing reports whether err is (or wraps) a MissingError.
func IsMissing(err error) bool {
	var m *MissingError
	return errors.As(err, &m)
}

// LoadConfig loads config from file and environment. The file is optional:
// the service can run entirely from RECO_* environment variables.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.SetDefault("server.address", ":8000")
	v.SetDefault("catalog.path", "shl_assessments.json")
	v.SetDefault("catalog.collection", "shl_assessments")
	v.SetDefault("vector.timeout", 60*time.Second)
	v.SetDefault("embedding.base_url", "https://api.openai.com/v1")
	v.SetDefault("embedding.model", "text-embedding-3-small")
	v.SetDefault("embedding.timeout", 30*time.Second)
	v.SetDefault("llm.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("llm.model", "llama-3.1-8b-instant")
	v.SetDefault("llm.temperature", 0.0)
	v.SetDefault("llm.max_tokens", 1024)
	v.SetDefault("llm.timeout", 30*time.Second)
	v.SetDefault("cache.ttl", 15*time.Minute)

	if path == "" {
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("RECO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only surfaces keys viper already knows about. Keys
	// without defaults (credentials, cache) must be bound explicitly or
	// env-only deployments would never see them.
	for _, key := range []string{
		"vector.url",
		"vector.api_key",
		"embedding.api_key",
		"llm.api_key",
		"cache.host",
		"cache.port",
		"cache.password",
		"cache.db",
	} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := config.Catalog.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}
