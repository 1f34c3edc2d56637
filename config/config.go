package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string         `mapstructure:"port"`
	APIBearerToken string         `mapstructure:"API_BEARER_TOKEN"`
	AI             AIConfig       `mapstructure:"ai"`
	Document       DocumentConfig `mapstructure:"document"`
}

type AIConfig struct {
	// Provider selects the AI backend: "openai" or "gemini"
	Provider       string `mapstructure:"provider"`
	Endpoint       string `mapstructure:"endpoint"`
	Model          string `mapstructure:"model"`
	EmbeddingModel string `mapstructure:"embedding_model"`
	TopK           int    `mapstructure:"top_k"`
	OpenAIAPIKey   string `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKeys  string `mapstructure:"GEMINI_API_KEYS"` // comma-separated
}

type DocumentConfig struct {
	MaxChunkSize int `mapstructure:"max_chunk_size"`
	OverlapSize  int `mapstructure:"overlap_size"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEYS")
	v.BindEnv("API_BEARER_TOKEN")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.AI.OpenAIAPIKey == "" {
		config.AI.OpenAIAPIKey = v.GetString("OPENAI_API_KEY")
	}
	if config.AI.GeminiAPIKeys == "" {
		config.AI.GeminiAPIKeys = v.GetString("GEMINI_API_KEYS")
	}
	if config.APIBearerToken == "" {
		config.APIBearerToken = v.GetString("API_BEARER_TOKEN")
	}

	return &config, nil
}

// GeminiKeys splits the comma-separated Gemini API key list.
func (c *AIConfig) GeminiKeys() []string {
	if c.GeminiAPIKeys == "" {
		return nil
	}
	parts := strings.Split(c.GeminiAPIKeys, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if k := strings.TrimSpace(p); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
