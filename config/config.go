// Package config handles environment-driven configuration for promptgen.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/teilomillet/promptgen/utils"
)

// Config holds the connection and generation settings for the LLM Farm
// endpoint. It is read once at startup and treated as read-only afterward.
type Config struct {
	APIKey      string         `env:"API_KEY" validate:"required"`
	BaseURL     string         `env:"LLM_FARM_URL" validate:"required,url"`
	Model       string         `env:"MODEL_NAME" envDefault:"gpt-4o-mini"`
	MaxTokens   int            `env:"MAX_TOKENS" envDefault:"4096" validate:"min=1"`
	Temperature float64        `env:"TEMPERATURE" envDefault:"0" validate:"min=0,max=2"`
	Timeout     time.Duration  `env:"LLM_TIMEOUT" envDefault:"30s"`
	MaxRetries  int            `env:"MAX_RETRIES" envDefault:"3" validate:"min=0"`
	RetryDelay  time.Duration  `env:"RETRY_DELAY" envDefault:"2s"`
	LogLevel    utils.LogLevel `env:"LOG_LEVEL" envDefault:"INFO"`
}

var validate = validator.New()

// LoadConfig reads the configuration from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required fields are present and well-formed.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// ConfigOption mutates a Config before it is handed to the client.
type ConfigOption func(*Config)

// NewConfig returns a Config with library defaults, for callers that
// configure programmatically rather than through the environment.
func NewConfig() *Config {
	return &Config{
		Model:       "gpt-4o-mini",
		MaxTokens:   4096,
		Temperature: 0,
		Timeout:     30 * time.Second,
		MaxRetries:  3,
		RetryDelay:  2 * time.Second,
		LogLevel:    utils.LogLevelInfo,
	}
}

func SetAPIKey(apiKey string) ConfigOption {
	return func(c *Config) {
		c.APIKey = apiKey
	}
}

func SetBaseURL(baseURL string) ConfigOption {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

func SetModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

func SetMaxTokens(maxTokens int) ConfigOption {
	return func(c *Config) {
		if maxTokens < 1 {
			maxTokens = 1
		}
		c.MaxTokens = maxTokens
	}
}

func SetTemperature(temperature float64) ConfigOption {
	return func(c *Config) {
		c.Temperature = temperature
	}
}

func SetTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

func SetMaxRetries(maxRetries int) ConfigOption {
	return func(c *Config) {
		c.MaxRetries = maxRetries
	}
}

func SetRetryDelay(retryDelay time.Duration) ConfigOption {
	return func(c *Config) {
		c.RetryDelay = retryDelay
	}
}

func SetLogLevel(level utils.LogLevel) ConfigOption {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// ApplyOptions applies the given options to cfg in order.
func ApplyOptions(cfg *Config, options ...ConfigOption) {
	for _, option := range options {
		option(cfg)
	}
}
