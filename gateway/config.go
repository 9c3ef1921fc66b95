package gateway

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is a configuration for the gateway application
type Config struct {
	HTTPAddr string `env:"GATEWAY_HTTP_ADDR" env-default:"localhost:9090" env-description:"HTTP listen address"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel     string `env:"GATEWAY_LOG_LEVEL" env-default:"info" env-description:"log level"`
	MaxBodyBytes int64  `env:"GATEWAY_MAX_BODY_BYTES" env-default:"65536" env-description:"request body limit"`
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:     "localhost:9090",
		LogLevel:     "info",
		MaxBodyBytes: 64 << 10,
	}
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (*Config, error) {
	config := &Config{}
	if err := cleanenv.ReadEnv(config); err != nil {
		desc, _ := cleanenv.GetDescription(config, nil)
		return nil, fmt.Errorf("reading env: %w\n%s", err, desc)
	}

	return config, nil
}
