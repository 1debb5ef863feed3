package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Lookup LookupConfig
	Logger LoggerConfig
}

// LookupConfig points at the collaborator serving /get_train_name.
type LookupConfig struct {
	URL string `validate:"required,url"`
	// Zero means no timeout.
	Timeout time.Duration `validate:"gte=0"`
}

type LoggerConfig struct {
	Level  string `validate:"required"`
	Format string `validate:"oneof=json text"`
}

// Load reads .env, an optional config.yaml and the environment, in increasing precedence.
func Load() (*Config, error) {
	// .env is optional for local runs
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Defaults
	v.SetDefault("LOOKUP_URL", "http://localhost:5000")
	v.SetDefault("LOOKUP_TIMEOUT", "0s")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "text")

	// Env
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	timeout, err := time.ParseDuration(v.GetString("LOOKUP_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("parse LOOKUP_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Lookup: LookupConfig{
			URL:     strings.TrimRight(v.GetString("LOOKUP_URL"), "/"),
			Timeout: timeout,
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
