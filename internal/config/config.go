package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds the process settings read from the environment or a .env file.
type Config struct {
	Port         string `mapstructure:"PORT"`
	DatabasePath string `mapstructure:"DATABASE_PATH"`
	SecretKey    string `mapstructure:"SECRET_KEY"`
	Environment  string `mapstructure:"ENVIRONMENT"`
	LogFile      string `mapstructure:"LOG_FILE"`
}

var defaults = map[string]string{
	"PORT":          "5000",
	"DATABASE_PATH": "tasks.db",
	"SECRET_KEY":    "change-this-secret-key",
	"ENVIRONMENT":   "development",
	"LOG_FILE":      "",
}

// Load reads configuration from environment variables, falling back to an
// optional .env file in path and then to built-in defaults.
func Load(path string) (Config, error) {
	var cfg Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	for key, value := range defaults {
		v.SetDefault(key, value)
		// AutomaticEnv only covers keys viper already knows about when unmarshalling
		_ = v.BindEnv(key)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port < 1 || port > 65535 {
		return cfg, fmt.Errorf("invalid PORT %q", cfg.Port)
	}

	return cfg, nil
}

// IsProduction reports whether the app runs with production settings.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr returns the listen address on all interfaces.
func (c Config) Addr() string {
	return "0.0.0.0:" + c.Port
}
