// Package config loads application configuration from environment
// variables and an optional .env file.
package config

import (
	"log/slog"

	"github.com/spf13/viper"

	"github.com/sevigo/repograph/internal/api"
	"github.com/sevigo/repograph/internal/logger"
)

// Config holds the application's configuration values.
type Config struct {
	APIBaseURL   string
	Provider     string
	DatabasePath string
	PreviewPort  int
	MermaidTheme string
	Logging      logger.Config
}

// LoadConfig reads configuration from environment variables and a .env
// file and sets sensible defaults. It uses the Viper library to handle
// configuration loading and precedence.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")

	viper.SetEnvPrefix("RG")
	viper.AutomaticEnv()

	viper.SetDefault("API_BASE_URL", api.DefaultBaseURL)
	viper.SetDefault("PROVIDER", "github")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_OUTPUT", "stderr")
	viper.SetDefault("PREVIEW_PORT", 4480)
	viper.SetDefault("MERMAID_THEME", "neutral")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Error("failed to read config file", "error", err)
		}
	}

	return &Config{
		APIBaseURL:   viper.GetString("API_BASE_URL"),
		Provider:     viper.GetString("PROVIDER"),
		DatabasePath: viper.GetString("DATABASE_PATH"),
		PreviewPort:  viper.GetInt("PREVIEW_PORT"),
		MermaidTheme: viper.GetString("MERMAID_THEME"),
		Logging: logger.Config{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
			Output: viper.GetString("LOG_OUTPUT"),
		},
	}, nil
}
