package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database. Empty selects an in-process sqlite database (file::memory:),
	// which keeps the dev loop free of external services; production points
	// this at postgres.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis is optional — when set, the login rate limiter shares its state
	// across instances instead of counting per process.
	RedisURL string `mapstructure:"REDIS_URL"`

	// Rate limiting
	APIRateLimit   int `mapstructure:"API_RATE_LIMIT"`   // requests/min per IP
	LoginRateLimit int `mapstructure:"LOGIN_RATE_LIMIT"` // login attempts/min per IP

	// Seed admin (cmd/seedadmin)
	AdminNome  string `mapstructure:"ADMIN_NOME"`
	AdminEmail string `mapstructure:"ADMIN_EMAIL"`
	AdminSenha string `mapstructure:"ADMIN_SENHA"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", 5000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("API_RATE_LIMIT", 1000)
	viper.SetDefault("LOGIN_RATE_LIMIT", 20)
	viper.SetDefault("ADMIN_NOME", "Admin Opus")
	viper.SetDefault("ADMIN_EMAIL", "admin@opus.com")
	viper.SetDefault("ADMIN_SENHA", "opus@@2025$%")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
