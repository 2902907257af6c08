package utils

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

var (
	EnvPath string = "."
)

type Config struct {
	Env                 string `mapstructure:"ENV"`
	ListenPort          int    `mapstructure:"LISTEN_PORT"`
	RedisHost           string `mapstructure:"REDIS_HOST"`
	RedisPort           string `mapstructure:"REDIS_PORT"`
	RedisPassword       string `mapstructure:"REDIS_PASSWORD"`
	RedisDB             int    `mapstructure:"REDIS_DB"`
	PremiumTablePath    string `mapstructure:"PREMIUM_TABLE_PATH"`
	TableRefreshMinutes int    `mapstructure:"TABLE_REFRESH_MINUTES"`
	Papertrail          string `mapstructure:"PAPERTRAIL"`
	PapertrailAppName   string `mapstructure:"PAPERTRAIL_APP_NAME"`
}

func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = "."
	}

	// Create a new Viper instance to avoid global state
	v := viper.New()

	v.SetEnvPrefix("")
	v.AutomaticEnv()

	// Defaults double as key registration so AutomaticEnv values
	// survive Unmarshal
	v.SetDefault("ENV", "development")
	v.SetDefault("LISTEN_PORT", 8000)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("PREMIUM_TABLE_PATH", "./premium_tables.xlsx")
	v.SetDefault("TABLE_REFRESH_MINUTES", 0)
	v.SetDefault("PAPERTRAIL", "")
	v.SetDefault("PAPERTRAIL_APP_NAME", "premium-api")

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		// Log the error, but don't fail entirely
		log.Printf("Warning: Unable to read config file: %v", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if config.ListenPort == 0 {
		return fmt.Errorf("listen port must be specified")
	}

	if config.RedisHost == "" {
		return fmt.Errorf("redis host must be provided")
	}

	if config.PremiumTablePath == "" {
		return fmt.Errorf("premium table path must be provided")
	}

	return nil
}

// Redact masks sensitive information for logging
func (c *Config) Redact() Config {
	redacted := *c
	redacted.RedisPassword = "****"
	return redacted
}
