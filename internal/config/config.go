package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Assistant AssistantConfig `mapstructure:"assistant"`
	Log       LogConfig       `mapstructure:"log"`
}

// AssistantConfig represents the interactive loop settings
type AssistantConfig struct {
	Greeting string `mapstructure:"greeting"`
	Prompt   string `mapstructure:"prompt"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
	File  string `mapstructure:"file"`  // empty = stderr
}

var validLevels = []string{"debug", "info", "warn", "error"}

// Load loads configuration from file and ASSISTANT_* environment variables.
// An explicit configPath must exist; without one, a missing config.yaml is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("assistant.greeting", defaults.Assistant.Greeting)
	v.SetDefault("assistant.prompt", defaults.Assistant.Prompt)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.assistant-bot")
		v.AddConfigPath("/etc/assistant-bot")
	}

	// Read environment variables
	v.SetEnvPrefix("assistant")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when nothing is configured
func Default() *Config {
	return &Config{
		Assistant: AssistantConfig{
			Greeting: "Welcome to the assistant bot!",
			Prompt:   "Enter a command: ",
		},
		Log: LogConfig{Level: "warn"},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	for _, level := range validLevels {
		if c.Log.Level == level {
			return nil
		}
	}
	return fmt.Errorf("log.level must be one of %s, got '%s'", strings.Join(validLevels, ", "), c.Log.Level)
}
