package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/username/biz-days/internal/ptax"
)

const envPrefix = "BIZDAYS"

var validate = validator.New()

// Config represents application configuration
type Config struct {
	Store StoreConfig `mapstructure:"store"`
	PTAX  PTAXConfig  `mapstructure:"ptax"`
	Log   LogConfig   `mapstructure:"log"`
}

// StoreConfig represents form state storage configuration
type StoreConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// PTAXConfig represents the exchange rate service configuration
type PTAXConfig struct {
	Endpoint string `mapstructure:"endpoint" validate:"required,url"`
	Timeout  string `mapstructure:"timeout"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Load loads configuration from file, environment and defaults.
// A missing config file is not an error; defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.biz-days")
		v.AddConfigPath("/etc/biz-days")
	}

	// BIZDAYS_STORE_PATH overrides store.path
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(configPath != "" && os.IsNotExist(err)) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.path", defaultStorePath())
	v.SetDefault("ptax.endpoint", ptax.DefaultEndpoint)
	v.SetDefault("ptax.timeout", ptax.DefaultTimeout.String())
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "warn")
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".biz-days", "state.json")
	}
	return filepath.Join(home, ".biz-days", "state.json")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.PTAX.Timeout != "" {
		if _, err := time.ParseDuration(c.PTAX.Timeout); err != nil {
			return fmt.Errorf("ptax.timeout: %w", err)
		}
	}

	return nil
}

// GetTimeout returns the PTAX request timeout
func (c *PTAXConfig) GetTimeout() time.Duration {
	if c.Timeout == "" {
		return ptax.DefaultTimeout
	}
	duration, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return ptax.DefaultTimeout
	}
	return duration
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Store.Path = os.ExpandEnv(c.Store.Path)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
