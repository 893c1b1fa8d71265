package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	KeyOutputDir       = "output_dir"
	KeyContractorLimit = "contractor_limit"
	KeyLogLevel        = "log_level"

	envPrefix = "FLOOD_ATLAS"
)

type Config struct {
	OutputDir       string `mapstructure:"output_dir"`
	ContractorLimit int    `mapstructure:"contractor_limit"` // <= 0 disables the cap
	LogLevel        string `mapstructure:"log_level"`
}

// New returns a viper instance with defaults and FLOOD_ATLAS_* env bindings.
// Callers may bind CLI flags on it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyOutputDir, ".")
	v.SetDefault(KeyContractorLimit, 15)
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path into v and decodes the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	return &cfg, nil
}
