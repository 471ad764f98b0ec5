package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (VBAFOG_*)
// 2. Config file (.vbafog.yml or .vbafog.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".vbafog")
	v.SetConfigType("yaml")
	v.AddConfigPath(l.rootDir)

	v.SetEnvPrefix("VBAFOG")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., VBAFOG_NAMING_LENGTH)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("naming.length")
	v.BindEnv("naming.alphabet")
	v.BindEnv("naming.methods.length")
	v.BindEnv("naming.methods.alphabet")
	v.BindEnv("naming.variables.length")
	v.BindEnv("naming.variables.alphabet")
	v.BindEnv("naming.parameters.length")
	v.BindEnv("naming.parameters.alphabet")

	v.BindEnv("mutators.chunk_size")
	v.BindEnv("mutators.xor_key")
	v.BindEnv("mutators.xor_helper")

	v.BindEnv("reports")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - we'll use defaults + env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("naming.length", defaults.Naming.Length)
	v.SetDefault("naming.alphabet", defaults.Naming.Alphabet)

	v.SetDefault("mutators.chunk_size", defaults.Mutators.ChunkSize)
	v.SetDefault("mutators.xor_helper", defaults.Mutators.XorHelper)

	v.SetDefault("reports", defaults.Reports)
}

// LoadConfig is a convenience function that creates a loader and loads config
// from the current working directory.
func LoadConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(wd).Load()
}
