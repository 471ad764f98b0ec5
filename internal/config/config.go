package config

import (
	"fmt"

	"github.com/fogbyte/vbafog/internal/domain"
	"github.com/fogbyte/vbafog/internal/domain/mutators"
)

// Config represents the complete vbafog configuration.
// It can be loaded from .vbafog.yml with environment variable overrides.
type Config struct {
	Naming   NamingConfig   `yaml:"naming" mapstructure:"naming"`
	Mutators MutatorsConfig `yaml:"mutators" mapstructure:"mutators"`
	Reports  string         `yaml:"reports" mapstructure:"reports"`
}

// NamingConfig defines the name pools generated identifiers are drawn from.
// The per-class sections override Length and Alphabet for one identifier
// class; a zero value falls back to the general setting.
type NamingConfig struct {
	Length     int               `yaml:"length" mapstructure:"length"`
	Alphabet   string            `yaml:"alphabet" mapstructure:"alphabet"`
	Methods    ClassNamingConfig `yaml:"methods" mapstructure:"methods"`
	Variables  ClassNamingConfig `yaml:"variables" mapstructure:"variables"`
	Parameters ClassNamingConfig `yaml:"parameters" mapstructure:"parameters"`
}

// ClassNamingConfig overrides the naming pool for one identifier class.
type ClassNamingConfig struct {
	Length   int    `yaml:"length" mapstructure:"length"`
	Alphabet string `yaml:"alphabet" mapstructure:"alphabet"`
}

// Resolve merges a class override over the general settings.
func (n NamingConfig) Resolve(class ClassNamingConfig) (length int, alphabet string) {
	length = n.Length
	alphabet = n.Alphabet

	if class.Length > 0 {
		length = class.Length
	}
	if class.Alphabet != "" {
		alphabet = class.Alphabet
	}

	return length, alphabet
}

// MutatorsConfig configures the string mutation strategies.
type MutatorsConfig struct {
	ChunkSize int    `yaml:"chunk_size" mapstructure:"chunk_size"`
	XorKey    string `yaml:"xor_key" mapstructure:"xor_key"`
	XorHelper string `yaml:"xor_helper" mapstructure:"xor_helper"`
}

// DefaultReportsDir is where audit reports land unless configured otherwise.
const DefaultReportsDir = ".vbafog-audit"

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Naming: NamingConfig{
			Length:   domain.DefaultNameLength,
			Alphabet: domain.DefaultAlphabet,
		},
		Mutators: MutatorsConfig{
			ChunkSize: mutators.DefaultChunkSize,
			XorHelper: mutators.DefaultXorHelper,
		},
		Reports: DefaultReportsDir,
	}
}

// Validate checks the configuration for values the pipeline cannot work with.
func Validate(cfg *Config) error {
	if cfg.Naming.Length <= 0 {
		return fmt.Errorf("naming.length must be positive, got %d", cfg.Naming.Length)
	}
	if cfg.Naming.Alphabet == "" {
		return fmt.Errorf("naming.alphabet must not be empty")
	}
	if cfg.Mutators.ChunkSize <= 0 {
		return fmt.Errorf("mutators.chunk_size must be positive, got %d", cfg.Mutators.ChunkSize)
	}
	return nil
}
