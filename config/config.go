package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iamNilotpal/fsum/internal/core/domain"
	"github.com/iamNilotpal/fsum/pkg/errors"
)

type Config struct {
	Checksum ChecksumConfig `yaml:"checksum"`
	LogLevel string         `yaml:"log_level"` // Logging verbosity (debug, info, warn, error)
}

// Holds checksum-specific configuration.
type ChecksumConfig struct {
	ChunkSize  uint32   `yaml:"chunk_size"` // Read buffer size in bytes
	Algorithms []string `yaml:"algorithms"` // Digests to compute (crc32 is always added)
	Decompress bool     `yaml:"decompress"` // Hash the decompressed content of .zst/.gz files
}

// Returns a Config struct with reasonable default values. CRC32 is
// always on; MD5 and SHA1 are the historical defaults, SHA256/SHA512
// are opt-in because they are noticeably slower.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Checksum: ChecksumConfig{
			ChunkSize:  domain.DefaultChunkSize,
			Algorithms: []string{string(domain.CRC32), string(domain.MD5), string(domain.SHA1)},
		},
	}
}

// Loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate enforces the collaborator-level invariants the engine itself
// deliberately does not check, chiefly the practical chunk size range.
func Validate(config *Config) error {
	if err := ValidateChunkSize(config.Checksum.ChunkSize); err != nil {
		return err
	}

	for _, name := range config.Checksum.Algorithms {
		if _, err := domain.ParseAlgorithm(name); err != nil {
			return errors.NewValidationError("algorithms", name, err)
		}
	}

	switch config.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.NewValidationError(
			"log_level", config.LogLevel,
			fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", config.LogLevel),
		)
	}

	return nil
}

// ValidateChunkSize rejects read buffer sizes outside the documented
// practical range. The range lives here, not in the engine, so
// experimenters can still drive the engine directly with whatever they
// want.
func ValidateChunkSize(size uint32) error {
	if size < domain.MinChunkSize || size > domain.MaxChunkSize {
		return errors.NewValidationError(
			"chunk_size", size,
			fmt.Errorf(
				"chunk_size must be between %d and %d bytes, got %d",
				domain.MinChunkSize, domain.MaxChunkSize, size,
			),
		)
	}
	return nil
}

// Algorithms converts the configured algorithm names into domain ids.
// Call Validate first; unknown names are skipped here.
func (c *Config) Algorithms() []domain.Algorithm {
	out := make([]domain.Algorithm, 0, len(c.Checksum.Algorithms))
	for _, name := range c.Checksum.Algorithms {
		if alg, err := domain.ParseAlgorithm(name); err == nil {
			out = append(out, alg)
		}
	}
	return out
}
