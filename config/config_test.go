package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/fsum/internal/core/domain"
	"github.com/iamNilotpal/fsum/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.EqualValues(t, domain.DefaultChunkSize, cfg.Checksum.ChunkSize)
	assert.Equal(t, []string{"crc32", "md5", "sha1"}, cfg.Checksum.Algorithms)
	assert.False(t, cfg.Checksum.Decompress)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, Validate(cfg))
}

func TestValidateChunkSize(t *testing.T) {
	tests := []struct {
		name    string
		size    uint32
		wantErr bool
	}{
		{name: "below minimum", size: domain.MinChunkSize - 1, wantErr: true},
		{name: "minimum", size: domain.MinChunkSize},
		{name: "default", size: domain.DefaultChunkSize},
		{name: "maximum", size: domain.MaxChunkSize},
		{name: "above maximum", size: domain.MaxChunkSize + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChunkSize(tt.size)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			ve := errors.AsValidationError(err)
			require.NotNil(t, ve, "chunk size failures carry the offending field and value")
			assert.Equal(t, "chunk_size", ve.Field)
			assert.Equal(t, tt.size, ve.Value)
		})
	}
}

func TestValidateRejectsUnknownAlgorithm(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Checksum.Algorithms = append(cfg.Checksum.Algorithms, "whirlpool")

	err := Validate(cfg)
	require.Error(t, err)
	require.True(t, errors.IsValidationError(err))

	ve := errors.AsValidationError(err)
	assert.Equal(t, "algorithms", ve.Field)
	assert.Equal(t, "whirlpool", ve.Value)
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "loud"

	err := Validate(cfg)
	require.Error(t, err)

	ve := errors.AsValidationError(err)
	require.NotNil(t, ve)
	assert.Equal(t, "log_level", ve.Field)
	assert.Equal(t, "loud", ve.Value)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fsum.yaml")
	contents := `
checksum:
  chunk_size: 4096
  algorithms: [crc32, sha256, sha512]
  decompress: true
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.EqualValues(t, 4096, cfg.Checksum.ChunkSize)
	assert.True(t, cfg.Checksum.Decompress)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(
		t,
		[]domain.Algorithm{domain.CRC32, domain.SHA256, domain.SHA512},
		cfg.Algorithms(),
	)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("out of range chunk size", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fsum.yaml")
		require.NoError(t, os.WriteFile(path, []byte("checksum:\n  chunk_size: 128\n"), 0o644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}
