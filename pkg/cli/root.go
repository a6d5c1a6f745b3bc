// Package cli implements the fsum command line interface: compute
// checksums for one file and optionally compare them against candidate
// checksum strings supplied as extra arguments.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap/zapcore"

	"github.com/iamNilotpal/fsum/config"
	"github.com/iamNilotpal/fsum/internal/adapters/compression"
	"github.com/iamNilotpal/fsum/internal/core/domain"
	"github.com/iamNilotpal/fsum/internal/core/services/compare"
	"github.com/iamNilotpal/fsum/internal/core/services/engine"
	"github.com/iamNilotpal/fsum/pkg/errors"
	"github.com/iamNilotpal/fsum/pkg/fs"
	"github.com/iamNilotpal/fsum/pkg/logger"
)

// Exit codes. Success requires at least one matched candidate and no
// confirmed mismatch; unknown means no comparisons were requested.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUnknown = 2
)

const appName = "fsum"

// Run executes the CLI and returns the process exit code.
func Run(ctx context.Context, args []string) int {
	code := ExitUnknown

	cmd := &cli.Command{
		Name:      appName,
		Usage:     "Compute CRC32, MD5, SHA file checksums",
		ArgsUsage: "FILE [CHECKSUM...]",
		Description: `Streams FILE once and computes every enabled checksum in a single
pass. CRC32 is always computed; MD5 and SHA1 are on by default;
SHA256 and SHA512 are opt-in.

Each CHECKSUM argument is normalized (separators stripped, hex
lowercased) and compared against the computed digests. The exit code
is 0 if at least one candidate matched and none mismatched, 1 on any
mismatch or read failure, and 2 when no candidates were given.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML config file",
				Sources: cli.EnvVars("FSUM_CONFIG"),
			},
			&cli.BoolFlag{
				Name:  "md5",
				Usage: "Compute the MD5 checksum",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "sha1",
				Usage: "Compute the SHA1 checksum",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "sha256",
				Usage: "Compute the SHA256 checksum (slower)",
			},
			&cli.BoolFlag{
				Name:  "sha512",
				Usage: "Compute the SHA512 checksum (slower)",
			},
			&cli.StringFlag{
				Name:  "chunk-size",
				Usage: fmt.Sprintf("Read buffer size in bytes (%d-%d)", domain.MinChunkSize, domain.MaxChunkSize),
			},
			&cli.BoolFlag{
				Name:  "decompress",
				Usage: "Checksum the decompressed content of .zst/.gz files",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var err error
			code, err = checksumAction(ctx, cmd)
			return err
		},
	}

	if err := cmd.Run(ctx, args); err != nil {
		if ve := errors.AsValidationError(err); ve != nil {
			fmt.Fprintf(os.Stderr, "invalid %s: %v\n", ve.Field, ve.Err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return ExitFailure
	}
	return code
}

func checksumAction(ctx context.Context, cmd *cli.Command) (int, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return ExitFailure, err
	}

	if cmd.Args().Len() == 0 {
		return ExitFailure, fmt.Errorf("missing file argument, see '%s --help'", appName)
	}
	path := cmd.Args().First()
	candidates := cmd.Args().Slice()[1:]

	if exists, err := fs.Exists(path); err == nil && !exists {
		return ExitFailure, fmt.Errorf("file not found: %s", path)
	}

	// The config file sets the baseline level; --verbose always wins.
	level := logger.ParseLevel(cfg.LogLevel)
	if cmd.Bool("verbose") {
		level = zapcore.DebugLevel
	}
	log := logger.NewWithLevel(appName, level)
	defer log.Sync()

	source, totalSize, err := openSource(path, cfg.Checksum.Decompress)
	if err != nil {
		return ExitFailure, err
	}

	eng := engine.New(&domain.EngineOptions{ChunkSize: cfg.Checksum.ChunkSize}, log)
	result := eng.Run(ctx, source, totalSize, cfg.Algorithms(), nil)

	switch result.Status {
	case domain.StatusCancelled:
		return ExitFailure, fmt.Errorf("cancelled after %s bytes", formatCount(result.BytesRead))
	case domain.StatusFailed:
		return ExitFailure, fmt.Errorf("can't read from file: %w", result.Err)
	}

	printReport(os.Stdout, filepath.Base(path), result)

	matched, failed := 0, 0
	for _, candidate := range candidates {
		normalized := compare.Normalize(candidate)
		outcome := compare.Evaluate(normalized, result)
		printOutcome(os.Stdout, candidate, outcome)

		switch outcome.Kind {
		case domain.MatchFound:
			matched++
		case domain.MatchNone:
			failed++
		}
	}

	return exitCode(matched, failed), nil
}

// buildConfig layers CLI flags over the config file (or defaults).
func buildConfig(cmd *cli.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	fromFile := false
	if path := cmd.String("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg, fromFile = loaded, true
	}

	// Explicit toggles win over the config file; without a file the
	// toggles (with their defaults) define the enabled set.
	togglesSet := cmd.IsSet("md5") || cmd.IsSet("sha1") || cmd.IsSet("sha256") || cmd.IsSet("sha512")
	if !fromFile || togglesSet {
		cfg.Checksum.Algorithms = selectedAlgorithms(cmd)
	}

	if raw := cmd.String("chunk-size"); raw != "" {
		size, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid chunk size %q: %w", raw, err)
		}
		cfg.Checksum.ChunkSize = uint32(size)
	}

	if cmd.Bool("decompress") {
		cfg.Checksum.Decompress = true
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// selectedAlgorithms maps the boolean toggles to the enabled set. CRC32
// is always on and not toggleable.
func selectedAlgorithms(cmd *cli.Command) []string {
	algorithms := []string{string(domain.CRC32)}
	if cmd.Bool("md5") {
		algorithms = append(algorithms, string(domain.MD5))
	}
	if cmd.Bool("sha1") {
		algorithms = append(algorithms, string(domain.SHA1))
	}
	if cmd.Bool("sha256") {
		algorithms = append(algorithms, string(domain.SHA256))
	}
	if cmd.Bool("sha512") {
		algorithms = append(algorithms, string(domain.SHA512))
	}
	return algorithms
}

// openSource opens the file and, when asked, wraps it so the engine
// hashes the decompressed stream. The decompressed length is unknown up
// front, so progress totals are reported as zero in that mode.
func openSource(path string, decompress bool) (io.ReadCloser, uint64, error) {
	f, size, err := fs.Open(path)
	if err != nil {
		return nil, 0, err
	}

	if decompress {
		if dec := compression.ForPath(path); dec != nil {
			source, err := compression.WrapSource(dec, f)
			if err != nil {
				f.Close()
				return nil, 0, err
			}
			return source, 0, nil
		}
	}

	return f, size, nil
}
