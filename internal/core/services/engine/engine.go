// Package engine implements the streaming checksum pass: one sequential
// read of the byte source feeding every enabled digest accumulator, with
// per-chunk progress publishes and cooperative cancellation at chunk
// boundaries.
package engine

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/iamNilotpal/fsum/internal/adapters/progress"
	"github.com/iamNilotpal/fsum/internal/core/domain"
	"github.com/iamNilotpal/fsum/internal/core/ports"
	"github.com/iamNilotpal/fsum/pkg/errors"
	"github.com/iamNilotpal/fsum/pkg/logger"
	"github.com/iamNilotpal/fsum/pkg/pool"
)

// Engine orchestrates checksum runs. It is safe to reuse across runs,
// but only one run may be active against an instance at a time; that is
// a caller contract, not enforced internally.
type Engine struct {
	chunkSize int
	pool      *pool.ChunkPool
	log       *zap.SugaredLogger
}

// New creates an engine. A nil opts or zero chunk size selects
// domain.DefaultChunkSize. The engine does not validate the chunk size
// against the documented range; the configuration layer rejects
// out-of-range overrides before a run is ever started.
func New(opts *domain.EngineOptions, log *zap.SugaredLogger) *Engine {
	chunkSize := domain.DefaultChunkSize
	if opts != nil && opts.ChunkSize != 0 {
		chunkSize = int(opts.ChunkSize)
	}
	if log == nil {
		log = logger.NewNop()
	}

	return &Engine{
		chunkSize: chunkSize,
		pool:      pool.NewChunkPool(chunkSize),
		log:       log,
	}
}

// ChunkSize returns the read buffer size used for every run.
func (e *Engine) ChunkSize() int {
	return e.chunkSize
}

// Run performs one full streaming pass over source and returns the
// immutable run result. It never returns nil.
//
// The source is closed on every exit path. totalSize is only used for
// progress math. CRC32 is implicitly added to enabled. Cancellation is
// cooperative: ctx is checked between chunks, so cancellation latency is
// one chunk. A cancelled or failed run carries no digests; read errors
// and the cancellation cause are captured in the result rather than
// raised, since partial outcomes are still useful to the caller.
//
// All progress publishes for a run happen before Run returns, so the
// result is only observable after the final publish.
func (e *Engine) Run(
	ctx context.Context,
	source io.ReadCloser,
	totalSize uint64,
	enabled []domain.Algorithm,
	sink ports.ProgressSink,
) *domain.ChecksumResult {
	defer source.Close()

	if sink == nil {
		sink = progress.Nop{}
	}

	set := NewDigestSet(enabled)
	for alg, err := range set.Unavailable() {
		e.log.Warnw("digest algorithm unavailable", "algorithm", alg, "error", err)
	}

	buf := e.pool.Get()
	defer e.pool.Put(buf)

	var bytesDone uint64
	start := time.Now()
	sink.Publish(0, totalSize)

	for {
		if err := ctx.Err(); err != nil {
			e.log.Debugw("run cancelled", "bytesDone", bytesDone)
			return &domain.ChecksumResult{
				Digests:   map[domain.Algorithm]domain.DigestResult{},
				BytesRead: bytesDone,
				Status:    domain.StatusCancelled,
				Err:       errors.New(errors.ErrorCancelled, "read", err),
			}
		}

		n, err := source.Read(buf)
		if n > 0 {
			set.Update(buf[:n])
			bytesDone += uint64(n)
			sink.Publish(bytesDone, totalSize)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			e.log.Debugw("source read failed", "bytesDone", bytesDone, "error", err)
			return &domain.ChecksumResult{
				Digests:   map[domain.Algorithm]domain.DigestResult{},
				BytesRead: bytesDone,
				Status:    domain.StatusFailed,
				Err:       errors.New(errors.ErrorSource, "read", err),
			}
		}
	}

	digests := set.FinalizeAll()
	e.log.Debugw(
		"checksum pass complete",
		"bytes", bytesDone,
		"chunkSize", e.chunkSize,
		"elapsed", time.Since(start),
	)

	return &domain.ChecksumResult{
		Digests:   digests,
		BytesRead: bytesDone,
		Status:    domain.StatusCompleted,
	}
}

// Start runs the pass on a dedicated goroutine so the caller's control
// flow is never blocked on a large file. The result is delivered on the
// returned channel once, after all progress publishes for the run. The
// channel is buffered, so an abandoned run cannot leak its goroutine.
func (e *Engine) Start(
	ctx context.Context,
	source io.ReadCloser,
	totalSize uint64,
	enabled []domain.Algorithm,
	sink ports.ProgressSink,
) <-chan *domain.ChecksumResult {
	done := make(chan *domain.ChecksumResult, 1)
	go func() {
		done <- e.Run(ctx, source, totalSize, enabled, sink)
		close(done)
	}()
	return done
}
