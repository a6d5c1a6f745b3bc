package ports

import "github.com/iamNilotpal/fsum/internal/core/domain"

// Accumulator is the per-algorithm mutable running state of one run.
// It is exclusively owned by the digest set for the lifetime of that run
// and discarded after finalization.
type Accumulator interface {
	// Algorithm identifies which digest this accumulator computes.
	Algorithm() domain.Algorithm

	// Update feeds the next sequential chunk of source bytes. May be
	// called any number of times. Calling Update after Finalize is a
	// programming error and panics.
	Update(chunk []byte)

	// Finalize consumes the accumulator and returns the raw digest
	// bytes. Must be called exactly once.
	Finalize() []byte
}
