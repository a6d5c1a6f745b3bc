package domain

// DigestState tells apart the three reasons an algorithm slot may or may
// not carry a finalized hex string. An explicit state removes the
// ambiguity of a sentinel empty string between "user didn't ask" and
// "algorithm failed to initialize".
type DigestState int

const (
	// StateNotRequested means the algorithm was not part of the enabled
	// set for the run.
	StateNotRequested DigestState = iota

	// StateComputed means the algorithm ran to completion and Hex holds
	// its finalized digest.
	StateComputed

	// StateUnavailable means the algorithm was requested but the runtime
	// digest library could not provide it. The run proceeds without it.
	StateUnavailable
)

// String returns the string representation of the digest state.
func (s DigestState) String() string {
	switch s {
	case StateNotRequested:
		return "not-requested"
	case StateComputed:
		return "computed"
	case StateUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// DigestResult is one finalized algorithm slot of a completed run.
type DigestResult struct {
	// State classifies the slot. Hex is only meaningful for StateComputed.
	State DigestState

	// Hex is the finalized digest as lowercase, zero-padded hex.
	Hex string
}

// RunStatus is the terminal state of one checksum run.
type RunStatus int

const (
	// StatusCompleted means the whole source was read and every live
	// accumulator was finalized.
	StatusCompleted RunStatus = iota

	// StatusCancelled means cooperative cancellation was observed at a
	// chunk boundary. No accumulator was finalized.
	StatusCancelled

	// StatusFailed means a read on the source failed mid-stream. No
	// accumulator was finalized and Err carries the cause.
	StatusFailed
)

// String returns the string representation of the run status.
func (s RunStatus) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ChecksumResult is the immutable record produced by one run. It is
// created once at finalize time and never mutated afterwards; it is the
// only run-scoped value that outlives the run.
type ChecksumResult struct {
	// Digests maps each enabled algorithm to its finalized slot. Empty
	// for cancelled and failed runs.
	Digests map[Algorithm]DigestResult

	// BytesRead is the total number of source bytes fed to the digest
	// set before the run ended.
	BytesRead uint64

	// Status records how the run ended.
	Status RunStatus

	// Err carries the failure or cancellation cause for non-completed
	// runs. Nil for completed runs.
	Err error
}

// Completed reports whether the run finished naturally and produced
// comparable digests.
func (r *ChecksumResult) Completed() bool {
	return r != nil && r.Status == StatusCompleted
}

// Hex returns the finalized hex string for alg if the run computed one.
func (r *ChecksumResult) Hex(alg Algorithm) (string, bool) {
	if !r.Completed() {
		return "", false
	}
	d, ok := r.Digests[alg]
	if !ok || d.State != StateComputed {
		return "", false
	}
	return d.Hex, true
}
