package engine

import (
	"encoding/binary"

	"github.com/iamNilotpal/fsum/internal/adapters/digest"
	"github.com/iamNilotpal/fsum/internal/core/domain"
	"github.com/iamNilotpal/fsum/internal/core/ports"
	"github.com/iamNilotpal/fsum/pkg/hexfmt"
)

// DigestSet owns the live accumulators of one run. The enabled subset is
// fixed at construction and never changes mid-run; CRC32 is always
// present. Accumulators are consumed exactly once by FinalizeAll and the
// set is discarded with the run.
type DigestSet struct {
	order       []domain.Algorithm                     // enabled subset, in compare priority order
	accs        map[domain.Algorithm]ports.Accumulator // live accumulators
	unavailable map[domain.Algorithm]error             // requested but not provided by the runtime
	finalized   bool
}

// NewDigestSet builds the accumulator set for one run. The enabled list
// may come in any order and may repeat; CRC32 is forced on. Algorithms
// the runtime cannot provide are recorded as unavailable and skipped,
// rather than aborting the whole run.
func NewDigestSet(enabled []domain.Algorithm) *DigestSet {
	requested := map[domain.Algorithm]bool{domain.CRC32: true}
	for _, alg := range enabled {
		requested[alg] = true
	}

	set := &DigestSet{
		accs:        make(map[domain.Algorithm]ports.Accumulator, len(requested)),
		unavailable: make(map[domain.Algorithm]error),
	}

	for _, alg := range domain.ComparePriority() {
		if !requested[alg] {
			continue
		}
		set.order = append(set.order, alg)

		acc, err := digest.New(alg)
		if err != nil {
			set.unavailable[alg] = err
			continue
		}
		set.accs[alg] = acc
	}

	return set
}

// Enabled returns the enabled subset in compare priority order,
// including algorithms that turned out to be unavailable.
func (s *DigestSet) Enabled() []domain.Algorithm {
	return s.order
}

// Unavailable returns the requested algorithms the runtime could not
// provide, with the construction error for each.
func (s *DigestSet) Unavailable() map[domain.Algorithm]error {
	return s.unavailable
}

// Update feeds the exact same chunk to every live accumulator. Calling
// Update after FinalizeAll is a programming error and panics.
func (s *DigestSet) Update(chunk []byte) {
	if s.finalized {
		panic("engine: digest set update after finalize")
	}
	for _, alg := range s.order {
		if acc, ok := s.accs[alg]; ok {
			acc.Update(chunk)
		}
	}
}

// FinalizeAll consumes every accumulator exactly once and returns the
// finalized slot for each enabled algorithm: computed hex, or the
// unavailable marker for algorithms the runtime could not provide.
func (s *DigestSet) FinalizeAll() map[domain.Algorithm]domain.DigestResult {
	if s.finalized {
		panic("engine: digest set finalized twice")
	}
	s.finalized = true

	out := make(map[domain.Algorithm]domain.DigestResult, len(s.order))
	for _, alg := range s.order {
		acc, ok := s.accs[alg]
		if !ok {
			out[alg] = domain.DigestResult{State: domain.StateUnavailable}
			continue
		}

		sum := acc.Finalize()
		var hex string
		if alg == domain.CRC32 {
			// CRC32 is a 32-bit value, rendered as exactly 8 zero-padded
			// digits rather than a byte-array digest.
			hex = hexfmt.EncodeUint32(binary.BigEndian.Uint32(sum))
		} else {
			hex = hexfmt.Encode(sum)
		}
		out[alg] = domain.DigestResult{State: domain.StateComputed, Hex: hex}
	}

	return out
}
