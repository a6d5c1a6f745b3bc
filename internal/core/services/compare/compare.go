package compare

import "github.com/iamNilotpal/fsum/internal/core/domain"

// Evaluate matches an already normalized candidate against the finalized
// digests of a run.
//
// An empty candidate, or a result with no comparable digests (cancelled,
// failed, nil), yields Indeterminate, which is distinct from a confirmed
// mismatch. Otherwise the candidate is compared by exact string equality
// against each computed digest in fixed priority order (CRC32, MD5,
// SHA1, SHA256, SHA512) and the first hit wins. The distinct digest
// lengths mean at most one algorithm can match in practice, but no
// special case is made of that.
func Evaluate(candidate string, result *domain.ChecksumResult) domain.ComparisonOutcome {
	if candidate == "" || !result.Completed() {
		return domain.Indeterminate()
	}

	for _, alg := range domain.ComparePriority() {
		if hex, ok := result.Hex(alg); ok && hex == candidate {
			return domain.Matched(alg)
		}
	}

	return domain.NoMatch()
}
