package domain

// MatchKind is the tri-state outcome of comparing a candidate checksum
// string against a finalized result.
type MatchKind int

const (
	// MatchIndeterminate means there was nothing to compare: the
	// candidate was empty or the run produced no comparable digests.
	// Distinct from a confirmed mismatch.
	MatchIndeterminate MatchKind = iota

	// MatchNone means the candidate equals none of the computed digests.
	MatchNone

	// MatchFound means the candidate equals one computed digest.
	MatchFound
)

// String returns the string representation of the match kind.
func (k MatchKind) String() string {
	switch k {
	case MatchIndeterminate:
		return "indeterminate"
	case MatchNone:
		return "no-match"
	case MatchFound:
		return "matched"
	default:
		return "unknown"
	}
}

// ComparisonOutcome is the result of one candidate comparison. Algorithm
// is only set for MatchFound.
type ComparisonOutcome struct {
	Kind      MatchKind
	Algorithm Algorithm
}

// Indeterminate returns the nothing-to-compare outcome.
func Indeterminate() ComparisonOutcome {
	return ComparisonOutcome{Kind: MatchIndeterminate}
}

// NoMatch returns the confirmed-mismatch outcome.
func NoMatch() ComparisonOutcome {
	return ComparisonOutcome{Kind: MatchNone}
}

// Matched returns the outcome for the first algorithm whose digest
// equals the candidate.
func Matched(alg Algorithm) ComparisonOutcome {
	return ComparisonOutcome{Kind: MatchFound, Algorithm: alg}
}
