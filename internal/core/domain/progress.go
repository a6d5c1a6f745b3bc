package domain

// ProgressState is a point-in-time snapshot of how far a run has read.
// BytesDone is monotonically non-decreasing until the run ends.
type ProgressState struct {
	// BytesDone is the number of source bytes already fed to the digest set.
	BytesDone uint64

	// BytesTotal is the expected byte count, known up front from the file
	// size. Used only for progress math, never validated against the
	// actual bytes read.
	BytesTotal uint64
}

// Fraction returns completion in [0, 1]. A zero BytesTotal (unknown or
// empty source) reports 1 once any publish happened, since there is
// nothing left to read.
func (p ProgressState) Fraction() float64 {
	if p.BytesTotal == 0 {
		return 1
	}
	f := float64(p.BytesDone) / float64(p.BytesTotal)
	if f > 1 {
		return 1
	}
	return f
}
