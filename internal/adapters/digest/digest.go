// Package digest provides the per-algorithm accumulator implementations
// backed by the standard cryptographic hash registry.
package digest

import (
	"crypto"
	"fmt"
	"hash"

	"github.com/iamNilotpal/fsum/internal/core/domain"
	"github.com/iamNilotpal/fsum/internal/core/ports"
	"github.com/iamNilotpal/fsum/pkg/errors"
)

// New creates an accumulator for the given algorithm.
//
// A requested algorithm the runtime cannot provide yields an
// errors.ErrorDigest categorized error; the caller records the slot as
// unavailable and keeps the run going with the remaining algorithms.
func New(alg domain.Algorithm) (ports.Accumulator, error) {
	switch alg {
	case domain.CRC32:
		return NewCRC32(), nil
	case domain.MD5:
		return NewMD5()
	case domain.SHA1:
		return NewSHA1()
	case domain.SHA256:
		return NewSHA256()
	case domain.SHA512:
		return NewSHA512()
	default:
		return nil, errors.New(
			errors.ErrorDigest, "create",
			fmt.Errorf("unsupported checksum algorithm: %s", alg),
		)
	}
}

// accumulator wraps a standard library hash.Hash and enforces the
// update-after-finalize contract.
type accumulator struct {
	alg       domain.Algorithm
	hash      hash.Hash
	finalized bool
}

func newCryptoAccumulator(alg domain.Algorithm, h crypto.Hash) (ports.Accumulator, error) {
	if !h.Available() {
		return nil, errors.New(
			errors.ErrorDigest, "create",
			fmt.Errorf("digest algorithm not available in this runtime: %s", alg),
		)
	}
	return &accumulator{alg: alg, hash: h.New()}, nil
}

func (a *accumulator) Algorithm() domain.Algorithm {
	return a.alg
}

func (a *accumulator) Update(chunk []byte) {
	if a.finalized {
		panic(fmt.Sprintf("digest: update after finalize for %s", a.alg))
	}
	// hash.Hash.Write never returns an error.
	a.hash.Write(chunk)
}

func (a *accumulator) Finalize() []byte {
	if a.finalized {
		panic(fmt.Sprintf("digest: finalize called twice for %s", a.alg))
	}
	a.finalized = true
	return a.hash.Sum(nil)
}
