package digest

import (
	"crypto"
	_ "crypto/sha1"

	"github.com/iamNilotpal/fsum/internal/core/domain"
	"github.com/iamNilotpal/fsum/internal/core/ports"
)

// NewSHA1 creates a SHA-1 accumulator (160-bit digest).
func NewSHA1() (ports.Accumulator, error) {
	return newCryptoAccumulator(domain.SHA1, crypto.SHA1)
}
