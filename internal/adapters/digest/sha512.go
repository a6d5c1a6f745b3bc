package digest

import (
	"crypto"
	_ "crypto/sha512"

	"github.com/iamNilotpal/fsum/internal/core/domain"
	"github.com/iamNilotpal/fsum/internal/core/ports"
)

// NewSHA512 creates a SHA-512 accumulator (512-bit digest).
func NewSHA512() (ports.Accumulator, error) {
	return newCryptoAccumulator(domain.SHA512, crypto.SHA512)
}
