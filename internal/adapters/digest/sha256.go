package digest

import (
	"crypto"
	_ "crypto/sha256"

	"github.com/iamNilotpal/fsum/internal/core/domain"
	"github.com/iamNilotpal/fsum/internal/core/ports"
)

// NewSHA256 creates a SHA-256 accumulator (256-bit digest).
func NewSHA256() (ports.Accumulator, error) {
	return newCryptoAccumulator(domain.SHA256, crypto.SHA256)
}
