package digest

import (
	"crypto"
	_ "crypto/md5"

	"github.com/iamNilotpal/fsum/internal/core/domain"
	"github.com/iamNilotpal/fsum/internal/core/ports"
)

// NewMD5 creates an MD5 accumulator (128-bit digest).
func NewMD5() (ports.Accumulator, error) {
	return newCryptoAccumulator(domain.MD5, crypto.MD5)
}
