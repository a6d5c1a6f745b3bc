package digest

import (
	"fmt"
	"hash"
	"hash/crc32"

	"github.com/iamNilotpal/fsum/internal/core/domain"
)

// crc32IEEE accumulates the running CRC32 checksum using the IEEE
// polynomial. Unlike the cryptographic digests it is a 32-bit value,
// not a byte-array digest; Finalize returns it big-endian so the common
// hex path yields exactly 8 zero-padded digits.
type crc32IEEE struct {
	hash      hash.Hash32
	finalized bool
}

// NewCRC32 creates the always-on CRC32 accumulator.
func NewCRC32() *crc32IEEE {
	return &crc32IEEE{hash: crc32.NewIEEE()}
}

func (c *crc32IEEE) Algorithm() domain.Algorithm {
	return domain.CRC32
}

func (c *crc32IEEE) Update(chunk []byte) {
	if c.finalized {
		panic(fmt.Sprintf("digest: update after finalize for %s", domain.CRC32))
	}
	c.hash.Write(chunk)
}

func (c *crc32IEEE) Finalize() []byte {
	if c.finalized {
		panic(fmt.Sprintf("digest: finalize called twice for %s", domain.CRC32))
	}
	c.finalized = true

	sum := c.hash.Sum32()
	return []byte{byte(sum >> 24), byte(sum >> 16), byte(sum >> 8), byte(sum)}
}
