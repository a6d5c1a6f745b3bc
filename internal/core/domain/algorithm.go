// Package domain defines the core types and configurations for the checksum engine.
package domain

import "fmt"

// Algorithm identifies a supported checksum algorithm.
type Algorithm string

const (
	// CRC32 is a 32-bit cyclic redundancy check (IEEE polynomial).
	// It is always active for every run.
	CRC32 Algorithm = "crc32"

	// MD5 provides MD5 digests (128-bit).
	MD5 Algorithm = "md5"

	// SHA1 provides SHA-1 digests (160-bit).
	SHA1 Algorithm = "sha1"

	// SHA256 provides SHA-256 digests (256-bit).
	SHA256 Algorithm = "sha256"

	// SHA512 provides SHA-512 digests (512-bit).
	SHA512 Algorithm = "sha512"
)

// ComparePriority returns every algorithm in the fixed order used when
// matching a candidate checksum against computed digests: CRC32 first,
// then the cryptographic digests by increasing output size.
func ComparePriority() []Algorithm {
	return []Algorithm{CRC32, MD5, SHA1, SHA256, SHA512}
}

// HexLength returns the exact number of lowercase hex characters the
// algorithm's finalized digest occupies. Returns 0 for unknown algorithms.
func (a Algorithm) HexLength() int {
	switch a {
	case CRC32:
		return 8
	case MD5:
		return 32
	case SHA1:
		return 40
	case SHA256:
		return 64
	case SHA512:
		return 128
	default:
		return 0
	}
}

// Valid reports whether the algorithm is one of the supported identifiers.
func (a Algorithm) Valid() bool {
	switch a {
	case CRC32, MD5, SHA1, SHA256, SHA512:
		return true
	default:
		return false
	}
}

// ParseAlgorithm converts a user supplied name into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(name)
	if !a.Valid() {
		return "", fmt.Errorf("unsupported checksum algorithm: %s", name)
	}
	return a, nil
}
