// Package hexfmt converts raw digest values to lowercase, zero-padded
// hexadecimal strings.
package hexfmt

import (
	"encoding/hex"
	"fmt"
)

// Encode formats raw digest bytes as lowercase hex, two characters per
// byte.
func Encode(sum []byte) string {
	return hex.EncodeToString(sum)
}

// EncodeUint32 formats a 32-bit value as exactly 8 lowercase hex digits,
// zero-padded on the left.
func EncodeUint32(v uint32) string {
	return fmt.Sprintf("%08x", v)
}
