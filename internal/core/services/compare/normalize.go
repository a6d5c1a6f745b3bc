// Package compare normalizes user supplied checksum strings and matches
// them against finalized run results.
package compare

import "strings"

// Normalize cleans a user supplied comparison string into canonical
// lowercase hex form. It is total and deterministic: separators that
// commonly appear in published checksums (tab, space, comma, hyphen,
// period, colon) are stripped, uppercase hex letters are lowercased, and
// every other character passes through unchanged. Bad input deliberately
// survives into the output so it fails to match any computed digest
// instead of being coerced into a false match.
//
// Normalize(Normalize(s)) == Normalize(s) for all s.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, ch := range raw {
		switch {
		case ch == '\t' || ch == ' ' || ch == ',' || ch == '-' || ch == '.' || ch == ':':
			// separator, dropped
		case ch >= 'A' && ch <= 'F':
			b.WriteRune(ch - 'A' + 'a')
		default:
			b.WriteRune(ch)
		}
	}

	return b.String()
}
