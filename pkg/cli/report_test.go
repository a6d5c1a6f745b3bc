package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iamNilotpal/fsum/internal/core/domain"
)

func abcResult() *domain.ChecksumResult {
	return &domain.ChecksumResult{
		Status:    domain.StatusCompleted,
		BytesRead: 3,
		Digests: map[domain.Algorithm]domain.DigestResult{
			domain.CRC32:  {State: domain.StateComputed, Hex: "352441c2"},
			domain.MD5:    {State: domain.StateComputed, Hex: "900150983cd24fb0d6963f7d28e17f72"},
			domain.SHA512: {State: domain.StateUnavailable},
		},
	}
}

func TestPrintReport(t *testing.T) {
	var out strings.Builder
	printReport(&out, "abc.txt", abcResult())

	report := out.String()
	assert.Contains(t, report, "file name: abc.txt")
	assert.Contains(t, report, "file bytes: 3")
	assert.Contains(t, report, "CRC32 checksum: 352441c2")
	assert.Contains(t, report, "MD5 checksum: 900150983cd24fb0d6963f7d28e17f72")
	assert.Contains(t, report, "SHA512 checksum: (unavailable)")

	// Algorithms that were never requested don't appear at all.
	assert.NotContains(t, report, "SHA1")
	assert.NotContains(t, report, "SHA256")
}

func TestPrintOutcome(t *testing.T) {
	var out strings.Builder

	printOutcome(&out, "352441c2", domain.Matched(domain.CRC32))
	printOutcome(&out, "deadbeef", domain.NoMatch())
	printOutcome(&out, "", domain.Indeterminate())

	report := out.String()
	assert.Contains(t, report, `"352441c2" matches CRC32`)
	assert.Contains(t, report, `"deadbeef" does not match any checksum`)
	assert.Contains(t, report, `"" has nothing to compare against`)
}
