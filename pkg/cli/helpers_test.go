package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", formatCount(0))
	assert.Equal(t, "999", formatCount(999))
	assert.Equal(t, "1,000", formatCount(1000))
	assert.Equal(t, "1,234,567", formatCount(1234567))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		matched  int
		failed   int
		expected int
	}{
		{name: "no candidates", expected: ExitUnknown},
		{name: "single match", matched: 1, expected: ExitSuccess},
		{name: "single mismatch", failed: 1, expected: ExitFailure},
		{name: "mismatch outweighs match", matched: 2, failed: 1, expected: ExitFailure},
		{name: "only indeterminate", matched: 0, failed: 0, expected: ExitUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exitCode(tt.matched, tt.failed))
		})
	}
}
