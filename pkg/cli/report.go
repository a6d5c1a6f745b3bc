package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/iamNilotpal/fsum/internal/core/domain"
)

// printReport writes the classic checksum report: file name, byte
// count, then one line per enabled algorithm in priority order.
func printReport(w io.Writer, name string, result *domain.ChecksumResult) {
	fmt.Fprintf(w, "%19s: %s\n", "file name", name)
	fmt.Fprintf(w, "%19s: %s\n", "file bytes", formatCount(result.BytesRead))

	for _, alg := range domain.ComparePriority() {
		slot, ok := result.Digests[alg]
		if !ok {
			continue
		}

		label := strings.ToUpper(string(alg)) + " checksum"
		switch slot.State {
		case domain.StateComputed:
			fmt.Fprintf(w, "%19s: %s\n", label, slot.Hex)
		case domain.StateUnavailable:
			fmt.Fprintf(w, "%19s: %s\n", label, "(unavailable)")
		}
	}
}

// printOutcome writes one line for a candidate comparison.
func printOutcome(w io.Writer, candidate string, outcome domain.ComparisonOutcome) {
	switch outcome.Kind {
	case domain.MatchFound:
		fmt.Fprintf(w, "%19s: %q matches %s\n", "compare", candidate, strings.ToUpper(string(outcome.Algorithm)))
	case domain.MatchNone:
		fmt.Fprintf(w, "%19s: %q does not match any checksum\n", "compare", candidate)
	default:
		fmt.Fprintf(w, "%19s: %q has nothing to compare against\n", "compare", candidate)
	}
}
