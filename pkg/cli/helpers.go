package cli

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var countPrinter = message.NewPrinter(language.English)

// formatCount renders a byte count with digit grouping, e.g. 1,234,567.
func formatCount(n uint64) string {
	return countPrinter.Sprintf("%d", n)
}

// exitCode maps comparison tallies to the process exit code: failure if
// any candidate mismatched, success if at least one matched and none
// mismatched, unknown when there was nothing conclusive to compare
// (no candidates, or only indeterminate ones).
func exitCode(matched, failed int) int {
	switch {
	case failed > 0:
		return ExitFailure
	case matched > 0:
		return ExitSuccess
	default:
		return ExitUnknown
	}
}
