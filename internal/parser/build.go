package parser

import (
	"strings"

	"posixtest/internal/domain"
)

// BuildScanner extracts compile failures from the suite's build output
type BuildScanner struct{}

// NewBuildScanner creates a new BuildScanner
func NewBuildScanner() *BuildScanner {
	return &BuildScanner{}
}

// Scan returns one NO_COMPILE record per failure marker in output. The
// diagnostics printed since the previous marker become the record's output.
// Diagnostics before a success marker, and anything after the last marker,
// are dropped.
func (s *BuildScanner) Scan(output string) []domain.TestResult {
	var results []domain.TestResult
	var pending strings.Builder

	for _, line := range splitLines(output) {
		switch {
		case strings.Contains(line, compileFailedMarker):
			fields := strings.Fields(line)
			results = append(results, domain.TestResult{
				Name:   fields[0],
				Result: domain.ResultNoCompile,
				Output: pending.String(),
			})
			pending.Reset()
		case strings.Contains(line, compilePassedMarker):
			pending.Reset()
		default:
			pending.WriteString(line)
			pending.WriteString("\n")
		}
	}

	return results
}
