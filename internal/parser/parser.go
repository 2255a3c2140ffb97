package parser

import "strings"

const (
	// compileFailedMarker is printed by the suite's build for every test that failed to compile
	compileFailedMarker = "compile FAILED; SKIPPING"
	// compilePassedMarker is printed for every test that compiled
	compilePassedMarker = "compile PASSED"
	// executionMarker opens a test's block in a logfile
	executionMarker = "execution: "
	// fieldSeparator splits an execution marker into name, "execution" and result
	fieldSeparator = ": "
)

// splitLines splits text the way a line-oriented reader would: "\n" or "\r\n"
// terminated, with no trailing empty line for terminated input.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
