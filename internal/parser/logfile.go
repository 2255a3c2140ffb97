package parser

import (
	"fmt"
	"strings"

	"posixtest/internal/domain"
)

// Logfile is the parsed content of one test directory's logfile
type Logfile struct {
	Results []domain.TestResult
	// Malformed holds marker lines that were skipped, with the reason
	Malformed []string
}

// LogfileParser splits a logfile into per-test execution blocks
type LogfileParser struct{}

// NewLogfileParser creates a new LogfileParser
func NewLogfileParser() *LogfileParser {
	return &LogfileParser{}
}

// Parse returns one record per execution marker, in file order. A marker is
// "<name>: execution: <result>", optionally followed by more ": " fields which
// are ignored. Every non-empty line up to the next marker is part of the
// record's output. Lines before the first marker are ignored.
func (p *LogfileParser) Parse(content string) Logfile {
	var parsed Logfile
	var current *domain.TestResult
	var output strings.Builder

	flush := func() {
		if current != nil {
			current.Output = output.String()
			parsed.Results = append(parsed.Results, *current)
		}
		current = nil
		output.Reset()
	}

	for _, raw := range splitLines(content) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.Contains(line, executionMarker) {
			flush()
			result, err := parseMarker(line)
			if err != nil {
				parsed.Malformed = append(parsed.Malformed, fmt.Sprintf("%q: %v", line, err))
				continue
			}
			current = &result
			continue
		}

		// lines after a malformed marker belong to no record
		if current != nil {
			output.WriteString(line)
			output.WriteString("\n")
		}
	}
	flush()

	return parsed
}

// parseMarker splits a marker line into its name and result fields
func parseMarker(line string) (domain.TestResult, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) < 3 {
		return domain.TestResult{}, fmt.Errorf("expected at least 3 fields, got %d", len(fields))
	}

	name := strings.TrimSpace(fields[0])
	if name == "" {
		return domain.TestResult{}, fmt.Errorf("empty test name")
	}

	result, err := domain.ParseResult(strings.TrimSpace(fields[2]))
	if err != nil {
		return domain.TestResult{}, err
	}

	return domain.TestResult{Name: name, Result: result}, nil
}
