package domain

import "fmt"

// Result is the outcome tag the suite reports for a single test.
type Result string

const (
	ResultPass        Result = "PASS"
	ResultFailed      Result = "FAILED"
	ResultNoCompile   Result = "NO_COMPILE"
	ResultUnresolved  Result = "UNRESOLVED"
	ResultUntested    Result = "UNTESTED"
	ResultUnsupported Result = "UNSUPPORTED"
	ResultSignaled    Result = "SIGNALED"
	ResultHung        Result = "HUNG"
)

// Categories lists the non-passing results in report order.
var Categories = []Result{
	ResultNoCompile,
	ResultUnresolved,
	ResultFailed,
	ResultUntested,
	ResultUnsupported,
	ResultSignaled,
	ResultHung,
}

// Valid reports whether r is one of the known result tags.
func (r Result) Valid() bool {
	if r == ResultPass {
		return true
	}
	for _, c := range Categories {
		if r == c {
			return true
		}
	}
	return false
}

// ParseResult converts a raw tag into a Result.
func ParseResult(s string) (Result, error) {
	r := Result(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown result %q", s)
	}
	return r, nil
}
