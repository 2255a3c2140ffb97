package domain

// TestResult is the normalized record of one test.
type TestResult struct {
	Name   string `json:"name"`
	Result Result `json:"result"`
	Output string `json:"output"`
}

// ResultSet is an ordered list of results in discovery order. Names are not unique.
type ResultSet []TestResult

// Passed counts the records whose result is PASS.
func (rs ResultSet) Passed() int {
	n := 0
	for _, r := range rs {
		if r.Result == ResultPass {
			n++
		}
	}
	return n
}

// Failed counts every record that did not pass.
func (rs ResultSet) Failed() int {
	return len(rs) - rs.Passed()
}

// ByResult returns the records tagged with result, preserving order.
func (rs ResultSet) ByResult(result Result) ResultSet {
	var out ResultSet
	for _, r := range rs {
		if r.Result == result {
			out = append(out, r)
		}
	}
	return out
}
