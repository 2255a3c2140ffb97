package domain

import "testing"

func TestParseResult(t *testing.T) {
	for _, tag := range []string{"PASS", "FAILED", "NO_COMPILE", "UNRESOLVED", "UNTESTED", "UNSUPPORTED", "SIGNALED", "HUNG"} {
		r, err := ParseResult(tag)
		if err != nil {
			t.Errorf("ParseResult(%q): unexpected error: %v", tag, err)
		}
		if string(r) != tag {
			t.Errorf("ParseResult(%q) = %q", tag, r)
		}
	}

	for _, tag := range []string{"", "pass", "Output:", "SKIPPED"} {
		if _, err := ParseResult(tag); err == nil {
			t.Errorf("ParseResult(%q): expected error", tag)
		}
	}
}

func TestResultSet_Counts(t *testing.T) {
	rs := ResultSet{
		{Name: "a", Result: ResultPass},
		{Name: "b", Result: ResultFailed},
		{Name: "c", Result: ResultPass},
		{Name: "a", Result: ResultHung},
	}

	if got := rs.Passed(); got != 2 {
		t.Errorf("Passed() = %d, want 2", got)
	}
	if got := rs.Failed(); got != 2 {
		t.Errorf("Failed() = %d, want 2", got)
	}
	if got := rs.ByResult(ResultHung); len(got) != 1 || got[0].Name != "a" {
		t.Errorf("ByResult(HUNG) = %v", got)
	}
	if got := rs.ByResult(ResultSignaled); len(got) != 0 {
		t.Errorf("ByResult(SIGNALED) = %v, want empty", got)
	}
}
