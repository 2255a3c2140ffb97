package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"posixtest/internal/domain"
)

func TestCategoryTitle(t *testing.T) {
	tests := []struct {
		result domain.Result
		want   string
	}{
		{result: domain.ResultNoCompile, want: "No Compile"},
		{result: domain.ResultHung, want: "Hung"},
		{result: domain.ResultUnsupported, want: "Unsupported"},
	}
	for _, tt := range tests {
		if got := CategoryTitle(tt.result); got != tt.want {
			t.Errorf("CategoryTitle(%s) = %q, want %q", tt.result, got, tt.want)
		}
	}
}

func TestFailing(t *testing.T) {
	results := sampleResults()

	var names []string
	for _, r := range failing(results, "") {
		names = append(names, r.Name)
	}
	want := []string{"conformance/a/1-1", "conformance/c/1-1", "conformance/d/1-1", "functional/e/1-1"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("failing mismatch (-want +got):\n%s", diff)
	}

	if got := failing(results, domain.ResultHung); len(got) != 1 || got[0].Name != "functional/e/1-1" {
		t.Errorf("unexpected HUNG filter result %v", got)
	}
}

func TestViewFilters(t *testing.T) {
	filters := viewFilters()
	if len(filters) != len(domain.Categories)+1 || filters[0] != "" {
		t.Errorf("unexpected filters %v", filters)
	}
}
