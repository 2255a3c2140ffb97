package ui

import (
	"bytes"
	"strings"
	"testing"

	"posixtest/internal/domain"
	"posixtest/internal/storage"
)

func sampleResults() domain.ResultSet {
	return domain.ResultSet{
		{Name: "conformance/a/1-1", Result: domain.ResultNoCompile, Output: "a.c:1: error\n\nnote: here\n"},
		{Name: "conformance/b/1-1", Result: domain.ResultPass, Output: "ok\n"},
		{Name: "conformance/c/1-1", Result: domain.ResultFailed, Output: "assertion failed\n"},
		{Name: "conformance/d/1-1", Result: domain.ResultFailed, Output: ""},
		{Name: "functional/e/1-1", Result: domain.ResultHung, Output: ""},
	}
}

func render(t *testing.T, doc storage.Document, only domain.Result) string {
	t.Helper()
	var buf bytes.Buffer
	NewFormatterWithWriter(&buf).PrintReport(doc, only)
	return buf.String()
}

func TestFormatter_PrintReport(t *testing.T) {
	withoutColor(t)
	doc := &storage.SchemaV2Document{Version: 2, Tests: sampleResults()}

	want := `Total:  5
Passed: 1
Failed: 4

NO_COMPILE (1):
  conformance/a/1-1
    a.c:1: error
    
    note: here

UNRESOLVED (0):
FAILED (2):
  conformance/c/1-1
    assertion failed

  conformance/d/1-1
UNTESTED (0):
UNSUPPORTED (0):
SIGNALED (0):
HUNG (1):
  functional/e/1-1
`
	got := render(t, doc, "")
	if got != want {
		t.Errorf("unexpected report:\n%s\nwant:\n%s", got, want)
	}

	if again := render(t, doc, ""); again != got {
		t.Error("rendering the same document twice should produce identical output")
	}
}

func TestFormatter_PrintReport_Only(t *testing.T) {
	withoutColor(t)
	doc := &storage.SchemaV2Document{Version: 2, Tests: sampleResults()}

	got := render(t, doc, domain.ResultFailed)
	want := `Total:  5
Passed: 1
Failed: 4

FAILED (2):
  conformance/c/1-1
    assertion failed

  conformance/d/1-1
`
	if got != want {
		t.Errorf("unexpected filtered report:\n%s\nwant:\n%s", got, want)
	}

	full := render(t, doc, "")
	if !strings.HasPrefix(full, got[:strings.Index(got, "FAILED (")]) {
		t.Error("summary counts should not change with a filter")
	}
}

func TestFormatter_SchemasRenderIdentically(t *testing.T) {
	withoutColor(t)
	v1 := &storage.SchemaV1Document{Tests: sampleResults()}
	v2 := &storage.SchemaV2Document{Version: 2, Tests: sampleResults()}

	if render(t, v1, "") != render(t, v2, "") {
		t.Error("schema 1 and schema 2 documents should render identically")
	}
	if render(t, v1, domain.ResultHung) != render(t, v2, domain.ResultHung) {
		t.Error("filtered schema 1 and schema 2 documents should render identically")
	}
}
