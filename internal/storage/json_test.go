package storage

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"posixtest/internal/domain"
)

func TestJSONStorage_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	st := NewJSONStorage(fs)

	results := domain.ResultSet{
		{Name: "conformance/interfaces/a/1-1", Result: domain.ResultNoCompile, Output: "a.c:1: error: <boom> & more\n"},
		{Name: "functional/threads/1-1", Result: domain.ResultPass, Output: ""},
		{Name: "functional/threads/1-1", Result: domain.ResultHung, Output: "timed out\n"},
	}

	if err := st.Save("/reports/run.json", results); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := st.Load("/reports/run.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Schema() != 2 {
		t.Errorf("expected schema 2, got %d", doc.Schema())
	}
	if diff := cmp.Diff(results, doc.Results()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	data, _ := afero.ReadFile(fs, "/reports/run.json")
	if !strings.HasPrefix(string(data), "{\n  \"schema\": 2,\n  \"tests\": [\n") {
		t.Errorf("unexpected document layout:\n%s", data)
	}
	if !strings.Contains(string(data), "<boom> & more") {
		t.Errorf("output should not be HTML-escaped:\n%s", data)
	}
}

func TestJSONStorage_SaveOverwritesAndEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	st := NewJSONStorage(fs)

	st.Save("run.json", domain.ResultSet{{Name: "a", Result: domain.ResultPass}})
	if err := st.Save("run.json", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := afero.ReadFile(fs, "run.json")
	if !strings.Contains(string(data), `"tests": []`) {
		t.Errorf("expected empty tests array, got:\n%s", data)
	}

	doc, err := st.Load("run.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Results()) != 0 {
		t.Errorf("expected no results, got %v", doc.Results())
	}
}

func TestDecode_SchemaV1(t *testing.T) {
	data := []byte(`{
  "zeta/1-1": {"result": "FAILED", "output": "bad\n"},
  "alpha/1-1": {"result": "PASS", "output": ""},
  "mid/1-1": {"result": "UNTESTED"}
}`)

	doc, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := doc.(*SchemaV1Document); !ok {
		t.Fatalf("expected *SchemaV1Document, got %T", doc)
	}

	want := domain.ResultSet{
		{Name: "zeta/1-1", Result: domain.ResultFailed, Output: "bad\n"},
		{Name: "alpha/1-1", Result: domain.ResultPass, Output: ""},
		{Name: "mid/1-1", Result: domain.ResultUntested, Output: ""},
	}
	if diff := cmp.Diff(want, doc.Results()); diff != "" {
		t.Errorf("v1 mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_SchemaTag(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		schema      int
		unsupported string
		count       int
	}{
		{name: "explicit schema 1", data: `{"schema": 1, "a": {"result": "PASS"}}`, schema: 1, count: 1},
		{name: "test named schema", data: `{"schema": {"result": "FAILED", "output": ""}}`, schema: 1, count: 1},
		{name: "schema 2", data: `{"schema": 2, "tests": [{"name": "a", "result": "PASS", "output": ""}]}`, schema: 2, count: 1},
		{name: "schema 3", data: `{"schema": 3, "tests": []}`, unsupported: "3"},
		{name: "string schema", data: `{"schema": "two"}`, unsupported: "two"},
		{name: "numeric string schema", data: `{"schema": "2", "tests": []}`, unsupported: "2"},
		{name: "null schema", data: `{"schema": null, "tests": []}`, unsupported: "null"},
		{name: "fractional schema", data: `{"schema": 2.5, "tests": []}`, unsupported: "2.5"},
		{name: "integral float schema 2", data: `{"schema": 2.0, "tests": [{"name": "a", "result": "PASS"}]}`, schema: 2, count: 1},
		{name: "integral float schema 1", data: `{"schema": 1.0, "a": {"result": "PASS"}}`, schema: 1, count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode([]byte(tt.data))
			if tt.unsupported != "" {
				var unsupported *UnsupportedSchemaError
				if !errors.As(err, &unsupported) {
					t.Fatalf("expected UnsupportedSchemaError, got %v", err)
				}
				if unsupported.Version != tt.unsupported {
					t.Errorf("expected version %s, got %s", tt.unsupported, unsupported.Version)
				}
				if unsupported.Error() != "unsupported schema version '"+tt.unsupported+"'" {
					t.Errorf("unexpected message %q", unsupported.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if doc.Schema() != tt.schema {
				t.Errorf("expected schema %d, got %d", tt.schema, doc.Schema())
			}
			if len(doc.Results()) != tt.count {
				t.Errorf("expected %d results, got %d", tt.count, len(doc.Results()))
			}
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed JSON", data: `{"schema": 2, "tests": [`},
		{name: "not an object", data: `[1, 2]`},
		{name: "unknown result tag", data: `{"schema": 2, "tests": [{"name": "a", "result": "SKIPPED"}]}`},
		{name: "missing name", data: `{"schema": 2, "tests": [{"result": "PASS"}]}`},
		{name: "tests is not a list", data: `{"schema": 2, "tests": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			var unsupported *UnsupportedSchemaError
			if errors.As(err, &unsupported) {
				t.Errorf("expected a parse or validation error, got %v", err)
			}
		})
	}
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	if _, err := NewJSONStorage(afero.NewMemMapFs()).Load("/nope.json"); err == nil {
		t.Error("expected error for missing file")
	}
}
