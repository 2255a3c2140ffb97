package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"posixtest/internal/domain"
)

// Save writes results as a schema-2 document, replacing any existing file.
func (s *JSONStorage) Save(path string, results domain.ResultSet) error {
	if results == nil {
		results = domain.ResultSet{}
	}
	doc := SchemaV2Document{Version: CurrentSchema, Tests: results}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := afero.WriteFile(s.fs, path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads a report document and dispatches on its schema. A missing
// schema field means schema 1.
func (s *JSONStorage) Load(path string) (Document, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	return Decode(data)
}

// Decode parses a report document from data
func Decode(data []byte) (Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}

	version, err := schemaVersion(top)
	if err != nil {
		return nil, err
	}

	switch version {
	case 1:
		return decodeV1(data)
	case 2:
		return decodeV2(data)
	default:
		return nil, &UnsupportedSchemaError{Version: fmt.Sprint(version)}
	}
}

// schemaVersion reads the schema tag. A legacy document may hold a test
// named "schema", so only a non-object value counts as the tag. Integral
// numbers such as 2.0 are accepted; anything else is reported verbatim.
func schemaVersion(top map[string]json.RawMessage) (int, error) {
	raw, ok := top["schema"]
	if !ok || isObject(raw) {
		return 1, nil
	}

	trimmed := bytes.TrimSpace(raw)
	unsupported := &UnsupportedSchemaError{Version: strings.Trim(string(trimmed), `"`)}
	if bytes.Equal(trimmed, []byte("null")) {
		return 0, unsupported
	}

	var number float64
	if err := json.Unmarshal(trimmed, &number); err != nil || number != math.Trunc(number) {
		return 0, unsupported
	}
	if number != 1 && number != 2 {
		return 0, unsupported
	}
	return int(number), nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func decodeV2(data []byte) (*SchemaV2Document, error) {
	if err := ValidateReport(data); err != nil {
		return nil, err
	}

	// The tag was already checked and may be written as 2.0
	var body struct {
		Tests domain.ResultSet `json:"tests"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}

	doc := &SchemaV2Document{Version: CurrentSchema, Tests: body.Tests}
	if doc.Tests == nil {
		doc.Tests = domain.ResultSet{}
	}
	return doc, nil
}

type v1Entry struct {
	Result string `json:"result"`
	Output string `json:"output"`
}

// decodeV1 walks the top-level object by token so entries keep file order
func decodeV1(data []byte) (*SchemaV1Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}

	doc := &SchemaV1Document{Tests: domain.ResultSet{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse results: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("parse results: unexpected key %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse results: %w", err)
		}
		if name == "schema" && !isObject(raw) {
			continue
		}

		var entry v1Entry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, fmt.Errorf("parse results: test %q: %w", name, err)
		}
		doc.Tests = append(doc.Tests, domain.TestResult{
			Name:   name,
			Result: domain.Result(entry.Result),
			Output: entry.Output,
		})
	}

	if _, err := dec.Token(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return doc, nil
}
