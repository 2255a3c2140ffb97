package storage

import (
	"fmt"

	"github.com/spf13/afero"

	"posixtest/internal/domain"
)

// CurrentSchema is the schema version written by Save
const CurrentSchema = 2

// Storage persists and loads result sets as report documents
type Storage interface {
	Save(path string, results domain.ResultSet) error
	Load(path string) (Document, error)
}

// Document is a loaded report in one of the known schema shapes
type Document interface {
	// Schema returns the document's schema version
	Schema() int
	// Results returns the document normalized to a result set
	Results() domain.ResultSet
}

// SchemaV1Document is the legacy report: a mapping from test name to result,
// kept in file order.
type SchemaV1Document struct {
	Tests domain.ResultSet
}

// Schema returns 1
func (d *SchemaV1Document) Schema() int { return 1 }

// Results returns the entries in file order
func (d *SchemaV1Document) Results() domain.ResultSet { return d.Tests }

// SchemaV2Document is the current report: a tagged sequence of records
type SchemaV2Document struct {
	Version int              `json:"schema"`
	Tests   domain.ResultSet `json:"tests"`
}

// Schema returns 2
func (d *SchemaV2Document) Schema() int { return d.Version }

// Results returns the records in document order
func (d *SchemaV2Document) Results() domain.ResultSet { return d.Tests }

// UnsupportedSchemaError is returned when a document declares an unknown schema
type UnsupportedSchemaError struct {
	Version string
}

func (e *UnsupportedSchemaError) Error() string {
	return fmt.Sprintf("unsupported schema version '%s'", e.Version)
}

// JSONStorage stores report documents as JSON files
type JSONStorage struct {
	fs afero.Fs
}

// NewJSONStorage returns a Storage that reads and writes JSON files on fs
func NewJSONStorage(fs afero.Fs) *JSONStorage {
	return &JSONStorage{fs: fs}
}
