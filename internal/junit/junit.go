// Package junit converts saved reports into JUnit XML.
package junit

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"posixtest/internal/domain"
	"posixtest/internal/storage"
)

// TestSuites is the document root
type TestSuites struct {
	XMLName  xml.Name    `xml:"testsuites"`
	Tests    int         `xml:"tests,attr"`
	Failures int         `xml:"failures,attr"`
	Errors   int         `xml:"errors,attr"`
	Skipped  int         `xml:"skipped,attr"`
	Suites   []TestSuite `xml:"testsuite"`
}

// TestSuite groups every exported test case
type TestSuite struct {
	Name     string     `xml:"name,attr"`
	Tests    int        `xml:"tests,attr"`
	Failures int        `xml:"failures,attr"`
	Errors   int        `xml:"errors,attr"`
	Skipped  int        `xml:"skipped,attr"`
	Cases    []TestCase `xml:"testcase"`
}

// TestCase is one exported result
type TestCase struct {
	Name      string      `xml:"name,attr"`
	Classname string      `xml:"classname,attr"`
	Skipped   *Annotation `xml:"skipped,omitempty"`
	Failure   *Annotation `xml:"failure,omitempty"`
	Error     *Annotation `xml:"error,omitempty"`
	SystemOut *SystemOut  `xml:"system-out,omitempty"`
}

// Annotation marks a test case as skipped, failed or errored
type Annotation struct {
	Type    string `xml:"type,attr"`
	Message string `xml:"message,attr"`
}

// SystemOut holds a test case's captured output
type SystemOut struct {
	Output string `xml:",chardata"`
}

// ClassName returns the first two "/" segments of a test name
func ClassName(name string) string {
	parts := strings.Split(name, "/")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, "/")
}

// NewTestCase maps a result onto a JUnit test case
func NewTestCase(r domain.TestResult) TestCase {
	tc := TestCase{
		Name:      r.Name,
		Classname: ClassName(r.Name),
	}
	if r.Output != "" {
		tc.SystemOut = &SystemOut{Output: r.Output}
	}

	switch r.Result {
	case domain.ResultPass:
	case domain.ResultFailed:
		tc.Failure = &Annotation{Type: "failure", Message: string(r.Result)}
	case domain.ResultUntested, domain.ResultUnsupported:
		tc.Skipped = &Annotation{Type: "skipped", Message: string(r.Result)}
	default:
		tc.Error = &Annotation{Type: "error", Message: string(r.Result)}
	}
	return tc
}

// Convert builds a single named suite holding one case per result
func Convert(results domain.ResultSet, suiteName string) *TestSuites {
	suite := TestSuite{Name: suiteName, Cases: make([]TestCase, 0, len(results))}
	for _, r := range results {
		tc := NewTestCase(r)
		switch {
		case tc.Failure != nil:
			suite.Failures++
		case tc.Error != nil:
			suite.Errors++
		case tc.Skipped != nil:
			suite.Skipped++
		}
		suite.Cases = append(suite.Cases, tc)
	}
	suite.Tests = len(suite.Cases)

	return &TestSuites{
		Tests:    suite.Tests,
		Failures: suite.Failures,
		Errors:   suite.Errors,
		Skipped:  suite.Skipped,
		Suites:   []TestSuite{suite},
	}
}

// Marshal encodes suites as an indented XML document with a header
func Marshal(suites *TestSuites) ([]byte, error) {
	body, err := xml.MarshalIndent(suites, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("marshal junit: %w", err)
	}
	out := []byte(xml.Header)
	out = append(out, body...)
	return append(out, '\n'), nil
}

// Exporter converts saved reports into JUnit files
type Exporter struct {
	fs      afero.Fs
	storage storage.Storage
}

// NewExporter creates a new Exporter
func NewExporter(fs afero.Fs, st storage.Storage) *Exporter {
	return &Exporter{fs: fs, storage: st}
}

// Export reads the schema-2 report at input and writes JUnit XML to output.
// It returns the number of exported test cases.
func (e *Exporter) Export(input, output, suiteName string) (int, error) {
	doc, err := e.storage.Load(input)
	if err != nil {
		return 0, err
	}
	if doc.Schema() != storage.CurrentSchema {
		return 0, fmt.Errorf("junit export needs a schema %d report, %s is schema %d", storage.CurrentSchema, input, doc.Schema())
	}

	suites := Convert(doc.Results(), suiteName)
	data, err := Marshal(suites)
	if err != nil {
		return 0, err
	}
	if err := afero.WriteFile(e.fs, output, data, 0644); err != nil {
		return 0, fmt.Errorf("write junit: %w", err)
	}
	return suites.Tests, nil
}
