package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"posixtest/internal/domain"
	"posixtest/internal/storage"
)

// Formatter renders report documents as text
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a Formatter writing to stdout
func NewFormatter() *Formatter {
	return &Formatter{out: os.Stdout}
}

// NewFormatterWithWriter creates a Formatter writing to w (for testing)
func NewFormatterWithWriter(w io.Writer) *Formatter {
	return &Formatter{out: w}
}

// PrintReport prints the summary counts and a listing per non-passing
// category. When only is set, just that category is listed; the counts always
// cover every record.
func (f *Formatter) PrintReport(doc storage.Document, only domain.Result) {
	results := doc.Results()

	fmt.Fprintf(f.out, "Total:  %d\n", len(results))
	fmt.Fprintf(f.out, "Passed: %d\n", results.Passed())
	fmt.Fprintf(f.out, "Failed: %d\n", results.Failed())
	fmt.Fprintln(f.out)

	for _, category := range domain.Categories {
		if only != "" && category != only {
			continue
		}
		f.printCategory(category, results.ByResult(category))
	}
}

func (f *Formatter) printCategory(category domain.Result, results domain.ResultSet) {
	header := color.New(color.Bold)
	if len(results) > 0 {
		header = color.New(color.FgRed, color.Bold)
	}
	fmt.Fprintln(f.out, header.Sprintf("%s (%d):", category, len(results)))

	for _, r := range results {
		fmt.Fprintf(f.out, "  %s\n", r.Name)
		if r.Output == "" {
			continue
		}
		for _, line := range outputLines(r.Output) {
			fmt.Fprintf(f.out, "    %s\n", line)
		}
		fmt.Fprintln(f.out)
	}
}

func outputLines(output string) []string {
	output = strings.ReplaceAll(output, "\r\n", "\n")
	return strings.Split(strings.TrimSuffix(output, "\n"), "\n")
}
