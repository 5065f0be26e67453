package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/newtron-network/newtparse/pkg/extract"
)

// Table wraps text/tabwriter with consistent column-aligned output.
// Headers and a dash divider are written lazily on first Row() or Flush(),
// so empty tables produce no output.
type Table struct {
	w       *tabwriter.Writer
	headers []string
	written bool
}

// NewTable creates a table writing to w with the given column headers.
func NewTable(w io.Writer, headers ...string) *Table {
	return &Table{
		w:       tabwriter.NewWriter(w, 0, 0, 2, ' ', 0),
		headers: headers,
	}
}

// Row writes a tab-separated row. On the first call, headers and divider
// are emitted before the row.
func (t *Table) Row(values ...string) {
	t.ensureHeaders()
	fmt.Fprintln(t.w, strings.Join(values, "\t"))
}

// Flush writes any buffered output. If no rows were written, nothing is printed.
func (t *Table) Flush() {
	if !t.written {
		return
	}
	t.w.Flush()
}

func (t *Table) ensureHeaders() {
	if t.written {
		return
	}
	t.written = true
	fmt.Fprintln(t.w, strings.Join(t.headers, "\t"))
	dividers := make([]string, len(t.headers))
	for i, h := range t.headers {
		dividers[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(t.w, strings.Join(dividers, "\t"))
}

// RenderRecords writes extracted records as an aligned table. Column order
// follows the template's field declaration order; fields no record captured
// are omitted entirely.
func RenderRecords(w io.Writer, fields []extract.Field, records []extract.Record) {
	cols := presentColumns(fields, records)
	if len(cols) == 0 {
		return
	}

	t := NewTable(w, cols...)
	row := make([]string, len(cols))
	for _, rec := range records {
		for i, col := range cols {
			row[i] = rec[col]
		}
		t.Row(row...)
	}
	t.Flush()
}

func presentColumns(fields []extract.Field, records []extract.Record) []string {
	cols := make([]string, 0, len(fields))
	for _, f := range fields {
		for _, rec := range records {
			if _, ok := rec[f.Name]; ok {
				cols = append(cols, f.Name)
				break
			}
		}
	}
	return cols
}
