package models

import (
	"errors"
	"fmt"
)

// ErrRaggedTable indicates columns of different lengths.
var ErrRaggedTable = errors.New("columns differ in length")

// Column is a named, ordered list of cells.
type Column struct {
	// Name is the header text of the column.
	Name string
	// Cells holds one cell per table row.
	Cells []Cell
}

// Table is an ordered set of equally long columns.
type Table struct {
	Columns []Column
}

// NewTable builds a table from a header row and data rows. Short rows are
// padded with missing cells and cells beyond the header are dropped.
func NewTable(headers []string, rows [][]Cell) *Table {
	t := &Table{Columns: make([]Column, len(headers))}
	for i, name := range headers {
		cells := make([]Cell, len(rows))
		for r, row := range rows {
			if i < len(row) {
				cells[r] = row[i]
			}
		}
		t.Columns[i] = Column{Name: name, Cells: cells}
	}
	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil || len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the first column called name.
func (t *Table) Column(name string) (*Column, bool) {
	if t == nil {
		return nil, false
	}
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// HasColumn reports whether a column called name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.Column(name)
	return ok
}

// CheckShape verifies that every column holds Len() cells.
func (t *Table) CheckShape() error {
	if t == nil {
		return nil
	}
	n := t.Len()
	for _, c := range t.Columns {
		if len(c.Cells) != n {
			return fmt.Errorf("%w: column %q has %d cells, want %d", ErrRaggedTable, c.Name, len(c.Cells), n)
		}
	}
	return nil
}
