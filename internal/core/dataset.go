package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Column is a named series of cell values. Cells are kept as strings so a
// dataset can carry both numeric curves and free-text columns; numeric
// consumers coerce on demand via Floats or LooseFloats.
type Column struct {
	Name   string
	Values []string
}

// Dataset is an ordered sequence of named, equal-length columns. It is the
// entity passed between the resolver, the converters, and the plotter.
type Dataset struct {
	Columns []Column
}

// NewDataset creates a dataset from columns, enforcing the invariants:
// at least one column, unique names, equal lengths.
func NewDataset(cols ...Column) (*Dataset, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("dataset must have at least one column")
	}

	seen := make(map[string]bool, len(cols))
	rows := len(cols[0].Values)
	for _, c := range cols {
		if c.Name == "" {
			return nil, fmt.Errorf("dataset column with empty name")
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("duplicate column name %q", c.Name)
		}
		seen[c.Name] = true
		if len(c.Values) != rows {
			return nil, fmt.Errorf("column %q has %d values, expected %d", c.Name, len(c.Values), rows)
		}
	}

	return &Dataset{Columns: cols}, nil
}

// Names returns the column names in dataset order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// Rows returns the number of rows in the dataset.
func (d *Dataset) Rows() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Values)
}

// Column returns the column with the given name.
func (d *Dataset) Column(name string) (Column, bool) {
	for _, c := range d.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Has reports whether a column with the given name exists.
func (d *Dataset) Has(name string) bool {
	_, ok := d.Column(name)
	return ok
}

// Floats coerces every cell to float64. Empty cells become NaN. A cell that
// is neither empty nor numeric fails the whole column.
func (c Column) Floats() ([]float64, error) {
	out := make([]float64, len(c.Values))
	for i, v := range c.Values {
		v = strings.TrimSpace(v)
		if v == "" {
			out[i] = math.NaN()
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %q is not numeric", c.Name, i+1, c.Values[i])
		}
		out[i] = f
	}
	return out, nil
}

// LooseFloats coerces cells to float64 best-effort, returning nil for cells
// that are empty or non-numeric. Used for plotting, where a bad cell is a
// gap in the trace rather than an error.
func (c Column) LooseFloats() []*float64 {
	out := make([]*float64, len(c.Values))
	for i, v := range c.Values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) {
			continue
		}
		out[i] = &f
	}
	return out
}

// ColumnFromFloats builds a column from numeric values. NaN cells are
// rendered as empty strings so they survive CSV round-trips as blanks.
func ColumnFromFloats(name string, values []float64) Column {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = FormatFloat(v)
	}
	return Column{Name: name, Values: cells}
}

// FormatFloat renders a float the way dataset cells store numbers:
// shortest exact representation, empty string for NaN.
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
