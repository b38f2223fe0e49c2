package las

import (
	"fmt"
	"math"
	"strings"
)

// Document accumulates well-info entries and curves, then renders LAS 2.0
// text. The first appended curve is the depth index and drives the STRT,
// STOP, and STEP header entries.
type Document struct {
	well   []Entry
	curves []docCurve
}

type docCurve struct {
	mnem   string
	unit   string
	values []float64
}

// wellDescriptions labels the metadata mnemonics this tool writes.
var wellDescriptions = map[string]string{
	"WELL": "WELL NAME",
	"FLD":  "FIELD",
	"COMP": "COMPANY",
	"DATE": "DATE",
}

// SetWellInfo records a well header entry verbatim. Setting the same key
// twice overwrites the earlier value in place.
func (d *Document) SetWellInfo(key, value string) {
	for i := range d.well {
		if d.well[i].Mnem == key {
			d.well[i].Value = value
			return
		}
	}
	d.well = append(d.well, Entry{Mnem: key, Value: value, Descr: wellDescriptions[key]})
}

// AppendCurve adds a curve. Every curve after the first must match the
// index curve's length.
func (d *Document) AppendCurve(name string, values []float64, unit string) error {
	if name == "" {
		return fmt.Errorf("curve with empty name")
	}
	if len(d.curves) > 0 && len(values) != len(d.curves[0].values) {
		return fmt.Errorf("curve %q has %d values, index has %d",
			name, len(values), len(d.curves[0].values))
	}
	d.curves = append(d.curves, docCurve{mnem: name, unit: unit, values: values})
	return nil
}

// Render serializes the document as LAS 2.0 text (unwrapped). NaN values
// are written as the null substitute.
func (d *Document) Render() (string, error) {
	if len(d.curves) == 0 {
		return "", fmt.Errorf("document has no curves")
	}

	index := d.curves[0].values
	var b strings.Builder

	b.WriteString("~Version Information\n")
	writeEntry(&b, Entry{Mnem: "VERS", Value: "2.0", Descr: "CWLS LOG ASCII STANDARD - VERSION 2.0"})
	writeEntry(&b, Entry{Mnem: "WRAP", Value: "NO", Descr: "ONE LINE PER DEPTH STEP"})

	b.WriteString("~Well Information\n")
	indexUnit := d.curves[0].unit
	writeEntry(&b, Entry{Mnem: "STRT", Unit: indexUnit, Value: formatValue(first(index)), Descr: "START DEPTH"})
	writeEntry(&b, Entry{Mnem: "STOP", Unit: indexUnit, Value: formatValue(last(index)), Descr: "STOP DEPTH"})
	writeEntry(&b, Entry{Mnem: "STEP", Unit: indexUnit, Value: formatValue(step(index)), Descr: "STEP"})
	writeEntry(&b, Entry{Mnem: "NULL", Value: formatValue(DefaultNull), Descr: "NULL VALUE"})
	for _, e := range d.well {
		writeEntry(&b, e)
	}

	b.WriteString("~Curve Information\n")
	for _, c := range d.curves {
		writeEntry(&b, Entry{Mnem: c.mnem, Unit: c.unit})
	}

	b.WriteString("~ASCII\n")
	for r := 0; r < len(index); r++ {
		for i, c := range d.curves {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%12s", formatValue(c.values[r]))
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// writeEntry renders one header line: " MNEM.UNIT  VALUE : DESCR".
func writeEntry(b *strings.Builder, e Entry) {
	fmt.Fprintf(b, " %-5s.%-6s %20s : %s\n", e.Mnem, e.Unit, e.Value, e.Descr)
}

// formatValue renders a data value with five decimals, matching common LAS
// writer precision. NaN becomes the null substitute.
func formatValue(v float64) string {
	if math.IsNaN(v) {
		v = DefaultNull
	}
	return fmt.Sprintf("%.5f", v)
}

func first(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return values[0]
}

func last(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return values[len(values)-1]
}

// step is the spacing between the first two index values, 0 for fewer than
// two rows.
func step(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return values[1] - values[0]
}
