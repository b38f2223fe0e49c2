package core

import (
	"fmt"
	"unicode/utf8"
)

const (
	// DefaultDepthName labels the depth column when the LAS file declares
	// no index unit.
	DefaultDepthName = "DEPTH"

	// DefaultDepthUnit is the unit written for the depth curve when the
	// caller does not supply one.
	// TODO: carry the source depth unit through CSV round-trips instead of
	// assuming meters; today the unit recorded in the input is lost.
	DefaultDepthUnit = "m"
)

// WellMetadata holds the optional well header fields attached to a
// Table→LAS conversion. Zero-value fields are omitted from the output.
type WellMetadata struct {
	Well    string // WELL - well name
	Field   string // FLD  - field name
	Company string // COMP - operating company
	Date    string // DATE - log date
}

// entries returns the populated header entries in LAS well-section order.
func (m WellMetadata) entries() [][2]string {
	var out [][2]string
	if m.Well != "" {
		out = append(out, [2]string{"WELL", m.Well})
	}
	if m.Field != "" {
		out = append(out, [2]string{"FLD", m.Field})
	}
	if m.Company != "" {
		out = append(out, [2]string{"COMP", m.Company})
	}
	if m.Date != "" {
		out = append(out, [2]string{"DATE", m.Date})
	}
	return out
}

// LASToTable parses LAS bytes into a dataset. The depth index becomes an
// explicit first column named after the file's declared index unit
// (DefaultDepthName when the unit is empty), so the dataset is
// self-describing rather than relying on an implicit row index.
func LASToTable(p Parser, raw []byte) (*Dataset, error) {
	if !utf8.Valid(raw) {
		return nil, convErr(DecodeFailure, "input is not valid UTF-8")
	}

	parsed, err := p.Parse(string(raw))
	if err != nil {
		return nil, &ConversionError{Kind: ParseFailure, Err: err}
	}

	depthName := parsed.IndexUnit
	if depthName == "" {
		depthName = DefaultDepthName
	}

	cols := make([]Column, 0, len(parsed.Curves)+1)
	cols = append(cols, ColumnFromFloats(depthName, parsed.IndexValues))
	for _, curve := range parsed.Curves {
		cols = append(cols, ColumnFromFloats(curve.Name, curve.Values))
	}

	ds, err := NewDataset(cols...)
	if err != nil {
		return nil, &ConversionError{Kind: ParseFailure, Err: err}
	}
	return ds, nil
}

// TableToLAS builds a LAS document from a dataset. Supplied metadata keys
// are written verbatim into the well section; absent keys are omitted. The
// depth column is resolved heuristically and appended first as the index
// curve carrying depthUnit (DefaultDepthUnit when empty); every other
// column follows with no explicit unit. A column that cannot be coerced to
// numbers fails the whole conversion with WriteFailure.
func TableToLAS(lib Library, ds *Dataset, meta WellMetadata, depthUnit string) (Document, error) {
	if depthUnit == "" {
		depthUnit = DefaultDepthUnit
	}

	doc := lib.NewDocument()
	for _, kv := range meta.entries() {
		doc.SetWellInfo(kv[0], kv[1])
	}

	depthCol := ResolveDepthColumn(ds)
	depth, ok := ds.Column(depthCol)
	if !ok {
		return nil, convErr(WriteFailure, "depth column %q not found", depthCol)
	}

	depthValues, err := depth.Floats()
	if err != nil {
		return nil, &ConversionError{Kind: WriteFailure, Err: err}
	}
	if err := doc.AppendCurve(depthCol, depthValues, depthUnit); err != nil {
		return nil, &ConversionError{Kind: WriteFailure, Err: fmt.Errorf("append depth curve: %w", err)}
	}

	for _, c := range ds.Columns {
		if c.Name == depthCol {
			continue
		}
		values, err := c.Floats()
		if err != nil {
			return nil, &ConversionError{Kind: WriteFailure, Err: err}
		}
		if err := doc.AppendCurve(c.Name, values, ""); err != nil {
			return nil, &ConversionError{Kind: WriteFailure, Err: fmt.Errorf("append curve %q: %w", c.Name, err)}
		}
	}

	return doc, nil
}
