package core

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"unicode/utf8"
)

// CSVToTable parses comma-delimited bytes into a dataset. The first record
// is the header row; its names become the column names.
func CSVToTable(raw []byte) (*Dataset, error) {
	if !utf8.Valid(raw) {
		return nil, convErr(DecodeFailure, "input is not valid UTF-8")
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // ragged rows are padded below

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &ConversionError{Kind: ParseFailure, Err: fmt.Errorf("read csv: %w", err)}
	}
	if len(records) == 0 {
		return nil, convErr(ParseFailure, "empty file")
	}

	header := records[0]
	if len(header) == 0 {
		return nil, convErr(ParseFailure, "empty header row")
	}

	cols := make([]Column, len(header))
	for i, name := range header {
		cols[i] = Column{Name: name, Values: make([]string, 0, len(records)-1)}
	}
	for _, row := range records[1:] {
		for i := range cols {
			if i < len(row) {
				cols[i].Values = append(cols[i].Values, row[i])
			} else {
				cols[i].Values = append(cols[i].Values, "")
			}
		}
	}

	ds, err := NewDataset(cols...)
	if err != nil {
		return nil, &ConversionError{Kind: ParseFailure, Err: err}
	}
	return ds, nil
}

// TableToCSV renders a dataset as UTF-8 CSV bytes: a header row of column
// names followed by one record per row. No index column is added beyond
// whatever depth column the dataset already carries.
func TableToCSV(ds *Dataset) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(ds.Names()); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	rows := ds.Rows()
	record := make([]string, len(ds.Columns))
	for r := 0; r < rows; r++ {
		for i, c := range ds.Columns {
			record[i] = c.Values[r]
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write row %d: %w", r+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
