// Package las reads and writes Log ASCII Standard (LAS) 2.0 files: a text
// format with header sections (~Version, ~Well, ~Curve, ~Parameter,
// ~Other) followed by a depth-indexed ~ASCII data section.
//
// The package satisfies the collaborator contracts in internal/core, so
// the conversion logic never touches LAS text directly.
package las

// DefaultNull is the conventional LAS null substitute value.
const DefaultNull = -999.25

// Entry is one header line: mnemonic, unit, value, description.
type Entry struct {
	Mnem  string
	Unit  string
	Value string
	Descr string
}

// CurveInfo describes one curve declared in the ~Curve section.
type CurveInfo struct {
	Mnem  string
	Unit  string
	Descr string
}

// File is a parsed LAS file. Data is row-major with one value per declared
// curve; null-substituted values have already been replaced with NaN.
type File struct {
	Version []Entry
	Well    []Entry
	Curves  []CurveInfo
	Params  []Entry
	Other   []string
	Data    [][]float64
	Null    float64
	Wrap    bool
}

// WellValue returns the value of a ~Well entry by mnemonic.
func (f *File) WellValue(mnem string) (string, bool) {
	for _, e := range f.Well {
		if e.Mnem == mnem {
			return e.Value, true
		}
	}
	return "", false
}

// IndexUnit returns the unit of the first declared curve, upper-cased.
// Empty when the file declares no curves or no unit.
func (f *File) IndexUnit() string {
	if len(f.Curves) == 0 {
		return ""
	}
	return upper(f.Curves[0].Unit)
}

// Column returns the values of curve i across all data rows.
func (f *File) Column(i int) []float64 {
	out := make([]float64, len(f.Data))
	for r, row := range f.Data {
		out[r] = row[i]
	}
	return out
}
