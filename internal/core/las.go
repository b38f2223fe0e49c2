package core

// las.go defines the narrow contracts this package has with the LAS format
// collaborator. The real implementation lives in internal/las; unit tests
// substitute fakes that return canned data.

// ParsedCurve is one named curve extracted from a LAS file, excluding the
// depth index.
type ParsedCurve struct {
	Name   string
	Values []float64
}

// ParsedLog is the result of parsing LAS text: the depth index, its
// declared unit, the remaining curves in file order, and the well header
// entries.
type ParsedLog struct {
	IndexUnit   string
	IndexValues []float64
	Curves      []ParsedCurve
	WellInfo    map[string]string
}

// Parser parses LAS text. Malformed input fails with the parser's own
// error, which the converter wraps as a ParseFailure.
type Parser interface {
	Parse(text string) (ParsedLog, error)
}

// Document is a LAS document under construction. The first appended curve
// is the depth index.
type Document interface {
	// SetWellInfo writes a well header entry verbatim.
	SetWellInfo(key, value string)

	// AppendCurve adds a curve. Unit may be empty for the library default.
	AppendCurve(name string, values []float64, unit string) error

	// Render serializes the document to LAS text.
	Render() (string, error)
}

// Library is the full LAS collaborator: it parses existing files and
// creates new documents.
type Library interface {
	Parser
	NewDocument() Document
}
