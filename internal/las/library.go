package las

import "github.com/gfcampos/welllog/internal/core"

// Library adapts this package to the collaborator contracts in
// internal/core.
type Library struct{}

// NewLibrary returns the LAS collaborator used by the converters.
func NewLibrary() Library {
	return Library{}
}

// Parse implements core.Parser.
func (Library) Parse(text string) (core.ParsedLog, error) {
	f, err := Parse(text)
	if err != nil {
		return core.ParsedLog{}, err
	}

	log := core.ParsedLog{
		IndexUnit:   f.IndexUnit(),
		IndexValues: f.Column(0),
		WellInfo:    make(map[string]string, len(f.Well)),
	}
	for _, e := range f.Well {
		log.WellInfo[e.Mnem] = e.Value
	}
	for i := 1; i < len(f.Curves); i++ {
		log.Curves = append(log.Curves, core.ParsedCurve{
			Name:   f.Curves[i].Mnem,
			Values: f.Column(i),
		})
	}
	return log, nil
}

// NewDocument implements core.Library.
func (Library) NewDocument() core.Document {
	return &Document{}
}
