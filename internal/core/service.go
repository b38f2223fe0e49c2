package core

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Service runs conversions and keeps a bounded, in-memory record of recent
// ones. Every conversion is a pure function of its input; the history is
// informational only, lives for the process lifetime, and holds no file
// contents.
type Service struct {
	lib        Library
	maxHistory int

	mu      sync.RWMutex
	history []ConversionRecord // newest first
}

// ConversionRecord describes one completed (or failed) conversion.
type ConversionRecord struct {
	ID          string        `json:"id"`
	Direction   string        `json:"direction"` // "las-to-csv" or "csv-to-las"
	FileName    string        `json:"file_name"`
	Columns     int           `json:"columns"`
	Rows        int           `json:"rows"`
	DepthColumn string        `json:"depth_column"`
	Duration    time.Duration `json:"-"`
	DurationMS  int64         `json:"duration_ms"`
	ConvertedAt time.Time     `json:"converted_at"`
	Error       string        `json:"error,omitempty"`
}

// NewService creates a Service backed by the given LAS library.
// maxHistory bounds the retained records; 0 disables history.
func NewService(lib Library, maxHistory int) *Service {
	return &Service{lib: lib, maxHistory: maxHistory}
}

// ConvertLASToCSV converts LAS bytes to CSV bytes.
func (s *Service) ConvertLASToCSV(fileName string, raw []byte) ([]byte, ConversionRecord, error) {
	start := time.Now()
	rec := s.newRecord("las-to-csv", fileName)

	ds, err := LASToTable(s.lib, raw)
	if err != nil {
		return nil, s.finish(rec, nil, start, err), err
	}

	out, err := TableToCSV(ds)
	return out, s.finish(rec, ds, start, err), err
}

// ConvertCSVToLAS converts CSV bytes to LAS bytes, attaching the supplied
// well metadata. depthUnit overrides the unit written for the depth curve;
// empty means DefaultDepthUnit.
func (s *Service) ConvertCSVToLAS(fileName string, raw []byte, meta WellMetadata, depthUnit string) ([]byte, ConversionRecord, error) {
	start := time.Now()
	rec := s.newRecord("csv-to-las", fileName)

	ds, err := CSVToTable(raw)
	if err != nil {
		return nil, s.finish(rec, nil, start, err), err
	}

	doc, err := TableToLAS(s.lib, ds, meta, depthUnit)
	if err != nil {
		return nil, s.finish(rec, ds, start, err), err
	}

	text, err := doc.Render()
	if err != nil {
		wrapped := &ConversionError{Kind: WriteFailure, Err: err}
		return nil, s.finish(rec, ds, start, wrapped), wrapped
	}

	return []byte(text), s.finish(rec, ds, start, nil), nil
}

// PlotFile parses an uploaded LAS or CSV file and builds its curve chart.
func (s *Service) PlotFile(fileName string, raw []byte) (*ChartSpec, error) {
	ds, err := s.parseFile(fileName, raw)
	if err != nil {
		return nil, err
	}
	return PlotCurves(ds, ResolveDepthColumn(ds))
}

// PreviewFile parses an uploaded LAS or CSV file and summarizes its
// columns.
func (s *Service) PreviewFile(fileName string, raw []byte) ([]ColumnStats, error) {
	ds, err := s.parseFile(fileName, raw)
	if err != nil {
		return nil, err
	}
	return Describe(ds), nil
}

// Recent returns the retained conversion records, newest first.
func (s *Service) Recent() []ConversionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ConversionRecord(nil), s.history...)
}

// parseFile dispatches on file type: .las files go through the LAS parser,
// everything else is treated as CSV. Extension wins; without one, content
// starting with a LAS section marker is treated as LAS.
func (s *Service) parseFile(fileName string, raw []byte) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".las":
		return LASToTable(s.lib, raw)
	case ".csv":
		return CSVToTable(raw)
	}
	if strings.HasPrefix(strings.TrimSpace(string(raw)), "~") {
		return LASToTable(s.lib, raw)
	}
	return CSVToTable(raw)
}

func (s *Service) newRecord(direction, fileName string) ConversionRecord {
	return ConversionRecord{
		ID:        uuid.NewString(),
		Direction: direction,
		FileName:  filepath.Base(fileName),
	}
}

// finish completes a record and stores it. Returns the completed record so
// callers can hand it to the client alongside the converted bytes.
func (s *Service) finish(rec ConversionRecord, ds *Dataset, start time.Time, err error) ConversionRecord {
	rec.Duration = time.Since(start)
	rec.DurationMS = rec.Duration.Milliseconds()
	rec.ConvertedAt = time.Now().UTC()
	if ds != nil {
		rec.Columns = len(ds.Columns)
		rec.Rows = ds.Rows()
		rec.DepthColumn = ResolveDepthColumn(ds)
	}
	if err != nil {
		rec.Error = err.Error()
	}

	if s.maxHistory > 0 {
		s.mu.Lock()
		s.history = append([]ConversionRecord{rec}, s.history...)
		if len(s.history) > s.maxHistory {
			s.history = s.history[:s.maxHistory]
		}
		s.mu.Unlock()
	}
	return rec
}
