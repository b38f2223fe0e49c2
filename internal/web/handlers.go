package web

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gfcampos/welllog/internal/core"
	"github.com/gfcampos/welllog/internal/logging"
)

// handleIndex serves the single-page UI.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

// handleHealthz reports process liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// handleLASToCSV converts an uploaded LAS file and returns CSV bytes as a
// download.
func (s *Server) handleLASToCSV(w http.ResponseWriter, r *http.Request) {
	name, data, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	out, rec, err := s.service.ConvertLASToCSV(name, data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("converted",
		"direction", rec.Direction, "file", rec.FileName,
		"rows", rec.Rows, "columns", rec.Columns, "duration_ms", rec.DurationMS)

	sendDownload(w, out, downloadName(name, ".csv"), "text/csv", rec.ID)
}

// handleCSVToLAS converts an uploaded CSV file, attaching well metadata
// from the form fields, and returns LAS bytes as a download.
func (s *Server) handleCSVToLAS(w http.ResponseWriter, r *http.Request) {
	name, data, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	meta := core.WellMetadata{
		Well:    r.FormValue("well"),
		Field:   r.FormValue("field"),
		Company: r.FormValue("company"),
		Date:    r.FormValue("date"),
	}

	out, rec, err := s.service.ConvertCSVToLAS(name, data, meta, s.cfg.Convert.DepthUnit)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("converted",
		"direction", rec.Direction, "file", rec.FileName,
		"rows", rec.Rows, "columns", rec.Columns, "duration_ms", rec.DurationMS)

	sendDownload(w, out, downloadName(name, ".las"), "text/plain", rec.ID)
}

// handlePlot builds a chart specification for an uploaded LAS or CSV file.
func (s *Server) handlePlot(w http.ResponseWriter, r *http.Request) {
	name, data, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	spec, err := s.service.PlotFile(name, data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, spec)
}

// handlePreview summarizes the columns of an uploaded LAS or CSV file.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	name, data, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	stats, err := s.service.PreviewFile(name, data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, stats)
}

// handleConversions returns the recent conversion records, newest first.
func (s *Server) handleConversions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.service.Recent())
}

// readUpload extracts the multipart "file" field, enforcing the configured
// size limit. On failure it writes the error response and returns ok=false.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (name string, data []byte, ok bool) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		writeJSONStatus(w, http.StatusBadRequest, ErrorResponse{
			Error:   "file too large or invalid form",
			Message: "file too large or invalid form",
			Code:    "UPL001",
		})
		return "", nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONStatus(w, http.StatusBadRequest, ErrorResponse{
			Error:   "no file provided",
			Message: "no file provided",
			Action:  "Select a file to upload",
			Code:    "UPL002",
		})
		return "", nil, false
	}
	defer file.Close()

	data, err = io.ReadAll(file)
	if err != nil {
		writeJSONStatus(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "failed to read file",
			Message: "failed to read file",
			Code:    "UPL003",
		})
		return "", nil, false
	}

	return header.Filename, data, true
}

// sendDownload writes converted bytes as a file attachment. The conversion
// record ID travels in a header so the UI can link the history entry.
func sendDownload(w http.ResponseWriter, data []byte, filename, contentType, conversionID string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	w.Header().Set("X-Conversion-ID", conversionID)
	w.Write(data)
}

// downloadName swaps the upload's extension for the converted format's.
func downloadName(uploadName, ext string) string {
	base := filepath.Base(uploadName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		base = "converted"
	}
	return base + ext
}
