package web

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gfcampos/welllog/internal/config"
	"github.com/gfcampos/welllog/internal/core"
	"github.com/gfcampos/welllog/internal/las"
)

const sampleLAS = `~Version Information
 VERS.                  2.0 : CWLS LOG ASCII STANDARD - VERSION 2.0
 WRAP.                  NO  : ONE LINE PER DEPTH STEP
~Curve Information
 DEPT.M                     : DEPTH
 GR  .GAPI                  : GAMMA RAY
~ASCII
     1670.00        45.20
     1671.00        48.10
`

const sampleCSV = "DEPTH,GR\n100,45.2\n101,48.1\n"

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     time.Second,
			ShutdownTimeout: time.Second,
			RequestTimeout:  5 * time.Second,
		},
		Upload:  config.UploadConfig{MaxFileSize: 1 << 20},
		Convert: config.ConvertConfig{DepthUnit: "m", HistorySize: 10},
		Rate:    config.RateLimitConfig{Enabled: false},
		Logging: config.LoggingConfig{Level: "error", Format: "text"},
	}
}

func newTestServer(cfg *config.Config) *Server {
	service := core.NewService(las.NewLibrary(), cfg.Convert.HistorySize)
	return NewServer(service, cfg)
}

// uploadRequest builds a multipart POST with a "file" part and optional
// extra form fields.
func uploadRequest(t *testing.T, url, filename, content string, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile() error = %v", err)
	}
	if _, err := io.WriteString(part, content); err != nil {
		t.Fatalf("writing file part: %v", err)
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField(%s) error = %v", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, url, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func do(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var er ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&er); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	return er
}

func TestHealthz(t *testing.T) {
	s := newTestServer(testConfig())

	rec := do(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHandleLASToCSV(t *testing.T) {
	s := newTestServer(testConfig())

	rec := do(s, uploadRequest(t, "/api/convert/las-to-csv", "well.las", sampleLAS, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, `filename="well.csv"`) {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if rec.Header().Get("X-Conversion-ID") == "" {
		t.Error("missing X-Conversion-ID header")
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "M,GR\n") {
		t.Errorf("csv header = %q, want M,GR", strings.SplitN(body, "\n", 2)[0])
	}
	if !strings.Contains(body, "45.2") {
		t.Errorf("csv body missing data: %q", body)
	}
}

func TestHandleLASToCSVMalformed(t *testing.T) {
	s := newTestServer(testConfig())

	rec := do(s, uploadRequest(t, "/api/convert/las-to-csv", "well.las", "not a las file", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if er := decodeError(t, rec); er.Code != "PRS001" {
		t.Errorf("code = %q, want PRS001", er.Code)
	}
}

func TestHandleCSVToLAS(t *testing.T) {
	s := newTestServer(testConfig())

	fields := map[string]string{"well": "W-1", "field": "North"}
	rec := do(s, uploadRequest(t, "/api/convert/csv-to-las", "data.csv", sampleCSV, fields))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, `filename="data.las"`) {
		t.Errorf("Content-Disposition = %q", cd)
	}
	body := rec.Body.String()
	for _, want := range []string{"~ASCII", "W-1", "North", "DEPTH"} {
		if !strings.Contains(body, want) {
			t.Errorf("las output missing %q", want)
		}
	}
}

func TestHandleCSVToLASNonNumericColumn(t *testing.T) {
	s := newTestServer(testConfig())

	csv := "DEPTH,NOTES\n100,shale\n"
	rec := do(s, uploadRequest(t, "/api/convert/csv-to-las", "data.csv", csv, nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if er := decodeError(t, rec); er.Code != "WRT001" {
		t.Errorf("code = %q, want WRT001", er.Code)
	}
}

func TestHandlePlot(t *testing.T) {
	s := newTestServer(testConfig())

	rec := do(s, uploadRequest(t, "/api/plot", "data.csv", sampleCSV, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var spec struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
		Layout struct {
			YAxis struct {
				Autorange string `json:"autorange"`
			} `json:"yaxis"`
		} `json:"layout"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&spec); err != nil {
		t.Fatalf("decoding chart spec: %v", err)
	}
	if len(spec.Data) != 1 || spec.Data[0].Name != "GR" {
		t.Errorf("traces = %+v, want single GR trace", spec.Data)
	}
	if spec.Layout.YAxis.Autorange != "reversed" {
		t.Errorf("yaxis autorange = %q, want reversed", spec.Layout.YAxis.Autorange)
	}
}

func TestHandlePlotEmptyPlot(t *testing.T) {
	s := newTestServer(testConfig())

	rec := do(s, uploadRequest(t, "/api/plot", "data.csv", "DEPTH\n100\n101\n", nil))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if er := decodeError(t, rec); er.Code != "PLT001" {
		t.Errorf("code = %q, want PLT001", er.Code)
	}
}

func TestHandlePreview(t *testing.T) {
	s := newTestServer(testConfig())

	rec := do(s, uploadRequest(t, "/api/preview", "data.csv", sampleCSV, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var stats []core.ColumnStats
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decoding stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("stats = %d columns, want 2", len(stats))
	}
	if stats[0].Column != "DEPTH" || stats[0].Count != 2 {
		t.Errorf("stats[0] = %+v", stats[0])
	}
}

func TestHandleConversions(t *testing.T) {
	s := newTestServer(testConfig())

	do(s, uploadRequest(t, "/api/convert/las-to-csv", "well.las", sampleLAS, nil))

	rec := do(s, httptest.NewRequest(http.MethodGet, "/api/conversions", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var records []core.ConversionRecord
	if err := json.NewDecoder(rec.Body).Decode(&records); err != nil {
		t.Fatalf("decoding records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].Direction != "las-to-csv" || records[0].FileName != "well.las" {
		t.Errorf("record = %+v", records[0])
	}
}

func TestReadUploadMissingFile(t *testing.T) {
	s := newTestServer(testConfig())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("well", "W-1")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/convert/csv-to-las", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := do(s, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if er := decodeError(t, rec); er.Code != "UPL002" {
		t.Errorf("code = %q, want UPL002", er.Code)
	}
}

func TestReadUploadTooLarge(t *testing.T) {
	cfg := testConfig()
	cfg.Upload.MaxFileSize = 64 // bytes
	s := newTestServer(cfg)

	big := strings.Repeat("x", 4096)
	rec := do(s, uploadRequest(t, "/api/convert/las-to-csv", "well.las", big, nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if er := decodeError(t, rec); er.Code != "UPL001" {
		t.Errorf("code = %q, want UPL001", er.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	s := newTestServer(testConfig())

	rec := do(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
}

func TestRateLimiter(t *testing.T) {
	cfg := testConfig()
	cfg.Rate.Enabled = true
	cfg.Rate.RequestsPerMinute = 2
	s := newTestServer(cfg)

	for i := 0; i < 2; i++ {
		rec := do(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, rec.Code)
		}
	}

	rec := do(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After header")
	}
}

func TestDownloadName(t *testing.T) {
	tests := []struct {
		in   string
		ext  string
		want string
	}{
		{"well.las", ".csv", "well.csv"},
		{"data.csv", ".las", "data.las"},
		{"path/to/log.LAS", ".csv", "log.csv"},
		{"noext", ".csv", "noext.csv"},
		{".las", ".csv", "converted.csv"},
	}

	for _, tt := range tests {
		if got := downloadName(tt.in, tt.ext); got != tt.want {
			t.Errorf("downloadName(%q, %q) = %q, want %q", tt.in, tt.ext, got, tt.want)
		}
	}
}
