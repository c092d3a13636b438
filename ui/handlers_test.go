package ui

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"baselinedash/app"
	"baselinedash/internal/config"
	"baselinedash/internal/errors"
	"baselinedash/internal/testkit"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0", GinMode: "test"},
		Data: config.DataConfig{
			Sheet2425:   testkit.Sheet2425,
			Sheet2526:   testkit.Sheet2526,
			MaxUploadMB: 50,
		},
	}
	server, err := NewServer(cfg, app.NewDashboardService(cfg.Data))
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}
	return server
}

func uploadBody(t *testing.T, fileA, fileB []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for field, data := range map[string][]byte{
		"source_2425": fileA,
		"source_2526": fileB,
	} {
		part, err := writer.CreateFormFile(field, field+".xlsx")
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatalf("failed to write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func doUpload(t *testing.T, server *Server) {
	t.Helper()
	dataA, err := testkit.Sample2425()
	if err != nil {
		t.Fatalf("failed to build fixture: %v", err)
	}
	dataB, err := testkit.Sample2526()
	if err != nil {
		t.Fatalf("failed to build fixture: %v", err)
	}

	body, contentType := uploadBody(t, dataA, dataB)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("upload status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func postDashboard(t *testing.T, server *Server, filters map[string][]string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	payload, err := json.Marshal(map[string]interface{}{"filters": filters})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/dashboard", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %s", rec.Body.String())
	}
	return rec, body
}

func TestUploadAndDashboard(t *testing.T) {
	server := newTestServer(t)
	doUpload(t, server)

	rec, body := postDashboard(t, server, map[string][]string{"Subject": {"All"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d", rec.Code)
	}

	var summary struct {
		KPIs struct {
			TotalAssessments int `json:"totalAssessments"`
		} `json:"kpis"`
	}
	if err := json.Unmarshal(body["summary"], &summary); err != nil {
		t.Fatalf("summary missing from response: %s", rec.Body.String())
	}
	if summary.KPIs.TotalAssessments != 5 {
		t.Errorf("totalAssessments = %d, want 5", summary.KPIs.TotalAssessments)
	}
}

func TestDashboard_FilterSelection(t *testing.T) {
	server := newTestServer(t)
	doUpload(t, server)

	rec, body := postDashboard(t, server, map[string][]string{"Subject": {"Math"}, "State": {"Kaduna"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d", rec.Code)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(body["rows"], &rows); err != nil {
		t.Fatalf("rows missing: %s", rec.Body.String())
	}
	if len(rows) != 2 {
		t.Errorf("filtered rows = %d, want 2", len(rows))
	}
}

func TestDashboard_NoDataState(t *testing.T) {
	server := newTestServer(t)
	doUpload(t, server)

	rec, body := postDashboard(t, server, map[string][]string{"Subject": {"Science"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("no-data must not be an HTTP failure, got %d", rec.Code)
	}

	var noData bool
	if err := json.Unmarshal(body["noData"], &noData); err != nil || !noData {
		t.Errorf("expected noData=true, body: %s", rec.Body.String())
	}
	if _, ok := body["summary"]; ok {
		t.Error("no-data response should not carry a summary")
	}
}

func TestDashboard_BeforeUploadIsUnavailable(t *testing.T) {
	server := newTestServer(t)

	rec, body := postDashboard(t, server, nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	var code string
	if err := json.Unmarshal(body["code"], &code); err != nil || code != errors.CodeNoTable {
		t.Errorf("code = %q, want %q", code, errors.CodeNoTable)
	}
}

func TestUpload_SchemaErrorMapsTo422(t *testing.T) {
	server := newTestServer(t)

	dataA, err := testkit.Sample2425()
	if err != nil {
		t.Fatalf("failed to build fixture: %v", err)
	}
	broken, err := testkit.BuildWorkbook(testkit.Sheet2526, [][]interface{}{
		{"State", "Subject"},
		{"Kaduna", "Math"},
	})
	if err != nil {
		t.Fatalf("failed to build fixture: %v", err)
	}

	body, contentType := uploadBody(t, dataA, broken)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d (body: %s)", rec.Code, http.StatusUnprocessableEntity, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), errors.CodeSchema) {
		t.Errorf("response should carry the schema error code: %s", rec.Body.String())
	}
}

func TestUpload_RejectsNonWorkbook(t *testing.T) {
	server := newTestServer(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile("source_2425", "notes.txt")
	part.Write([]byte("plain text"))
	part2, _ := writer.CreateFormFile("source_2526", "b.xlsx")
	part2.Write([]byte("ignored"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestOptions_PrependsAll(t *testing.T) {
	server := newTestServer(t)
	doUpload(t, server)

	req := httptest.NewRequest(http.MethodGet, "/api/options", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("options status = %d", rec.Code)
	}

	var resp struct {
		Options map[string][]string `json:"options"`
		Columns []string            `json:"columns"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("options response not JSON: %s", rec.Body.String())
	}

	if len(resp.Columns) != 5 {
		t.Errorf("filter columns = %v, want the five filterable columns", resp.Columns)
	}
	for column, values := range resp.Options {
		if len(values) == 0 || values[0] != AllOption {
			t.Errorf("column %q should have %q as the first/default option, got %v", column, AllOption, values)
		}
	}
}
