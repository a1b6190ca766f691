// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danielhkuo/leads-report/auth"
	"github.com/danielhkuo/leads-report/cliparse"
)

// TestPassword is the dashboard password of GetTestConfig
const TestPassword = "test-password"

// SampleCSV is a small leads sheet in the published-CSV shape.
// Rows are out of order and one row has no collection date.
const SampleCSV = `Timestamp,Date Collected,Total Number of Prospects,Total Number of Maids,# of Filipina,# of N/A,# of Africans,# of Other Nationalities
1/2/2024 9:15:00,1/2/2024,10,4,1,0,2,1
1/4/2024 9:15:00,1/4/2024,14,6,2,1,2,1
1/3/2024 9:15:00,1/3/2024,12,5,2,0,2,1
1/5/2024 9:15:00,,3,1,0,0,1,0
`

// SheetServer is a fake published spreadsheet
type SheetServer struct {
	*httptest.Server
	body   atomic.Value
	status atomic.Int32
	hits   atomic.Int32
}

// NewSheetServer serves body as CSV until changed with SetBody or SetStatus.
// The server is closed when the test ends.
func NewSheetServer(t *testing.T, body string) *SheetServer {
	t.Helper()

	s := &SheetServer{}
	s.body.Store(body)
	s.status.Store(http.StatusOK)
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		w.Header().Set("Content-Type", "text/csv")
		w.WriteHeader(int(s.status.Load()))
		io.WriteString(w, s.body.Load().(string))
	}))
	t.Cleanup(s.Close)
	return s
}

// SetBody replaces the served CSV
func (s *SheetServer) SetBody(body string) {
	s.body.Store(body)
}

// SetStatus replaces the served status code
func (s *SheetServer) SetStatus(code int) {
	s.status.Store(int32(code))
}

// Hits returns how many times the sheet was fetched
func (s *SheetServer) Hits() int {
	return int(s.hits.Load())
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		SheetURL:      "http://127.0.0.1:0/sheet.csv",
		SheetName:     cliparse.DefaultSheetName,
		Password:      TestPassword,
		SessionSalt:   "test-session-salt",
		SessionMaxAge: time.Hour,
		FetchTimeout:  5 * time.Second,
	}
}

// SessionToken issues a valid session token for cfg
func SessionToken(t *testing.T, cfg cliparse.Config) string {
	t.Helper()

	token, err := auth.GenerateSessionToken(cfg.SessionSalt, time.Now())
	if err != nil {
		t.Fatalf("Failed to generate session token: %v", err)
	}
	return token
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body io.Reader, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// MakeFormRequest creates a URL-encoded form POST
func MakeFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertContains checks that the response body contains every fragment
func AssertContains(t *testing.T, w *httptest.ResponseRecorder, fragments ...string) {
	t.Helper()
	body := w.Body.String()
	for _, f := range fragments {
		if !strings.Contains(body, f) {
			t.Errorf("Expected body to contain %q", f)
		}
	}
}
