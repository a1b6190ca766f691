// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/danielhkuo/leads-report/handlers"
	"github.com/danielhkuo/leads-report/leads"
	"github.com/danielhkuo/leads-report/sheet"
	"github.com/danielhkuo/leads-report/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	srv := testutil.NewSheetServer(t, testutil.SampleCSV)
	loader := sheet.NewLoader(sheet.NewClient(srv.URL, time.Second), time.Minute)
	return NewRouter(loader, leads.DefaultLayout(), testutil.GetTestConfig())
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootShowsGate(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusUnauthorized)
	testutil.AssertContains(t, w, handlers.AccessDeniedMessage)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header")
	}
	if w.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("Expected Cache-Control no-store, got %q", w.Header().Get("Cache-Control"))
	}
}

func TestUnknownPath(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/polls", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestProtectedRoutes(t *testing.T) {
	mux := newTestRouter(t)
	cfg := testutil.GetTestConfig()

	paths := []string{
		"/charts/prospects.svg",
		"/export/daily_records.csv",
		"/export/summary_stats.csv",
		"/export/leads_report.xlsx",
		"/api/report",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
			testutil.AssertStatus(t, w, http.StatusUnauthorized)

			req := httptest.NewRequest("GET", path, nil)
			req.AddCookie(&http.Cookie{Name: handlers.SessionCookie, Value: testutil.SessionToken(t, cfg)})
			w = httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			testutil.AssertStatus(t, w, http.StatusOK)
		})
	}
}

func TestLoginFlow(t *testing.T) {
	mux := newTestRouter(t)

	req := testutil.MakeFormRequest("/login", url.Values{"password": {testutil.TestPassword}})
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusSeeOther)
	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Expected one cookie, got %d", len(cookies))
	}

	req = httptest.NewRequest("GET", "/?records=2", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, handlers.WelcomeMessage, "This dataset has: 4 records and 8 features")
}

func TestSpecificMethodRouting(t *testing.T) {
	mux := newTestRouter(t)

	// Test that method-specific routes are enforced
	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"POST to health endpoint", "POST", "/health", http.StatusMethodNotAllowed},
		{"GET to login", "GET", "/login", http.StatusMethodNotAllowed},
		{"GET to refresh", "GET", "/refresh", http.StatusMethodNotAllowed},
		{"DELETE to report", "DELETE", "/api/report", http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d", tc.expectedStatus, tc.method, tc.path, w.Code)
			}
		})
	}
}
