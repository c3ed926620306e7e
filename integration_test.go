package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/medfinder/medfinder-api/alerts"
	"github.com/medfinder/medfinder-api/auth"
	"github.com/medfinder/medfinder-api/config"
	"github.com/medfinder/medfinder-api/data"
	"github.com/medfinder/medfinder-api/entities"
	"github.com/medfinder/medfinder-api/extractor"
	"github.com/medfinder/medfinder-api/handlers"
	"github.com/medfinder/medfinder-api/logging"
	"github.com/medfinder/medfinder-api/pricing"
	"github.com/medfinder/medfinder-api/safety"
	"github.com/medfinder/medfinder-api/server"
	"github.com/medfinder/medfinder-api/validation"
)

// buildTestServer assembles the full stack against a fake drug-label upstream
func buildTestServer(t *testing.T) http.Handler {
	t.Helper()

	logging.InitLogger("error", "test")

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [{"warnings": ["Test warning"], "purpose": ["Test"], "openfda": {}}]}`))
	}))
	t.Cleanup(upstream.Close)

	cfg := &config.Config{
		Port:           "8000",
		Address:        "127.0.0.1",
		Env:            "test",
		LogLevel:       "error",
		MaxRequestBody: 1 << 20,
		MaxHeaderSize:  1 << 20,
	}

	store := data.NewDrugStore()
	safetyClient, err := safety.NewClient(upstream.URL, 2*time.Second, 10)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	handler := handlers.NewHandler(
		store,
		extractor.New(store),
		pricing.NewEngine(store),
		safetyClient,
		alerts.NewStore(),
		auth.NewService(),
		validation.NewValidator(),
		"Delhi",
	)

	return server.NewServer(cfg, handler).Handler()
}

func TestEndToEndPrescriptionFlow(t *testing.T) {
	srv := buildTestServer(t)

	// Extract fields from raw prescription text
	extractBody := []byte(`{"raw_text": "Take Lisinopril 10mg once daily"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/prescriptions/extract", bytes.NewReader(extractBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("extract status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var extractResp struct {
		Data struct {
			DrugName string `json:"drug_name"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &extractResp); err != nil {
		t.Fatalf("decode extract response: %v", err)
	}
	if extractResp.Data.DrugName != "Lisinopril" {
		t.Fatalf("drug_name = %q", extractResp.Data.DrugName)
	}

	// Parse the extracted name into a canonical record with safety info
	parseBody := []byte(`{"drug_name": "Lisinopril"}`)
	req = httptest.NewRequest(http.MethodPost, "/api/drugs/parse", bytes.NewReader(parseBody))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("parse status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var parseResp struct {
		Data struct {
			GenericName string              `json:"generic_name"`
			Matched     bool                `json:"matched"`
			FdaInfo     entities.SafetyInfo `json:"fda_info"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &parseResp); err != nil {
		t.Fatalf("decode parse response: %v", err)
	}
	if parseResp.Data.GenericName != "lisinopril" || !parseResp.Data.Matched {
		t.Errorf("parse = %+v", parseResp.Data)
	}
	if len(parseResp.Data.FdaInfo.Warnings) == 0 || parseResp.Data.FdaInfo.Warnings[0] != "Test warning" {
		t.Errorf("fda_info warnings = %v", parseResp.Data.FdaInfo.Warnings)
	}

	// Compare prices for the resolved generic
	req = httptest.NewRequest(http.MethodGet, "/api/prices/compare?drug_name=lisinopril&location=Delhi", nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("compare status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var compareResp struct {
		Data struct {
			TotalPharmacies int                   `json:"total_pharmacies"`
			Prices          []entities.PriceQuote `json:"prices"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &compareResp); err != nil {
		t.Fatalf("decode compare response: %v", err)
	}
	if compareResp.Data.TotalPharmacies != 5 {
		t.Errorf("total_pharmacies = %d, want 5", compareResp.Data.TotalPharmacies)
	}
	if compareResp.Data.Prices[0].GenericPrice != 95.0 {
		t.Errorf("cheapest price = %v, want 95.0", compareResp.Data.Prices[0].GenericPrice)
	}
}

func TestServerRouting(t *testing.T) {
	srv := buildTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"health endpoint", http.MethodGet, "/health", http.StatusOK},
		{"metrics endpoint", http.MethodGet, "/metrics", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/unknown", http.StatusNotFound},
		{"wrong method", http.MethodGet, "/api/drugs/parse", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRateLimitHeadersPresent(t *testing.T) {
	srv := buildTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "203.0.113.50:9999"
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Header().Get("X-RateLimit-Limit") != "1000" {
		t.Errorf("X-RateLimit-Limit = %q, want 1000", rec.Header().Get("X-RateLimit-Limit"))
	}
	if rec.Header().Get("X-RateLimit-Remaining") == "" {
		t.Error("X-RateLimit-Remaining header missing")
	}
}
