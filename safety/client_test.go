package safety

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const labelPayload = `{
	"results": [{
		"warnings": ["Do not use with potassium supplements", "May cause dizziness"],
		"purpose": ["ACE inhibitor"],
		"openfda": {
			"substance_name": ["LISINOPRIL", "LISINOPRIL DIHYDRATE"],
			"manufacturer_name": ["Example Pharma Inc"]
		}
	}]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, 2*time.Second, 10)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client, server
}

func TestLookupSuccess(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search"); got != "openfda.generic_name:lisinopril" {
			t.Errorf("search query = %q", got)
		}
		w.Write([]byte(labelPayload))
	})

	info := client.Lookup(context.Background(), "lisinopril")

	// Single-valued fields keep only the first element
	if len(info.Warnings) != 1 || info.Warnings[0] != "Do not use with potassium supplements" {
		t.Errorf("Warnings = %v", info.Warnings)
	}
	if len(info.ActiveIngredients) != 2 {
		t.Errorf("ActiveIngredients = %v, want both substance names", info.ActiveIngredients)
	}
	if len(info.Manufacturers) != 1 || info.Manufacturers[0] != "Example Pharma Inc" {
		t.Errorf("Manufacturers = %v", info.Manufacturers)
	}
	if len(info.Purpose) != 1 || info.Purpose[0] != "ACE inhibitor" {
		t.Errorf("Purpose = %v", info.Purpose)
	}
}

func TestLookupServerErrorReturnsDefault(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	info := client.Lookup(context.Background(), "metformin")

	want := DefaultSafetyInfo("metformin")
	if info.Warnings[0] != want.Warnings[0] {
		t.Errorf("Warnings = %v, want default payload", info.Warnings)
	}
	if info.ActiveIngredients[0] != "metformin" {
		t.Errorf("ActiveIngredients = %v, want the generic name", info.ActiveIngredients)
	}
}

func TestLookupEmptyResultsReturnsDefault(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	})

	info := client.Lookup(context.Background(), "omeprazole")
	if info.Manufacturers[0] != "Various" {
		t.Errorf("Manufacturers = %v, want default payload", info.Manufacturers)
	}
}

func TestLookupMalformedPayloadReturnsDefault(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	info := client.Lookup(context.Background(), "amlodipine")
	if info.Warnings[0] != "Consult your doctor" {
		t.Errorf("Warnings = %v, want default payload", info.Warnings)
	}
}

func TestLookupMissingFieldsGetDefaults(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [{"openfda": {}}]}`))
	})

	info := client.Lookup(context.Background(), "atorvastatin")

	if info.Warnings[0] != "No warnings" {
		t.Errorf("Warnings = %v", info.Warnings)
	}
	if info.ActiveIngredients[0] != "atorvastatin" {
		t.Errorf("ActiveIngredients = %v", info.ActiveIngredients)
	}
	if info.Manufacturers[0] != "Various" {
		t.Errorf("Manufacturers = %v", info.Manufacturers)
	}
	if info.Purpose[0] != "Prescription medication" {
		t.Errorf("Purpose = %v", info.Purpose)
	}
}

func TestLookupCachesResults(t *testing.T) {
	var requests atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(labelPayload))
	})

	client.Lookup(context.Background(), "lisinopril")
	client.Lookup(context.Background(), "lisinopril")
	client.Lookup(context.Background(), "lisinopril")

	if got := requests.Load(); got != 1 {
		t.Errorf("server saw %d requests, want 1 (later lookups served from cache)", got)
	}

	hits, size := client.CacheStats()
	if hits != 2 {
		t.Errorf("cache hits = %d, want 2", hits)
	}
	if size != 1 {
		t.Errorf("cache size = %d, want 1", size)
	}
}

func TestLookupCachesDefaults(t *testing.T) {
	var requests atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	// Failed lookups cache the substituted default, so the failing upstream
	// is not hammered on repeat queries for the same drug.
	client.Lookup(context.Background(), "metformin")
	client.Lookup(context.Background(), "metformin")

	if got := requests.Load(); got != 1 {
		t.Errorf("server saw %d requests, want 1", got)
	}
}

func TestDefaultSafetyInfo(t *testing.T) {
	info := DefaultSafetyInfo("lisinopril")

	if info.Warnings[0] != "Consult your doctor" {
		t.Errorf("Warnings = %v", info.Warnings)
	}
	if info.ActiveIngredients[0] != "lisinopril" {
		t.Errorf("ActiveIngredients = %v", info.ActiveIngredients)
	}
	if info.Manufacturers[0] != "Various" {
		t.Errorf("Manufacturers = %v", info.Manufacturers)
	}
	if info.Purpose[0] != "Prescription medication" {
		t.Errorf("Purpose = %v", info.Purpose)
	}
}
