// Package handlers provides HTTP request handlers for the MedFinder API
// endpoints: prescription extraction, drug resolution, price comparison,
// insurance estimation, crowdsourced reports, alerts and admin catalog
// management, with input validation and consistent response formatting.
package handlers

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/medfinder/medfinder-api/interfaces"
	"github.com/medfinder/medfinder-api/logging"
)

// Handler carries the injected collaborators for all endpoints
type Handler struct {
	store           interfaces.DrugStore
	extractor       interfaces.FieldExtractor
	pricer          interfaces.PriceComparer
	safety          interfaces.SafetyClient
	alerts          interfaces.AlertStore
	auth            interfaces.Authenticator
	validator       interfaces.DataValidator
	defaultLocation string
	startTime       time.Time
}

// NewHandler creates a handler with injected dependencies
func NewHandler(
	store interfaces.DrugStore,
	fieldExtractor interfaces.FieldExtractor,
	pricer interfaces.PriceComparer,
	safetyClient interfaces.SafetyClient,
	alertStore interfaces.AlertStore,
	authenticator interfaces.Authenticator,
	validator interfaces.DataValidator,
	defaultLocation string,
) *Handler {
	return &Handler{
		store:           store,
		extractor:       fieldExtractor,
		pricer:          pricer,
		safety:          safetyClient,
		alerts:          alertStore,
		auth:            authenticator,
		validator:       validator,
		defaultLocation: defaultLocation,
		startTime:       time.Now(),
	}
}

// RespondWithJSON writes a JSON response
func (h *Handler) RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(data)
}

// RespondWithData wraps a payload in the success envelope
func (h *Handler) RespondWithData(w http.ResponseWriter, code int, payload interface{}) {
	h.RespondWithJSON(w, code, map[string]interface{}{
		"success": true,
		"data":    payload,
	})
}

// RespondWithError writes a JSON error response
func (h *Handler) RespondWithError(w http.ResponseWriter, code int, message string) {
	errorResponse := map[string]interface{}{
		"error":   http.StatusText(code),
		"message": message,
		"code":    code,
	}
	h.RespondWithJSON(w, code, errorResponse)
}

// decodeJSON decodes a request body into dst with unknown fields rejected
func (h *Handler) decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// HealthResponse defines the structure for consistent JSON ordering
type HealthResponse struct {
	Status        string                 `json:"status"`
	LastModified  string                 `json:"last_modified"`
	UptimeSeconds float64                `json:"uptime_seconds"`
	Data          map[string]interface{} `json:"data"`
	System        map[string]interface{} `json:"system"`
}

// HealthCheck returns server health information
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)

	drugs := h.store.Drugs()
	pharmacies := h.store.Pharmacies()
	cacheHits, cacheSize := h.safety.CacheStats()

	// The catalog is seeded at startup; an empty catalog means resolution
	// is running entirely on the built-in fallback record.
	var healthStatus string
	var httpStatus int
	switch {
	case len(drugs) == 0 || len(pharmacies) == 0:
		healthStatus = "degraded"
		httpStatus = http.StatusOK
	default:
		healthStatus = "healthy"
		httpStatus = http.StatusOK
	}

	response := HealthResponse{
		Status:        healthStatus,
		LastModified:  h.store.LastModified().Format(time.RFC3339),
		UptimeSeconds: uptime.Seconds(),
		Data: map[string]interface{}{
			"api_version":       "2.0.0",
			"drugs":             len(drugs),
			"pharmacies":        len(pharmacies),
			"safety_cache_size": cacheSize,
			"safety_cache_hits": cacheHits,
		},
		System: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc_mb":       int(m.Alloc / 1024 / 1024),
				"total_alloc_mb": int(m.TotalAlloc / 1024 / 1024),
				"sys_mb":         int(m.Sys / 1024 / 1024),
				"num_gc":         m.NumGC,
			},
		},
	}

	h.RespondWithJSON(w, httpStatus, response)
}
