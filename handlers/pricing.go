package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/medfinder/medfinder-api/insurance"
	"github.com/medfinder/medfinder-api/metrics"
	"github.com/medfinder/medfinder-api/pricing"
)

// ComparePrices returns the ranked price comparison for a drug. The drug
// name is resolved against the catalog first, so misspellings and brand
// mentions still produce a comparison.
func (h *Handler) ComparePrices(w http.ResponseWriter, r *http.Request) {
	drugName := r.URL.Query().Get("drug_name")
	if drugName == "" {
		h.RespondWithError(w, http.StatusBadRequest, "Missing drug_name")
		return
	}

	if err := h.validator.ValidateInput(drugName); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	location := r.URL.Query().Get("location")
	if location == "" {
		location = h.defaultLocation
	}
	if err := h.validator.ValidateLocation(location); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	genericOnly := true
	if generic := r.URL.Query().Get("generic"); generic != "" {
		parsed, err := strconv.ParseBool(generic)
		if err != nil {
			h.RespondWithError(w, http.StatusBadRequest, "Invalid generic flag")
			return
		}
		genericOnly = parsed
	}

	record, _ := h.store.Resolve(drugName)
	quotes := h.pricer.Compare(record, location, genericOnly)
	metrics.PriceComparisons.Inc()

	h.RespondWithData(w, http.StatusOK, map[string]interface{}{
		"drug_name":        drugName,
		"location":         location,
		"prices":           quotes,
		"total_pharmacies": len(quotes),
	})
}

// NearbyPharmacies lists pharmacies matching the location filter
func (h *Handler) NearbyPharmacies(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if location == "" {
		location = h.defaultLocation
	}
	if err := h.validator.ValidateLocation(location); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	pharmacies := pricing.FilterByLocation(h.store.Pharmacies(), location)

	h.RespondWithData(w, http.StatusOK, map[string]interface{}{
		"pharmacies": pharmacies,
		"count":      len(pharmacies),
		"location":   location,
	})
}

// insuranceRequest carries the estimate inputs. Tier defaults to 1.
type insuranceRequest struct {
	DrugName     string  `json:"drug_name"`
	Insurer      string  `json:"insurer"`
	GenericPrice float64 `json:"generic_price"`
	Tier         *int    `json:"tier,omitempty"`
}

// EstimateInsurance computes the tier-based cost breakdown
func (h *Handler) EstimateInsurance(w http.ResponseWriter, r *http.Request) {
	var req insuranceRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Insurer == "" {
		h.RespondWithError(w, http.StatusBadRequest, "Missing insurer")
		return
	}

	if err := h.validator.ValidatePrice(req.GenericPrice); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	tier := 1
	if req.Tier != nil {
		tier = *req.Tier
	}

	estimate := insurance.Estimate(req.GenericPrice, req.Insurer, tier)
	h.RespondWithData(w, http.StatusOK, estimate)
}

// stockReportRequest is a crowdsourced stock observation
type stockReportRequest struct {
	PharmacyID     int      `json:"pharmacy_id"`
	DrugName       string   `json:"drug_name"`
	InStock        bool     `json:"in_stock"`
	UserTrustScore *float64 `json:"user_trust_score,omitempty"`
}

// ReportStock accepts a crowdsourced stock report and scores its confidence
func (h *Handler) ReportStock(w http.ResponseWriter, r *http.Request) {
	var req stockReportRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.ValidateInput(req.DrugName); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	trustScore := 0.5
	if req.UserTrustScore != nil {
		trustScore = *req.UserTrustScore
	}

	h.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Stock status updated",
		"data": map[string]interface{}{
			"pharmacy_id": req.PharmacyID,
			"drug_name":   req.DrugName,
			"in_stock":    req.InStock,
			"confidence":  pricing.Confidence(trustScore),
			"timestamp":   time.Now().Format(time.RFC3339),
		},
	})
}

// priceReportRequest is a crowdsourced price observation
type priceReportRequest struct {
	PharmacyName   string   `json:"pharmacy_name"`
	DrugName       string   `json:"drug_name"`
	Price          float64  `json:"price"`
	UserTrustScore *float64 `json:"user_trust_score,omitempty"`
}

// ReportPrice accepts a crowdsourced price report and scores its confidence
func (h *Handler) ReportPrice(w http.ResponseWriter, r *http.Request) {
	var req priceReportRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.ValidateInput(req.DrugName); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.validator.ValidatePrice(req.Price); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	trustScore := 0.5
	if req.UserTrustScore != nil {
		trustScore = *req.UserTrustScore
	}

	h.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Price report submitted",
		"data": map[string]interface{}{
			"pharmacy_name": req.PharmacyName,
			"drug_name":     req.DrugName,
			"price":         req.Price,
			"confidence":    pricing.Confidence(trustScore),
			"timestamp":     time.Now().Format(time.RFC3339),
		},
	})
}
