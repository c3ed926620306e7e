package handlers

import (
	"net/http"

	"github.com/medfinder/medfinder-api/entities"
	"github.com/medfinder/medfinder-api/logging"
	"github.com/medfinder/medfinder-api/metrics"
)

// extractRequest carries the OCR-decoded prescription text. Image decoding
// and OCR happen upstream; this service only sees plain text.
type extractRequest struct {
	RawText string `json:"raw_text"`
}

// extractResponse mirrors the original extraction payload shape
type extractResponse struct {
	DrugName   string  `json:"drug_name"`
	Strength   string  `json:"strength,omitempty"`
	Dosage     string  `json:"dosage,omitempty"`
	RawText    string  `json:"raw_text"`
	Confidence float64 `json:"confidence"`
}

// ExtractPrescription parses raw prescription text into structured fields.
// A missing drug name is the only extraction outcome surfaced as an error.
func (h *Handler) ExtractPrescription(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.RawText == "" {
		h.RespondWithError(w, http.StatusBadRequest, "Missing raw_text")
		return
	}

	fields := h.extractor.Extract(req.RawText)
	if fields.DrugName == "" {
		metrics.ExtractionFailures.Inc()
		logging.Warn("No drug name extracted from prescription text", "text_length", len(req.RawText))
		h.RespondWithError(w, http.StatusBadRequest, "Could not extract drug name")
		return
	}

	h.RespondWithData(w, http.StatusOK, extractResponse{
		DrugName:   fields.DrugName,
		Strength:   fields.Strength,
		Dosage:     fields.Dosage,
		RawText:    req.RawText,
		Confidence: 0.85,
	})
}

// parseRequest is a drug mention with optional extracted fields
type parseRequest struct {
	DrugName string `json:"drug_name"`
	Strength string `json:"strength,omitempty"`
	Dosage   string `json:"dosage,omitempty"`
}

// parseResponse is the resolved drug identity with alternatives and safety
// metadata. Matched distinguishes a genuine catalog match from the default
// fallback; both carry a usable record.
type parseResponse struct {
	DrugName         string              `json:"drug_name"`
	GenericName      string              `json:"generic_name"`
	BrandName        string              `json:"brand_name"`
	Strength         string              `json:"strength,omitempty"`
	Dosage           string              `json:"dosage,omitempty"`
	RxNormID         string              `json:"rxnorm_id"`
	AtcCode          string              `json:"atc_code"`
	Matched          bool                `json:"matched"`
	SafeAlternatives []string            `json:"safe_alternatives"`
	FdaInfo          entities.SafetyInfo `json:"fda_info"`
}

// ParseDrug resolves a free-text drug mention to its canonical identity.
// Resolution never fails: unmatched mentions resolve to the default record.
func (h *Handler) ParseDrug(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.ValidateInput(req.DrugName); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, matched := h.store.Resolve(req.DrugName)
	alternatives := h.store.Alternatives(record, 3)
	safetyInfo := h.safety.Lookup(r.Context(), record.GenericName)

	h.RespondWithData(w, http.StatusOK, parseResponse{
		DrugName:         req.DrugName,
		GenericName:      record.GenericName,
		BrandName:        record.BrandName,
		Strength:         req.Strength,
		Dosage:           req.Dosage,
		RxNormID:         record.RxNormID,
		AtcCode:          record.AtcCode,
		Matched:          matched,
		SafeAlternatives: alternatives,
		FdaInfo:          safetyInfo,
	})
}
