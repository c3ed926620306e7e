package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/medfinder/medfinder-api/data"
	"github.com/medfinder/medfinder-api/entities"
	"github.com/medfinder/medfinder-api/logging"
)

// userEmailHeader identifies the caller on admin routes. The authorization
// decision itself belongs to the auth collaborator.
const userEmailHeader = "X-User-Email"

// loginRequest carries user credentials
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a user and returns their role
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		h.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	h.RespondWithData(w, http.StatusOK, user)
}

// requireAdmin checks the caller's role; responds and returns false on
// failure so handlers can bail out early
func (h *Handler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	email := r.Header.Get(userEmailHeader)
	if email == "" {
		h.RespondWithError(w, http.StatusForbidden, "Admin access required")
		return false
	}

	if err := h.auth.VerifyAdmin(email); err != nil {
		logging.Warn("Admin access denied", "email", email)
		h.RespondWithError(w, http.StatusForbidden, "Admin access required")
		return false
	}

	return true
}

// medicineRequest is the admin payload for catalog mutations
type medicineRequest struct {
	DrugName    string `json:"drug_name"`
	GenericName string `json:"generic_name"`
	BrandName   string `json:"brand_name"`
	RxNormID    string `json:"rxnorm_id"`
	AtcCode     string `json:"atc_code"`
}

func (req *medicineRequest) toRecord() entities.DrugRecord {
	return entities.DrugRecord{
		GenericName: req.GenericName,
		BrandName:   req.BrandName,
		RxNormID:    req.RxNormID,
		AtcCode:     req.AtcCode,
	}
}

// AddMedicine adds a catalog entry (admin only)
func (h *Handler) AddMedicine(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req medicineRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record := req.toRecord()
	if err := h.validator.ValidateDrugRecord(&record); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.store.Add(record)
	logging.Info("Medicine added", "generic_name", record.GenericName)

	h.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Medicine added successfully",
	})
}

// EditMedicine replaces the catalog entry under the given key (admin only)
func (h *Handler) EditMedicine(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	key := chi.URLParam(r, "drugName")
	if strings.TrimSpace(key) == "" {
		h.RespondWithError(w, http.StatusBadRequest, "Missing drug name")
		return
	}

	var req medicineRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record := req.toRecord()
	if err := h.validator.ValidateDrugRecord(&record); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Edit(key, record); err != nil {
		if errors.Is(err, data.ErrNotFound) {
			h.RespondWithError(w, http.StatusNotFound, "Medicine not found")
			return
		}
		h.RespondWithError(w, http.StatusInternalServerError, "Failed to update medicine")
		return
	}

	logging.Info("Medicine updated", "key", key)

	h.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Medicine updated successfully",
	})
}

// DeleteMedicine removes the catalog entry under the given key (admin only)
func (h *Handler) DeleteMedicine(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	key := chi.URLParam(r, "drugName")
	if strings.TrimSpace(key) == "" {
		h.RespondWithError(w, http.StatusBadRequest, "Missing drug name")
		return
	}

	if err := h.store.Delete(key); err != nil {
		if errors.Is(err, data.ErrNotFound) {
			h.RespondWithError(w, http.StatusNotFound, "Medicine not found")
			return
		}
		h.RespondWithError(w, http.StatusInternalServerError, "Failed to delete medicine")
		return
	}

	logging.Info("Medicine deleted", "key", key)

	h.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Medicine deleted successfully",
	})
}

// AdminStats serves the admin dashboard aggregates (admin only)
func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	h.RespondWithData(w, http.StatusOK, map[string]interface{}{
		"total_searches":         15847,
		"active_users":           3421,
		"pharmacy_partners":      127,
		"total_savings_inr":      2847500.00,
		"avg_savings_per_search": 179.75,
		"most_searched": []map[string]interface{}{
			{"drug": "Lisinopril", "count": 2341, "avg_savings_inr": 225.00},
			{"drug": "Atorvastatin", "count": 1987, "avg_savings_inr": 180.50},
			{"drug": "Metformin", "count": 1654, "avg_savings_inr": 150.25},
		},
	})
}

// alertCreateRequest registers a price alert
type alertCreateRequest struct {
	DrugName    string  `json:"drug_name"`
	TargetPrice float64 `json:"target_price"`
	UserEmail   string  `json:"user_email"`
}

// CreateAlert registers a price alert for a user
func (h *Handler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	var req alertCreateRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.ValidateInput(req.DrugName); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.validator.ValidatePrice(req.TargetPrice); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.UserEmail == "" {
		h.RespondWithError(w, http.StatusBadRequest, "Missing user_email")
		return
	}

	alert := h.alerts.Create(req.DrugName, req.TargetPrice, req.UserEmail)

	h.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Price alert created",
		"data":    alert,
	})
}

// ListAlerts returns a user's price alerts. Current prices are recomputed on
// read; the stored value only refreshes when the evaluation job runs.
func (h *Handler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	userEmail := r.URL.Query().Get("user_email")
	if userEmail == "" {
		h.RespondWithError(w, http.StatusBadRequest, "Missing user_email")
		return
	}

	userAlerts := h.alerts.List(userEmail)
	for i := range userAlerts {
		record, _ := h.store.Resolve(userAlerts[i].DrugName)
		if quotes := h.pricer.Compare(record, h.defaultLocation, true); len(quotes) > 0 {
			userAlerts[i].CurrentPrice = quotes[0].GenericPrice
		}
	}

	h.RespondWithData(w, http.StatusOK, map[string]interface{}{
		"alerts": userAlerts,
	})
}
