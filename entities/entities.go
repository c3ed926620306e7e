// Package entities defines the domain types shared across the MedFinder API:
// drug records, pharmacies, price quotes, insurance estimates and the
// payloads exchanged with the safety-info service.
package entities

import "time"

// DrugRecord is a canonical catalog entry. GenericName doubles as the
// catalog key (lowercased); brand names are not guaranteed unique.
type DrugRecord struct {
	GenericName string `json:"generic_name"`
	BrandName   string `json:"brand_name"`
	RxNormID    string `json:"rxnorm_id"`
	AtcCode     string `json:"atc_code"`
}

// Pharmacy is static reference data, read-only at runtime.
type Pharmacy struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	City string  `json:"city"`
	Area string  `json:"area"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Open bool    `json:"open"`
}

// PrescriptionFields holds the values extracted from raw prescription text.
// Empty strings mean the field was absent from the text.
type PrescriptionFields struct {
	DrugName string `json:"drug_name"`
	Strength string `json:"strength,omitempty"`
	Dosage   string `json:"dosage,omitempty"`
}

// Stock status values derived per pharmacy.
const (
	StockInStock  = "in_stock"
	StockLowStock = "low_stock"
)

// Price trend values produced by the prediction heuristic.
const (
	TrendDropping = "dropping"
	TrendStable   = "stable"
)

// Prediction is the closed-form price-trend forecast attached to a quote.
type Prediction struct {
	PredictedPrice float64 `json:"predicted_price"`
	PriceTrend     string  `json:"price_trend"`
	BestTimeToBuy  string  `json:"best_time_to_buy"`
	Confidence     float64 `json:"confidence"`
}

// PriceQuote is a derived, per-pharmacy quote. It is recomputed on every
// query and never persisted. BrandPrice is nil for generic-only queries.
type PriceQuote struct {
	PharmacyID   int        `json:"pharmacy_id"`
	PharmacyName string     `json:"pharmacy_name"`
	City         string     `json:"city"`
	Area         string     `json:"area"`
	Distance     float64    `json:"distance"`
	BrandPrice   *float64   `json:"brand_price"`
	GenericPrice float64    `json:"generic_price"`
	SavingsInr   float64    `json:"savings_inr"`
	StockStatus  string     `json:"stock_status"`
	OpenNow      bool       `json:"open_now"`
	Lat          float64    `json:"lat"`
	Lng          float64    `json:"lng"`
	Rating       float64    `json:"rating"`
	ReviewCount  int        `json:"review_count"`
	AiPrediction Prediction `json:"ai_prediction"`
	Timestamp    time.Time  `json:"timestamp"`
}

// InsuranceEstimate is the tier-based cost breakdown for a generic price.
type InsuranceEstimate struct {
	Insurer        string  `json:"insurer"`
	Tier           int     `json:"tier"`
	Copay          float64 `json:"copay"`
	OutOfPocket    float64 `json:"out_of_pocket"`
	FinalCost      float64 `json:"final_cost"`
	SavingsVsBrand float64 `json:"savings_vs_brand"`
}

// SafetyInfo is the fixed-shape payload from the drug-label service.
// Each list carries at most one element except ActiveIngredients.
type SafetyInfo struct {
	Warnings          []string `json:"warnings"`
	ActiveIngredients []string `json:"active_ingredient"`
	Manufacturers     []string `json:"manufacturer"`
	Purpose           []string `json:"purpose"`
}

// Alert status values.
const (
	AlertActive    = "active"
	AlertTriggered = "triggered"
)

// PriceAlert is a user's standing request to be notified when the minimum
// generic price for a drug drops to the target.
type PriceAlert struct {
	ID           string    `json:"id"`
	DrugName     string    `json:"drug_name"`
	TargetPrice  float64   `json:"target_price"`
	CurrentPrice float64   `json:"current_price"`
	UserEmail    string    `json:"user_email"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// User is an authenticated principal with a role.
type User struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

// Roles recognized by the admin guard.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
