// Package pricing produces deterministic, ranked per-pharmacy price quotes
// and the shared confidence formula for crowdsourced reports. Prices are a
// pure function of the pharmacy's id and city, intentionally not random, so
// repeated queries return identical results.
package pricing

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/medfinder/medfinder-api/entities"
	"github.com/medfinder/medfinder-api/interfaces"
)

// Compile-time check to ensure Engine implements interfaces.PriceComparer
var _ interfaces.PriceComparer = (*Engine)(nil)

const (
	basePrice = 80.0

	// brandMarkup is the brand/generic price ratio used for quotes. The
	// insurance estimator carries its own, different markup assumption;
	// the two are deliberately not reconciled.
	brandMarkup = 3.5

	predictedDropRate    = 0.12
	predictionConfidence = 0.87
)

// cityMultipliers adjusts the base price per city; unlisted cities use 1.0
var cityMultipliers = map[string]float64{
	"Mumbai":    1.2,
	"Bangalore": 0.9,
	"Chennai":   0.85,
	"Pune":      0.95,
}

// Engine computes price comparisons over the pharmacy reference list
type Engine struct {
	store interfaces.DrugStore
	now   func() time.Time
}

// NewEngine creates a pricing engine. The clock is injectable for tests.
func NewEngine(store interfaces.DrugStore) *Engine {
	return &Engine{store: store, now: time.Now}
}

// NewEngineWithClock creates a pricing engine with a fixed clock
func NewEngineWithClock(store interfaces.DrugStore, now func() time.Time) *Engine {
	return &Engine{store: store, now: now}
}

// Compare returns quotes for pharmacies matching the location, sorted
// ascending by generic price. The sort is stable: pharmacies sharing a
// price keep their reference-list order. When no pharmacy matches the
// location the full list is used, so the result is only empty when the
// reference data itself is.
func (e *Engine) Compare(drug entities.DrugRecord, location string, genericOnly bool) []entities.PriceQuote {
	pharmacies := FilterByLocation(e.store.Pharmacies(), location)

	quotes := make([]entities.PriceQuote, 0, len(pharmacies))
	for _, pharmacy := range pharmacies {
		quotes = append(quotes, e.quoteFor(pharmacy, genericOnly))
	}

	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].GenericPrice < quotes[j].GenericPrice
	})

	return quotes
}

// FilterByLocation keeps pharmacies whose city or area contains the location
// as a case-insensitive substring, falling back to the full list on no match.
func FilterByLocation(pharmacies []entities.Pharmacy, location string) []entities.Pharmacy {
	needle := strings.ToLower(location)

	var filtered []entities.Pharmacy
	for _, p := range pharmacies {
		if strings.Contains(strings.ToLower(p.City), needle) || strings.Contains(strings.ToLower(p.Area), needle) {
			filtered = append(filtered, p)
		}
	}

	if len(filtered) == 0 {
		return pharmacies
	}
	return filtered
}

// quoteFor builds the quote for one pharmacy. Every figure derives from the
// pharmacy id and city so responses stay stable across repeated calls.
func (e *Engine) quoteFor(pharmacy entities.Pharmacy, genericOnly bool) entities.PriceQuote {
	multiplier := 1.0
	if m, ok := cityMultipliers[pharmacy.City]; ok {
		multiplier = m
	}

	genericPrice := round2(basePrice*multiplier + float64(pharmacy.ID)*15)

	var brandPrice *float64
	savings := 0.0
	if !genericOnly {
		bp := round2(genericPrice * brandMarkup)
		brandPrice = &bp
		savings = round2(bp - genericPrice)
	}

	predictedDrop := round2(genericPrice * predictedDropRate)
	trend := entities.TrendStable
	bestTime := "Now"
	if pharmacy.ID%3 == 0 {
		trend = entities.TrendDropping
		bestTime = "Tuesday morning"
	}

	stockStatus := entities.StockInStock
	if pharmacy.ID%4 == 0 {
		stockStatus = entities.StockLowStock
	}

	return entities.PriceQuote{
		PharmacyID:   pharmacy.ID,
		PharmacyName: pharmacy.Name,
		City:         pharmacy.City,
		Area:         pharmacy.Area,
		Distance:     0, // placeholder until real geo distance lands
		BrandPrice:   brandPrice,
		GenericPrice: genericPrice,
		SavingsInr:   savings,
		StockStatus:  stockStatus,
		OpenNow:      pharmacy.Open,
		Lat:          pharmacy.Lat,
		Lng:          pharmacy.Lng,
		Rating:       round1(4.0 + float64(pharmacy.ID%10)/10),
		ReviewCount:  50 + pharmacy.ID*23,
		AiPrediction: entities.Prediction{
			PredictedPrice: round2(genericPrice - predictedDrop),
			PriceTrend:     trend,
			BestTimeToBuy:  bestTime,
			Confidence:     predictionConfidence,
		},
		Timestamp: e.now(),
	}
}

// round2 rounds to 2 decimal places
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round1 rounds to 1 decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
