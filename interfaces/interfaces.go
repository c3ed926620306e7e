// Package interfaces defines core abstractions for the MedFinder API
// to improve testability, maintainability, and separation of concerns.
package interfaces

import (
	"context"
	"time"

	"github.com/medfinder/medfinder-api/entities"
)

// DrugStore defines the contract for catalog storage operations.
// Reads observe immutable snapshots; mutations are serialized so an
// in-flight resolve never sees a partially-applied edit.
type DrugStore interface {
	// Resolution and read access
	Resolve(mention string) (record entities.DrugRecord, matched bool)
	Alternatives(record entities.DrugRecord, limit int) []string
	Drugs() []entities.DrugRecord
	Pharmacies() []entities.Pharmacy

	// Admin mutations, keyed by lowercased generic name
	Add(record entities.DrugRecord)
	Edit(key string, record entities.DrugRecord) error
	Delete(key string) error

	LastModified() time.Time
}

// SafetyClient defines the contract for the external drug-label lookup.
// Lookup never fails: on any transport or payload problem it returns the
// default safety payload for the given generic name.
type SafetyClient interface {
	Lookup(ctx context.Context, genericName string) entities.SafetyInfo

	// CacheStats reports hits and current size of the memoization cache.
	CacheStats() (hits uint64, size int)
}

// FieldExtractor defines the contract for parsing raw prescription text.
type FieldExtractor interface {
	Extract(rawText string) entities.PrescriptionFields
}

// PriceComparer defines the contract for producing ranked price quotes.
type PriceComparer interface {
	Compare(drug entities.DrugRecord, location string, genericOnly bool) []entities.PriceQuote
}

// AlertStore defines the contract for price-alert bookkeeping.
type AlertStore interface {
	Create(drugName string, targetPrice float64, userEmail string) entities.PriceAlert
	List(userEmail string) []entities.PriceAlert
	Evaluate(priceFor func(drugName string) (float64, bool)) int
}

// Authenticator defines the contract for the auth collaborator. The core
// only exposes the guard point; credentials live outside the core's scope.
type Authenticator interface {
	Login(email, password string) (entities.User, error)
	VerifyAdmin(email string) error
}

// DataValidator defines the contract for user-input validation.
type DataValidator interface {
	ValidateInput(input string) error
	ValidateLocation(location string) error
	ValidatePrice(price float64) error
	ValidateDrugRecord(record *entities.DrugRecord) error
}
