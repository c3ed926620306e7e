// Package extractor parses raw prescription text into candidate drug name,
// strength, and dosage strings using ordered pattern rules. The drug name
// search consults the live catalog: generic names first, then brand names,
// both by substring in catalog insertion order, with a 5+ letter word as the
// final fallback.
package extractor

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/medfinder/medfinder-api/entities"
	"github.com/medfinder/medfinder-api/interfaces"
)

// Compile-time check to ensure Extractor implements interfaces.FieldExtractor
var _ interfaces.FieldExtractor = (*Extractor)(nil)

// ErrNoDrugName signals that no drug name could be extracted from the text.
// This is the only extraction outcome surfaced to users as an error.
var ErrNoDrugName = errors.New("could not extract drug name")

// Pre-compiled patterns, built once at package initialization
var (
	strengthRegex = regexp.MustCompile(`(?i)(\d+)\s*(mg|mcg|g|ml)`)

	// Dosage patterns are tried in this fixed order; the first pattern that
	// matches anywhere in the text wins, even if a later pattern would match
	// earlier in the text. Pattern priority beats position.
	dosageRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\s*times?\s*(daily|per day)`),
		regexp.MustCompile(`(?i)once\s*daily`),
		regexp.MustCompile(`(?i)twice\s*daily`),
	}

	// Fallback drug-name candidate: first run of 5+ alphabetic characters
	fallbackWordRegex = regexp.MustCompile(`\b[A-Za-z]{5,}\b`)
)

// Extractor extracts prescription fields using the catalog for name matching
type Extractor struct {
	store interfaces.DrugStore
}

// New creates an extractor backed by the given catalog store
func New(store interfaces.DrugStore) *Extractor {
	return &Extractor{store: store}
}

// Extract parses raw prescription text into its component fields. Absent
// fields are returned as empty strings; the caller decides whether a
// missing drug name is an error.
func (e *Extractor) Extract(rawText string) entities.PrescriptionFields {
	return entities.PrescriptionFields{
		DrugName: e.extractDrugName(rawText),
		Strength: extractStrength(rawText),
		Dosage:   extractDosage(rawText),
	}
}

// extractDrugName searches the text for a catalog generic name, then a brand
// name, then falls back to the first 5+ letter word. Catalog entries are
// scanned in insertion order and the first substring match wins.
func (e *Extractor) extractDrugName(text string) string {
	textLower := strings.ToLower(text)
	drugs := e.store.Drugs()

	for _, drug := range drugs {
		if strings.Contains(textLower, strings.ToLower(drug.GenericName)) {
			return cases.Title(language.English).String(strings.ToLower(drug.GenericName))
		}
	}

	for _, drug := range drugs {
		if drug.BrandName == "" {
			continue
		}
		if strings.Contains(textLower, strings.ToLower(drug.BrandName)) {
			return drug.BrandName
		}
	}

	return fallbackWordRegex.FindString(text)
}

// extractStrength returns the first strength match verbatim, not normalized
func extractStrength(text string) string {
	return strengthRegex.FindString(text)
}

// extractDosage tries the dosage patterns in priority order
func extractDosage(text string) string {
	for _, re := range dosageRegexes {
		if match := re.FindString(text); match != "" {
			return match
		}
	}
	return ""
}
