// Package validation provides user-input validation for the MedFinder API.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/medfinder/medfinder-api/entities"
	"github.com/medfinder/medfinder-api/interfaces"
)

// Pre-compiled regex patterns for performance optimization
var (
	// Input validation: alphanumeric + spaces + safe punctuation
	inputRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\-\.\+'/]+$`)

	// Dangerous patterns as strings (faster than regex for simple substring matching)
	dangerousPatterns = []string{
		"<script", "</script>", "javascript:", "vbscript:", "onload=", "onerror=",
		"onclick=", "eval(", "expression(", "url(", "@import",
		// SQL injection patterns
		"' or ", "\" or ", "union select", "drop table", "delete from", "insert into",
		"--", "/*", "*/", "exec(", "execute(",
		// Command injection patterns
		"; ", "| ", "& ", "`", "$(", "${",
		// Path traversal patterns
		"../", "..\\", "%2e%2e", "file://",
	}
)

// Compile-time check to ensure Validator implements interfaces.DataValidator
var _ interfaces.DataValidator = (*Validator)(nil)

// Validator implements the interfaces.DataValidator interface
type Validator struct{}

// NewValidator creates a new data validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateInput validates free-text user input such as drug names
func (v *Validator) ValidateInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("input cannot be empty")
	}

	if len(input) > 200 {
		return fmt.Errorf("input too long: %d characters (max 200)", len(input))
	}

	inputLower := strings.ToLower(input)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(inputLower, pattern) {
			return fmt.Errorf("input contains invalid characters")
		}
	}

	if !inputRegex.MatchString(input) {
		return fmt.Errorf("input contains invalid characters")
	}

	return nil
}

// ValidateLocation validates a location filter string
func (v *Validator) ValidateLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return fmt.Errorf("location cannot be empty")
	}

	if len(location) > 100 {
		return fmt.Errorf("location too long: %d characters (max 100)", len(location))
	}

	return v.ValidateInput(location)
}

// ValidatePrice validates a user-reported or query price
func (v *Validator) ValidatePrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("price cannot be negative, got: %.2f", price)
	}

	if price > 1000000 {
		return fmt.Errorf("price too large, got: %.2f", price)
	}

	return nil
}

// ValidateDrugRecord checks that an admin-submitted record is usable
func (v *Validator) ValidateDrugRecord(record *entities.DrugRecord) error {
	if record == nil {
		return fmt.Errorf("drug record is nil")
	}

	if strings.TrimSpace(record.GenericName) == "" {
		return fmt.Errorf("generic name cannot be empty")
	}

	if err := v.ValidateInput(record.GenericName); err != nil {
		return fmt.Errorf("invalid generic name: %w", err)
	}

	if record.BrandName != "" {
		if err := v.ValidateInput(record.BrandName); err != nil {
			return fmt.Errorf("invalid brand name: %w", err)
		}
	}

	if len(record.RxNormID) > 20 {
		return fmt.Errorf("rxnorm id too long: %d characters", len(record.RxNormID))
	}

	if len(record.AtcCode) > 20 {
		return fmt.Errorf("atc code too long: %d characters", len(record.AtcCode))
	}

	return nil
}
