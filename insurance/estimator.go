// Package insurance computes tier-based cost estimates from a fixed copay
// table and insurer-class multipliers. Estimation is a total function: any
// insurer and any tier produce a usable estimate.
package insurance

import (
	"math"
	"strings"

	"github.com/medfinder/medfinder-api/entities"
)

// unknownTierBase is used when the tier is not in the copay table. It sits
// below every defined tier; kept as-is until product confirms the intent.
const unknownTierBase = 15.0

// copayTiers maps insurance tiers to base copays in INR
var copayTiers = map[int]float64{
	1: 50.0,
	2: 150.0,
	3: 400.0,
	4: 800.0,
}

// Insurer classes matched by exact (case-insensitive) name, not substring
var (
	privateInsurers = map[string]struct{}{
		"star health":   {},
		"hdfc ergo":     {},
		"icici lombard": {},
	}

	governmentInsurers = map[string]struct{}{
		"cghs":            {},
		"esi":             {},
		"ayushman bharat": {},
	}
)

// Estimate computes the insurance cost breakdown for a generic price.
// final_cost never exceeds the generic price; out_of_pocket is measured
// against the uncapped copay.
func Estimate(genericPrice float64, insurer string, tier int) entities.InsuranceEstimate {
	multiplier := 1.0
	insurerLower := strings.ToLower(insurer)
	if _, ok := privateInsurers[insurerLower]; ok {
		multiplier = 0.8
	} else if _, ok := governmentInsurers[insurerLower]; ok {
		multiplier = 0.5
	}

	base, ok := copayTiers[tier]
	if !ok {
		base = unknownTierBase
	}

	copay := round2(base * multiplier)

	return entities.InsuranceEstimate{
		Insurer:        insurer,
		Tier:           tier,
		Copay:          copay,
		OutOfPocket:    math.Max(0, genericPrice-copay),
		FinalCost:      math.Min(copay, genericPrice),
		SavingsVsBrand: round2(genericPrice * 2.5),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
