package pricing

import "math"

// confidenceCap bounds confidence from above; the floor of 0.5 only holds
// for non-negative trust scores, which is the intended input domain.
const confidenceCap = 0.95

// Confidence converts a caller-supplied trust score into a bounded
// confidence value. Used identically for stock and price reports.
func Confidence(trustScore float64) float64 {
	c := math.Min(confidenceCap, 0.5+trustScore*0.45)
	return math.Round(c*100) / 100
}
