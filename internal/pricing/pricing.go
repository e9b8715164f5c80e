// Package pricing derives the GST split from a tax-inclusive total.
// Displayed prices already contain 18% GST, so the base is recovered by
// backward division and the tax by subtraction.
package pricing

import "math"

const gstRate = 1.18

// Split returns the base and GST amounts contained in a tax-inclusive
// total. The base is rounded to two decimals first and the tax derived
// from it, so base+tax can differ from the total by up to 0.01. That
// drift is an accepted display approximation and is deliberately not
// corrected; callers must not assume exact equality.
func Split(total float64) (base, tax float64) {
	base = round2(total / gstRate)
	tax = round2(total - base)
	return base, tax
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
