package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit_KnownTotals(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		base  float64
		tax   float64
	}{
		{"consultation plan", 999, 846.61, 152.39},
		{"premium plan", 4999, 4236.44, 762.56},
		{"full service plan", 24999, 21185.59, 3813.41},
		{"zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, tax := Split(tt.total)
			assert.Equal(t, tt.base, base)
			assert.Equal(t, tt.tax, tax)
		})
	}
}

func TestSplit_ReconstructsTotalWithinOnePaisa(t *testing.T) {
	totals := []float64{0, 0.01, 1, 99.99, 999, 1180, 4999, 24999, 100000, 123456.78}

	for _, total := range totals {
		base, tax := Split(total)

		assert.GreaterOrEqual(t, base, 0.0)
		assert.GreaterOrEqual(t, tax, 0.0)
		assert.InDelta(t, total, base+tax, 0.01)

		// Both halves are already rounded to two decimals.
		assert.Equal(t, math.Round(base*100)/100, base)
		assert.Equal(t, math.Round(tax*100)/100, tax)
	}
}

func TestSplit_TaxDerivedFromRoundedBase(t *testing.T) {
	// The base is rounded first and the tax derived by subtraction, so
	// the pair reconstructs the total even when independent rounding of
	// both halves would not.
	base, tax := Split(999)
	assert.Equal(t, 999.00, base+tax)
}
