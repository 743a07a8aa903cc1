// Package sampling - parameter validation shared by the models.
//
// All validation happens after vector resolution and before the first draw,
// so a failed call never consumes random state.
package sampling

import (
	"fmt"
	"math"
)

// validateRates rejects negative, NaN or infinite rates. name tells the
// caller's parameter apart in the message.
func validateRates(rates []float64, name string) error {
	for i, r := range rates {
		if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
			return fmt.Errorf("sampling: %s[%d] = %g: %w", name, i, r, ErrNegativeRate)
		}
	}

	return nil
}

// validateProbabilities rejects values outside [0, 1].
func validateProbabilities(probs []float64, name string) error {
	for i, p := range probs {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("sampling: %s[%d] = %g: %w", name, i, p, ErrProbabilityRange)
		}
	}

	return nil
}

// validateFinite rejects NaN and infinities in proxy-space values.
func validateFinite(vals []float64, name string) error {
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("sampling: %s[%d] = %g: %w", name, i, v, ErrNonFinite)
		}
	}

	return nil
}

// validateTolerances rejects non-positive or non-finite Gaussian widths.
func validateTolerances(tols []float64, name string) error {
	for i, t := range tols {
		if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
			return fmt.Errorf("sampling: %s[%d] = %g: %w", name, i, t, ErrNicheTolerance)
		}
	}

	return nil
}
