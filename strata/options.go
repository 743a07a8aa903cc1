// Package strata - Resolve arbitration between the two interval
// input forms, with a diagnostic hook for redundant input.
package strata

// Option configures Resolve.
type Option func(*resolveConfig)

type resolveConfig struct {
	diagnostic func(msg string)
}

// WithDiagnostic installs a hook invoked with a human-readable message when
// Resolve detects redundant input (explicit ages plus a uniform
// maxAge/count pair). The hook must not block.
func WithDiagnostic(fn func(msg string)) Option {
	return func(c *resolveConfig) { c.diagnostic = fn }
}

// Resolve builds the Partition a sampler should use, arbitrating between
// the two ways callers specify intervals:
//
//  1. explicit boundary ages (ages non-nil) always win;
//  2. otherwise maxAge plus a positive bin count yields a Uniform partition;
//  3. neither is an error (ErrUnderspecified).
//
// Supplying both is legal but the uniform pair is ignored; the diagnostic
// hook, when installed, is told so.
//
// Complexity: O(n).
func Resolve(ages []float64, maxAge float64, n int, opts ...Option) (*Partition, error) {
	var cfg resolveConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	uniform := maxAge > 0 && n > 0
	switch {
	case len(ages) > 0:
		if uniform && cfg.diagnostic != nil {
			cfg.diagnostic("strata: explicit boundary ages override maxAge and interval count")
		}

		return FromAges(ages)
	case uniform:
		return Uniform(maxAge, n)
	default:
		return nil, ErrUnderspecified
	}
}
