// Package subsample - functional options and the seeding policy.
package subsample

import "math/rand/v2"

// Option configures a subsampling call.
type Option func(*config)

type config struct {
	seed       int64
	src        rand.Source
	diagnostic func(msg string)
}

func resolveConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed fixes the random stream deterministically. Seed 0 selects the
// package's fixed default seed, so the zero value still reproduces.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithRand supplies an explicit random source, overriding WithSeed. Panics
// on nil; prefer WithSeed for reproducible runs.
func WithRand(src rand.Source) Option {
	if src == nil {
		panic("subsample: WithRand(nil)")
	}

	return func(c *config) { c.src = src }
}

// WithDiagnostic installs a hook for non-fatal notices (rows the per-clade
// policies dropped during placement). The hook must not block. Panics on
// nil.
func WithDiagnostic(fn func(msg string)) Option {
	if fn == nil {
		panic("subsample: WithDiagnostic(nil)")
	}

	return func(c *config) { c.diagnostic = fn }
}

// defaultSeed is the fixed "zero" seed used when callers pass seed == 0.
const defaultSeed int64 = 1

// splitMix64 is the SplitMix64 finalizer (Vigna 2014), expanding one seed
// word into the second PCG stream word with strong bit diffusion.
func splitMix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}

// sourceFor returns the random source a call should draw from: the explicit
// source when configured, otherwise a PCG seeded under the seed-0 policy.
func sourceFor(cfg *config) rand.Source {
	if cfg.src != nil {
		return cfg.src
	}
	seed := cfg.seed
	if seed == 0 {
		seed = defaultSeed
	}
	u := uint64(seed)

	return rand.NewPCG(u, splitMix64(u))
}
