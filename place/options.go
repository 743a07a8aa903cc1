// Package place - functional options.
package place

// Option configures a placement call.
type Option func(*config)

type config struct {
	diagnostic func(msg string)
}

func resolveConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// diag reports a non-fatal condition through the installed hook, if any.
func (c *config) diag(msg string) {
	if c.diagnostic != nil {
		c.diagnostic(msg)
	}
}

// WithDiagnostic installs a hook for non-fatal notices (dropped pre-crown
// occurrences). The hook must not block. Panics on nil.
func WithDiagnostic(fn func(msg string)) Option {
	if fn == nil {
		panic("place: WithDiagnostic(nil)")
	}

	return func(c *config) { c.diagnostic = fn }
}
