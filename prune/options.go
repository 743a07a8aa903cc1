// Package prune - functional options.
package prune

// Option configures a pruning call.
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

// WithDiagnostic installs a hook for non-fatal notices (no-op prunes). The
// hook must not block. Panics on nil.
func WithDiagnostic(fn func(msg string)) Option {
	if fn == nil {
		panic("prune: WithDiagnostic(nil)")
	}

	return func(c *config) { c.diagnostic = fn }
}
