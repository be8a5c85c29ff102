package redact

// Config controls matching strictness and unknown-type handling.
//
// A nil field takes its default. Set a field with [Bool] to override it;
// an explicit false is honored.
type Config struct {
	// Partial matches keywords as substrings of the key. Default true.
	Partial *bool `json:"partial,omitempty" yaml:"partial,omitempty"`
	// Strict compares keys and keywords case-sensitively. Default true.
	Strict *bool `json:"strict,omitempty" yaml:"strict,omitempty"`
	// IgnoreUnknown passes unsupported values through instead of failing. Default false.
	IgnoreUnknown *bool `json:"ignoreUnknown,omitempty" yaml:"ignoreUnknown,omitempty"`
}

// Bool returns a pointer to b, for use in [Config] literals.
func Bool(b bool) *bool {
	return &b
}

// options is a Config with every default applied.
type options struct {
	partial       bool
	strict        bool
	ignoreUnknown bool
}

func (c *Config) resolve() options {
	opts := options{
		partial:       true,
		strict:        true,
		ignoreUnknown: false,
	}
	if c == nil {
		return opts
	}
	if c.Partial != nil {
		opts.partial = *c.Partial
	}
	if c.Strict != nil {
		opts.strict = *c.Strict
	}
	if c.IgnoreUnknown != nil {
		opts.ignoreUnknown = *c.IgnoreUnknown
	}
	return opts
}
