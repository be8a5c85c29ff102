package redact

// DefaultReplacement is substituted at matching keys when no Replacement is given.
const DefaultReplacement = "[ REDACTED ]"

// Replacement produces the value stored at a matching key.
//
// It is implemented by [Literal] and [Func].
type Replacement interface {
	replace(value any, key string) string
}

// Literal replaces every matched value with the same string.
type Literal string

func (l Literal) replace(any, string) string {
	return string(l)
}

// Func computes the replacement from the original value and the matched key.
type Func func(value any, key string) string

func (f Func) replace(value any, key string) string {
	return f(value, key)
}

func resolveReplacement(r Replacement, value any, key string) string {
	switch r := r.(type) {
	case nil:
		return DefaultReplacement
	case Func:
		if r == nil {
			return DefaultReplacement
		}
		return r(value, key)
	default:
		return r.replace(value, key)
	}
}
