package redact

import "errors"

// ErrUnsupportedType is matched by every *UnsupportedTypeError via errors.Is.
var ErrUnsupportedType = errors.New("unsupported value type for redaction")

// UnsupportedTypeError reports a value that is neither a scalar, a slice or
// array, nor a map with string keys.
type UnsupportedTypeError struct {
	// Type is the Go type of the offending value, as printed by %T.
	Type string
	// NotPlain is set for object-like values such as structs, pointers and
	// maps with non-string keys.
	NotPlain bool
	// Path locates the value inside the target, e.g. "$.users[2].session".
	Path string
}

func (e *UnsupportedTypeError) Error() string {
	msg := ErrUnsupportedType.Error() + ": " + e.Type
	if e.NotPlain {
		msg += " (not plain)"
	}
	return msg
}

// Is reports whether target is ErrUnsupportedType.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}
