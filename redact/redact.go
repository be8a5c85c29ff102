package redact

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

// Redact returns a copy of target in which the value of every object key
// matching one of keywords is replaced.
//
// A nil replace substitutes [DefaultReplacement]; a nil cfg applies the
// defaults documented on [Config]. The only possible error is an
// *[UnsupportedTypeError], returned when an unsupported value is found and
// IgnoreUnknown is not set.
func Redact(target any, keywords []string, replace Replacement, cfg *Config) (any, error) {
	return New(keywords, replace, cfg).Redact(target)
}

// Redactor holds a keyword list, replacement and resolved configuration so
// they can be reused across calls. A Redactor is immutable and safe for
// concurrent use.
type Redactor struct {
	keywords []string
	replace  Replacement
	opts     options
}

// New builds a Redactor. The keyword slice is copied.
func New(keywords []string, replace Replacement, cfg *Config) *Redactor {
	return &Redactor{
		keywords: append([]string(nil), keywords...),
		replace:  replace,
		opts:     cfg.resolve(),
	}
}

// Keywords returns a copy of the keyword list.
func (r *Redactor) Keywords() []string {
	return append([]string(nil), r.keywords...)
}

// Match reports whether key would be redacted.
func (r *Redactor) Match(key string) bool {
	return KeywordMatch(r.keywords, key, r.opts.strict, r.opts.partial)
}

// Replace returns the value stored in place of value at a matching key.
func (r *Redactor) Replace(value any, key string) string {
	return resolveReplacement(r.replace, value, key)
}

// Redact returns a redacted copy of target. See the package-level [Redact].
func (r *Redactor) Redact(target any) (any, error) {
	return r.walk(target, nil)
}

// RedactJSON decodes a single JSON value, redacts it and encodes the result.
// Numbers are carried through as json.Number so they keep their original text.
func (r *Redactor) RedactJSON(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding JSON: unexpected data after top-level value")
	}
	out, err := r.Redact(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

func (r *Redactor) walk(v any, path []segment) (any, error) {
	switch classify(v) {
	case kindPrimitive:
		return v, nil
	case kindArray:
		return r.walkArray(v, path)
	case kindPlainObject:
		return r.walkObject(v, path)
	}
	if r.opts.ignoreUnknown {
		return v, nil
	}
	return nil, &UnsupportedTypeError{
		Type:     fmt.Sprintf("%T", v),
		NotPlain: objectLike(v),
		Path:     formatPath(path),
	}
}

func (r *Redactor) walkArray(v any, path []segment) (any, error) {
	var (
		n  int
		at func(int) any
	)
	if s, ok := v.([]any); ok {
		if s == nil {
			return []any(nil), nil
		}
		n, at = len(s), func(i int) any { return s[i] }
	} else {
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []any(nil), nil
		}
		n, at = rv.Len(), func(i int) any { return rv.Index(i).Interface() }
	}

	out := make([]any, n)
	for i := range out {
		elem, err := r.walk(at(i), append(path, segment{index: i, isIndex: true}))
		if err != nil {
			return nil, err
		}
		out[i] = elem
	}
	return out, nil
}

func (r *Redactor) walkObject(v any, path []segment) (any, error) {
	if m, ok := v.(map[string]any); ok {
		if m == nil {
			return map[string]any(nil), nil
		}
		out := make(map[string]any, len(m))
		for key, val := range m {
			red, err := r.entry(key, val, path)
			if err != nil {
				return nil, err
			}
			out[key] = red
		}
		return out, nil
	}

	rv := reflect.ValueOf(v)
	if rv.IsNil() {
		return map[string]any(nil), nil
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		red, err := r.entry(key, iter.Value().Interface(), path)
		if err != nil {
			return nil, err
		}
		out[key] = red
	}
	return out, nil
}

// entry resolves a single object member. Matched values are replaced and
// never descended into.
func (r *Redactor) entry(key string, val any, path []segment) (any, error) {
	if r.Match(key) {
		return r.Replace(val, key), nil
	}
	return r.walk(val, append(path, segment{key: key}))
}

type segment struct {
	key     string
	index   int
	isIndex bool
}

func formatPath(path []segment) string {
	var b strings.Builder
	b.WriteString("$")
	for _, s := range path {
		switch {
		case s.isIndex:
			b.WriteString("[" + strconv.Itoa(s.index) + "]")
		case isPlainKey(s.key):
			b.WriteString("." + s.key)
		default:
			b.WriteString("[" + strconv.Quote(s.key) + "]")
		}
	}
	return b.String()
}

func isPlainKey(key string) bool {
	if key == "" {
		return false
	}
	for _, c := range key {
		if c != '_' && c != '-' && (c < '0' || c > '9') && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
