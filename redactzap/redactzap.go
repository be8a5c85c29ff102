// Package redactzap scrubs zap log fields with a redact.Redactor.
//
// Wrap a logger's core with [NewCore] (or pass [WrapCore] to zap.New or
// Logger.WithOptions) and every field written through it is checked: fields
// whose key matches are replaced, and structured values logged with zap.Any
// or zap.Reflect are redacted recursively.
package redactzap

import (
	"math"
	"time"

	"github.com/dshills/redactobj/redact"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Any returns a field holding the redacted copy of v. If v cannot be
// redacted the field holds the error text instead of the original value.
func Any(r *redact.Redactor, key string, v any) zap.Field {
	out, err := r.Redact(v)
	if err != nil {
		return zap.String(key, err.Error())
	}
	return zap.Any(key, out)
}

// Field scrubs a single field.
func Field(r *redact.Redactor, f zapcore.Field) zapcore.Field {
	switch f.Type {
	case zapcore.NamespaceType, zapcore.SkipType:
		return f
	}
	if r.Match(f.Key) {
		return zap.String(f.Key, r.Replace(fieldValue(f), f.Key))
	}
	if f.Type == zapcore.ReflectType {
		return Any(r, f.Key, f.Interface)
	}
	return f
}

// WrapCore returns an option that installs [NewCore] on a logger.
func WrapCore(r *redact.Redactor) zap.Option {
	return zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return NewCore(c, r)
	})
}

// NewCore wraps c so that all fields, including those added with With, are
// passed through [Field] before reaching c.
//
// Only the top-level key of zap.Object, zap.Dict, zap.Array and other
// marshaler fields is checked. Keys nested inside them are encoded as is;
// log such values with zap.Any or [Any] to have them redacted recursively.
func NewCore(c zapcore.Core, r *redact.Redactor) zapcore.Core {
	return &core{Core: c, r: r}
}

type core struct {
	zapcore.Core
	r *redact.Redactor
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	return &core{Core: c.Core.With(c.scrub(fields)), r: c.r}
}

func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	return c.Core.Write(ent, c.scrub(fields))
}

func (c *core) scrub(fields []zapcore.Field) []zapcore.Field {
	if len(fields) == 0 {
		return fields
	}
	out := make([]zapcore.Field, len(fields))
	for i, f := range fields {
		out[i] = Field(c.r, f)
	}
	return out
}

// fieldValue recovers the Go value a field was built from, for use by
// redact.Func replacements.
func fieldValue(f zapcore.Field) any {
	switch f.Type {
	case zapcore.StringType:
		return f.String
	case zapcore.BoolType:
		return f.Integer == 1
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type:
		return f.Integer
	case zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type, zapcore.UintptrType:
		return uint64(f.Integer)
	case zapcore.Float64Type:
		return math.Float64frombits(uint64(f.Integer))
	case zapcore.Float32Type:
		return math.Float32frombits(uint32(f.Integer))
	case zapcore.DurationType:
		return time.Duration(f.Integer)
	case zapcore.TimeType:
		if loc, ok := f.Interface.(*time.Location); ok {
			return time.Unix(0, f.Integer).In(loc)
		}
		return time.Unix(0, f.Integer)
	}
	if f.Interface != nil {
		return f.Interface
	}
	return f.String
}
