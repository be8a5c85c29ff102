package redactzap

import (
	"fmt"
	"testing"
	"time"

	"github.com/dshills/redactobj/redact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type handle struct{}

func newObserved(t *testing.T, r *redact.Redactor) (*zap.Logger, *observer.ObservedLogs) {
	t.Helper()
	obs, logs := observer.New(zapcore.DebugLevel)
	return zap.New(NewCore(obs, r)), logs
}

func TestCore_ScrubsMatchingKeys(t *testing.T) {
	t.Parallel()

	logger, logs := newObserved(t, redact.New([]string{"password", "token"}, nil, nil))
	logger.Info("login",
		zap.String("user", "bob"),
		zap.String("password", "hunter2"),
		zap.Int("token_ttl", 300),
	)

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "bob", ctx["user"])
	assert.Equal(t, redact.DefaultReplacement, ctx["password"])
	assert.Equal(t, redact.DefaultReplacement, ctx["token_ttl"])
}

func TestCore_RedactsStructuredValues(t *testing.T) {
	t.Parallel()

	logger, logs := newObserved(t, redact.New([]string{"secret"}, nil, nil))
	payload := map[string]any{
		"name":   "svc",
		"config": map[string]any{"client_secret": "s3cr3t", "region": "eu"},
	}
	logger.Debug("loaded", zap.Any("payload", payload))

	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, map[string]any{
		"name":   "svc",
		"config": map[string]any{"client_secret": redact.DefaultReplacement, "region": "eu"},
	}, ctx["payload"])
	assert.Equal(t, "s3cr3t", payload["config"].(map[string]any)["client_secret"], "input is not modified")
}

func TestCore_With(t *testing.T) {
	t.Parallel()

	logger, logs := newObserved(t, redact.New([]string{"apikey"}, redact.Literal("***"), nil))
	logger.With(zap.String("apikey", "k-123")).Warn("retrying", zap.Duration("backoff", time.Second))

	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "***", ctx["apikey"])
	assert.Equal(t, time.Second, ctx["backoff"])
}

func TestCore_RespectsLevel(t *testing.T) {
	t.Parallel()

	obs, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(NewCore(obs, redact.New(nil, nil, nil)))
	logger.Info("dropped")
	logger.Warn("kept")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "kept", logs.All()[0].Message)
}

func TestWrapCore(t *testing.T) {
	t.Parallel()

	obs, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(obs).WithOptions(WrapCore(redact.New([]string{"cookie"}, nil, nil)))
	logger.Info("request", zap.String("cookie", "sid=1"))

	assert.Equal(t, redact.DefaultReplacement, logs.All()[0].ContextMap()["cookie"])
}

func TestField_FuncReceivesOriginalValue(t *testing.T) {
	t.Parallel()

	var got []any
	r := redact.New([]string{"secret"}, redact.Func(func(v any, k string) string {
		got = append(got, v)
		return fmt.Sprintf("<%s>", k)
	}), nil)

	fields := []zapcore.Field{
		zap.String("secret_s", "abc"),
		zap.Int64("secret_i", -4),
		zap.Bool("secret_b", true),
		zap.Float64("secret_f", 1.5),
	}
	for _, f := range fields {
		out := Field(r, f)
		assert.Equal(t, zapcore.StringType, out.Type)
		assert.Equal(t, "<"+f.Key+">", out.String)
	}
	assert.Equal(t, []any{"abc", int64(-4), true, 1.5}, got)
}

func TestField_FuncReceivesTime(t *testing.T) {
	t.Parallel()

	var got any
	r := redact.New([]string{"secret"}, redact.Func(func(v any, _ string) string {
		got = v
		return "x"
	}), nil)

	loc := time.FixedZone("UTC+2", 2*60*60)
	when := time.Date(2024, 5, 6, 7, 8, 9, 10, loc)
	Field(r, zap.Time("secret_at", when))

	require.IsType(t, time.Time{}, got)
	assert.True(t, when.Equal(got.(time.Time)))
	assert.Equal(t, loc, got.(time.Time).Location())
}

func TestCore_MarshalerFieldsCheckTopLevelKey(t *testing.T) {
	t.Parallel()

	logger, logs := newObserved(t, redact.New([]string{"secret"}, nil, nil))
	logger.Info("cfg",
		zap.Dict("client_secret", zap.String("id", "abc")),
		zap.Dict("client", zap.String("region", "eu")),
	)

	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, redact.DefaultReplacement, ctx["client_secret"])
	assert.Equal(t, map[string]any{"region": "eu"}, ctx["client"])
}

func TestField_UnmatchedPassThrough(t *testing.T) {
	t.Parallel()

	r := redact.New([]string{"secret"}, nil, nil)
	f := zap.Int("count", 3)
	assert.Equal(t, f, Field(r, f))

	ns := zap.Namespace("secret")
	assert.Equal(t, ns, Field(r, ns), "namespaces are never replaced")
}

func TestAny_Unsupported(t *testing.T) {
	t.Parallel()

	strictR := redact.New([]string{"x"}, nil, nil)
	f := Any(strictR, "h", handle{})
	assert.Equal(t, zapcore.StringType, f.Type)
	assert.Equal(t, "unsupported value type for redaction: redactzap.handle (not plain)", f.String)

	lenient := redact.New([]string{"x"}, nil, &redact.Config{IgnoreUnknown: redact.Bool(true)})
	f = Any(lenient, "h", handle{})
	assert.Equal(t, zapcore.ReflectType, f.Type)
	assert.Equal(t, handle{}, f.Interface)
}
