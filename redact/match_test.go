package redact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		keywords []string
		key      string
		strict   bool
		partial  bool
		want     bool
	}{
		{"strict exact, case differs", []string{"TOKEN"}, "auth-token", true, false, false},
		{"strict partial, case differs", []string{"TOKEN"}, "auth-token", true, true, false},
		{"loose exact, not equal", []string{"TOKEN"}, "auth-token", false, false, false},
		{"loose partial", []string{"TOKEN"}, "auth-token", false, true, true},
		{"strict partial, same case", []string{"token"}, "auth-token", true, true, true},
		{"strict exact", []string{"token"}, "token", true, false, true},
		{"loose exact", []string{"Token"}, "TOKEN", false, false, true},
		{"any keyword wins", []string{"nope", "auth"}, "auth-token", true, true, true},
		{"empty keyword list", nil, "auth-token", false, true, false},
		{"empty keyword matches partially", []string{""}, "anything", true, true, true},
		{"empty keyword exact only matches empty key", []string{""}, "anything", true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, KeywordMatch(tt.keywords, tt.key, tt.strict, tt.partial))
		})
	}
}

func TestConfigResolve(t *testing.T) {
	t.Parallel()

	var nilCfg *Config
	assert.Equal(t, options{partial: true, strict: true}, nilCfg.resolve())
	assert.Equal(t, options{partial: true, strict: true}, (&Config{}).resolve())
	assert.Equal(t,
		options{partial: false, strict: false, ignoreUnknown: true},
		(&Config{Partial: Bool(false), Strict: Bool(false), IgnoreUnknown: Bool(true)}).resolve(),
	)
}
