package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/dshills/redactobj/redact"
)

// Config represents the redactobj configuration.
type Config struct {
	Keywords []string `json:"keywords"`
	// Replacement and the match options use pointers so that an explicit
	// empty string or false in the file is distinguishable from an absent key.
	Replacement   *string `json:"replacement,omitempty"`
	Partial       *bool   `json:"partial,omitempty"`
	Strict        *bool   `json:"strict,omitempty"`
	IgnoreUnknown *bool   `json:"ignoreUnknown,omitempty"`
	// ScanValues also replaces secret-shaped substrings inside string values.
	ScanValues  bool   `json:"scanValues,omitempty"`
	Format      string `json:"format"`
	InputFormat string `json:"inputFormat"`
	LogLevel    string `json:"logLevel"`
}

// Default returns a Config with all defaults applied. Match options are left
// unset so the library defaults apply.
func Default() Config {
	return Config{
		Keywords: []string{
			"password", "secret", "token", "apikey", "api_key",
			"authorization", "cookie", "credential", "private_key",
		},
		Format:      "json",
		InputFormat: "auto",
		LogLevel:    "warn",
	}
}

// RedactConfig converts the match options into a redact.Config.
func (c Config) RedactConfig() *redact.Config {
	return &redact.Config{
		Partial:       c.Partial,
		Strict:        c.Strict,
		IgnoreUnknown: c.IgnoreUnknown,
	}
}

// ReplacementValue returns the configured replacement, or nil for the
// library default.
func (c Config) ReplacementValue() redact.Replacement {
	if c.Replacement == nil {
		return nil
	}
	return redact.Literal(*c.Replacement)
}

// Placeholder returns the text substituted for matched values.
func (c Config) Placeholder() string {
	if c.Replacement == nil {
		return redact.DefaultReplacement
	}
	return *c.Replacement
}

// Redactor builds a redactor from the effective configuration.
func (c Config) Redactor() *redact.Redactor {
	return redact.New(c.Keywords, c.ReplacementValue(), c.RedactConfig())
}

// ConfigDir returns the platform-appropriate config directory for redactobj.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "redactobj"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "redactobj"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "redactobj"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "redactobj"), nil
	default:
		return filepath.Join(home, ".config", "redactobj"), nil
	}
}

// ConfigPath returns the full path to the config file. REDACTOBJ_CONFIG
// overrides the default location.
func ConfigPath() (string, error) {
	if p := os.Getenv("REDACTOBJ_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only explicitly set flags should be present).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Keywords != nil {
		dst.Keywords = src.Keywords
	}
	if src.Replacement != nil {
		dst.Replacement = src.Replacement
	}
	if src.Partial != nil {
		dst.Partial = src.Partial
	}
	if src.Strict != nil {
		dst.Strict = src.Strict
	}
	if src.IgnoreUnknown != nil {
		dst.IgnoreUnknown = src.IgnoreUnknown
	}
	// The default is off, so a file can only turn value scanning on.
	dst.ScanValues = src.ScanValues || dst.ScanValues
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.InputFormat != "" {
		dst.InputFormat = src.InputFormat
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
}

func mergeEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("REDACTOBJ_KEYWORDS"); ok {
		cfg.Keywords = SplitList(v)
	}
	if v, ok := os.LookupEnv("REDACTOBJ_REPLACEMENT"); ok {
		cfg.Replacement = &v
	}
	for env, dst := range map[string]**bool{
		"REDACTOBJ_PARTIAL":        &cfg.Partial,
		"REDACTOBJ_STRICT":         &cfg.Strict,
		"REDACTOBJ_IGNORE_UNKNOWN": &cfg.IgnoreUnknown,
	} {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", env, v, err)
		}
		*dst = redact.Bool(b)
	}
	if v := os.Getenv("REDACTOBJ_SCAN_VALUES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid REDACTOBJ_SCAN_VALUES value %q: %w", v, err)
		}
		cfg.ScanValues = b
	}
	if v := os.Getenv("REDACTOBJ_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("REDACTOBJ_INPUT_FORMAT"); v != "" {
		cfg.InputFormat = v
	}
	if v := os.Getenv("REDACTOBJ_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	if overrides == nil {
		return nil
	}
	for _, key := range []string{"keywords", "replacement", "partial", "strict", "ignoreUnknown", "scanValues", "format", "inputFormat", "logLevel"} {
		v, ok := overrides[key]
		if !ok {
			continue
		}
		if err := SetField(cfg, key, v); err != nil {
			return err
		}
	}
	if v, ok := overrides["addKeywords"]; ok && v != "" {
		cfg.Keywords = append(append([]string(nil), cfg.Keywords...), SplitList(v)...)
	}
	return nil
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "keywords":
		cfg.Keywords = SplitList(value)
	case "replacement":
		cfg.Replacement = &value
	case "partial", "strict", "ignoreUnknown":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be a boolean: %w", key, err)
		}
		switch key {
		case "partial":
			cfg.Partial = redact.Bool(b)
		case "strict":
			cfg.Strict = redact.Bool(b)
		default:
			cfg.IgnoreUnknown = redact.Bool(b)
		}
	case "scanValues":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("scanValues must be a boolean: %w", err)
		}
		cfg.ScanValues = b
	case "format":
		cfg.Format = value
	case "inputFormat":
		cfg.InputFormat = value
	case "logLevel":
		cfg.LogLevel = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// SplitList splits a comma-separated list, trimming whitespace and skipping
// empty entries. It never returns nil.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
