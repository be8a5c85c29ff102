// Package config loads and merges redactobj configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (REDACTOBJ_KEYWORDS, REDACTOBJ_STRICT, REDACTOBJ_FORMAT, etc.)
//  3. Config file ($XDG_CONFIG_HOME/redactobj/config.json, or $REDACTOBJ_CONFIG)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write a config file, and
// [SetField] to update a single key. [Config.Redactor] turns the result into
// a ready-to-use redact.Redactor.
package config
