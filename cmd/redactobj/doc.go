// Redactobj is a CLI for stripping secrets out of structured documents.
//
// It reads JSON or YAML, replaces the values of keys that match configured
// keywords (passwords, tokens, API keys, ...) at any depth, and writes the
// redacted copy, leaving everything else untouched.
//
// Usage:
//
//	redactobj scrub config.yaml                 # redact a file to stdout
//	redactobj scrub --keys password,token -     # redact stdin with explicit keywords
//	redactobj scrub --strict=false --format yaml a.json b.json
//	redactobj match auth-token username         # show which keys would be redacted
//	redactobj config show                       # print effective configuration
package main
