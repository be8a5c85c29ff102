// Package secretscan finds secrets inside string values by shape rather than
// by key name.
//
// Detection uses regex heuristics covering common secret shapes: API keys,
// JWTs, private keys, AWS access key IDs and secret access keys, bearer
// tokens, credentials embedded in connection URLs, and provider-specific
// tokens (Anthropic, OpenAI, GitHub, Slack).
//
// It complements key-based redaction: a token pasted into a "notes" field is
// not caught by key matching but is caught here.
package secretscan
