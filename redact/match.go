package redact

import "strings"

// KeywordMatch reports whether key matches any of keywords.
//
// When strict is false both sides are lowercased before comparing. When
// partial is true a keyword matches if it occurs anywhere in key; otherwise
// the two must be equal. An empty keyword list never matches.
func KeywordMatch(keywords []string, key string, strict, partial bool) bool {
	if !strict {
		key = strings.ToLower(key)
	}
	for _, keyword := range keywords {
		if !strict {
			keyword = strings.ToLower(keyword)
		}
		if partial {
			if strings.Contains(key, keyword) {
				return true
			}
			continue
		}
		if key == keyword {
			return true
		}
	}
	return false
}
