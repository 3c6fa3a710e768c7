package logging

import (
	"net/url"
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// redactor redacts sensitive values in log key-value pairs.
type redactor struct {
	sensitiveWords map[string]bool
}

func newRedactor() *redactor {
	words := []string{"secret", "password", "token", "key", "auth", "credential"}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return &redactor{sensitiveWords: m}
}

// redact walks flattened key-value pairs and returns a copy with sensitive values replaced.
// A value is sensitive when its key has a sensitive segment ("api_key", "Auth-Token"),
// and URL values additionally get sensitive query parameters masked.
func (r *redactor) redact(pairs []any) []any {
	if len(pairs) == 0 {
		return pairs
	}
	result := make([]any, len(pairs))
	copy(result, pairs)
	for i := 0; i+1 < len(result); i += 2 {
		key, ok := result[i].(string)
		if !ok {
			continue
		}
		if r.isSensitive(key) {
			result[i+1] = redacted
			continue
		}
		if s, ok := result[i+1].(string); ok {
			result[i+1] = r.redactURL(s)
		}
	}
	return result
}

// isSensitive reports whether key contains a sensitive word as a separate segment.
func (r *redactor) isSensitive(key string) bool {
	for _, part := range nonAlphanumeric.Split(strings.ToLower(key), -1) {
		if r.sensitiveWords[part] {
			return true
		}
	}
	return false
}

// redactURL masks sensitive query parameters of an absolute URL. Other strings pass through.
func (r *redactor) redactURL(value string) string {
	if !strings.Contains(value, "://") || !strings.Contains(value, "?") {
		return value
	}
	u, err := url.Parse(value)
	if err != nil {
		return value
	}
	q := u.Query()
	changed := false
	for k := range q {
		if r.isSensitive(k) {
			q.Set(k, redacted)
			changed = true
		}
	}
	if !changed {
		return value
	}
	u.RawQuery = q.Encode()
	return u.String()
}
