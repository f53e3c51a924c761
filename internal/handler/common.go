package handler // handler implements the HTTP surface of the farm service

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// storeTimeout bounds every store call made from a handler.
const storeTimeout = 5 * time.Second

// CacheInvalidator abandons cached responses for a route group after a
// write. Wired up in main; handlers tolerate it being nil.
type CacheInvalidator func(ctx context.Context, group string)

func storeCtx(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, storeTimeout)
}

// firstMissing returns the first of the required keys that is absent from
// the body, presence-only: a key explicitly set to null or "" still counts
// as present for callers that only check membership.
func firstMissing(data map[string]any, required []string) (string, bool) {
	for _, f := range required {
		if _, ok := data[f]; !ok {
			return f, true
		}
	}
	return "", false
}

// fieldEmpty reports whether a required value is effectively unset: the key
// is missing, null, or a blank string.
func fieldEmpty(data map[string]any, key string) bool {
	v, ok := data[key]
	if !ok || v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// stringField renders a body value into a string column. Non-string values
// are stored in their printed form rather than rejected.
func stringField(data map[string]any, key string) string {
	v, ok := data[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
