package robinhood

import (
	"net/url"
	"strings"
)

// query accumulates URL parameters in insertion order. The query string
// becomes part of the signed path, so the builder keeps a fixed, stable
// order instead of the map-backed url.Values.
type query struct {
	pairs []string
}

// add appends one key=value pair, skipping empty values.
func (q *query) add(key, value string) {
	if value == "" {
		return
	}
	q.pairs = append(q.pairs, url.QueryEscape(key)+"="+url.QueryEscape(value))
}

// addAll appends one pair per value under the same key.
func (q *query) addAll(key string, values []string) {
	for _, v := range values {
		q.add(key, v)
	}
}

// String renders "?k=v&k2=v2", or "" when no pairs were added.
func (q *query) String() string {
	if len(q.pairs) == 0 {
		return ""
	}
	return "?" + strings.Join(q.pairs, "&")
}
