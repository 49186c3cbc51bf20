package robinhood

import "strconv"

// signingMessage builds the canonical message the service verifies:
// api_key || timestamp || path || method || body, no separators. path
// includes the query string; body is empty for GET requests. Field order
// and the absence of delimiters are part of the wire contract — any
// deviation invalidates the signature.
func signingMessage(apiKey string, timestamp int64, path, method, body string) []byte {
	return []byte(apiKey + strconv.FormatInt(timestamp, 10) + path + method + body)
}
