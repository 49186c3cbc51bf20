// Package robinhood implements the signed HTTP client for the crypto
// trading API.
//
// Every call goes through APIRequest: it captures a unix timestamp, signs
// the canonical message (api key, timestamp, path, method, body — in that
// order, no separators) with the account's Ed25519 key, attaches the
// x-api-key, x-timestamp and x-signature headers and performs one
// synchronous HTTP request. There are no retries; every failure is
// returned to the caller.
//
// Failures are typed: ConnectionError for transport problems, APIError for
// non-2xx statuses (carrying status code and body), ResponseFormatError
// for unparseable bodies on success statuses.
package robinhood
