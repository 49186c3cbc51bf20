// Package keystore persists API credentials encrypted at rest.
//
// Credentials are stored as a single JSON envelope under the config home
// directory. The plaintext is encrypted with ChaCha20-Poly1305 under a key
// derived from the user's passphrase with Argon2id; salt and nonce are
// random per save. A wrong passphrase fails AEAD authentication and
// surfaces as an error, never as garbage credentials.
package keystore
