package domain

import "crypto/ed25519"

// SeedBytes is the length of an Ed25519 private key seed.
const SeedBytes = 32

// Credentials is the key material a Client signs with. Immutable once
// loaded; the private key never leaves the process.
type Credentials struct {
	APIKey     string
	PrivateKey ed25519.PrivateKey
}

// Keypair is a freshly generated Ed25519 pair, base64-encoded for display.
// The private key is the 32-byte seed, the format the credential portal
// expects back as BASE64_PRIVATE_KEY.
type Keypair struct {
	PublicKeyB64  string
	PrivateKeyB64 string
}
